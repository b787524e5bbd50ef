// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt

import (
	"fmt"
	"strings"

	"gonih.org/chronofmt/field"
)

// OffsetStyle selects how ZoneOffsetPrinterParser renders the hour, minute
// and second components of a zone offset, per spec.md §4.11.
type OffsetStyle int

const (
	// OffsetHours renders "+HH" only; non-zero minutes/seconds are an
	// error.
	OffsetHours OffsetStyle = iota
	// OffsetHoursMinutes renders "+HHMM".
	OffsetHoursMinutes
	// OffsetHoursMinutesColon renders "+HH:MM".
	OffsetHoursMinutesColon
	// OffsetHoursMinutesSeconds renders "+HHMMSS", omitting SS when zero.
	OffsetHoursMinutesSeconds
	// OffsetHoursMinutesSecondsColon renders "+HH:MM:SS", omitting the
	// trailing ":SS" when seconds are zero.
	OffsetHoursMinutesSecondsColon
)

// ZoneOffsetPrinterParser prints and parses a whole-seconds zone offset held
// in Rule's int domain. When the offset is exactly zero, NoOffsetText (e.g.
// "Z") is printed/accepted in place of the numeric form.
type ZoneOffsetPrinterParser struct {
	Rule         *field.Rule
	Style        OffsetStyle
	NoOffsetText string
}

// IsPrintDataAvailable implements Printer.
func (z *ZoneOffsetPrinterParser) IsPrintDataAvailable(ctx *PrintContext) bool {
	_, ok := ctx.Source.GetInt(z.Rule)
	return ok
}

// Print implements Printer.
func (z *ZoneOffsetPrinterParser) Print(ctx *PrintContext, sink *strings.Builder) error {
	total, ok := ctx.Source.GetInt(z.Rule)
	if !ok {
		return &PrintFieldError{Rule: z.Rule, Reason: ReasonValueUnavailable}
	}
	if total == 0 && z.NoOffsetText != "" {
		sink.WriteString(z.NoOffsetText)
		return nil
	}

	sign := byte('+')
	abs := total
	if abs < 0 {
		sign = '-'
		abs = -abs
	}
	hh, mm, ss := abs/3600, (abs/60)%60, abs%60

	if z.Style == OffsetHours && (mm != 0 || ss != 0) {
		return &PrintFieldError{Rule: z.Rule, Value: total, Reason: ReasonExceedsWidth}
	}

	var b strings.Builder
	b.WriteByte(sign)
	fmt.Fprintf(&b, "%02d", hh)
	switch z.Style {
	case OffsetHours:
	case OffsetHoursMinutes:
		fmt.Fprintf(&b, "%02d", mm)
	case OffsetHoursMinutesColon:
		fmt.Fprintf(&b, ":%02d", mm)
	case OffsetHoursMinutesSeconds:
		fmt.Fprintf(&b, "%02d", mm)
		if ss != 0 {
			fmt.Fprintf(&b, "%02d", ss)
		}
	case OffsetHoursMinutesSecondsColon:
		fmt.Fprintf(&b, ":%02d", mm)
		if ss != 0 {
			fmt.Fprintf(&b, ":%02d", ss)
		}
	}
	sink.WriteString(b.String())
	return nil
}

// Parse implements Parser.
func (z *ZoneOffsetPrinterParser) Parse(ctx *ParseContext, text string, position int) int {
	if z.NoOffsetText != "" {
		n := len(z.NoOffsetText)
		if position+n <= len(text) {
			cand := text[position : position+n]
			match := cand == z.NoOffsetText
			if !match && !ctx.caseSensitive {
				match = strings.EqualFold(cand, z.NoOffsetText)
			}
			if match {
				ctx.SetParsed(z.Rule, 0)
				return position + n
			}
		}
	}

	pos := position
	if pos >= len(text) {
		return negate(position)
	}
	var sign int
	switch text[pos] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return negate(position)
	}
	pos++

	readPair := func() (int, bool) {
		if pos+2 > len(text) {
			return 0, false
		}
		v, ok := parseDigits(ctx.symbols, text[pos:pos+2])
		if !ok {
			return 0, false
		}
		pos += 2
		return v, true
	}
	skipColon := func() {
		if pos < len(text) && text[pos] == ':' {
			pos++
		}
	}

	hh, ok := readPair()
	if !ok {
		return negate(position)
	}
	mm, ss := 0, 0
	switch z.Style {
	case OffsetHours:
	case OffsetHoursMinutes:
		if mm, ok = readPair(); !ok {
			return negate(position)
		}
	case OffsetHoursMinutesColon:
		skipColon()
		if mm, ok = readPair(); !ok {
			return negate(position)
		}
	case OffsetHoursMinutesSeconds:
		if mm, ok = readPair(); !ok {
			return negate(position)
		}
		if save := pos; true {
			if v, ok2 := readPair(); ok2 {
				ss = v
			} else {
				pos = save
			}
		}
	case OffsetHoursMinutesSecondsColon:
		skipColon()
		if mm, ok = readPair(); !ok {
			return negate(position)
		}
		save := pos
		skipColon()
		if v, ok2 := readPair(); ok2 {
			ss = v
		} else {
			pos = save
		}
	}

	total := sign * (hh*3600 + mm*60 + ss)
	if !z.Rule.InRange(total) {
		return negate(position)
	}
	ctx.SetParsed(z.Rule, total)
	return pos
}
