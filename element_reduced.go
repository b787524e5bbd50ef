// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt

import (
	"strings"

	"gonih.org/chronofmt/field"
)

// ReducedPrinterParser prints and parses a fixed-width, truncated view of a
// field's value, per spec.md §4.5: only the last width decimal digits are
// ever written or read, and baseValue anchors which of the infinitely many
// integers sharing those trailing digits is meant.
//
// A classic use is a two-digit year: width=2, baseValue=2000 maps the
// printed digits "09" back to 2009, not to 9 or 1909.
type ReducedPrinterParser struct {
	Rule      *field.Rule
	Width     int
	BaseValue int
}

// IsPrintDataAvailable implements Printer.
func (r *ReducedPrinterParser) IsPrintDataAvailable(ctx *PrintContext) bool {
	_, ok := ctx.Source.GetInt(r.Rule)
	return ok
}

// Print implements Printer. It always writes exactly Width digits: the
// value's last Width decimal digits, zero-padded on the left if it has
// fewer.
func (r *ReducedPrinterParser) Print(ctx *PrintContext, sink *strings.Builder) error {
	v, ok := ctx.Source.GetInt(r.Rule)
	if !ok {
		return &PrintFieldError{Rule: r.Rule, Reason: ReasonValueUnavailable}
	}
	if v < 0 {
		return &PrintFieldError{Rule: r.Rule, Value: v, Reason: ReasonNegativeNotAllowed}
	}

	mod := pow10(r.Width)
	truncated := v % mod
	digits := make([]rune, r.Width)
	for i := r.Width - 1; i >= 0; i-- {
		digits[i] = ctx.Symbols.DigitChar(truncated % 10)
		truncated /= 10
	}
	sink.WriteString(string(digits))
	return nil
}

// Parse implements Parser. It reads exactly Width digits (failing if fewer
// are available or any is not a digit), then resolves the truncated value d
// to the unique integer in [BaseValue, BaseValue+10^Width) whose last Width
// digits equal d.
func (r *ReducedPrinterParser) Parse(ctx *ParseContext, text string, position int) int {
	if position+r.Width > len(text) {
		return negate(position)
	}
	n := readDigits(ctx.symbols, text, position, r.Width)
	if n != r.Width {
		return negate(position)
	}
	truncated, ok := parseDigits(ctx.symbols, text[position:position+r.Width])
	if !ok {
		return negate(position)
	}

	mod := pow10(r.Width)
	base := r.BaseValue
	value := base - base%mod + truncated
	if value < base {
		value += mod
	}
	if !r.Rule.InRange(value) {
		return negate(position)
	}
	ctx.SetParsed(r.Rule, value)
	return position + r.Width
}
