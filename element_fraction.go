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

// FractionPrinterParser prints and parses a field's value as the decimal
// fraction of its own domain, per spec.md §4.6: the rule converts its int
// value to a [field.Fraction] in [0, 1) and back, and this element renders
// that fraction as MinWidth..MaxWidth digits after an optional decimal
// point.
//
// append_fraction requires Rule.FixedValueSet && Rule.Min == 0 (checked by
// the builder, not here): a field whose domain shifts with calendrical
// context has no stable fractional meaning.
type FractionPrinterParser struct {
	Rule         *field.Rule
	MinWidth     int
	MaxWidth     int
	DecimalPoint bool // whether to print/require a leading decimal point
}

// IsPrintDataAvailable implements Printer.
func (f *FractionPrinterParser) IsPrintDataAvailable(ctx *PrintContext) bool {
	_, ok := ctx.Source.GetInt(f.Rule)
	return ok
}

// Print implements Printer. Per spec.md §4.6, the printed width is the
// rule's fraction scale clamped to [MinWidth, MaxWidth] - not the widest
// allowed width with trailing zeros stripped back down. If the clamped
// width is 0, nothing at all is printed, including the decimal point.
func (f *FractionPrinterParser) Print(ctx *PrintContext, sink *strings.Builder) error {
	v, ok := ctx.Source.GetInt(f.Rule)
	if !ok {
		return &PrintFieldError{Rule: f.Rule, Reason: ReasonValueUnavailable}
	}
	frac := f.Rule.IntToFraction(v)
	width := clamp(frac.Scale, f.MinWidth, f.MaxWidth)
	if width == 0 {
		return nil
	}
	digits := scaleFractionDigits(frac, width)
	if f.DecimalPoint {
		sink.WriteRune(ctx.Symbols.decimalPoint())
	}
	sink.WriteString(ctx.Symbols.InternationalizeDigits(digits))
	return nil
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Parse implements Parser. A leading decimal point is consumed when present
// and DecimalPoint is set; it is mandatory only when MinWidth > 0. Between 0
// (or MinWidth) and MaxWidth digits are then read and scaled back to the
// rule's int domain via FractionToInt.
func (f *FractionPrinterParser) Parse(ctx *ParseContext, text string, position int) int {
	pos := position
	sawPoint := false
	if f.DecimalPoint {
		if pos < len(text) && rune(text[pos]) == ctx.symbols.decimalPoint() {
			sawPoint = true
			pos++
		} else if f.MinWidth > 0 {
			return negate(position)
		} else {
			ctx.SetParsed(f.Rule, f.Rule.FractionToInt(field.Fraction{}))
			return position
		}
	}

	n := readDigits(ctx.symbols, text, pos, f.MaxWidth)
	if n < f.MinWidth {
		return negate(position)
	}
	if n == 0 {
		if sawPoint && f.MinWidth > 0 {
			return negate(position)
		}
		ctx.SetParsed(f.Rule, f.Rule.FractionToInt(field.Fraction{}))
		return pos
	}

	numerator, ok := parseDigits(ctx.symbols, text[pos:pos+n])
	if !ok {
		return negate(position)
	}
	value := f.Rule.FractionToInt(field.Fraction{Numerator: int64(numerator), Scale: n})
	if !f.Rule.InRange(value) {
		return negate(position)
	}
	ctx.SetParsed(f.Rule, value)
	return pos + n
}

// scaleFractionDigits renders f as exactly width decimal digits,
// zero-extending or truncating its numerator as needed.
func scaleFractionDigits(f field.Fraction, width int) string {
	numerator := f.Numerator
	scale := f.Scale
	for scale < width {
		numerator *= 10
		scale++
	}
	for scale > width {
		numerator /= 10
		scale--
	}
	digits := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		digits[i] = byte('0' + numerator%10)
		numerator /= 10
	}
	return string(digits)
}
