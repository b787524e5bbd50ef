// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt

import (
	"strconv"
	"strings"

	"gonih.org/chronofmt/field"
)

// SignStyle controls how a NumberPrinterParser prints and parses a sign.
type SignStyle int

const (
	// SignNormal emits a negative sign only for negative values, and
	// requires one be present to parse a negative value.
	SignNormal SignStyle = iota
	// SignAlways always emits a sign, and requires one to be present
	// when parsing strictly.
	SignAlways
	// SignExceedsPad emits a positive sign only when the value's digit
	// count exceeds min_width, and requires one under the same
	// condition when parsing strictly.
	SignExceedsPad
	// SignNever never emits a sign.
	SignNever
	// SignNotNegative never emits a sign and fails to print negative
	// values.
	SignNotNegative
)

// NumberPrinterParser prints and parses a field's int value as a run of
// decimal digits, per spec.md §4.4. minWidth and maxWidth bound the
// printed/parsed digit count; subsequentWidth reserves trailing digits for
// an immediately-following fixed-width element (adjacent-value parsing),
// and is maintained only by FormatterBuilder.
type NumberPrinterParser struct {
	Rule            *field.Rule
	MinWidth        int
	MaxWidth        int
	SignStyle       SignStyle
	subsequentWidth int
}

// WithSubsequentWidth returns a copy of n with subsequentWidth increased by
// extra. The builder calls this on the most recently appended variable-width
// numeric element when a fixed-width element is appended immediately after
// it, reserving digits for that successor.
func (n NumberPrinterParser) WithSubsequentWidth(extra int) *NumberPrinterParser {
	n.subsequentWidth += extra
	return &n
}

// IsPrintDataAvailable implements Printer.
func (n *NumberPrinterParser) IsPrintDataAvailable(ctx *PrintContext) bool {
	_, ok := ctx.Source.GetInt(n.Rule)
	return ok
}

// Print implements Printer.
func (n *NumberPrinterParser) Print(ctx *PrintContext, sink *strings.Builder) error {
	v, ok := ctx.Source.GetInt(n.Rule)
	if !ok {
		return &PrintFieldError{Rule: n.Rule, Reason: ReasonValueUnavailable}
	}

	// strconv.Itoa, unlike a manual sign flip, handles the minimal int
	// value without overflow (spec.md §4.4's "Int::MIN rendered as
	// 2147483648" concern, generalized to Go's native int width).
	digits := strconv.Itoa(v)
	digits = strings.TrimPrefix(digits, "-")
	if len(digits) > n.MaxWidth {
		return &PrintFieldError{Rule: n.Rule, Value: v, Reason: ReasonExceedsWidth}
	}

	var sign rune
	switch n.SignStyle {
	case SignAlways:
		if v < 0 {
			sign = ctx.Symbols.negativeSign()
		} else {
			sign = ctx.Symbols.positiveSign()
		}
	case SignExceedsPad:
		if v < 0 {
			sign = ctx.Symbols.negativeSign()
		} else if n.MinWidth < 10 && v >= pow10(n.MinWidth) {
			sign = ctx.Symbols.positiveSign()
		}
	case SignNormal:
		if v < 0 {
			sign = ctx.Symbols.negativeSign()
		}
	case SignNotNegative:
		if v < 0 {
			return &PrintFieldError{Rule: n.Rule, Value: v, Reason: ReasonNegativeNotAllowed}
		}
	case SignNever:
		// Never emit a sign, regardless of v's value.
	}
	if sign != 0 {
		sink.WriteRune(sign)
	}

	for i := len(digits); i < n.MinWidth; i++ {
		sink.WriteRune(ctx.Symbols.zero())
	}
	sink.WriteString(ctx.Symbols.InternationalizeDigits(digits))
	return nil
}

// Parse implements Parser.
func (n *NumberPrinterParser) Parse(ctx *ParseContext, text string, position int) int {
	if position >= len(text) {
		return negate(position)
	}

	pos := position
	negative := false
	sawSign := false
	sawPlus := false

	if c := rune(text[pos]); c == ctx.symbols.positiveSign() || c == ctx.symbols.negativeSign() {
		sawSign = true
		sawPlus = c == ctx.symbols.positiveSign()
		negative = !sawPlus
		pos++
	}

	// The minus sign is accepted unconditionally by every sign style;
	// only acceptance of a leading plus sign, and the strict-mode
	// requirement that a sign be present at all, vary by style - see the
	// table in spec.md §4.4.
	if sawPlus {
		fixedWidth := n.MinWidth == n.MaxWidth
		reject := false
		switch n.SignStyle {
		case SignAlways, SignExceedsPad:
			// accepted in both strict and lenient mode
		case SignNormal:
			reject = ctx.strict
		case SignNotNegative, SignNever:
			reject = ctx.strict || fixedWidth
		}
		if reject {
			return negate(position)
		}
	} else if !sawSign && n.SignStyle == SignAlways && ctx.strict {
		return negate(position)
	}

	digitsStart := pos
	effMax := n.MaxWidth + n.subsequentWidth
	parsedLen := readDigits(ctx.symbols, text, pos, effMax)
	if n.subsequentWidth > 0 {
		minKeep := n.MinWidth
		if v := parsedLen - n.subsequentWidth; v > minKeep {
			minKeep = v
		}
		if minKeep < parsedLen {
			parsedLen = readDigits(ctx.symbols, text, pos, minKeep)
		}
	}
	if parsedLen < n.MinWidth {
		return negate(position)
	}

	if ctx.strict && n.SignStyle == SignExceedsPad {
		if sawPlus && parsedLen <= n.MinWidth {
			return negate(position)
		}
		if !sawPlus && parsedLen > n.MinWidth {
			return negate(position)
		}
	}

	digitsEnd := digitsStart + parsedLen
	value, ok := parseDigits(ctx.symbols, text[digitsStart:digitsEnd])
	if !ok {
		return negate(position)
	}
	if negative {
		value = -value
	}
	// A raw field value outside the rule's own domain is rejected here,
	// as an in-band mismatch: this is the field's own range (spec.md
	// §6's check_value), not the cross-field calendar validation that
	// spec.md §1 places out of scope.
	if !n.Rule.InRange(value) {
		return negate(position)
	}
	ctx.SetParsed(n.Rule, value)
	return digitsEnd
}

// readDigits returns the count of consecutive digit characters (in
// symbols' numbering system) found in text starting at pos, capped at max.
func readDigits(symbols Symbols, text string, pos, max int) int {
	n := 0
	for n < max && pos+n < len(text) && symbols.ConvertToDigit(rune(text[pos+n])) >= 0 {
		n++
	}
	return n
}

// parseDigits converts a run of locale digit characters to an int.
func parseDigits(symbols Symbols, digits string) (int, bool) {
	if digits == "" {
		return 0, false
	}
	v := 0
	for _, c := range digits {
		d := symbols.ConvertToDigit(c)
		if d < 0 {
			return 0, false
		}
		v = v*10 + d
	}
	return v, true
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
