// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chronofmt implements a composable date-time print/parse engine: a
// mutable [FormatterBuilder] assembles a pipeline of small printer/parser
// elements (numeric, fractional, text, zone, offset, literal, padding,
// case/strict switches) into an immutable, reusable [Formatter].
//
// The engine never itself knows what a year or a month is. It talks to a
// calendar system only through [field.Source] and [field.Rule]; package
// gregorian is a worked example of such a calendar system, adapting a plain
// Gregorian day count into the rules this package consumes.
package chronofmt

import "fmt"

// Locale is an unvalidated, opaque locale tag, used only as a lookup key
// into data a [SymbolsProvider] or a calendar system supplies. Locale
// negotiation beyond that lookup is out of scope.
type Locale string

// Symbols is the immutable set of locale-specific characters used when
// printing and parsing numbers: the digit used for zero (from which every
// other digit is derived by simple addition), the sign characters, and the
// decimal point.
//
// The zero value is the ASCII/Latin symbol set and is a valid Symbols.
type Symbols struct {
	Locale       Locale
	ZeroChar     rune
	PositiveSign rune
	NegativeSign rune
	DecimalPoint rune
}

// ASCIISymbols is the default, locale-agnostic symbol set.
var ASCIISymbols = Symbols{
	ZeroChar:     '0',
	PositiveSign: '+',
	NegativeSign: '-',
	DecimalPoint: '.',
}

func (s Symbols) zero() rune {
	if s.ZeroChar == 0 {
		return '0'
	}
	return s.ZeroChar
}

func (s Symbols) positiveSign() rune {
	if s.PositiveSign == 0 {
		return '+'
	}
	return s.PositiveSign
}

func (s Symbols) negativeSign() rune {
	if s.NegativeSign == 0 {
		return '-'
	}
	return s.NegativeSign
}

func (s Symbols) decimalPoint() rune {
	if s.DecimalPoint == 0 {
		return '.'
	}
	return s.DecimalPoint
}

// DigitChar returns the locale's character for digit d, which must be in
// 0..9.
func (s Symbols) DigitChar(d int) rune {
	return s.zero() + rune(d)
}

// ConvertToDigit returns the digit value of c in this locale's numbering
// system, or -1 if c is not one of its ten digit characters.
func (s Symbols) ConvertToDigit(c rune) int {
	d := c - s.zero()
	if d < 0 || d > 9 {
		return -1
	}
	return int(d)
}

// InternationalizeDigits returns asciiDigits with every ASCII digit shifted
// to this locale's digit characters. Non-digit runes (e.g. a decimal point
// already inserted by a caller) are passed through unchanged.
func (s Symbols) InternationalizeDigits(asciiDigits string) string {
	shift := s.zero() - '0'
	if shift == 0 {
		return asciiDigits
	}
	out := []rune(asciiDigits)
	for i, r := range out {
		if '0' <= r && r <= '9' {
			out[i] = r + shift
		}
	}
	return string(out)
}

// SymbolsProvider resolves the Symbols to use for a given locale. A
// SymbolsProvider must produce Symbols whose ten digit code points
// (ZeroChar..ZeroChar+9) are contiguous digits in the locale's numbering
// system; the engine does not validate this.
type SymbolsProvider interface {
	Symbols(locale Locale) (Symbols, error)
}

// staticSymbols is a SymbolsProvider that always returns the same Symbols,
// used when a Formatter is built without an explicit provider.
type staticSymbols struct{ s Symbols }

func (p staticSymbols) Symbols(Locale) (Symbols, error) { return p.s, nil }

func (s Symbols) String() string {
	return fmt.Sprintf("Symbols{zero=%q, +=%q, -=%q, .=%q, locale=%q}", s.zero(), s.positiveSign(), s.negativeSign(), s.decimalPoint(), s.Locale)
}
