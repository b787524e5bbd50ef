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

// Formatter is an immutable binding of a locale to a compiled Composite, per
// spec.md §4.17. It is built by FormatterBuilder.ToFormatter and, once
// built, is safe for concurrent use by any number of callers: printing and
// parsing never mutate it.
type Formatter struct {
	locale    Locale
	composite *Composite
	symbols   SymbolsProvider
}

// Format prints source using this formatter's composite and symbols.
func (f *Formatter) Format(source field.Source) (string, error) {
	symbols, err := f.symbols.Symbols(f.locale)
	if err != nil {
		return "", err
	}
	ctx := &PrintContext{Source: source, Symbols: symbols, Locale: f.locale}
	var sink strings.Builder
	if err := f.composite.Print(ctx, &sink); err != nil {
		return "", err
	}
	return sink.String(), nil
}

// ParseResult is the outcome of a successful Parse: every field value the
// composite recorded, and the position immediately after the match.
// Merging these into a concrete calendrical value is an external concern,
// out of scope for this package.
type ParseResult struct {
	Parsed   map[*field.Rule]int
	Position int
}

// Parse matches text against this formatter's composite starting at
// position 0. On success it returns every field recorded during the match
// and the position just past it - which may be short of len(text); callers
// that need full consumption must check that themselves. On failure it
// returns a *ParseError naming the position of the first mismatch.
//
// A composite built without a parser for one of its elements makes Parse
// itself a programmer error (see Composite.Parse); that surfaces here as a
// panic recovered back into a returned error, per the taxonomy in
// spec.md §7.
func (f *Formatter) Parse(text string) (result ParseResult, err error) {
	symbols, serr := f.symbols.Symbols(f.locale)
	if serr != nil {
		return ParseResult{}, serr
	}
	ctx := NewParseContext(symbols, f.locale)

	defer func() {
		if r := recover(); r != nil {
			if uoe, ok := r.(*UnsupportedOperationError); ok {
				err = uoe
				return
			}
			panic(r)
		}
	}()

	pos := f.composite.Parse(ctx, text, 0)
	if isParseError(pos) {
		return ParseResult{}, &ParseError{Text: text, ErrorIndex: errorIndex(pos)}
	}
	return ParseResult{Parsed: ctx.Parsed(), Position: pos}, nil
}

// ToPrinterParser returns f's composite, re-flagged as optional if
// requested. Used by FormatterBuilder.AppendFormatter/AppendOptional to
// inline one formatter inside another being built.
func (f *Formatter) ToPrinterParser(optional bool) *Composite {
	c := *f.composite
	c.optional = optional
	return &c
}
