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

// TextPrinterParser prints and parses a field's value as locale text, per
// spec.md §4.7. If the rule has no text store for the context's (locale,
// style), or the store's matching is disabled (duplicate text), it falls
// back to plain decimal printing/parsing of the int value - text is an
// enrichment of the numeric representation, never a replacement that can
// make a value unprintable or unparseable.
type TextPrinterParser struct {
	Rule  *field.Rule
	Style field.TextStyle
}

// numeric is the element this falls back to when no usable text is found.
func (t *TextPrinterParser) numeric() *NumberPrinterParser {
	return &NumberPrinterParser{Rule: t.Rule, MinWidth: 1, MaxWidth: 10, SignStyle: SignNormal}
}

// IsPrintDataAvailable implements Printer.
func (t *TextPrinterParser) IsPrintDataAvailable(ctx *PrintContext) bool {
	_, ok := ctx.Source.GetInt(t.Rule)
	return ok
}

// Print implements Printer.
func (t *TextPrinterParser) Print(ctx *PrintContext, sink *strings.Builder) error {
	v, ok := ctx.Source.GetInt(t.Rule)
	if !ok {
		return &PrintFieldError{Rule: t.Rule, Reason: ReasonValueUnavailable}
	}
	store, ok := t.Rule.TextStore(field.Locale(ctx.Locale), t.Style)
	if !ok {
		return t.numeric().Print(ctx, sink)
	}
	text, ok := store.ValueText(v)
	if !ok {
		return t.numeric().Print(ctx, sink)
	}
	sink.WriteString(text)
	return nil
}

// textStyles is every style tried in lenient mode, in the order spec.md §4.7
// mandates: full, then short, then narrow.
var textStyles = [...]field.TextStyle{field.Full, field.Short, field.Narrow}

// Parse implements Parser. In strict mode only t.Style's own store is tried.
// In lenient mode, spec.md §4.7 requires trying every style in turn (full,
// short, narrow) and accepting the first positive match, since lenient
// parsing should accept whatever form of the text the input actually used,
// not just the one the formatter was built to print. Either way, a store
// miss falls back to numeric parsing - text is an enrichment of the numeric
// representation, never a replacement that can make a value unparseable.
func (t *TextPrinterParser) Parse(ctx *ParseContext, text string, position int) int {
	styles := textStyles[:]
	if ctx.IsStrict() {
		styles = []field.TextStyle{t.Style}
	}
	for _, style := range styles {
		store, ok := t.Rule.TextStore(field.Locale(ctx.locale), style)
		if !ok {
			continue
		}
		consumed, value, status := store.MatchText(ctx.caseSensitive, text[position:])
		if status != field.MatchFound {
			// MatchNone or MatchDisabled: try the next style, since text
			// absence doesn't preclude a plain digit run at this position.
			continue
		}
		if !t.Rule.InRange(value) {
			return negate(position)
		}
		ctx.SetParsed(t.Rule, value)
		return position + consumed
	}
	return t.numeric().Parse(ctx, text, position)
}
