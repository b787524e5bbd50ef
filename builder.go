// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt

import "gonih.org/chronofmt/field"

// frame holds one nesting level's accumulated elements while a
// FormatterBuilder is under construction. Per spec.md §9's Design Notes,
// this is an explicit stack entry rather than a parent-pointer linked frame,
// so frames can't form reference cycles and optional_end is a plain pop.
type frame struct {
	printers []Printer
	parsers  []Parser
	optional bool

	// valueParserIndex names the slot (if any, else -1) holding the most
	// recently appended variable-width numeric element, which a
	// following fixed-width append may extend via with_subsequent_width.
	// Per the adjacent-value-parsing invariant in §4.15, any append other
	// than a qualifying fixed-width one clears this.
	valueParserIndex int
}

func newFrame(optional bool) *frame {
	return &frame{optional: optional, valueParserIndex: -1}
}

// FormatterBuilder incrementally assembles a Formatter. It is a local,
// single-use mutable value: safe to build on one goroutine, unsafe to share.
type FormatterBuilder struct {
	frames []*frame
	active int // index into frames of the currently open frame

	padWidth int  // 0 means no pending pad_next
	padChar  rune
}

// NewFormatterBuilder returns an empty builder with one (non-optional, root)
// frame open.
func NewFormatterBuilder() *FormatterBuilder {
	return &FormatterBuilder{frames: []*frame{newFrame(false)}, active: 0}
}

func (b *FormatterBuilder) top() *frame { return b.frames[b.active] }

// appendRaw appends p/ps as one element slot of the active frame, applying
// and clearing any pending pad_next, and returns the slot's index. Either p
// or ps (not both) may be nil, for an element built from only a Printer or
// only a Parser - Composite tolerates holes in exactly that shape.
func (b *FormatterBuilder) appendRaw(p Printer, ps Parser) int {
	if b.padWidth > 0 {
		width, char := b.padWidth, b.padChar
		b.padWidth = 0
		inner := NewComposite(wrapNonNil(p), wrapNonNilParser(ps), false)
		dec := &PadPrinterParserDecorator{Inner: inner, Width: width, PadChar: char}
		p, ps = dec, dec
	}
	f := b.top()
	f.printers = append(f.printers, p)
	f.parsers = append(f.parsers, ps)
	return len(f.printers) - 1
}

func wrapNonNil(p Printer) []Printer {
	if p == nil {
		return nil
	}
	return []Printer{p}
}

func wrapNonNilParser(ps Parser) []Parser {
	if ps == nil {
		return nil
	}
	return []Parser{ps}
}

// AppendValue appends a Numeric(rule, 1, 10, SignNormal) element and records
// it as extendable by a following fixed-width AppendValueWidth call.
func (b *FormatterBuilder) AppendValue(rule *field.Rule) *FormatterBuilder {
	n := &NumberPrinterParser{Rule: rule, MinWidth: 1, MaxWidth: 10, SignStyle: SignNormal}
	idx := b.appendRaw(n, n)
	b.top().valueParserIndex = idx
	return b
}

// AppendValueWidth appends a Numeric(rule, width, width, SignNotNegative)
// fixed-width element. If the active frame has a pending
// valueParserIndex (a preceding variable-width numeric append not yet
// consumed by any other append), that earlier element is replaced in place
// by a copy with subsequentWidth increased by width - the adjacent-value
// parsing setup from spec.md §9.
func (b *FormatterBuilder) AppendValueWidth(rule *field.Rule, width int) *FormatterBuilder {
	if width < 1 {
		panic(&IllegalArgumentError{Msg: "append_value: width must be >= 1"})
	}
	f := b.top()
	if f.valueParserIndex >= 0 {
		prevIdx := f.valueParserIndex
		if prev, ok := f.printers[prevIdx].(*NumberPrinterParser); ok {
			extended := prev.WithSubsequentWidth(width)
			f.printers[prevIdx] = extended
			f.parsers[prevIdx] = extended
		}
	}
	n := &NumberPrinterParser{Rule: rule, MinWidth: width, MaxWidth: width, SignStyle: SignNotNegative}
	b.appendRaw(n, n)
	// Deliberately NOT cleared: per spec.md §4.15, a fixed-width append
	// preserves the earlier variable-width element's index, so a further
	// fixed-width append (e.g. day after year+month) keeps extending the
	// same original element rather than starting over.
	return b
}

// AppendValueMinMax appends a Numeric(rule, min, max, signStyle) element.
// When min == max and signStyle is SignNotNegative, this delegates to the
// fixed-width form (and so can extend a preceding variable-width append).
func (b *FormatterBuilder) AppendValueMinMax(rule *field.Rule, min, max int, signStyle SignStyle) *FormatterBuilder {
	if min == max && signStyle == SignNotNegative {
		return b.AppendValueWidth(rule, min)
	}
	if min < 0 || max < min {
		panic(&IllegalArgumentError{Msg: "append_value: invalid min/max"})
	}
	n := &NumberPrinterParser{Rule: rule, MinWidth: min, MaxWidth: max, SignStyle: signStyle}
	idx := b.appendRaw(n, n)
	b.top().valueParserIndex = idx
	return b
}

// AppendValueReduced appends a fixed-width Reduced(rule, width, base)
// element. Being fixed-width, it can extend a preceding variable-width
// numeric append the same way AppendValueWidth does.
func (b *FormatterBuilder) AppendValueReduced(rule *field.Rule, width, base int) *FormatterBuilder {
	if width < 1 {
		panic(&IllegalArgumentError{Msg: "append_value_reduced: width must be >= 1"})
	}
	f := b.top()
	if f.valueParserIndex >= 0 {
		prevIdx := f.valueParserIndex
		if prev, ok := f.printers[prevIdx].(*NumberPrinterParser); ok {
			extended := prev.WithSubsequentWidth(width)
			f.printers[prevIdx] = extended
			f.parsers[prevIdx] = extended
		}
	}
	r := &ReducedPrinterParser{Rule: rule, Width: width, BaseValue: base}
	b.appendRaw(r, r)
	// See the matching comment in AppendValueWidth: the index survives.
	return b
}

// AppendFraction appends a fraction element. rule must have a fixed value
// set with Min == 0; min/max must satisfy 0 <= min <= max <= 9.
func (b *FormatterBuilder) AppendFraction(rule *field.Rule, min, max int) *FormatterBuilder {
	if !rule.FixedValueSet || rule.Min != 0 {
		panic(&IllegalArgumentError{Msg: "append_fraction: rule must have a fixed value set with min 0"})
	}
	if min < 0 || min > max || max > 9 {
		panic(&IllegalArgumentError{Msg: "append_fraction: need 0 <= min <= max <= 9"})
	}
	fr := &FractionPrinterParser{Rule: rule, MinWidth: min, MaxWidth: max, DecimalPoint: true}
	b.appendRaw(fr, fr)
	b.top().valueParserIndex = -1
	return b
}

// AppendText appends a text element using the Full style.
func (b *FormatterBuilder) AppendText(rule *field.Rule) *FormatterBuilder {
	return b.AppendTextStyle(rule, field.Full)
}

// AppendTextStyle appends a text element for the given style.
func (b *FormatterBuilder) AppendTextStyle(rule *field.Rule, style field.TextStyle) *FormatterBuilder {
	t := &TextPrinterParser{Rule: rule, Style: style}
	b.appendRaw(t, t)
	b.top().valueParserIndex = -1
	return b
}

// AppendLiteral appends a single fixed rune.
func (b *FormatterBuilder) AppendLiteral(char rune) *FormatterBuilder {
	l := CharLiteralPrinterParser{Char: char}
	b.appendRaw(l, l)
	b.top().valueParserIndex = -1
	return b
}

// AppendLiteralString appends fixed text. An empty string is a no-op; a
// single-rune string delegates to AppendLiteral.
func (b *FormatterBuilder) AppendLiteralString(s string) *FormatterBuilder {
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return b
	case 1:
		return b.AppendLiteral(runes[0])
	}
	l := StringLiteralPrinterParser{Text: s}
	b.appendRaw(l, l)
	b.top().valueParserIndex = -1
	return b
}

// AppendOffset appends a zone offset element. Unlike the source language
// (where zone offset access is baked into the calendrical protocol
// directly), this engine routes every field through [field.Rule]
// uniformly, so AppendOffset takes an explicit rule naming which field
// holds the offset's total seconds.
func (b *FormatterBuilder) AppendOffset(rule *field.Rule, utcText string, includeColon, allowSeconds bool) *FormatterBuilder {
	var style OffsetStyle
	switch {
	case !includeColon && !allowSeconds:
		style = OffsetHoursMinutes
	case includeColon && !allowSeconds:
		style = OffsetHoursMinutesColon
	case !includeColon && allowSeconds:
		style = OffsetHoursMinutesSeconds
	default:
		style = OffsetHoursMinutesSecondsColon
	}
	z := &ZoneOffsetPrinterParser{Rule: rule, Style: style, NoOffsetText: utcText}
	b.appendRaw(z, z)
	b.top().valueParserIndex = -1
	return b
}

// AppendOffsetID appends AppendOffset(rule, "Z", true, true).
func (b *FormatterBuilder) AppendOffsetID(rule *field.Rule) *FormatterBuilder {
	return b.AppendOffset(rule, "Z", true, true)
}

// AppendZoneID appends a zone-id element backed by registry.
func (b *FormatterBuilder) AppendZoneID(rule *field.Rule, registry field.ZoneRegistry) *FormatterBuilder {
	z := &ZoneIDPrinterParser{Rule: rule, Registry: registry}
	b.appendRaw(z, z)
	b.top().valueParserIndex = -1
	return b
}

// AppendZoneText appends a zone-text element for the given style.
func (b *FormatterBuilder) AppendZoneText(rule *field.Rule, style field.TextStyle) *FormatterBuilder {
	return b.AppendTextStyle(rule, style)
}

// AppendLocalized appends a pattern resolved lazily, per-locale, by resolve.
func (b *FormatterBuilder) AppendLocalized(resolve func(Locale) (*Composite, error)) *FormatterBuilder {
	l := &LocalizedPrinterParser{Resolve: resolve}
	b.appendRaw(l, l)
	b.top().valueParserIndex = -1
	return b
}

// Append appends an arbitrary element built from p and/or ps; at least one
// must be non-nil.
func (b *FormatterBuilder) Append(p Printer, ps Parser) *FormatterBuilder {
	if p == nil && ps == nil {
		panic(&IllegalArgumentError{Msg: "append: printer and parser both nil"})
	}
	b.appendRaw(p, ps)
	b.top().valueParserIndex = -1
	return b
}

// AppendFormatter inlines f's composite as a non-optional nested element.
func (b *FormatterBuilder) AppendFormatter(f *Formatter) *FormatterBuilder {
	c := f.ToPrinterParser(false)
	b.appendRaw(c, c)
	b.top().valueParserIndex = -1
	return b
}

// AppendOptional inlines f's composite as an optional nested element.
func (b *FormatterBuilder) AppendOptional(f *Formatter) *FormatterBuilder {
	c := f.ToPrinterParser(true)
	b.appendRaw(c, c)
	b.top().valueParserIndex = -1
	return b
}

// PadNext records pending padding to be enforced on the very next appended
// element, defaulting the pad character to a space.
func (b *FormatterBuilder) PadNext(width int) *FormatterBuilder {
	return b.PadNextChar(width, ' ')
}

// PadNextChar is PadNext with an explicit pad character.
func (b *FormatterBuilder) PadNextChar(width int, char rune) *FormatterBuilder {
	if width < 1 {
		panic(&IllegalArgumentError{Msg: "pad_next: width must be >= 1"})
	}
	b.padWidth, b.padChar = width, char
	return b
}

// ParseCaseSensitive appends a singleton switching parsing to case-sensitive.
func (b *FormatterBuilder) ParseCaseSensitive() *FormatterBuilder {
	b.appendRaw(CaseSensitiveSwitch, CaseSensitiveSwitch)
	b.top().valueParserIndex = -1
	return b
}

// ParseCaseInsensitive appends a singleton switching parsing to case-insensitive.
func (b *FormatterBuilder) ParseCaseInsensitive() *FormatterBuilder {
	b.appendRaw(CaseInsensitiveSwitch, CaseInsensitiveSwitch)
	b.top().valueParserIndex = -1
	return b
}

// ParseStrict appends a singleton switching parsing to strict.
func (b *FormatterBuilder) ParseStrict() *FormatterBuilder {
	b.appendRaw(StrictSwitch, StrictSwitch)
	b.top().valueParserIndex = -1
	return b
}

// ParseLenient appends a singleton switching parsing to lenient.
func (b *FormatterBuilder) ParseLenient() *FormatterBuilder {
	b.appendRaw(LenientSwitch, LenientSwitch)
	b.top().valueParserIndex = -1
	return b
}

// OptionalStart pushes a new optional frame.
func (b *FormatterBuilder) OptionalStart() *FormatterBuilder {
	b.frames = append(b.frames, newFrame(true))
	b.active = len(b.frames) - 1
	return b
}

// OptionalEnd pops the active frame, wraps its contents as an optional
// composite, and appends that composite as a single element of the new
// (parent) active frame. It panics with *IllegalArgumentError if there is
// no matching OptionalStart.
func (b *FormatterBuilder) OptionalEnd() *FormatterBuilder {
	if b.active == 0 {
		panic(&IllegalArgumentError{Msg: "optional_end: no matching optional_start"})
	}
	f := b.frames[b.active]
	b.frames = b.frames[:b.active]
	b.active--
	c := NewComposite(f.printers, f.parsers, true)
	b.appendRaw(c, c)
	b.top().valueParserIndex = -1
	return b
}

// ToFormatter auto-closes any still-open optional frames, wraps the root
// frame's elements in a non-optional composite, and returns an immutable
// Formatter bound to locale.
func (b *FormatterBuilder) ToFormatter(locale Locale, symbols SymbolsProvider) *Formatter {
	for b.active > 0 {
		b.OptionalEnd()
	}
	root := b.frames[0]
	c := NewComposite(root.printers, root.parsers, false)
	if symbols == nil {
		symbols = staticSymbols{ASCIISymbols}
	}
	return &Formatter{locale: locale, composite: c, symbols: symbols}
}
