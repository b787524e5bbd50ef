// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt

import "strings"

// PadPrinterParserDecorator wraps another element, forcing its printed
// output to exactly Width runes by left-padding with PadChar, per spec.md
// §4.9.
//
// Parse behavior depends on strictness: in strict mode, exactly Width
// characters are sliced out of the input and handed to the wrapped element,
// which must consume all of them after any leading pad runes are stripped.
// In lenient mode, the wrapped element parses the input directly at the
// current position; no pad runes are stripped and no width is enforced.
type PadPrinterParserDecorator struct {
	Inner   *Composite
	Width   int
	PadChar rune
}

// IsPrintDataAvailable implements Printer.
func (p *PadPrinterParserDecorator) IsPrintDataAvailable(ctx *PrintContext) bool {
	return p.Inner.IsPrintDataAvailable(ctx)
}

// Print implements Printer.
func (p *PadPrinterParserDecorator) Print(ctx *PrintContext, sink *strings.Builder) error {
	var inner strings.Builder
	if err := p.Inner.Print(ctx, &inner); err != nil {
		return err
	}
	s := inner.String()
	n := len([]rune(s))
	if n > p.Width {
		return &PrintFieldError{Reason: ReasonExceedsWidth}
	}
	for i := n; i < p.Width; i++ {
		sink.WriteRune(p.PadChar)
	}
	sink.WriteString(s)
	return nil
}

// Parse implements Parser.
func (p *PadPrinterParserDecorator) Parse(ctx *ParseContext, text string, position int) int {
	if !ctx.strict {
		return p.Inner.Parse(ctx, text, position)
	}

	if position+p.Width > len(text) {
		return negate(position)
	}
	slice := text[position : position+p.Width]

	trimmed := strings.TrimLeft(slice, string(p.PadChar))
	offset := len(slice) - len(trimmed)

	if trimmed == "" {
		// The whole field was pad characters; let the wrapped element try
		// to parse an empty string, which it will normally reject.
		pos := p.Inner.Parse(ctx, slice, offset)
		if isParseError(pos) {
			return negate(position)
		}
		return position + p.Width
	}

	pos := p.Inner.Parse(ctx, text[:position+p.Width], position+offset)
	if isParseError(pos) || pos != position+p.Width {
		return negate(position)
	}
	return pos
}
