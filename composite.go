// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt

import "strings"

// Printer appends a textual representation of some field(s) of a
// calendrical source to a sink.
type Printer interface {
	// Print appends to sink. It returns a *PrintFieldError if the value
	// cannot be printed (out of range, missing, etc).
	Print(ctx *PrintContext, sink *strings.Builder) error
	// IsPrintDataAvailable reports whether ctx.Source has everything
	// this printer needs. It is consulted only inside optional
	// composites, to decide whether to print the section at all.
	IsPrintDataAvailable(ctx *PrintContext) bool
}

// Parser advances position over text, recording whatever it parses into
// ctx. It returns the new position on success, or a negative,
// bitwise-complemented position (see the package-level note on in-band
// parse failures) if text does not match at position.
type Parser interface {
	Parse(ctx *ParseContext, text string, position int) int
}

// Composite sequences a list of elements. Each slot carries a Printer, a
// Parser, or both (built-in elements always implement both on the same
// value; a caller using FormatterBuilder.Append may supply just one).
//
// optional controls all-or-nothing behavior: an optional composite prints
// nothing at all if any contained printer lacks data, and rolls back every
// parsed value if any contained parser fails.
type Composite struct {
	printers []Printer // element i is nil if that slot has no printer
	parsers  []Parser  // element i is nil if that slot has no parser
	optional bool
}

// NewComposite builds a Composite from parallel printer/parser slices and
// an optional flag. The slices must have the same length; this is an
// internal constructor used by FormatterBuilder, which maintains that
// invariant as it appends.
func NewComposite(printers []Printer, parsers []Parser, optional bool) *Composite {
	return &Composite{printers: printers, parsers: parsers, optional: optional}
}

// canPrint reports whether every slot has a printer.
func (c *Composite) canPrint() bool {
	for _, p := range c.printers {
		if p == nil {
			return false
		}
	}
	return true
}

// canParse reports whether every slot has a parser.
func (c *Composite) canParse() bool {
	for _, p := range c.parsers {
		if p == nil {
			return false
		}
	}
	return true
}

// IsPrintDataAvailable implements Printer: a composite (when nested inside
// an outer optional composite) is available iff every contained printer is
// available.
func (c *Composite) IsPrintDataAvailable(ctx *PrintContext) bool {
	for _, p := range c.printers {
		if !p.IsPrintDataAvailable(ctx) {
			return false
		}
	}
	return true
}

// Print implements Printer.
func (c *Composite) Print(ctx *PrintContext, sink *strings.Builder) error {
	if !c.canPrint() {
		return &UnsupportedOperationError{Op: "print: composite has no printer for one or more elements"}
	}
	if c.optional {
		for _, p := range c.printers {
			if !p.IsPrintDataAvailable(ctx) {
				return nil
			}
		}
	}
	for _, p := range c.printers {
		if err := p.Print(ctx, sink); err != nil {
			return err
		}
	}
	return nil
}

// Parse implements Parser. It panics with *UnsupportedOperationError if
// parsing was never built for this composite (i.e. some slot has no
// parser) - a programmer error, not an in-band mismatch, matching the
// taxonomy in which UnsupportedOperationError is allowed to escape a parse
// call. [Formatter.Parse] recovers this panic at the public boundary and
// turns it back into a returned error.
func (c *Composite) Parse(ctx *ParseContext, text string, position int) int {
	if !c.canParse() {
		panic(&UnsupportedOperationError{Op: "parse: composite has no parser for one or more elements"})
	}
	if !c.optional {
		pos := position
		for _, p := range c.parsers {
			pos = p.Parse(ctx, text, pos)
			if isParseError(pos) {
				return pos
			}
		}
		return pos
	}

	ctx.StartOptional()
	pos := position
	for _, p := range c.parsers {
		pos = p.Parse(ctx, text, pos)
		if isParseError(pos) {
			ctx.EndOptional(false)
			return position
		}
	}
	ctx.EndOptional(true)
	return pos
}
