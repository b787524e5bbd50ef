// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt

import (
	"strings"
	"sync"
)

// LocalizedPrinterParser defers to a Resolve callback to pick the concrete
// element for the context's locale, per spec.md §4.13. It is how
// append_localized lets a single built Formatter print/parse, say, a
// locale-appropriate date order without the engine itself knowing any
// locale's date order: the callback is supplied by the calendar system, not
// the engine.
//
// The resolved Composite is memoized per locale, since Resolve is expected
// to do real work (look up a locale's preferred pattern and compile it).
type LocalizedPrinterParser struct {
	Resolve func(locale Locale) (*Composite, error)

	mu       sync.RWMutex
	resolved map[Locale]*Composite
}

func (l *LocalizedPrinterParser) composite(locale Locale) (*Composite, error) {
	l.mu.RLock()
	if c, ok := l.resolved[locale]; ok {
		l.mu.RUnlock()
		return c, nil
	}
	l.mu.RUnlock()

	c, err := l.Resolve(locale)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.resolved == nil {
		l.resolved = make(map[Locale]*Composite, 1)
	}
	l.resolved[locale] = c
	return c, nil
}

// IsPrintDataAvailable implements Printer.
func (l *LocalizedPrinterParser) IsPrintDataAvailable(ctx *PrintContext) bool {
	c, err := l.composite(ctx.Locale)
	if err != nil {
		return false
	}
	return c.IsPrintDataAvailable(ctx)
}

// Print implements Printer.
func (l *LocalizedPrinterParser) Print(ctx *PrintContext, sink *strings.Builder) error {
	c, err := l.composite(ctx.Locale)
	if err != nil {
		return err
	}
	return c.Print(ctx, sink)
}

// Parse implements Parser.
func (l *LocalizedPrinterParser) Parse(ctx *ParseContext, text string, position int) int {
	c, err := l.composite(ctx.locale)
	if err != nil {
		panic(&UnsupportedOperationError{Op: "parse: localized element failed to resolve: " + err.Error()})
	}
	return c.Parse(ctx, text, position)
}
