// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt

import "gonih.org/chronofmt/field"

// PrintContext bundles the calendrical source and symbols a printer element
// needs. It does not mutate during a print call.
type PrintContext struct {
	Source  field.Source
	Symbols Symbols
	Locale  Locale
}

// optionalSnapshot captures everything an optional section must be able to
// restore if parsing inside it fails.
type optionalSnapshot struct {
	parsed        map[*field.Rule]int
	strict        bool
	caseSensitive bool
}

// ParseContext is mutable, per-call state threaded through a single Parse
// invocation. It must never be shared across goroutines or reused across
// calls.
type ParseContext struct {
	symbols       Symbols
	locale        Locale
	strict        bool
	caseSensitive bool
	parsed        map[*field.Rule]int
	stack         []optionalSnapshot
}

// NewParseContext returns a fresh context bound to symbols, strict parsing
// and case-sensitive matching by default.
func NewParseContext(symbols Symbols, locale Locale) *ParseContext {
	return &ParseContext{
		symbols:       symbols,
		locale:        locale,
		strict:        true,
		caseSensitive: true,
		parsed:        make(map[*field.Rule]int),
	}
}

// Symbols returns the context's format symbols.
func (c *ParseContext) Symbols() Symbols { return c.symbols }

// Locale returns the context's locale.
func (c *ParseContext) Locale() Locale { return c.locale }

// IsStrict reports whether strict parsing is currently in effect.
func (c *ParseContext) IsStrict() bool { return c.strict }

// IsCaseSensitive reports whether case-sensitive matching is currently in
// effect.
func (c *ParseContext) IsCaseSensitive() bool { return c.caseSensitive }

// SetStrict sets the strict-parsing flag for the remainder of the parse.
func (c *ParseContext) SetStrict(v bool) { c.strict = v }

// SetCaseSensitive sets the case-sensitivity flag for the remainder of the
// parse.
func (c *ParseContext) SetCaseSensitive(v bool) { c.caseSensitive = v }

// SetParsed records value as the parsed int value for rule. Callers must
// have already validated value against rule's domain; SetParsed performs no
// validation itself.
func (c *ParseContext) SetParsed(rule *field.Rule, value int) {
	c.parsed[rule] = value
}

// GetParsed returns the value previously recorded for rule, if any.
func (c *ParseContext) GetParsed(rule *field.Rule) (int, bool) {
	v, ok := c.parsed[rule]
	return v, ok
}

// Parsed returns a copy of every field value recorded so far.
func (c *ParseContext) Parsed() map[*field.Rule]int {
	out := make(map[*field.Rule]int, len(c.parsed))
	for k, v := range c.parsed {
		out[k] = v
	}
	return out
}

// StartOptional pushes a snapshot of the context's mutable state, to be
// restored by a subsequent EndOptional(false).
func (c *ParseContext) StartOptional() {
	snap := optionalSnapshot{
		parsed:        make(map[*field.Rule]int, len(c.parsed)),
		strict:        c.strict,
		caseSensitive: c.caseSensitive,
	}
	for k, v := range c.parsed {
		snap.parsed[k] = v
	}
	c.stack = append(c.stack, snap)
}

// EndOptional pops the most recent snapshot. If success is false, the
// context's parsed map and flags are restored to their value at the
// matching StartOptional; if true, the snapshot is discarded and whatever
// happened inside the optional section is kept.
func (c *ParseContext) EndOptional(success bool) {
	n := len(c.stack)
	snap := c.stack[n-1]
	c.stack = c.stack[:n-1]
	if success {
		return
	}
	c.parsed = snap.parsed
	c.strict = snap.strict
	c.caseSensitive = snap.caseSensitive
}
