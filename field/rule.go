// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field defines the narrow interfaces through which the chronofmt
// print/parse engine talks to a calendar system: a read-only calendrical
// [Source], the [Rule] describing one field of that calendar (its domain,
// its text, its fractional representation), and the [TextStore] that backs a
// rule's textual (as opposed to numeric) representation.
//
// None of the types here know anything about years, months or zones. A
// concrete calendar system (see package gregorian for a worked example)
// builds [Rule] values and a [Source] implementation; chronofmt only ever
// calls back into them through this package's contracts.
package field

// Source is a read-only calendrical value from which field values can be
// retrieved by rule. A Source must not mutate during a print operation.
type Source interface {
	// GetInt returns the integer representation of r's value in this
	// source. ok is false if the source has no value for r.
	GetInt(r *Rule) (v int, ok bool)
}

// Fraction is a decimal in [0, 1) with a scale no greater than 9, used to
// carry sub-unit values (e.g. the fraction of a second within a minute)
// between a [Rule] and the fractional print/parse element.
type Fraction struct {
	// Numerator over 10^Scale.
	Numerator int64
	Scale     int
}

// Rule is the identity, domain and conversions of a single calendar field.
// It is a plain value (a struct of functions and bounds, not an interface)
// by design: field families are closed and known to the calendar system
// that constructs them, so there is nothing to gain from making Rule
// implementable by third parties, and a lot to lose in indirection.
type Rule struct {
	// Name identifies the rule for diagnostics; it plays no role in
	// print/parse semantics.
	Name string

	// Min and Max bound the rule's value domain.
	Min, Max int

	// FixedValueSet is true iff Min and Max do not vary by calendrical
	// context. append_fraction requires FixedValueSet && Min == 0.
	FixedValueSet bool

	// MinFor and MaxFor, if set, refine Min/Max against a concrete
	// source (e.g. days-in-month depends on the month and year). Nil
	// means the plain Min/Max always apply.
	MinFor func(Source) int
	MaxFor func(Source) int

	// IntToFraction and FractionToInt convert between the rule's int
	// domain and a Fraction. Required only for rules used with
	// append_fraction.
	IntToFraction func(v int) Fraction
	FractionToInt func(f Fraction) int

	// text holds the rule's text stores, keyed by locale and style. It
	// is nil for rules with no textual representation (append_text then
	// falls back to numeric printing, per the text element contract).
	text map[Locale]map[TextStyle]TextStore
}

// Locale is an unvalidated, opaque locale tag. Locale negotiation is out of
// scope for this engine: a Locale is only ever used as a lookup key into
// data the calendar system supplies.
type Locale string

// WithTextStore returns a copy of r with the given (locale, style) bound to
// store. It is meant to be used while constructing a Rule, not at parse
// time.
func (r Rule) WithTextStore(locale Locale, style TextStyle, store TextStore) Rule {
	if r.text == nil {
		r.text = make(map[Locale]map[TextStyle]TextStore, 1)
	} else {
		cp := make(map[Locale]map[TextStyle]TextStore, len(r.text)+1)
		for k, v := range r.text {
			cp[k] = v
		}
		r.text = cp
	}
	styles := r.text[locale]
	cp := make(map[TextStyle]TextStore, len(styles)+1)
	for k, v := range styles {
		cp[k] = v
	}
	cp[style] = store
	r.text[locale] = cp
	return r
}

// TextStore returns the text store bound to (locale, style), if any.
func (r *Rule) TextStore(locale Locale, style TextStyle) (TextStore, bool) {
	styles, ok := r.text[locale]
	if !ok {
		return nil, false
	}
	s, ok := styles[style]
	return s, ok
}

// MinValue returns r's minimum, refined against src if MinFor is set and src
// is non-nil.
func (r *Rule) MinValue(src Source) int {
	if r.MinFor != nil && src != nil {
		return r.MinFor(src)
	}
	return r.Min
}

// MaxValue returns r's maximum, refined against src if MaxFor is set and src
// is non-nil.
func (r *Rule) MaxValue(src Source) int {
	if r.MaxFor != nil && src != nil {
		return r.MaxFor(src)
	}
	return r.Max
}

// InRange reports whether v lies within [r.Min, r.Max].
func (r *Rule) InRange(v int) bool {
	return r.Min <= v && v <= r.Max
}
