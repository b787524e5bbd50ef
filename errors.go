// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt

import (
	"fmt"
	"strconv"

	"gonih.org/chronofmt/field"
)

// PrintFailureReason classifies why a printer element refused to print a
// value, for [PrintFieldError].
type PrintFailureReason int

const (
	// ReasonExceedsWidth means the value's decimal representation is
	// wider than the element's max width.
	ReasonExceedsWidth PrintFailureReason = iota
	// ReasonNegativeNotAllowed means the element's sign style forbids
	// negative values.
	ReasonNegativeNotAllowed
	// ReasonValueUnavailable means the source has no value for the
	// rule being printed.
	ReasonValueUnavailable
)

func (r PrintFailureReason) String() string {
	switch r {
	case ReasonExceedsWidth:
		return "exceeds_width"
	case ReasonNegativeNotAllowed:
		return "negative_not_allowed"
	case ReasonValueUnavailable:
		return "value_unavailable"
	default:
		return "unknown"
	}
}

// PrintFieldError is raised from element print paths and propagates out of
// the top-level Formatter.Format call.
type PrintFieldError struct {
	Rule   *field.Rule
	Value  int
	Reason PrintFailureReason
}

func (e *PrintFieldError) Error() string {
	return fmt.Sprintf("chronofmt: cannot print field %s (value %d): %s", e.Rule.Name, e.Value, e.Reason)
}

// UnsupportedOperationError is raised by Composite.Print when no printers
// were built, or by Composite.Parse when no parsers were built.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return "chronofmt: unsupported operation: " + e.Op
}

// IllegalArgumentError is raised by the builder and pattern compiler for
// structural problems: bad widths, an optional_end without a matching
// optional_start, an unterminated string literal, 'p'/'f' not followed by a
// valid target, and similar.
type IllegalArgumentError struct {
	Msg string
}

func (e *IllegalArgumentError) Error() string {
	return "chronofmt: illegal argument: " + e.Msg
}

// IllegalCalendarFieldValueError is raised when a value falls outside a
// rule's domain.
type IllegalCalendarFieldValueError struct {
	Rule     *field.Rule
	Value    int
	Min, Max int
}

func (e *IllegalCalendarFieldValueError) Error() string {
	return fmt.Sprintf("chronofmt: value %d for field %s is out of range [%d, %d]", e.Value, e.Rule.Name, e.Min, e.Max)
}

// ParseError is the public, user-visible parse failure returned by
// [Formatter.Parse]. It carries only the input text and the index at which
// the first mismatch was declared, decoded from the in-band "~position" form
// to a plain non-negative position - producing a more precise
// human-readable location is explicitly out of scope.
type ParseError struct {
	Text       string
	ErrorIndex int
}

func (e *ParseError) Error() string {
	return "chronofmt: parsing " + strconv.Quote(e.Text) + ": mismatch at index " + strconv.Itoa(e.ErrorIndex)
}

// negate encodes a failed parse position per the in-band "~position"
// convention: negative return values are bitwise-complemented positions, so
// that 0 (a legitimate position) still encodes distinctly from success.
func negate(position int) int {
	return ^position
}

// isParseError reports whether pos is an in-band parse failure.
func isParseError(pos int) bool {
	return pos < 0
}

// errorIndex decodes an in-band failure position back to the position at
// which it occurred.
func errorIndex(pos int) int {
	return ^pos
}
