// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian

import (
	"time"

	"gonih.org/chronofmt"
	"gonih.org/chronofmt/field"
)

// dateRules implements chronofmt.PatternRules for the date-only fields this
// package defines; 'y', 'M', 'd' and 'E' are the only letters it binds and
// the only ones package-level patterns here use.
type dateRules struct{}

func (dateRules) Rule(letter rune) (*field.Rule, bool) {
	switch letter {
	case 'y':
		return &Year, true
	case 'M':
		return &Month, true
	case 'd':
		return &DayOfMonth, true
	case 'E':
		return &DayOfWeek, true
	default:
		return nil, false
	}
}

func (dateRules) ZoneRegistry() field.ZoneRegistry { return DefaultRegistry }

// RFC3339 prints/parses dates as "yyyy-MM-dd", e.g. "2009-06-03".
var RFC3339 = compileDatePattern("yyyy-MM-dd")

// Long prints/parses dates as "EEEE, MMMM d, yyyy", e.g.
// "Wednesday, June 3, 2009".
var Long = compileDatePattern("EEEE, MMMM d, yyyy")

func compileDatePattern(pattern string) *chronofmt.Formatter {
	b := chronofmt.NewFormatterBuilder()
	chronofmt.CompilePattern(b, pattern, dateRules{})
	return b.ToFormatter("", nil)
}

// Format renders d using f. It panics only if f was built from a malformed
// pattern targeting fields dateOnlySource cannot supply - which does not
// happen for any formatter this package exports.
func (d Date) Format(f *chronofmt.Formatter) string {
	s, err := f.Format(dateOnlySource{d})
	if err != nil {
		// dateOnlySource supplies every field date-oriented formatters
		// in this package need; a failure here means a formatter was
		// built against fields this source can't answer, which is a
		// programming error in the caller, not a runtime condition.
		panic(err)
	}
	return s
}

// Parse parses text using f and reconstructs a Date from whatever year,
// month and day fields it recorded. Fields f's pattern doesn't mention
// default to the zero Date's corresponding component (year 1, January 1).
func Parse(f *chronofmt.Formatter, text string) (Date, error) {
	result, err := f.Parse(text)
	if err != nil {
		return 0, err
	}
	year, month, day := 1, 1, 1
	if v, ok := result.Parsed[&Year]; ok {
		year = v
	}
	if v, ok := result.Parsed[&Month]; ok {
		month = v
	}
	if v, ok := result.Parsed[&DayOfMonth]; ok {
		day = v
	}
	return Of(year, time.Month(month), day), nil
}
