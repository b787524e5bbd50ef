// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian

import (
	"time"

	"gonih.org/chronofmt/field"
)

// monthNames and weekdayNames back the text stores for Month and DayOfWeek;
// they spell out, indexed by time.Month/time.Weekday, the same English names
// the standard library's time.Format prints.
var monthNames = [...]string{
	time.January: "January", time.February: "February", time.March: "March",
	time.April: "April", time.May: "May", time.June: "June",
	time.July: "July", time.August: "August", time.September: "September",
	time.October: "October", time.November: "November", time.December: "December",
}

var weekdayNames = [...]string{
	time.Sunday: "Sunday", time.Monday: "Monday", time.Tuesday: "Tuesday",
	time.Wednesday: "Wednesday", time.Thursday: "Thursday", time.Friday: "Friday",
	time.Saturday: "Saturday",
}

func shortForm(full string) string {
	if len(full) <= 3 {
		return full
	}
	return full[:3]
}

func buildNameStore(names []string, offset int) *field.MapTextStore {
	m := make(map[int]string, len(names))
	for i, n := range names {
		m[i+offset] = n
	}
	return field.NewMapTextStore(m)
}

func buildShortNameStore(names []string, offset int) *field.MapTextStore {
	m := make(map[int]string, len(names))
	for i, n := range names {
		m[i+offset] = shortForm(n)
	}
	return field.NewMapTextStore(m)
}

// Year is the proleptic Gregorian year, bounded to -999999999..999999999.
var Year = field.Rule{
	Name: "Year",
	Min:  -999999999, Max: 999999999,
	FixedValueSet: true,
}

// Month is the 1-12 month of the year, with English text in both Full and
// Short styles.
var Month = func() field.Rule {
	r := field.Rule{Name: "Month", Min: 1, Max: 12, FixedValueSet: true}
	r = r.WithTextStore("", field.Full, buildNameStore(monthNames[1:], 1))
	r = r.WithTextStore("", field.Short, buildShortNameStore(monthNames[1:], 1))
	return r
}()

// DayOfMonth refines its max against a source via MaxFor, matching the
// actual number of days in that source's month - the calendrical
// refinement example from spec.md §4.1.
var DayOfMonth = field.Rule{
	Name: "DayOfMonth",
	Min:  1, Max: 31,
	MaxFor: func(src field.Source) int {
		y, ok1 := src.GetInt(&Year)
		m, ok2 := src.GetInt(&Month)
		if !ok1 || !ok2 {
			return 31
		}
		return monthLength(time.Month(m), y)
	},
}

// DayOfYear is the 1-366 ordinal day within the year.
var DayOfYear = field.Rule{
	Name: "DayOfYear",
	Min:  1, Max: 366,
	MaxFor: func(src field.Source) int {
		y, ok := src.GetInt(&Year)
		if !ok || !isLeapYear(y) {
			return 365
		}
		return 366
	},
}

// DayOfWeek is 0 (Sunday) through 6 (Saturday), with English text.
var DayOfWeek = func() field.Rule {
	r := field.Rule{Name: "DayOfWeek", Min: 0, Max: 6, FixedValueSet: true}
	r = r.WithTextStore("", field.Full, buildNameStore(weekdayNames[:], 0))
	r = r.WithTextStore("", field.Short, buildShortNameStore(weekdayNames[:], 0))
	return r
}()

// HourOfDay is 0-23.
var HourOfDay = field.Rule{Name: "HourOfDay", Min: 0, Max: 23, FixedValueSet: true}

// MinuteOfHour is 0-59.
var MinuteOfHour = field.Rule{Name: "MinuteOfHour", Min: 0, Max: 59, FixedValueSet: true}

// SecondOfMinute is 0-59. Leap seconds are out of scope.
var SecondOfMinute = field.Rule{Name: "SecondOfMinute", Min: 0, Max: 59, FixedValueSet: true}

// MilliOfSecond is 0-999, and is also usable with append_fraction, since it
// has a fixed value set with minimum 0: its fraction is simply its value
// divided by 1000.
var MilliOfSecond = field.Rule{
	Name: "MilliOfSecond",
	Min:  0, Max: 999,
	FixedValueSet: true,
	IntToFraction: func(v int) field.Fraction {
		return field.Fraction{Numerator: int64(v), Scale: 3}
	},
	FractionToInt: func(f field.Fraction) int {
		v := f.Numerator
		for f.Scale > 3 {
			v /= 10
			f.Scale--
		}
		for f.Scale < 3 {
			v *= 10
			f.Scale++
		}
		return int(v)
	},
}

// ZoneOffsetSeconds is a whole-seconds UTC offset, per spec.md §4.11's
// "whole-seconds" assumption.
var ZoneOffsetSeconds = field.Rule{
	Name: "ZoneOffsetSeconds",
	Min:  -18 * 3600, Max: 18 * 3600,
	FixedValueSet: true,
}

// ZoneID indexes into a field.ZoneRegistry's ParsableIDs list; see
// DefaultRegistry in zone.go.
var ZoneID = field.Rule{Name: "ZoneID", Min: 0, Max: 1 << 20}

func monthLength(m time.Month, year int) int {
	const (
		jan = iota + 1
		feb
		mar
		apr
		may
		jun
		jul
		aug
		sep
		oct
		nov
		dec
	)
	switch m {
	case feb:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case apr, jun, sep, nov:
		return 30
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
