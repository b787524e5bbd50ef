// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian

import "gonih.org/chronofmt/field"

// DateTime pairs a Date with a time of day and a zone offset, purely as a
// calendrical source for the chronofmt engine: it carries no timezone
// database knowledge and performs no arithmetic of its own beyond what Date
// already provides.
type DateTime struct {
	D                 Date
	Hour, Min, Sec    int
	Milli             int
	ZoneOffsetSeconds int
	ZoneIndex         int // index into a field.ZoneRegistry's ParsableIDs, or -1
}

// GetInt implements field.Source.
func (dt DateTime) GetInt(r *field.Rule) (int, bool) {
	switch r {
	case &Year:
		return dt.D.Year(), true
	case &Month:
		return int(dt.D.Month()), true
	case &DayOfMonth:
		return dt.D.Day(), true
	case &DayOfYear:
		return dt.D.YearDay(), true
	case &DayOfWeek:
		return int(dt.D.Weekday()), true
	case &HourOfDay:
		return dt.Hour, true
	case &MinuteOfHour:
		return dt.Min, true
	case &SecondOfMinute:
		return dt.Sec, true
	case &MilliOfSecond:
		return dt.Milli, true
	case &ZoneOffsetSeconds:
		return dt.ZoneOffsetSeconds, true
	case &ZoneID:
		if dt.ZoneIndex < 0 {
			return 0, false
		}
		return dt.ZoneIndex, true
	default:
		return 0, false
	}
}

// dateOnlySource adapts a bare Date to field.Source, for formatters that
// only ever touch date fields.
type dateOnlySource struct{ d Date }

func (s dateOnlySource) GetInt(r *field.Rule) (int, bool) {
	switch r {
	case &Year:
		return s.d.Year(), true
	case &Month:
		return int(s.d.Month()), true
	case &DayOfMonth:
		return s.d.Day(), true
	case &DayOfYear:
		return s.d.YearDay(), true
	case &DayOfWeek:
		return int(s.d.Weekday()), true
	default:
		return 0, false
	}
}
