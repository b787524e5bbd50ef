// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt_test

import (
	"testing"

	"gonih.org/chronofmt"
	"gonih.org/chronofmt/field"
)

var (
	patYear  = field.Rule{Name: "year", Min: -9999, Max: 9999, FixedValueSet: true}
	patMonth = field.Rule{Name: "month", Min: 1, Max: 12, FixedValueSet: true}
	patDay   = field.Rule{Name: "day", Min: 1, Max: 31, FixedValueSet: true}
	patMilli = field.Rule{
		Name: "milli", Min: 0, Max: 999, FixedValueSet: true,
		IntToFraction: func(v int) field.Fraction { return field.Fraction{Numerator: int64(v), Scale: 3} },
		FractionToInt: func(f field.Fraction) int { return int(f.Numerator) },
	}
	patWeekday = func() field.Rule {
		r := field.Rule{Name: "weekday", Min: 0, Max: 6, FixedValueSet: true}
		return r.WithTextStore("", field.Full, field.NewMapTextStore(map[int]string{
			3: "Wednesday",
		}))
	}()
)

// fakePatternRules binds the pattern letters used by the tests below to a
// handful of standalone rules, independent of gregorian, so pattern
// compilation can be tested in isolation.
type fakePatternRules struct{}

func (fakePatternRules) Rule(letter rune) (*field.Rule, bool) {
	switch letter {
	case 'y':
		return &patYear, true
	case 'M':
		return &patMonth, true
	case 'd':
		return &patDay, true
	case 'S':
		return &patMilli, true
	case 'E':
		return &patWeekday, true
	default:
		return nil, false
	}
}

func (fakePatternRules) ZoneRegistry() field.ZoneRegistry { return nil }

func compilePattern(t *testing.T, pattern string) *chronofmt.Formatter {
	t.Helper()
	b := chronofmt.NewFormatterBuilder()
	chronofmt.CompilePattern(b, pattern, fakePatternRules{})
	return b.ToFormatter("", nil)
}

func TestCompilePatternBasic(t *testing.T) {
	f := compilePattern(t, "yyyy-MM-dd")
	s, err := f.Format(fakeSource{&patYear: 2009, &patMonth: 6, &patDay: 3})
	if err != nil {
		t.Fatalf("Format = _, %v, want <nil>", err)
	}
	if s != "2009-06-03" {
		t.Fatalf(`Format = %q, want "2009-06-03"`, s)
	}
	res, err := f.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) = _, %v, want <nil>", s, err)
	}
	if res.Parsed[&patYear] != 2009 || res.Parsed[&patMonth] != 6 || res.Parsed[&patDay] != 3 {
		t.Errorf("Parse(%q) = %v, want year=2009 month=6 day=3", s, res.Parsed)
	}
}

func TestCompilePatternOptionalBracket(t *testing.T) {
	f := compilePattern(t, "yyyy[-MM]")
	s, err := f.Format(fakeSource{&patYear: 2009})
	if err != nil || s != "2009" {
		t.Fatalf(`Format(year only) = %q, %v, want "2009", <nil>`, s, err)
	}
	s, err = f.Format(fakeSource{&patYear: 2009, &patMonth: 6})
	if err != nil || s != "2009-06" {
		t.Fatalf(`Format(year+month) = %q, %v, want "2009-06", <nil>`, s, err)
	}
}

func TestCompilePatternQuotedLiteral(t *testing.T) {
	f := compilePattern(t, "yyyy'T'MM")
	s, err := f.Format(fakeSource{&patYear: 2009, &patMonth: 6})
	if err != nil {
		t.Fatalf("Format = _, %v, want <nil>", err)
	}
	if s != "2009T06" {
		t.Errorf(`Format = %q, want "2009T06"`, s)
	}
}

func TestCompilePatternQuotedLiteralWithEscapedQuote(t *testing.T) {
	// A doubled quote inside an open literal escapes to one literal quote
	// character; it does not close and reopen the literal.
	f := compilePattern(t, "'it''s'")
	s, err := f.Format(fakeSource{})
	if err != nil {
		t.Fatalf("Format = _, %v, want <nil>", err)
	}
	if s != "it's" {
		t.Errorf(`Format = %q, want "it's"`, s)
	}
}

func TestCompilePatternFractionFixedWidth(t *testing.T) {
	// A single 'f' binds to a fixed MinWidth==MaxWidth==len(host run), so
	// milli=500 prints as ".500", not trimmed down to ".5".
	f := compilePattern(t, "fSSS")
	s, err := f.Format(fakeSource{&patMilli: 500})
	if err != nil {
		t.Fatalf("Format = _, %v, want <nil>", err)
	}
	if s != ".500" {
		t.Errorf(`Format(milli=500) = %q, want ".500"`, s)
	}
}

func TestCompilePatternFractionMinWidthPadsWithZero(t *testing.T) {
	// Doubling 'f' sets MinWidth to the host run's length and MaxWidth to 9.
	// A MinWidth wider than the rule's natural scale (3, for milli) pads the
	// printed digits with trailing zeros rather than truncating them; per
	// spec.md §4.6 the printed width is always clamp(scale, min, max), never
	// a trimmed-down value.
	f := compilePattern(t, "ffSSSS")
	s, err := f.Format(fakeSource{&patMilli: 500})
	if err != nil {
		t.Fatalf("Format = _, %v, want <nil>", err)
	}
	if s != ".5000" {
		t.Errorf(`Format(milli=500) = %q, want ".5000"`, s)
	}
}

func TestCompilePatternTextStyle(t *testing.T) {
	f := compilePattern(t, "EEEE")
	s, err := f.Format(fakeSource{&patWeekday: 3})
	if err != nil {
		t.Fatalf("Format = _, %v, want <nil>", err)
	}
	if s != "Wednesday" {
		t.Errorf(`Format(weekday=3) = %q, want "Wednesday"`, s)
	}
}

func TestCompilePatternPadModifier(t *testing.T) {
	// The pad width is the repeat count of 'p' itself, not a following
	// digit: "ppppp" is width 5.
	f := compilePattern(t, "pppppM")
	s, err := f.Format(fakeSource{&patMonth: 6})
	if err != nil {
		t.Fatalf("Format = _, %v, want <nil>", err)
	}
	if s != "    6" {
		t.Errorf(`Format(month=6) = %q, want "    6" (space-padded to width 5)`, s)
	}
}

func TestCompilePatternUnrecognizedLetterIsLiteral(t *testing.T) {
	f := compilePattern(t, "Q")
	s, err := f.Format(fakeSource{})
	if err != nil {
		t.Fatalf("Format = _, %v, want <nil>", err)
	}
	if s != "Q" {
		t.Errorf(`Format = %q, want "Q" (unbound letter passes through literally)`, s)
	}
}

func TestCompilePatternUnterminatedLiteralPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CompilePattern did not panic on an unterminated quoted literal")
		}
	}()
	b := chronofmt.NewFormatterBuilder()
	chronofmt.CompilePattern(b, "yyyy'T", fakePatternRules{})
}

func TestCompilePatternFractionWithoutHostPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CompilePattern did not panic on 'f' without a valid host letter")
		}
	}()
	b := chronofmt.NewFormatterBuilder()
	chronofmt.CompilePattern(b, "fQQ", fakePatternRules{})
}

func TestCompilePatternPadWithoutTargetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CompilePattern did not panic on 'p' with no following letter")
		}
	}()
	b := chronofmt.NewFormatterBuilder()
	chronofmt.CompilePattern(b, "p5", fakePatternRules{})
}

func TestCompilePatternUnmatchedBracketPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CompilePattern did not panic on ']' without a matching '['")
		}
	}()
	b := chronofmt.NewFormatterBuilder()
	chronofmt.CompilePattern(b, "yyyy]", fakePatternRules{})
}
