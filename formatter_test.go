// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt_test

import (
	"testing"

	"gonih.org/chronofmt"
)

func TestFormatterParseErrorReportsIndex(t *testing.T) {
	f := mustFormatter(t, func(b *chronofmt.FormatterBuilder) {
		b.AppendValueWidth(&month, 2)
	})

	_, err := f.Parse("XX")
	if err == nil {
		t.Fatal(`Parse("XX") succeeded, want a failure`)
	}
	pe, ok := err.(*chronofmt.ParseError)
	if !ok {
		t.Fatalf("Parse error = %T, want *chronofmt.ParseError", err)
	}
	if pe.ErrorIndex != 0 {
		t.Errorf("ParseError.ErrorIndex = %d, want 0", pe.ErrorIndex)
	}
}

func TestAppendFormatterInlinesNonOptional(t *testing.T) {
	inner := mustFormatter(t, func(b *chronofmt.FormatterBuilder) {
		b.AppendLiteral('-').AppendValueWidth(&month, 2)
	})
	outer := mustFormatter(t, func(b *chronofmt.FormatterBuilder) {
		b.AppendValue(&year).AppendFormatter(inner)
	})

	s, err := outer.Format(fakeSource{&year: 2009, &month: 6})
	if err != nil {
		t.Fatalf("Format = _, %v, want <nil>", err)
	}
	if s != "2009-06" {
		t.Errorf(`Format = %q, want "2009-06"`, s)
	}

	// Inlined as non-optional: missing month data must fail to print,
	// not silently skip the inlined section.
	if _, err := outer.Format(fakeSource{&year: 2009}); err == nil {
		t.Error("Format with month missing succeeded, want a failure (inlined formatter is non-optional)")
	}
}

func TestAppendOptionalInlinesAsOptional(t *testing.T) {
	inner := mustFormatter(t, func(b *chronofmt.FormatterBuilder) {
		b.AppendLiteral('-').AppendValueWidth(&month, 2)
	})
	outer := mustFormatter(t, func(b *chronofmt.FormatterBuilder) {
		b.AppendValue(&year).AppendOptional(inner)
	})

	s, err := outer.Format(fakeSource{&year: 2009})
	if err != nil {
		t.Fatalf("Format = _, %v, want <nil>", err)
	}
	if s != "2009" {
		t.Errorf(`Format(year only) = %q, want "2009" (inlined as optional, skipped without month)`, s)
	}

	s, err = outer.Format(fakeSource{&year: 2009, &month: 6})
	if err != nil {
		t.Fatalf("Format = _, %v, want <nil>", err)
	}
	if s != "2009-06" {
		t.Errorf(`Format(year+month) = %q, want "2009-06"`, s)
	}
}

func TestParseLenientAcceptsPlusUnderSignNormal(t *testing.T) {
	f := mustFormatter(t, func(b *chronofmt.FormatterBuilder) {
		b.ParseLenient().AppendValueMinMax(&year, 1, 10, chronofmt.SignNormal)
	})
	res, err := f.Parse("+44")
	if err != nil {
		t.Fatalf(`Parse("+44") under lenient mode = _, %v, want <nil>`, err)
	}
	if res.Parsed[&year] != 44 {
		t.Errorf(`Parse("+44") = %d, want 44`, res.Parsed[&year])
	}
}

func TestParseStrictRejectsPlusUnderSignNormal(t *testing.T) {
	f := mustFormatter(t, func(b *chronofmt.FormatterBuilder) {
		b.ParseStrict().AppendValueMinMax(&year, 1, 10, chronofmt.SignNormal)
	})
	if _, err := f.Parse("+44"); err == nil {
		t.Error(`Parse("+44") under strict mode succeeded, want a failure`)
	}
}

func TestParseCaseSensitiveSwitchBack(t *testing.T) {
	// ParseCaseInsensitive then ParseCaseSensitive again should return to
	// the case-sensitive default for anything parsed after the second switch.
	f := mustFormatter(t, func(b *chronofmt.FormatterBuilder) {
		b.ParseCaseInsensitive().AppendLiteral('a').ParseCaseSensitive().AppendLiteral('B')
	})
	if _, err := f.Parse("Ab"); err == nil {
		t.Error(`Parse("Ab") succeeded, want a failure: the second literal requires exact-case "B"`)
	}
	res, err := f.Parse("AB")
	if err != nil {
		t.Fatalf(`Parse("AB") = _, %v, want <nil>`, err)
	}
	if res.Position != 2 {
		t.Errorf(`Parse("AB").Position = %d, want 2`, res.Position)
	}
}
