// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "testing"

func TestRuleInRange(t *testing.T) {
	r := Rule{Name: "x", Min: 1, Max: 12}
	tcs := []struct {
		v    int
		want bool
	}{
		{0, false},
		{1, true},
		{6, true},
		{12, true},
		{13, false},
	}
	for _, tc := range tcs {
		if got := r.InRange(tc.v); got != tc.want {
			t.Errorf("Rule{Min:1,Max:12}.InRange(%d) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

// fakeSource is a minimal field.Source for refinement tests.
type fakeSource map[*Rule]int

func (s fakeSource) GetInt(r *Rule) (int, bool) {
	v, ok := s[r]
	return v, ok
}

func TestRuleMinMaxValueRefinement(t *testing.T) {
	month := Rule{Name: "month", Min: 1, Max: 12}
	day := Rule{
		Name: "day", Min: 1, Max: 31,
		MaxFor: func(src Source) int {
			m, ok := src.GetInt(&month)
			if !ok || m != 2 {
				return 31
			}
			return 28
		},
	}

	if got := day.MaxValue(nil); got != 31 {
		t.Errorf("MaxValue(nil) = %d, want 31 (no source, no refinement)", got)
	}
	if got := day.MaxValue(fakeSource{&month: 4}); got != 31 {
		t.Errorf("MaxValue(month=4) = %d, want 31", got)
	}
	if got := day.MaxValue(fakeSource{&month: 2}); got != 28 {
		t.Errorf("MaxValue(month=2) = %d, want 28", got)
	}
	if got := month.MinValue(nil); got != 1 {
		t.Errorf("month.MinValue(nil) = %d, want 1 (no MinFor set)", got)
	}
}

func TestRuleWithTextStore(t *testing.T) {
	r := Rule{Name: "month", Min: 1, Max: 12}
	full := NewMapTextStore(map[int]string{1: "January", 2: "February"})
	short := NewMapTextStore(map[int]string{1: "Jan", 2: "Feb"})

	r = r.WithTextStore("en", Full, full)
	r = r.WithTextStore("en", Short, short)

	if _, ok := r.TextStore("en", Full); !ok {
		t.Error("TextStore(en, Full) not found after WithTextStore")
	}
	if _, ok := r.TextStore("en", Short); !ok {
		t.Error("TextStore(en, Short) not found after WithTextStore")
	}
	if _, ok := r.TextStore("de", Full); ok {
		t.Error("TextStore(de, Full) unexpectedly found")
	}

	// WithTextStore must not mutate a shared base rule's bindings.
	base := Rule{Name: "month", Min: 1, Max: 12}
	_ = base.WithTextStore("en", Full, full)
	if _, ok := base.TextStore("en", Full); ok {
		t.Error("WithTextStore mutated its receiver instead of returning a copy")
	}
}
