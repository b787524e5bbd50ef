// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "testing"

func TestMapTextStoreValueText(t *testing.T) {
	s := NewMapTextStore(map[int]string{1: "January", 2: "February", 3: "March"})
	tcs := []struct {
		v        int
		wantText string
		wantOK   bool
	}{
		{1, "January", true},
		{3, "March", true},
		{4, "", false},
	}
	for _, tc := range tcs {
		text, ok := s.ValueText(tc.v)
		if ok != tc.wantOK || text != tc.wantText {
			t.Errorf("ValueText(%d) = (%q, %v), want (%q, %v)", tc.v, text, ok, tc.wantText, tc.wantOK)
		}
	}
}

func TestMapTextStoreMatchText(t *testing.T) {
	s := NewMapTextStore(map[int]string{1: "January", 2: "February", 3: "March"})
	tcs := []struct {
		name          string
		caseSensitive bool
		input         string
		wantConsumed  int
		wantValue     int
		wantStatus    MatchStatus
	}{
		{"exact", true, "January 1st", 7, 1, MatchFound},
		{"case-sensitive-miss", true, "january 1st", 0, 0, MatchNone},
		{"case-insensitive-hit", false, "january 1st", 7, 1, MatchFound},
		{"no-match", true, "Nope", 0, 0, MatchNone},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			consumed, value, status := s.MatchText(tc.caseSensitive, tc.input)
			if consumed != tc.wantConsumed || value != tc.wantValue || status != tc.wantStatus {
				t.Errorf("MatchText(%v, %q) = (%d, %d, %v), want (%d, %d, %v)",
					tc.caseSensitive, tc.input, consumed, value, status, tc.wantConsumed, tc.wantValue, tc.wantStatus)
			}
		})
	}
}

func TestMapTextStorePrefersLongestMatch(t *testing.T) {
	// "Tue" and "Tuesday" must not be confused: the longer text wins.
	s := NewMapTextStore(map[int]string{1: "Tue", 2: "Tuesday"})
	consumed, value, status := s.MatchText(true, "Tuesday, June 3")
	if status != MatchFound || consumed != len("Tuesday") || value != 2 {
		t.Errorf("MatchText(\"Tuesday, June 3\") = (%d, %d, %v), want (%d, 2, MatchFound)", consumed, value, status, len("Tuesday"))
	}
}

func TestMapTextStoreDuplicateTextDisablesMatching(t *testing.T) {
	// Two distinct values sharing the same text makes matching ambiguous;
	// the store must disable MatchText entirely rather than guess.
	s := NewMapTextStore(map[int]string{1: "Dup", 2: "Dup"})
	if text, ok := s.ValueText(1); !ok || text != "Dup" {
		t.Errorf("ValueText(1) = (%q, %v), want (\"Dup\", true): printing is unaffected by disabled matching", text, ok)
	}
	_, _, status := s.MatchText(true, "Dup")
	if status != MatchDisabled {
		t.Errorf("MatchText(\"Dup\") status = %v, want MatchDisabled", status)
	}
}

func TestNewMapTextStorePanicsOnEmptyText(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewMapTextStore did not panic on an empty text entry")
		}
	}()
	NewMapTextStore(map[int]string{1: ""})
}
