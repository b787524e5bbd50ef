// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt

import "strings"

// SettingsPrinterParser is a stateless singleton element that flips a
// ParseContext mode flag (strict/lenient, case-sensitive/insensitive) for
// everything parsed after it in the same composite, per spec.md §4.10. It
// prints nothing: the setting exists purely to steer parsing.
type SettingsPrinterParser struct {
	Strict        *bool // nil leaves strictness alone
	CaseSensitive *bool // nil leaves case sensitivity alone
}

func (s SettingsPrinterParser) IsPrintDataAvailable(*PrintContext) bool { return true }

func (s SettingsPrinterParser) Print(*PrintContext, *strings.Builder) error { return nil }

func (s SettingsPrinterParser) Parse(ctx *ParseContext, _ string, position int) int {
	if s.Strict != nil {
		ctx.SetStrict(*s.Strict)
	}
	if s.CaseSensitive != nil {
		ctx.SetCaseSensitive(*s.CaseSensitive)
	}
	return position
}

var (
	trueVal  = true
	falseVal = false

	// StrictSwitch, LenientSwitch, CaseSensitiveSwitch and
	// CaseInsensitiveSwitch are the four mode-switch singletons the
	// builder's append_strict/append_lenient/append_case_sensitive/
	// append_case_insensitive operations install.
	StrictSwitch          = SettingsPrinterParser{Strict: &trueVal}
	LenientSwitch         = SettingsPrinterParser{Strict: &falseVal}
	CaseSensitiveSwitch   = SettingsPrinterParser{CaseSensitive: &trueVal}
	CaseInsensitiveSwitch = SettingsPrinterParser{CaseSensitive: &falseVal}
)
