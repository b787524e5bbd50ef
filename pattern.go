// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt

import (
	"strings"

	"gonih.org/chronofmt/field"
)

// PatternRules resolves a pattern letter to the field rule it denotes. A
// calendar system supplies one implementation binding its own fields (year,
// month, hour, ...) to the letters it wants its patterns to use; the engine
// itself has no built-in opinion about what "y" or "M" mean.
type PatternRules interface {
	// Rule returns the field rule bound to letter, if the calendar system
	// recognizes it. For a letter without a dedicated meaning in the
	// mini-language, false makes the pattern compiler emit it as a literal
	// character instead; for a dedicated letter (y, x, M, a, E, z, I, Z, or
	// the host letter after 'f'), false makes CompilePattern panic.
	Rule(letter rune) (*field.Rule, bool)
	// ZoneRegistry is consulted for the 'I' (zone id) pattern letter.
	ZoneRegistry() field.ZoneRegistry
}

// CompilePattern parses pattern (spec.md §4.16's mini-language) into b. It
// panics with *IllegalArgumentError on any structural problem: an
// unterminated quoted literal, ']' without a matching '[', 'p'/'f' not
// followed by a valid target, or a dedicated letter that rules does not
// bind - matching FormatterBuilder's own panic convention for builder-time
// misuse.
func CompilePattern(b *FormatterBuilder, pattern string, rules PatternRules) {
	runes := []rune(pattern)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case c == '\'':
			i = compileQuotedLiteral(b, runes, i)
		case c == '[':
			b.OptionalStart()
			i++
		case c == ']':
			b.OptionalEnd()
			i++
		case isPatternLetter(c):
			i = compileLetterRun(b, runes, i, rules)
		default:
			b.AppendLiteral(c)
			i++
		}
	}
}

func isPatternLetter(c rune) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// compileQuotedLiteral handles a 'text' literal starting at runes[i] (which
// must be a single quote), including the '' escape for a literal quote
// character. It returns the index just past the literal.
func compileQuotedLiteral(b *FormatterBuilder, runes []rune, i int) int {
	i++ // skip opening quote
	var lit strings.Builder
	for {
		if i >= len(runes) {
			panic(&IllegalArgumentError{Msg: "pattern: unterminated string literal"})
		}
		if runes[i] == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				lit.WriteRune('\'')
				i += 2
				continue
			}
			i++ // closing quote
			break
		}
		lit.WriteRune(runes[i])
		i++
	}
	b.AppendLiteralString(lit.String())
	return i
}

// compileLetterRun handles one maximal run of the same letter starting at
// runes[i], dispatching per the table in spec.md §4.16. It returns the
// index just past everything it consumed (which, for 'f' and 'p', includes
// the following host letter run).
func compileLetterRun(b *FormatterBuilder, runes []rune, i int, rules PatternRules) int {
	letter := runes[i]
	j := i
	for j < len(runes) && runes[j] == letter {
		j++
	}
	count := j - i

	switch letter {
	case 'y', 'x':
		rule, ok := rules.Rule(letter)
		requireRule(ok, letter)
		switch {
		case count == 2:
			b.AppendValueReduced(rule, 2, 2000)
		case count < 4:
			b.AppendValueMinMax(rule, count, 10, SignNormal)
		default:
			b.AppendValueMinMax(rule, count, 10, SignExceedsPad)
		}
		return j

	case 'M':
		rule, ok := rules.Rule(letter)
		requireRule(ok, letter)
		switch {
		case count == 1:
			b.AppendValue(rule)
		case count == 2:
			b.AppendValueWidth(rule, 2)
		case count == 3:
			b.AppendTextStyle(rule, field.Short)
		default:
			b.AppendTextStyle(rule, field.Full)
		}
		return j

	case 'a', 'E':
		rule, ok := rules.Rule(letter)
		requireRule(ok, letter)
		if count < 4 {
			b.AppendTextStyle(rule, field.Short)
		} else {
			b.AppendTextStyle(rule, field.Full)
		}
		return j

	case 'f':
		return compileFraction(b, runes, i, j, count, rules)

	case 'p':
		return compilePad(b, runes, j, count, rules)

	case 'z':
		rule, ok := rules.Rule(letter)
		requireRule(ok, letter)
		if count < 4 {
			b.AppendZoneText(rule, field.Short)
		} else {
			b.AppendZoneText(rule, field.Full)
		}
		return j

	case 'I':
		rule, ok := rules.Rule(letter)
		requireRule(ok, letter)
		b.AppendZoneID(rule, rules.ZoneRegistry())
		return j

	case 'Z':
		rule, ok := rules.Rule(letter)
		requireRule(ok, letter)
		switch {
		case count == 1:
			b.AppendOffset(rule, "+0000", false, false)
		case count == 2:
			b.AppendOffset(rule, "+00:00", true, false)
		case count == 3:
			b.AppendOffset(rule, "Z", false, true)
		default:
			b.AppendOffset(rule, "Z", true, true)
		}
		return j

	default:
		rule, ok := rules.Rule(letter)
		if !ok {
			// Unrecognized letter: emitted literally, one rune at a
			// time, preserving the run's length in the output.
			for k := i; k < j; k++ {
				b.AppendLiteral(runes[k])
			}
			return j
		}
		if count == 1 {
			b.AppendValue(rule)
		} else {
			b.AppendValueWidth(rule, count)
		}
		return j
	}
}

// compileFraction handles an 'f' modifier run (length fCount, occupying
// runes[i:fEnd]) followed by its mandatory host letter run.
func compileFraction(b *FormatterBuilder, runes []rune, i, fEnd, fCount int, rules PatternRules) int {
	if fEnd >= len(runes) || !isFractionHost(runes[fEnd]) {
		panic(&IllegalArgumentError{Msg: "pattern: 'f' must be followed by one of H K m s S n"})
	}
	host := runes[fEnd]
	j := fEnd
	for j < len(runes) && runes[j] == host {
		j++
	}
	hostCount := j - fEnd

	rule, ok := rules.Rule(host)
	requireRule(ok, host)

	if fCount == 1 {
		b.AppendFraction(rule, hostCount, hostCount)
	} else {
		b.AppendFraction(rule, hostCount, 9)
	}
	return j
}

func isFractionHost(c rune) bool {
	switch c {
	case 'H', 'K', 'm', 's', 'S', 'n':
		return true
	default:
		return false
	}
}

// compilePad handles a 'p' modifier run of length pCount (already scanned
// past, ending at j) by installing pending padding for whatever the next
// letter run compiles to.
func compilePad(b *FormatterBuilder, runes []rune, j, pCount int, rules PatternRules) int {
	if j >= len(runes) || !isPatternLetter(runes[j]) {
		panic(&IllegalArgumentError{Msg: "pattern: 'p' must be followed by a valid pad target"})
	}
	b.PadNext(pCount)
	return compileLetterRun(b, runes, j, rules)
}

func requireRule(ok bool, letter rune) {
	if !ok {
		panic(&IllegalArgumentError{Msg: "pattern: unrecognized rule letter " + string(letter)})
	}
}
