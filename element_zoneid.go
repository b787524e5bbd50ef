// Copyright 2024 Axel Wagner.
// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chronofmt

import (
	"strings"

	"gonih.org/chronofmt/field"
	"gonih.org/chronofmt/internal/cache"
)

// ZoneIDPrinterParser prints and parses a zone ID string, per spec.md §4.12.
// Printing is a plain string lookup; parsing greedily matches the longest
// registry ID that is a prefix of the remaining input, using a substring
// tree built once per distinct parsable-ID list and memoized in idTrees.
type ZoneIDPrinterParser struct {
	Rule     *field.Rule // int domain indexes into Registry's ID list
	Registry field.ZoneRegistry
}

// idTrees memoizes the substring tree built from a registry's ParsableIDs,
// so repeated Formatter.Parse calls against the same registry don't rebuild
// it every time. Keyed by a fingerprint of the ID list (the IDs joined by
// NUL), so any ZoneRegistry implementation works, comparable or not, and a
// registry whose ID list changes gets a freshly built tree.
var idTrees cache.Cache[string, *zoneIDNode]

// zoneIDNode is one node of the greedy-longest-match substring tree: a set
// of single-rune edges, plus, if a full ID ends here, that ID's index in
// the rule's domain.
type zoneIDNode struct {
	children map[rune]*zoneIDNode
	id       string
	index    int
	isLeaf   bool
}

func buildZoneIDTree(ids []string) *zoneIDNode {
	root := &zoneIDNode{children: make(map[rune]*zoneIDNode)}
	for i, id := range ids {
		n := root
		for _, r := range id {
			child, ok := n.children[r]
			if !ok {
				child = &zoneIDNode{children: make(map[rune]*zoneIDNode)}
				n.children[r] = child
			}
			n = child
		}
		n.id = id
		n.index = i
		n.isLeaf = true
	}
	return root
}

// IsPrintDataAvailable implements Printer.
func (z *ZoneIDPrinterParser) IsPrintDataAvailable(ctx *PrintContext) bool {
	_, ok := ctx.Source.GetInt(z.Rule)
	return ok
}

// Print implements Printer.
func (z *ZoneIDPrinterParser) Print(ctx *PrintContext, sink *strings.Builder) error {
	idx, ok := ctx.Source.GetInt(z.Rule)
	if !ok {
		return &PrintFieldError{Rule: z.Rule, Reason: ReasonValueUnavailable}
	}
	ids := z.Registry.ParsableIDs()
	if idx < 0 || idx >= len(ids) {
		return &PrintFieldError{Rule: z.Rule, Value: idx, Reason: ReasonExceedsWidth}
	}
	sink.WriteString(ids[idx])
	return nil
}

// Parse implements Parser. Per spec.md §4.12, a leading "UTC" is a fast
// path: try to parse a zone offset right after it, falling back to UTC with
// zero offset when none is present, either way resolving to the registry's
// "UTC" entry. Otherwise it walks the substring tree one rune at a time,
// remembering the deepest leaf seen, so that e.g. "America/Indiana/Knox" is
// preferred over a registry that also contains "America/Indiana". Either
// way, a trailing "#version" is then matched against the resolved zone's
// available versions, longest first.
func (z *ZoneIDPrinterParser) Parse(ctx *ParseContext, text string, position int) int {
	if end, ok := matchUTCPrefix(text, position, ctx.caseSensitive); ok {
		if n := matchZoneOffsetLen(ctx.symbols, text, end); n > 0 {
			end += n
		}
		if idx, ok := indexOfID(z.Registry, "UTC"); ok {
			return z.finishParse(ctx, text, end, idx)
		}
	}

	ids := z.Registry.ParsableIDs()
	root := idTrees.Get(strings.Join(ids, "\x00"), func(string) *zoneIDNode {
		return buildZoneIDTree(ids)
	})

	n := root
	bestEnd := -1
	bestIndex := -1
	pos := position
	for pos < len(text) {
		r := rune(text[pos])
		child, ok := n.children[r]
		if !ok && !ctx.caseSensitive {
			child, ok = matchFoldChild(n, r)
		}
		if !ok {
			break
		}
		n = child
		pos++
		if n.isLeaf {
			bestEnd = pos
			bestIndex = n.index
		}
	}
	if bestEnd < 0 {
		return negate(position)
	}
	return z.finishParse(ctx, text, bestEnd, bestIndex)
}

// finishParse records idx as the parsed value and extends end past a
// "#version" suffix, if one matches the resolved zone's available versions.
func (z *ZoneIDPrinterParser) finishParse(ctx *ParseContext, text string, end, idx int) int {
	ids := z.Registry.ParsableIDs()
	if idx >= 0 && idx < len(ids) {
		if zone, ok := z.Registry.Zone(ids[idx]); ok {
			end = matchVersionSuffix(zone, text, end)
		}
	}
	ctx.SetParsed(z.Rule, idx)
	return end
}

// indexOfID returns id's position in reg.ParsableIDs(), if present.
func indexOfID(reg field.ZoneRegistry, id string) (int, bool) {
	for i, known := range reg.ParsableIDs() {
		if known == id {
			return i, true
		}
	}
	return 0, false
}

// matchUTCPrefix reports whether text at position starts with "UTC" (honoring
// caseSensitive), and if so, the position right after it.
func matchUTCPrefix(text string, position int, caseSensitive bool) (int, bool) {
	const prefix = "UTC"
	if position+len(prefix) > len(text) {
		return 0, false
	}
	cand := text[position : position+len(prefix)]
	if cand == prefix {
		return position + len(prefix), true
	}
	if !caseSensitive && strings.EqualFold(cand, prefix) {
		return position + len(prefix), true
	}
	return 0, false
}

// matchZoneOffsetLen returns the length of a "+HH:MM[:SS]" or "+HHMM[SS]"
// zone offset starting at pos, or 0 if none matches. It never consumes a
// partial match: a colon or digit pair is only committed once the full pair
// it belongs to has been read.
func matchZoneOffsetLen(symbols Symbols, text string, pos int) int {
	if pos >= len(text) || (text[pos] != '+' && text[pos] != '-') {
		return 0
	}
	read2 := func(at int) (int, bool) {
		if at+2 > len(text) {
			return at, false
		}
		if _, ok := parseDigits(symbols, text[at:at+2]); !ok {
			return at, false
		}
		return at + 2, true
	}

	p, ok := read2(pos + 1)
	if !ok {
		return 0
	}
	if p < len(text) && text[p] == ':' {
		if next, ok := read2(p + 1); ok {
			p = next
			if p < len(text) && text[p] == ':' {
				if next, ok := read2(p + 1); ok {
					p = next
				}
			}
		}
	} else if next, ok := read2(p); ok {
		p = next
		if next, ok := read2(p); ok {
			p = next
		}
	}
	return p - pos
}

// matchVersionSuffix extends end past a "#version" suffix matching one of
// zone's available versions, preferring the longest match. If text at end
// isn't "#", or no available version matches what follows it, end is
// returned unchanged: an unmatched suffix is left for a later element to
// deal with (e.g. a literal '#'), the same enrichment-not-failure posture
// TextPrinterParser takes toward an unmatched text store.
func matchVersionSuffix(zone field.Zone, text string, end int) int {
	if end >= len(text) || text[end] != '#' {
		return end
	}
	rest := text[end+1:]
	best := ""
	for _, v := range zone.AvailableVersions() {
		if strings.HasPrefix(rest, v) && len(v) > len(best) {
			best = v
		}
	}
	if best == "" {
		return end
	}
	if _, ok := zone.WithVersion(best); !ok {
		return end
	}
	return end + 1 + len(best)
}

// matchFoldChild linearly scans n's children for one matching r up to case,
// since case-insensitive zone ID parsing is rare enough not to warrant a
// second, case-folded tree.
func matchFoldChild(n *zoneIDNode, r rune) (*zoneIDNode, bool) {
	for cr, child := range n.children {
		if equalFoldRune(cr, r) {
			return child, true
		}
	}
	return nil, false
}
