// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gregorian

import "gonih.org/chronofmt/field"

// zoneEntry is a minimal field.Zone: a canonical ID plus the handful of
// tzdata release versions this package hardcodes for it, since it does not
// ship an actual IANA tzdata distribution.
type zoneEntry struct {
	id       string
	versions []string
}

func (z zoneEntry) ID() string                  { return z.id }
func (z zoneEntry) AvailableVersions() []string { return z.versions }

// WithVersion reports whether version is one z is available in; this
// package has no per-version rule data to switch to, so success just
// confirms the pin is valid rather than returning a distinct Zone value.
func (z zoneEntry) WithVersion(version string) (field.Zone, bool) {
	for _, v := range z.versions {
		if v == version {
			return z, true
		}
	}
	return nil, false
}

// StaticRegistry is a small, fixed field.ZoneRegistry naming a handful of
// well-known zone IDs, enough to exercise ZoneIDPrinterParser's
// longest-prefix matching without depending on a real tzdata distribution.
type StaticRegistry struct {
	entries []zoneEntry
}

// NewStaticRegistry builds a registry recognizing exactly the given IDs,
// plus "UTC", none of them carrying version data.
func NewStaticRegistry(ids ...string) *StaticRegistry {
	r := &StaticRegistry{entries: make([]zoneEntry, 0, len(ids)+1)}
	r.entries = append(r.entries, zoneEntry{id: "UTC"})
	for _, id := range ids {
		r.entries = append(r.entries, zoneEntry{id: id})
	}
	return r
}

// WithVersions sets the available tzdata versions reported for id, newest
// last; id must already be present in the registry.
func (r *StaticRegistry) WithVersions(id string, versions ...string) *StaticRegistry {
	for i := range r.entries {
		if r.entries[i].id == id {
			r.entries[i].versions = versions
		}
	}
	return r
}

// ParsableIDs implements field.ZoneRegistry.
func (r *StaticRegistry) ParsableIDs() []string {
	ids := make([]string, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.id
	}
	return ids
}

// Zone implements field.ZoneRegistry.
func (r *StaticRegistry) Zone(id string) (field.Zone, bool) {
	for _, e := range r.entries {
		if e.id == id {
			return e, true
		}
	}
	return nil, false
}

// DefaultRegistry covers the zone IDs this package's worked examples parse.
// Europe/Berlin carries two tzdata release versions so callers can exercise
// the "#version" suffix of the zone-id element.
var DefaultRegistry = NewStaticRegistry(
	"America/New_York", "America/Indiana/Knox", "America/Indianapolis",
	"Europe/Berlin", "Europe/London", "Asia/Tokyo",
).WithVersions("Europe/Berlin", "2024a", "2024b")
