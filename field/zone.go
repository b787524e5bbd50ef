// Copyright 2026 The chronofmt Authors.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// Zone is one entry of a ZoneRegistry: a zone ID together with the set of
// data versions it is available in.
type Zone interface {
	// ID is the zone's canonical identifier, e.g. "Europe/Berlin".
	ID() string
	// AvailableVersions lists the data versions known for this zone,
	// e.g. "2024a". The set may be empty.
	AvailableVersions() []string
	// WithVersion returns the zone pinned to the given version, if
	// known.
	WithVersion(version string) (Zone, bool)
}

// ZoneRegistry is the external zone-rules database the zone-id element
// queries. It is consulted only for which IDs exist and how they version -
// never for offset computation, which is out of scope for this engine.
type ZoneRegistry interface {
	// ParsableIDs returns every zone ID the registry can resolve.
	ParsableIDs() []string
	// Zone resolves id to a Zone, if known.
	Zone(id string) (Zone, bool)
}
