// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package model

import (
	"encoding/json"

	"github.com/tellers-ai/tellers-timeline/opentime"
)

// Gap represents a span of the track with no media: deliberate silence
// or blank video, holding the track's item sequence together. A Gap's
// source range start time is cosmetic (it is not used to derive the
// item's track position, see Track.StartTimeOfItem) but is kept
// consistent by Split so a decoder round-tripping the document sees a
// sensible value.
type Gap struct {
	name        string
	sourceRange *opentime.TimeRange
	metadata    AnyDictionary

	rawMarkers json.RawMessage
}

// NewGap creates a Gap with the given duration at rate rate.
func NewGap(duration float64, rate float64, metadata AnyDictionary) *Gap {
	if metadata == nil {
		metadata = AnyDictionary{}
	}
	r := opentime.NewTimeRange(opentime.NewRationalTime(0, rate), opentime.NewRationalTime(duration, rate))
	return &Gap{name: "", sourceRange: &r, metadata: metadata}
}

// Name returns the gap's display name.
func (g *Gap) Name() string { return g.name }

// SetName sets the gap's display name.
func (g *Gap) SetName(name string) { g.name = name }

// SourceRange returns the gap's source range.
func (g *Gap) SourceRange() *opentime.TimeRange { return g.sourceRange }

// SetSourceRange sets the gap's source range.
func (g *Gap) SetSourceRange(r *opentime.TimeRange) { g.sourceRange = r }

// Duration returns the gap's duration, or a zero-value RationalTime if
// the gap has no source range.
func (g *Gap) Duration() opentime.RationalTime {
	if g.sourceRange == nil {
		return opentime.RationalTime{}
	}
	return g.sourceRange.Duration()
}

// Metadata returns the gap's metadata dictionary.
func (g *Gap) Metadata() AnyDictionary { return g.metadata }

// Clone returns a deep copy of the gap.
func (g *Gap) Clone() Item {
	var rangeCopy *opentime.TimeRange
	if g.sourceRange != nil {
		cp := *g.sourceRange
		rangeCopy = &cp
	}
	return &Gap{
		name:        g.name,
		sourceRange: rangeCopy,
		metadata:    CloneAnyDictionary(g.metadata),
		rawMarkers:  g.rawMarkers,
	}
}

// RawMarkers returns the gap's markers list exactly as decoded.
func (g *Gap) RawMarkers() json.RawMessage { return g.rawMarkers }

// SetRawMarkers stores an opaque markers list to be replayed on encode.
func (g *Gap) SetRawMarkers(raw json.RawMessage) { g.rawMarkers = raw }

// gapJSON is the canonical OTIO wire shape for Gap.
type gapJSON struct {
	Schema      string              `json:"OTIO_SCHEMA"`
	Name        string              `json:"name"`
	Metadata    AnyDictionary       `json:"metadata"`
	SourceRange *opentime.TimeRange `json:"source_range"`
	Markers     json.RawMessage     `json:"markers,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (g *Gap) MarshalJSON() ([]byte, error) {
	return json.Marshal(&gapJSON{
		Schema:      GapSchema.String(),
		Name:        g.name,
		Metadata:    g.metadata,
		SourceRange: g.sourceRange,
		Markers:     g.rawMarkers,
	})
}

// UnmarshalJSON implements json.Unmarshaler for the canonical Gap shape.
// Legacy/tolerant shapes (including the flat {"duration": ...} form) are
// handled by codec.DecodeItem before this is ever reached.
func (g *Gap) UnmarshalJSON(data []byte) error {
	var j gapJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	g.name = j.Name
	g.metadata = j.Metadata
	if g.metadata == nil {
		g.metadata = AnyDictionary{}
	}
	g.sourceRange = j.SourceRange
	g.rawMarkers = j.Markers
	return nil
}
