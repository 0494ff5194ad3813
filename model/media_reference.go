// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package model

import (
	"encoding/json"

	"github.com/tellers-ai/tellers-timeline/opentime"
)

// ExternalReferenceSchema is the OTIO schema identifier this library emits
// for media references. Media probing and alternate reference kinds
// (image sequences, generators, missing references) are out of scope:
// the codec reads every media reference as an external reference,
// whatever its OTIO_SCHEMA, and re-emits it with this schema.
var ExternalReferenceSchema = Schema{Name: "ExternalReference", Version: 1}

// MediaReference points at external media a Clip draws frames from.
// AvailableImageBounds is carried opaquely: this library never inspects
// or validates it, only round-trips whatever shape the JSON held.
type MediaReference struct {
	name                 string
	targetURL            string
	availableRange       *opentime.TimeRange
	availableImageBounds any
	metadata             AnyDictionary
}

// NewMediaReference creates a MediaReference.
func NewMediaReference(name, targetURL string, availableRange *opentime.TimeRange, metadata AnyDictionary) *MediaReference {
	if metadata == nil {
		metadata = AnyDictionary{}
	}
	migrateMediaFields(metadata)
	return &MediaReference{
		name:           name,
		targetURL:      targetURL,
		availableRange: availableRange,
		metadata:       metadata,
	}
}

// Name returns the reference's display name.
func (m *MediaReference) Name() string { return m.name }

// SetName sets the reference's display name.
func (m *MediaReference) SetName(name string) { m.name = name }

// TargetURL returns the URL (or path) the reference points at.
func (m *MediaReference) TargetURL() string { return m.targetURL }

// SetTargetURL sets the URL the reference points at.
func (m *MediaReference) SetTargetURL(url string) { m.targetURL = url }

// AvailableRange returns the range of media actually available at
// TargetURL, or nil if unknown.
func (m *MediaReference) AvailableRange() *opentime.TimeRange { return m.availableRange }

// SetAvailableRange sets the available range.
func (m *MediaReference) SetAvailableRange(r *opentime.TimeRange) { m.availableRange = r }

// AvailableImageBounds returns the opaque available-image-bounds value.
func (m *MediaReference) AvailableImageBounds() any { return m.availableImageBounds }

// SetAvailableImageBounds sets the opaque available-image-bounds value.
func (m *MediaReference) SetAvailableImageBounds(bounds any) { m.availableImageBounds = bounds }

// Metadata returns the reference's metadata dictionary.
func (m *MediaReference) Metadata() AnyDictionary { return m.metadata }

// IsMissingReference returns true when the reference has no target URL.
func (m *MediaReference) IsMissingReference() bool { return m.targetURL == "" }

// Clone returns a deep copy of the reference.
func (m *MediaReference) Clone() *MediaReference {
	var rangeCopy *opentime.TimeRange
	if m.availableRange != nil {
		c := *m.availableRange
		rangeCopy = &c
	}
	return &MediaReference{
		name:                 m.name,
		targetURL:            m.targetURL,
		availableRange:       rangeCopy,
		availableImageBounds: m.availableImageBounds,
		metadata:             CloneAnyDictionary(m.metadata),
	}
}

// mediaReferenceJSON is the canonical OTIO wire shape for MediaReference.
type mediaReferenceJSON struct {
	Schema               string              `json:"OTIO_SCHEMA"`
	Name                 string              `json:"name"`
	Metadata             AnyDictionary       `json:"metadata"`
	AvailableRange       *opentime.TimeRange `json:"available_range"`
	AvailableImageBounds any                 `json:"available_image_bounds,omitempty"`
	TargetURL            string              `json:"target_url"`
}

// MarshalJSON implements json.Marshaler.
func (m *MediaReference) MarshalJSON() ([]byte, error) {
	return json.Marshal(&mediaReferenceJSON{
		Schema:               ExternalReferenceSchema.String(),
		Name:                 m.name,
		Metadata:             m.metadata,
		AvailableRange:       m.availableRange,
		AvailableImageBounds: m.availableImageBounds,
		TargetURL:            m.targetURL,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *MediaReference) UnmarshalJSON(data []byte) error {
	var j mediaReferenceJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	m.name = j.Name
	m.metadata = j.Metadata
	if m.metadata == nil {
		m.metadata = AnyDictionary{}
	}
	migrateMediaFields(m.metadata)
	m.availableRange = j.AvailableRange
	m.availableImageBounds = j.AvailableImageBounds
	m.targetURL = j.TargetURL
	return nil
}
