// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package model

import (
	"encoding/json"

	"github.com/tellers-ai/tellers-timeline/opentime"
)

// Clip references a span of external media. SourceRange is the span of
// the active media reference's own timeline this clip plays; its
// duration is what the track editor treats as the clip's length.
//
// MediaReferences holds every reference this clip might draw from
// (alternate proxies, multiple cut sources, ...), keyed by an
// application-chosen string; ActiveMediaReferenceKey selects which one
// is current. Both round-trip verbatim; this library never validates the
// active key against the map (ActiveMediaReference returns nil when the
// key does not resolve).
type Clip struct {
	name                    string
	sourceRange             *opentime.TimeRange
	mediaReferences         map[string]*MediaReference
	activeMediaReferenceKey string
	metadata                AnyDictionary

	// Effects, markers, and transitions attached to a clip are opaque to
	// this library (see Non-goals); they are captured verbatim here and
	// replayed unchanged on encode.
	rawEffects     json.RawMessage
	rawMarkers     json.RawMessage
	rawTransitions json.RawMessage
}

// NewClip creates a Clip with the given name and source range.
func NewClip(name string, sourceRange *opentime.TimeRange, metadata AnyDictionary) *Clip {
	if metadata == nil {
		metadata = AnyDictionary{}
	}
	return &Clip{
		name:            name,
		sourceRange:     sourceRange,
		mediaReferences: make(map[string]*MediaReference),
		metadata:        metadata,
	}
}

// Name returns the clip's display name.
func (c *Clip) Name() string { return c.name }

// SetName sets the clip's display name.
func (c *Clip) SetName(name string) { c.name = name }

// SourceRange returns the clip's source range.
func (c *Clip) SourceRange() *opentime.TimeRange { return c.sourceRange }

// SetSourceRange sets the clip's source range; this is how the track
// editor resizes a clip (see algorithms.ResizeItem).
func (c *Clip) SetSourceRange(r *opentime.TimeRange) { c.sourceRange = r }

// Duration returns the clip's source range duration, or a zero-value
// RationalTime if the clip has no source range.
func (c *Clip) Duration() opentime.RationalTime {
	if c.sourceRange == nil {
		return opentime.RationalTime{}
	}
	return c.sourceRange.Duration()
}

// Metadata returns the clip's metadata dictionary.
func (c *Clip) Metadata() AnyDictionary { return c.metadata }

// MediaReferences returns the clip's keyed set of media references.
func (c *Clip) MediaReferences() map[string]*MediaReference { return c.mediaReferences }

// SetMediaReference adds or replaces a keyed media reference.
func (c *Clip) SetMediaReference(key string, ref *MediaReference) {
	if c.mediaReferences == nil {
		c.mediaReferences = make(map[string]*MediaReference)
	}
	c.mediaReferences[key] = ref
}

// ActiveMediaReferenceKey returns the key selecting the active reference.
func (c *Clip) ActiveMediaReferenceKey() string { return c.activeMediaReferenceKey }

// SetActiveMediaReferenceKey sets the active reference key.
func (c *Clip) SetActiveMediaReferenceKey(key string) { c.activeMediaReferenceKey = key }

// ActiveMediaReference returns the currently selected media reference,
// or nil if ActiveMediaReferenceKey doesn't resolve.
func (c *Clip) ActiveMediaReference() *MediaReference {
	return c.mediaReferences[c.activeMediaReferenceKey]
}

// Clone returns a deep copy of the clip.
func (c *Clip) Clone() Item {
	var rangeCopy *opentime.TimeRange
	if c.sourceRange != nil {
		cp := *c.sourceRange
		rangeCopy = &cp
	}
	refs := make(map[string]*MediaReference, len(c.mediaReferences))
	for k, v := range c.mediaReferences {
		refs[k] = v.Clone()
	}
	return &Clip{
		name:                    c.name,
		sourceRange:             rangeCopy,
		mediaReferences:         refs,
		activeMediaReferenceKey: c.activeMediaReferenceKey,
		metadata:                CloneAnyDictionary(c.metadata),
		rawEffects:              c.rawEffects,
		rawMarkers:              c.rawMarkers,
		rawTransitions:          c.rawTransitions,
	}
}

// RawEffects returns the clip's effects list exactly as decoded, or nil
// if the document carried none.
func (c *Clip) RawEffects() json.RawMessage { return c.rawEffects }

// SetRawEffects stores an opaque effects list to be replayed on encode.
func (c *Clip) SetRawEffects(raw json.RawMessage) { c.rawEffects = raw }

// RawMarkers returns the clip's markers list exactly as decoded.
func (c *Clip) RawMarkers() json.RawMessage { return c.rawMarkers }

// SetRawMarkers stores an opaque markers list to be replayed on encode.
func (c *Clip) SetRawMarkers(raw json.RawMessage) { c.rawMarkers = raw }

// RawTransitions returns transition blobs adjacent to this clip in the
// decoded document, if the source format carried them inline.
func (c *Clip) RawTransitions() json.RawMessage { return c.rawTransitions }

// SetRawTransitions stores opaque transition data to be replayed on encode.
func (c *Clip) SetRawTransitions(raw json.RawMessage) { c.rawTransitions = raw }

// clipJSON is the canonical OTIO wire shape for Clip.
type clipJSON struct {
	Schema                  string                     `json:"OTIO_SCHEMA"`
	Name                    string                     `json:"name"`
	Metadata                AnyDictionary              `json:"metadata"`
	SourceRange             *opentime.TimeRange        `json:"source_range"`
	MediaReferences         map[string]*MediaReference `json:"media_references,omitempty"`
	ActiveMediaReferenceKey string                     `json:"active_media_reference_key,omitempty"`
	Effects                 json.RawMessage            `json:"effects,omitempty"`
	Markers                 json.RawMessage            `json:"markers,omitempty"`
	Transitions             json.RawMessage            `json:"transitions,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (c *Clip) MarshalJSON() ([]byte, error) {
	return json.Marshal(&clipJSON{
		Schema:                  ClipSchema.String(),
		Name:                    c.name,
		Metadata:                c.metadata,
		SourceRange:             c.sourceRange,
		MediaReferences:         c.mediaReferences,
		ActiveMediaReferenceKey: c.activeMediaReferenceKey,
		Effects:                 c.rawEffects,
		Markers:                 c.rawMarkers,
		Transitions:             c.rawTransitions,
	})
}

// UnmarshalJSON implements json.Unmarshaler for the canonical Clip shape.
// Legacy/tolerant shapes are handled by codec.DecodeItem before this is
// ever reached.
func (c *Clip) UnmarshalJSON(data []byte) error {
	var j clipJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	c.name = j.Name
	c.metadata = j.Metadata
	if c.metadata == nil {
		c.metadata = AnyDictionary{}
	}
	c.sourceRange = j.SourceRange
	c.mediaReferences = j.MediaReferences
	if c.mediaReferences == nil {
		c.mediaReferences = make(map[string]*MediaReference)
	}
	c.activeMediaReferenceKey = j.ActiveMediaReferenceKey
	c.rawEffects = j.Effects
	c.rawMarkers = j.Markers
	c.rawTransitions = j.Transitions
	return nil
}
