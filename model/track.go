// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package model

import (
	"encoding/json"

	"github.com/tellers-ai/tellers-timeline/opentime"
)

// TrackKind distinguishes video, audio and other tracks. It is
// carried for display/authoring purposes only; the editing algebra
// treats both kinds identically.
type TrackKind string

const (
	// TrackKindVideo marks a track carrying video clips.
	TrackKindVideo TrackKind = "Video"
	// TrackKindAudio marks a track carrying audio clips.
	TrackKindAudio TrackKind = "Audio"
	// TrackKindOther marks a track carrying neither video nor audio.
	TrackKindOther TrackKind = "Other"
)

// Track is an ordered, gapless sequence of Items. No item stores its own
// position: an item's start time is always the sum of the durations of
// the items before it in Children. This is the single invariant every
// editing operation in package algorithms must preserve.
type Track struct {
	name     string
	kind     TrackKind
	children []Item
	metadata AnyDictionary
}

// NewTrack creates an empty Track of the given kind.
func NewTrack(name string, kind TrackKind, metadata AnyDictionary) *Track {
	if metadata == nil {
		metadata = AnyDictionary{}
	}
	if kind == "" {
		kind = TrackKindVideo
	}
	return &Track{name: name, kind: kind, metadata: metadata}
}

// Name returns the track's display name.
func (t *Track) Name() string { return t.name }

// SetName sets the track's display name.
func (t *Track) SetName(name string) { t.name = name }

// Kind returns the track's kind (Video, Audio or Other).
func (t *Track) Kind() TrackKind { return t.kind }

// SetKind sets the track's kind.
func (t *Track) SetKind(kind TrackKind) { t.kind = kind }

// Metadata returns the track's metadata dictionary.
func (t *Track) Metadata() AnyDictionary { return t.metadata }

// Children returns the track's items in order. The returned slice is
// the track's own backing storage; callers that need to mutate the
// sequence should go through the algorithms package rather than this
// slice directly.
func (t *Track) Children() []Item { return t.children }

// Len returns the number of items in the track.
func (t *Track) Len() int { return len(t.children) }

// ChildAt returns the item at index, or nil if out of range.
func (t *Track) ChildAt(index int) Item {
	if index < 0 || index >= len(t.children) {
		return nil
	}
	return t.children[index]
}

// SetChildren replaces the track's item sequence wholesale. Used by the
// algorithms package after computing a new sequence; callers outside
// that package should prefer the editing operations.
func (t *Track) SetChildren(items []Item) { t.children = items }

// Rate returns the track's native rate, taken from its first item with
// a non-zero-rate duration, or the given fallback if the track is empty
// or every item has an unset/zero rate.
func (t *Track) Rate(fallback float64) float64 {
	for _, c := range t.children {
		if r := c.Duration().Rate(); r > 0 {
			return r
		}
	}
	return fallback
}

// Duration returns the sum of the track's item durations, at the
// track's rate (see Rate).
func (t *Track) Duration() opentime.RationalTime {
	rate := t.Rate(1)
	total := opentime.NewRationalTime(0, rate)
	for _, c := range t.children {
		total = total.Add(c.Duration())
	}
	return total
}

// StartTimeOfItem returns the start time of the item at index, derived
// by summing the durations of every item before it.
func (t *Track) StartTimeOfItem(index int) opentime.RationalTime {
	rate := t.Rate(1)
	start := opentime.NewRationalTime(0, rate)
	for i := 0; i < index && i < len(t.children); i++ {
		start = start.Add(t.children[i].Duration())
	}
	return start
}

// RangeOfItem returns the time range (start, duration) of the item at
// index within the track.
func (t *Track) RangeOfItem(index int) opentime.TimeRange {
	if index < 0 || index >= len(t.children) {
		return opentime.TimeRange{}
	}
	return opentime.NewTimeRange(t.StartTimeOfItem(index), t.children[index].Duration())
}

// IndexOfItemAtTime returns the index of the item whose range contains
// time (left-closed, right-open), and true, or (0, false) if time is
// before the track start or at/after the track's end. Times are compared
// by value. Epsilon is the tolerance on an item's start: a time up to
// epsilon before an item's start counts as that start.
func (t *Track) IndexOfItemAtTime(time opentime.RationalTime, epsilon float64) (int, bool) {
	rate := t.Rate(time.Rate())
	cursor := opentime.NewRationalTime(0, rate)
	target := time.Value()
	for i, c := range t.children {
		end := cursor.Add(c.Duration())
		if target >= cursor.Value()-epsilon && target < end.Value() {
			return i, true
		}
		cursor = end
	}
	return 0, false
}

// ItemAtTime returns the item containing time, and true, or (nil, false).
func (t *Track) ItemAtTime(time opentime.RationalTime, epsilon float64) (Item, bool) {
	idx, ok := t.IndexOfItemAtTime(time, epsilon)
	if !ok {
		return nil, false
	}
	return t.children[idx], true
}

// IndexOfItemByID returns the index of the item (Clip or Gap) whose
// metadata carries the given identifier, and true, or (0, false).
func (t *Track) IndexOfItemByID(id string) (int, bool) {
	for i, c := range t.children {
		if GetID(c.Metadata()) == id {
			return i, true
		}
	}
	return 0, false
}

// Clone returns a deep copy of the track.
func (t *Track) Clone() *Track {
	children := make([]Item, len(t.children))
	for i, c := range t.children {
		children[i] = c.Clone()
	}
	return &Track{
		name:     t.name,
		kind:     t.kind,
		children: children,
		metadata: CloneAnyDictionary(t.metadata),
	}
}

// trackJSON is the canonical OTIO wire shape for Track.
type trackJSON struct {
	Schema   string            `json:"OTIO_SCHEMA"`
	Name     string            `json:"name"`
	Kind     TrackKind         `json:"kind"`
	Metadata AnyDictionary     `json:"metadata"`
	Children []json.RawMessage `json:"children"`
}

// MarshalJSON implements json.Marshaler. Children are marshaled through
// each Item's own MarshalJSON so Clip/Gap keep their own schema tags.
func (t *Track) MarshalJSON() ([]byte, error) {
	children := make([]json.RawMessage, len(t.children))
	for i, c := range t.children {
		raw, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		children[i] = raw
	}
	kind := t.kind
	if kind == "" {
		kind = TrackKindVideo
	}
	return json.Marshal(&trackJSON{
		Schema:   TrackSchema.String(),
		Name:     t.name,
		Kind:     kind,
		Metadata: t.metadata,
		Children: children,
	})
}
