// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package model

import (
	"encoding/json"

	"github.com/tellers-ai/tellers-timeline/opentime"
)

// Timeline is the top-level document: a name, an optional global start
// time, a Stack of tracks, and metadata. It is a thin façade — nearly
// every operation on it delegates to its Stack (see package algorithms'
// timeline_ops.go for the delegating editing surface).
type Timeline struct {
	name            string
	globalStartTime *opentime.RationalTime
	tracks          *Stack
	metadata        AnyDictionary
}

// NewTimeline creates a Timeline with an empty Stack.
func NewTimeline(name string, metadata AnyDictionary) *Timeline {
	if metadata == nil {
		metadata = AnyDictionary{}
	}
	return &Timeline{name: name, tracks: NewStack("tracks", nil), metadata: metadata}
}

// Name returns the timeline's display name.
func (t *Timeline) Name() string { return t.name }

// SetName sets the timeline's display name.
func (t *Timeline) SetName(name string) { t.name = name }

// GlobalStartTime returns the timeline's global start time, or nil.
func (t *Timeline) GlobalStartTime() *opentime.RationalTime { return t.globalStartTime }

// SetGlobalStartTime sets the timeline's global start time.
func (t *Timeline) SetGlobalStartTime(rt *opentime.RationalTime) { t.globalStartTime = rt }

// Tracks returns the timeline's Stack.
func (t *Timeline) Tracks() *Stack { return t.tracks }

// SetTracks replaces the timeline's Stack.
func (t *Timeline) SetTracks(s *Stack) { t.tracks = s }

// Metadata returns the timeline's metadata dictionary.
func (t *Timeline) Metadata() AnyDictionary { return t.metadata }

// Duration returns the duration of the timeline's Stack.
func (t *Timeline) Duration() opentime.RationalTime {
	if t.tracks == nil {
		return opentime.RationalTime{}
	}
	return t.tracks.Duration()
}

// Clone returns a deep copy of the timeline.
func (t *Timeline) Clone() *Timeline {
	var start *opentime.RationalTime
	if t.globalStartTime != nil {
		cp := *t.globalStartTime
		start = &cp
	}
	var tracks *Stack
	if t.tracks != nil {
		tracks = t.tracks.Clone()
	}
	return &Timeline{
		name:            t.name,
		globalStartTime: start,
		tracks:          tracks,
		metadata:        CloneAnyDictionary(t.metadata),
	}
}

// timelineJSON is the canonical OTIO wire shape for Timeline.
type timelineJSON struct {
	Schema          string                 `json:"OTIO_SCHEMA"`
	Name            string                 `json:"name"`
	GlobalStartTime *opentime.RationalTime `json:"global_start_time,omitempty"`
	Tracks          *Stack                 `json:"tracks"`
	Metadata        AnyDictionary          `json:"metadata"`
}

// MarshalJSON implements json.Marshaler.
func (t *Timeline) MarshalJSON() ([]byte, error) {
	return json.Marshal(&timelineJSON{
		Schema:          TimelineSchema.String(),
		Name:            t.name,
		GlobalStartTime: t.globalStartTime,
		Tracks:          t.tracks,
		Metadata:        t.metadata,
	})
}
