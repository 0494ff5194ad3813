// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package model

import (
	"encoding/json"

	"github.com/tellers-ai/tellers-timeline/opentime"
)

// Stack is an ordered collection of Tracks composited together. Unlike a
// Track's children, a Stack's tracks all start at time zero and overlap
// by design — they are parallel video/audio layers, not a sequence.
type Stack struct {
	name     string
	tracks   []*Track
	metadata AnyDictionary
}

// NewStack creates an empty Stack.
func NewStack(name string, metadata AnyDictionary) *Stack {
	if metadata == nil {
		metadata = AnyDictionary{}
	}
	return &Stack{name: name, metadata: metadata}
}

// Name returns the stack's display name.
func (s *Stack) Name() string { return s.name }

// SetName sets the stack's display name.
func (s *Stack) SetName(name string) { s.name = name }

// Metadata returns the stack's metadata dictionary.
func (s *Stack) Metadata() AnyDictionary { return s.metadata }

// Tracks returns the stack's tracks in order.
func (s *Stack) Tracks() []*Track { return s.tracks }

// SetTracks replaces the stack's track list wholesale.
func (s *Stack) SetTracks(tracks []*Track) { s.tracks = tracks }

// AppendTrack appends a track to the stack.
func (s *Stack) AppendTrack(t *Track) { s.tracks = append(s.tracks, t) }

// RemoveTrackAt removes the track at index, if in range.
func (s *Stack) RemoveTrackAt(index int) bool {
	if index < 0 || index >= len(s.tracks) {
		return false
	}
	s.tracks = append(s.tracks[:index], s.tracks[index+1:]...)
	return true
}

// TrackByID returns the track whose metadata carries the given
// identifier, and true, or (nil, false).
func (s *Stack) TrackByID(id string) (*Track, int, bool) {
	for i, tr := range s.tracks {
		if GetID(tr.Metadata()) == id {
			return tr, i, true
		}
	}
	return nil, 0, false
}

// Duration returns the longest of the stack's track durations, since
// tracks in a stack are composited in parallel rather than concatenated.
func (s *Stack) Duration() opentime.RationalTime {
	var longest opentime.RationalTime
	for i, tr := range s.tracks {
		d := tr.Duration()
		if i == 0 || d.ToSeconds() > longest.ToSeconds() {
			longest = d
		}
	}
	return longest
}

// Clone returns a deep copy of the stack.
func (s *Stack) Clone() *Stack {
	tracks := make([]*Track, len(s.tracks))
	for i, tr := range s.tracks {
		tracks[i] = tr.Clone()
	}
	return &Stack{
		name:     s.name,
		tracks:   tracks,
		metadata: CloneAnyDictionary(s.metadata),
	}
}

// stackJSON is the canonical OTIO wire shape for Stack.
type stackJSON struct {
	Schema   string        `json:"OTIO_SCHEMA"`
	Name     string        `json:"name"`
	Metadata AnyDictionary `json:"metadata"`
	Children []*Track      `json:"children"`
}

// MarshalJSON implements json.Marshaler.
func (s *Stack) MarshalJSON() ([]byte, error) {
	return json.Marshal(&stackJSON{
		Schema:   StackSchema.String(),
		Name:     s.name,
		Metadata: s.metadata,
		Children: s.tracks,
	})
}
