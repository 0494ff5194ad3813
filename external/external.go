// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package external is the binding-facing surface: flat functions over
// primitive and JSON-string arguments rather than the object graph, the
// shape a cgo or wasm generator wants. It owns no state: ParseTimeline
// and ToJSON convert whole documents with codec, calls that take an item
// as JSON decode it with codec, and every editing call delegates to
// model/algorithms on the timeline it is given. Policy values are
// case-insensitive strings here (resolved by
// algorithms.OverlapPolicyFromString / InsertPolicyFromString); no
// editing function elsewhere in this module takes a policy as a string.
package external

import (
	"github.com/tellers-ai/tellers-timeline/algorithms"
	"github.com/tellers-ai/tellers-timeline/codec"
	"github.com/tellers-ai/tellers-timeline/model"
	"github.com/tellers-ai/tellers-timeline/opentime"
)

// ParseTimeline decodes an OTIO JSON document.
func ParseTimeline(jsonDoc []byte) (*model.Timeline, error) {
	return codec.DecodeTimeline(jsonDoc)
}

// ToJSON serializes a timeline. precision < 0 means "no rounding".
func ToJSON(timeline *model.Timeline, precision int, pretty bool) ([]byte, error) {
	opts := codec.EncodeOptions{Pretty: pretty}
	if precision >= 0 {
		opts.Precision = &precision
	}
	return codec.EncodeTimeline(timeline, opts)
}

// Validate returns every negative-duration finding in the timeline, as
// plain structs rather than algorithms.ValidationError so a binding
// layer need not depend on the algorithms package's error type.
func Validate(timeline *model.Timeline) []ValidationFinding {
	errs := algorithms.Validate(timeline)
	out := make([]ValidationFinding, len(errs))
	for i, e := range errs {
		out[i] = ValidationFinding{
			Kind:       e.Kind.String(),
			TrackIndex: e.TrackIndex,
			ItemIndex:  e.ItemIndex,
			ItemID:     e.ItemID,
		}
	}
	return out
}

// ValidationFinding is Validate's binding-facing result shape.
type ValidationFinding struct {
	Kind       string `json:"kind"`
	TrackIndex int    `json:"track_index"`
	ItemIndex  int    `json:"item_index"`
	ItemID     string `json:"item_id"`
}

// Sanitize repairs the timeline's tracks in place (see model.Timeline.Sanitize).
func Sanitize(timeline *model.Timeline) {
	timeline.Sanitize()
}

// AddTrack inserts a new track of the given kind ("video", "audio", or
// "other", case-insensitive) at insertionIndex, or appends it if
// insertionIndex is negative or beyond the current track count.
func AddTrack(timeline *model.Timeline, name, kind string, insertionIndex int) {
	algorithms.AddTrack(timeline, model.NewTrack(name, trackKindFromString(kind), nil), insertionIndex)
}

// DeleteTrack removes the track identified by id. Returns false if no
// track matched.
func DeleteTrack(timeline *model.Timeline, id string) bool {
	_, ok := algorithms.DeleteTrack(timeline, id)
	return ok
}

// InsertClipAtTime decodes clipJSON as a single Clip document and
// inserts it into the track at destTrackIndex at time t (seconds),
// under the named overlap/insert policies.
func InsertClipAtTime(timeline *model.Timeline, destTrackIndex int, t float64, rate float64, clipJSON []byte, overlap, insert string) error {
	item, err := decodeItem(clipJSON)
	if err != nil {
		return err
	}
	ok := algorithms.InsertItemAtTime(
		timeline.Tracks(), destTrackIndex,
		opentime.NewRationalTime(t, rate), item,
		algorithms.OverlapPolicyFromString(overlap),
		algorithms.InsertPolicyFromString(insert),
	)
	if !ok {
		return &algorithms.EditError{Kind: algorithms.UnknownTrack, Msg: "track index out of range"}
	}
	return nil
}

// InsertClipAtIndex is InsertClipAtTime's index-addressed counterpart,
// targeting a track by id instead of position.
func InsertClipAtIndex(timeline *model.Timeline, destTrackID string, index int, clipJSON []byte, overlap string) error {
	item, err := decodeItem(clipJSON)
	if err != nil {
		return err
	}
	if !algorithms.InsertItemAtIndex(timeline.Tracks(), destTrackID, index, item, algorithms.OverlapPolicyFromString(overlap)) {
		return &algorithms.EditError{Kind: algorithms.UnknownTrack, Msg: "track id not found: " + destTrackID}
	}
	return nil
}

// DeleteItem removes the item identified by id, optionally leaving a
// Gap of the same duration in its place.
func DeleteItem(timeline *model.Timeline, itemID string, replaceWithGap bool) bool {
	_, _, ok := algorithms.DeleteItem(timeline.Tracks(), itemID, replaceWithGap)
	return ok
}

// MoveItemAtTime relocates the item identified by itemID to destTrackID
// at time t (seconds, at rate).
func MoveItemAtTime(timeline *model.Timeline, itemID, destTrackID string, t, rate float64, replaceWithGap bool, insert, overlap string) error {
	return algorithms.MoveItemAtTime(
		timeline.Tracks(), itemID, destTrackID,
		opentime.NewRationalTime(t, rate), replaceWithGap,
		algorithms.InsertPolicyFromString(insert),
		algorithms.OverlapPolicyFromString(overlap),
	)
}

// MoveItemAtIndex relocates the item identified by itemID to index idx
// of destTrackID.
func MoveItemAtIndex(timeline *model.Timeline, itemID, destTrackID string, idx int, replaceWithGap bool, overlap string) error {
	return algorithms.MoveItemAtIndex(timeline.Tracks(), itemID, destTrackID, idx, replaceWithGap, algorithms.OverlapPolicyFromString(overlap))
}

// ResizeItem changes the duration of the item at index i within the
// track identified by trackID and moves it to newStart/newDuration
// (seconds, at rate). Returns false if trackID or i doesn't resolve.
func ResizeItem(timeline *model.Timeline, trackID string, i int, newStart, newDuration, rate float64, overlap string, clampToMedia bool) bool {
	track, _, ok := timeline.Tracks().TrackByID(trackID)
	if !ok {
		return false
	}
	return algorithms.ResizeItem(
		track, i,
		opentime.NewRationalTime(newStart, rate),
		opentime.NewRationalTime(newDuration, rate),
		algorithms.OverlapPolicyFromString(overlap),
		clampToMedia,
	)
}

// SplitAtTime splits the item at time t (seconds, at rate) in the track
// identified by trackID. A no-op if trackID doesn't resolve or t falls
// on an existing boundary.
func SplitAtTime(timeline *model.Timeline, trackID string, t, rate float64) bool {
	track, _, ok := timeline.Tracks().TrackByID(trackID)
	if !ok {
		return false
	}
	algorithms.SplitAtTime(track, opentime.NewRationalTime(t, rate))
	return true
}

func trackKindFromString(kind string) model.TrackKind {
	switch lowerASCII(kind) {
	case "audio":
		return model.TrackKindAudio
	case "other":
		return model.TrackKindOther
	default:
		return model.TrackKindVideo
	}
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func decodeItem(raw []byte) (model.Item, error) {
	return codec.DecodeItem(raw)
}
