// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package model

import "github.com/tellers-ai/tellers-timeline/opentime"

// Item is either a Clip or a Gap: the two kinds of thing a Track holds.
// An item never knows its own position in the track — that is always
// derived by summing the durations of the items before it (see
// Track.StartTimeOfItem) — so Item exposes only what an editing
// operation needs: a duration and identity-bearing metadata.
type Item interface {
	// Duration returns the item's length along the track's timeline.
	Duration() opentime.RationalTime
	// Name returns the item's display name.
	Name() string
	// Metadata returns the item's metadata dictionary.
	Metadata() AnyDictionary
	// Clone returns a deep copy of the item.
	Clone() Item
}

var (
	_ Item = (*Clip)(nil)
	_ Item = (*Gap)(nil)
)
