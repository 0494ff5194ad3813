// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package algorithms

import "github.com/tellers-ai/tellers-timeline/model"

// AddTrack inserts track into timeline's stack at insertionIndex.
// A negative index, or one at or beyond the current track count,
// appends instead of failing.
func AddTrack(timeline *model.Timeline, track *model.Track, insertionIndex int) {
	tracks := timeline.Tracks().Tracks()
	if insertionIndex < 0 || insertionIndex >= len(tracks) {
		timeline.Tracks().AppendTrack(track)
		return
	}
	out := make([]*model.Track, 0, len(tracks)+1)
	out = append(out, tracks[:insertionIndex]...)
	out = append(out, track)
	out = append(out, tracks[insertionIndex:]...)
	timeline.Tracks().SetTracks(out)
}

// DeleteTrack removes the track identified by id from timeline's stack,
// returning it and true, or (nil, false) if no track matched.
func DeleteTrack(timeline *model.Timeline, id string) (*model.Track, bool) {
	tr, idx, ok := timeline.Tracks().TrackByID(id)
	if !ok {
		return nil, false
	}
	timeline.Tracks().RemoveTrackAt(idx)
	return tr, true
}
