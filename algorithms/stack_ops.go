// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package algorithms

import (
	"github.com/tellers-ai/tellers-timeline/model"
	"github.com/tellers-ai/tellers-timeline/opentime"
)

// GetItem scans the stack's tracks in order, then each track's items in
// order, for an item whose metadata carries id. The first match wins;
// ids are expected to be unique but this is not enforced on load.
func GetItem(stack *model.Stack, id string) (trackIndex, itemIndex int, item model.Item, found bool) {
	for ti, tr := range stack.Tracks() {
		for ii, it := range tr.Children() {
			if model.GetID(it.Metadata()) == id {
				return ti, ii, it, true
			}
		}
	}
	return 0, 0, nil, false
}

// DeleteItem locates the item by id and deletes it from its owning
// track via DeleteClip. Gap targets are refused by DeleteClip, so this
// returns found=false for a Gap id exactly as it would for an unknown id.
func DeleteItem(stack *model.Stack, id string, replaceWithGap bool) (trackIndex int, item model.Item, found bool) {
	ti, ii, it, ok := GetItem(stack, id)
	if !ok {
		return 0, nil, false
	}
	if !DeleteClip(stack.Tracks()[ti], ii, replaceWithGap) {
		return 0, nil, false
	}
	return ti, it, true
}

// InsertItemAtTime inserts item into the track at destTrackIndex at
// time t. Returns false without modifying the stack if the index is out
// of range.
func InsertItemAtTime(stack *model.Stack, destTrackIndex int, t opentime.RationalTime, item model.Item, overlap OverlapPolicy, insert InsertPolicy) bool {
	tracks := stack.Tracks()
	if destTrackIndex < 0 || destTrackIndex >= len(tracks) {
		return false
	}
	_ = InsertAtTime(tracks[destTrackIndex], t, item, overlap, insert)
	return true
}

// InsertItemAtIndex resolves destTrackID to a track and inserts item at
// idx within it. Returns false if the track id does not resolve.
func InsertItemAtIndex(stack *model.Stack, destTrackID string, idx int, item model.Item, overlap OverlapPolicy) bool {
	tr, _, ok := stack.TrackByID(destTrackID)
	if !ok {
		return false
	}
	InsertAtIndex(tr, idx, item, overlap)
	return true
}

// MoveItemAtTime relocates the item identified by itemID to track
// destTrackID at time t. The move is delete-then-insert and is
// explicitly not atomic from the caller's standpoint: if the final
// InsertAtTime fails, the item has already been removed from its source
// track. This function resolves the destination track before deleting
// anything, so a bad destination id never loses data; a negative t is
// not checked up front, so InsertAtTime rejects it only after the item
// has been deleted from its source track.
func MoveItemAtTime(stack *model.Stack, itemID string, destTrackID string, t opentime.RationalTime, replaceWithGap bool, insert InsertPolicy, overlap OverlapPolicy) error {
	_, _, item, ok := GetItem(stack, itemID)
	if !ok {
		return &EditError{Kind: UnknownTrack, Msg: "item not found: " + itemID}
	}
	clone := item.Clone()

	destTrack, _, ok := stack.TrackByID(destTrackID)
	if !ok {
		return &EditError{Kind: UnknownTrack, Msg: "destination track not found: " + destTrackID}
	}

	if _, _, ok := DeleteItem(stack, itemID, replaceWithGap); !ok {
		return &EditError{Kind: NotAClip, Msg: "could not remove item: " + itemID}
	}

	return InsertAtTime(destTrack, t, clone, overlap, insert)
}

// MoveItemAtIndex relocates the item identified by itemID to index idx
// of track destTrackID. See MoveItemAtTime for the non-atomicity caveat.
func MoveItemAtIndex(stack *model.Stack, itemID string, destTrackID string, idx int, replaceWithGap bool, overlap OverlapPolicy) error {
	_, _, item, ok := GetItem(stack, itemID)
	if !ok {
		return &EditError{Kind: UnknownTrack, Msg: "item not found: " + itemID}
	}
	clone := item.Clone()

	destTrack, _, ok := stack.TrackByID(destTrackID)
	if !ok {
		return &EditError{Kind: UnknownTrack, Msg: "destination track not found: " + destTrackID}
	}

	if _, _, ok := DeleteItem(stack, itemID, replaceWithGap); !ok {
		return &EditError{Kind: NotAClip, Msg: "could not remove item: " + itemID}
	}

	InsertAtIndex(destTrack, idx, clone, overlap)
	return nil
}
