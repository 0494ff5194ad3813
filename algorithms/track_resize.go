// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package algorithms

import (
	"github.com/tellers-ai/tellers-timeline/model"
	"github.com/tellers-ai/tellers-timeline/opentime"
)

// ResizeItem changes the duration of the item at index i and moves it
// to newStart, defined as a remove-then-reinsert: resize is not a
// distinct primitive, it is split+insert wearing a different name.
//
// When clampToMedia is set and the item is a Clip whose active media
// reference has a known available range, the new duration is capped to
// however much media remains past the clip's current in-point, so a
// resize can never stretch a clip past media that doesn't exist.
//
// Returns false without modifying the track if i is out of range, if
// newStart is negative, or if the reinsertion at newStart otherwise
// fails — in every case the item stays where it was.
func ResizeItem(track *model.Track, i int, newStart opentime.RationalTime, newDuration opentime.RationalTime, overlap OverlapPolicy, clampToMedia bool) bool {
	if i < 0 || i >= track.Len() {
		return false
	}
	if newStart.ToSeconds() < 0 {
		return false
	}

	children := track.Children()
	item := children[i]
	rest := make([]model.Item, 0, len(children)-1)
	rest = append(rest, children[:i]...)
	rest = append(rest, children[i+1:]...)
	track.SetChildren(rest)

	effective := newDuration.Value()
	if effective < 0 {
		effective = 0
	}

	if clampToMedia {
		if clip, ok := item.(*model.Clip); ok {
			if ref := clip.ActiveMediaReference(); ref != nil && ref.AvailableRange() != nil {
				sourceStart := 0.0
				if clip.SourceRange() != nil {
					sourceStart = clip.SourceRange().StartTime().Value()
				}
				remaining := ref.AvailableRange().Duration().Value() - sourceStart
				if remaining < 0 {
					remaining = 0
				}
				if effective > remaining {
					effective = remaining
				}
			}
		}
	}

	setItemDuration(item, opentime.NewRationalTime(effective, newDuration.Rate()))

	if err := InsertAtTime(track, newStart, item, overlap, SplitAndInsert); err != nil {
		// Reinsertion failed: put the item back where it came from rather
		// than leaving it discarded off the track.
		track.SetChildren(insertItemAt(rest, i, item))
		return false
	}
	track.Sanitize()
	return true
}

// ReplaceItemByIndex swaps the item at index i for item, bounds-checked.
// Returns false without modifying the track if i is out of range.
func ReplaceItemByIndex(track *model.Track, i int, item model.Item) bool {
	if i < 0 || i >= track.Len() {
		return false
	}
	children := track.Children()
	children[i] = item
	track.SetChildren(children)
	return true
}

// DeleteClip removes the Clip at index i. It refuses to operate on a
// Gap (use ReplaceItemByIndex or rebuild the sequence for that).
//
// When replaceWithGap is true and the removed clip had positive
// duration, a Gap of that duration takes its place and the track is
// sanitized afterward, merging it into any Gap it now sits beside.
//
// Returns false without modifying the track if i is out of range or the
// item at i is not a Clip.
func DeleteClip(track *model.Track, i int, replaceWithGap bool) bool {
	if i < 0 || i >= track.Len() {
		return false
	}
	clip, ok := track.ChildAt(i).(*model.Clip)
	if !ok {
		return false
	}

	children := track.Children()
	rest := make([]model.Item, 0, len(children))
	rest = append(rest, children[:i]...)
	rest = append(rest, children[i+1:]...)

	duration := clip.Duration()
	if replaceWithGap && duration.Value() > 0 {
		gap := model.NewGap(duration.Value(), duration.Rate(), nil)
		rest = insertItemAt(rest, i, gap)
	}

	track.SetChildren(rest)
	track.Sanitize()
	return true
}
