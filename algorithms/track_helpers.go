// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package algorithms

import (
	"github.com/tellers-ai/tellers-timeline/model"
	"github.com/tellers-ai/tellers-timeline/opentime"
)

// setItemDuration rewrites item's source range to the given duration,
// keeping its existing start time and rate. Used by resize and split,
// the only two operations that change an item's length in place.
func setItemDuration(item model.Item, duration opentime.RationalTime) {
	switch it := item.(type) {
	case *model.Clip:
		r := it.SourceRange()
		start := opentime.NewRationalTime(0, duration.Rate())
		if r != nil {
			start = r.StartTime()
		}
		nr := opentime.NewTimeRange(start, duration)
		it.SetSourceRange(&nr)
	case *model.Gap:
		r := it.SourceRange()
		start := opentime.NewRationalTime(0, duration.Rate())
		if r != nil {
			start = r.StartTime()
		}
		nr := opentime.NewTimeRange(start, duration)
		it.SetSourceRange(&nr)
	}
}

// advanceItemStart shifts item's cosmetic source-range start time by
// delta, keeping its duration. Used by split to give the right-hand
// piece a start offset consistent with the left piece it was cut from.
func advanceItemStart(item model.Item, delta opentime.RationalTime) {
	switch it := item.(type) {
	case *model.Clip:
		r := it.SourceRange()
		if r == nil {
			return
		}
		nr := opentime.NewTimeRange(r.StartTime().Add(delta), r.Duration())
		it.SetSourceRange(&nr)
	case *model.Gap:
		r := it.SourceRange()
		if r == nil {
			return
		}
		nr := opentime.NewTimeRange(r.StartTime().Add(delta), r.Duration())
		it.SetSourceRange(&nr)
	}
}

// insertItemAt returns a new slice with item inserted at index.
func insertItemAt(items []model.Item, index int, item model.Item) []model.Item {
	out := make([]model.Item, 0, len(items)+1)
	out = append(out, items[:index]...)
	out = append(out, item)
	out = append(out, items[index:]...)
	return out
}

// clampIndex clamps index into [0, size].
func clampIndex(index, size int) int {
	if index < 0 {
		return 0
	}
	if index > size {
		return size
	}
	return index
}
