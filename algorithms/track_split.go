// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package algorithms

import (
	"github.com/tellers-ai/tellers-timeline/model"
	"github.com/tellers-ai/tellers-timeline/opentime"
)

// SplitAtTime splits the item containing t into two items at that
// point. A split at or within Epsilon of either of the item's own
// boundaries is a no-op: there is no new boundary to create. The right
// piece always receives a fresh id; the left piece keeps the original
// one, since it is, identity-wise, a continuation of the same item.
func SplitAtTime(track *model.Track, t opentime.RationalTime) {
	idx, ok := track.IndexOfItemAtTime(t, Epsilon)
	if !ok {
		return
	}

	start := track.StartTimeOfItem(idx)
	delta := t.Value() - start.Value()
	duration := track.ChildAt(idx).Duration().Value()
	if delta <= Epsilon || delta >= duration-Epsilon {
		return
	}

	original := track.ChildAt(idx)
	rate := original.Duration().Rate()
	deltaTime := opentime.NewRationalTime(delta, rate)
	remainder := opentime.NewRationalTime(duration-delta, rate)

	left := original.Clone()
	setItemDuration(left, deltaTime)

	right := original.Clone()
	setItemDuration(right, remainder)
	advanceItemStart(right, deltaTime)
	model.SetID(right.Metadata(), model.GenerateID())

	children := track.Children()
	out := make([]model.Item, 0, len(children)+1)
	out = append(out, children[:idx]...)
	out = append(out, left, right)
	out = append(out, children[idx+1:]...)
	track.SetChildren(out)
}
