// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package algorithms

import (
	"math"

	"github.com/tellers-ai/tellers-timeline/model"
	"github.com/tellers-ai/tellers-timeline/opentime"
)

// Append pushes item onto the end of track. No policy interaction: an
// append can never overlap anything, since it always lands after the
// current last item.
func Append(track *model.Track, item model.Item) {
	track.SetChildren(append(track.Children(), item))
}

// InsertAtIndex inserts item at index under the given overlap policy.
// index is clamped to [0, track.Len()].
//
// Under Push, this is a plain list insertion. Under Override, the
// inserted item displaces whatever currently occupies
// [start_time_of_item(index), start_time_of_item(index)+item.Duration()),
// splitting at either boundary as needed so no item is left partially
// overlapping the inserted span.
func InsertAtIndex(track *model.Track, index int, item model.Item, overlap OverlapPolicy) {
	index = clampIndex(index, track.Len())

	if overlap == Push {
		track.SetChildren(insertItemAt(track.Children(), index, item))
		return
	}

	duration := item.Duration().Value()
	if duration <= Epsilon {
		track.SetChildren(insertItemAt(track.Children(), index, item))
		track.Sanitize()
		return
	}

	insertStart := track.StartTimeOfItem(index).Value()
	insertEnd := insertStart + duration
	rate := item.Duration().Rate()

	adjustedIndex := index
	if at, ok := track.IndexOfItemAtTime(opentime.NewRationalTime(insertStart, rate), Epsilon); ok {
		itemStart := track.StartTimeOfItem(at).Value()
		if math.Abs(insertStart-itemStart) > Epsilon {
			SplitAtTime(track, opentime.NewRationalTime(insertStart, rate))
		}
	}
	if after, ok := track.IndexOfItemAtTime(opentime.NewRationalTime(insertStart, rate), Epsilon); ok {
		// The item now starting exactly at insertStart (original or the
		// freshly split right piece) is where the new item belongs.
		adjustedIndex = after
	}

	if at, ok := track.IndexOfItemAtTime(opentime.NewRationalTime(insertEnd, rate), Epsilon); ok {
		itemStart := track.StartTimeOfItem(at).Value()
		if math.Abs(insertEnd-itemStart) > Epsilon {
			SplitAtTime(track, opentime.NewRationalTime(insertEnd, rate))
		}
	}

	children := track.Children()
	kept := make([]model.Item, 0, len(children)+1)
	kept = append(kept, children[:adjustedIndex]...)
	i := adjustedIndex
	for ; i < len(children); i++ {
		itemStart := track.StartTimeOfItem(i).Value()
		if itemStart < insertEnd-Epsilon {
			continue
		}
		break
	}
	kept = append(kept, item)
	kept = append(kept, children[i:]...)
	track.SetChildren(kept)
	track.Sanitize()
}

// InsertAtTime inserts item at timeline time t under the given overlap
// and insert policies.
//
// A negative t is rejected with an InvalidTime EditError: an earlier
// implementation computed an "effective time" by negating t against the
// track's total duration in that case, which does not correspond to any
// coherent placement and is not reproduced here (see the design notes
// on negative insertion times).
//
// If t is beyond the track's end, the gap between the track's current
// end and t is filled with a Gap before item is appended.
func InsertAtTime(track *model.Track, t opentime.RationalTime, item model.Item, overlap OverlapPolicy, insert InsertPolicy) error {
	if t.ToSeconds() < 0 {
		return &EditError{Kind: InvalidTime, Msg: "negative insertion time"}
	}

	total := track.Duration()
	if t.Value() > total.Value()+Epsilon {
		gapDuration := opentime.NewRationalTime(t.Value()-total.Value(), t.Rate())
		Append(track, model.NewGap(gapDuration.Value(), gapDuration.Rate(), nil))
		Append(track, item)
		track.Sanitize()
		return nil
	}

	idx := destinationIndex(track, t, insert)
	InsertAtIndex(track, idx, item, overlap)
	return nil
}

// destinationIndex computes the index InsertAtTime should hand to
// InsertAtIndex for time t under the given insert policy. If t lies on
// an existing boundary, every policy degenerates to that boundary's
// index. If t lies strictly inside an item, SplitAndInsert first splits
// the track there so the destination index is a clean boundary.
func destinationIndex(track *model.Track, t opentime.RationalTime, insert InsertPolicy) int {
	containing, ok := track.IndexOfItemAtTime(t, Epsilon)
	if !ok {
		// t sits on a boundary (or at the very end): find the index of
		// the first item starting at or after t.
		return boundaryIndex(track, t)
	}

	itemStart := track.StartTimeOfItem(containing).Value()
	itemEnd := itemStart + track.ChildAt(containing).Duration().Value()
	if math.Abs(t.Value()-itemStart) <= Epsilon {
		return containing
	}

	switch insert {
	case InsertBefore:
		return containing
	case InsertAfter:
		return containing + 1
	case SplitAndInsert:
		SplitAtTime(track, t)
		return boundaryIndex(track, t)
	default: // InsertBeforeOrAfter
		toStart := t.Value() - itemStart
		toEnd := itemEnd - t.Value()
		if toEnd < toStart {
			return containing + 1
		}
		return containing
	}
}

// boundaryIndex returns the index of the first item whose start is at
// or after t (i.e. where t already is, or would be, a clean boundary).
func boundaryIndex(track *model.Track, t opentime.RationalTime) int {
	for i := 0; i < track.Len(); i++ {
		if track.StartTimeOfItem(i).Value() >= t.Value()-Epsilon {
			return i
		}
	}
	return track.Len()
}
