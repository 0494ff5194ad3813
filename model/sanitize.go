// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package model

import "github.com/tellers-ai/tellers-timeline/opentime"

// Sanitize repairs a track's item sequence in three passes, in order:
// clamp negative durations to zero, drop the resulting (and any
// pre-existing) zero-length items, then merge runs of adjacent gaps
// into one. The item order is never changed; clamping and merging alter
// only durations, and so the start times of the items that follow.
func (t *Track) Sanitize() {
	t.clampNegativeDurations()
	t.removeZeroLengthItems()
	t.mergeAdjacentGaps()
}

// clampNegativeDurations sets any item with a negative duration value
// to zero duration, preserving its rate.
func (t *Track) clampNegativeDurations() {
	for _, c := range t.children {
		d := c.Duration()
		if d.Value() < 0 {
			zero := opentime.NewRationalTime(0, d.Rate())
			switch item := c.(type) {
			case *Clip:
				clampSourceRangeDuration(item.sourceRange, zero)
			case *Gap:
				clampSourceRangeDuration(item.sourceRange, zero)
			}
		}
	}
}

func clampSourceRangeDuration(r *opentime.TimeRange, zero opentime.RationalTime) {
	if r == nil {
		return
	}
	*r = opentime.NewTimeRange(r.StartTime(), zero)
}

// removeZeroLengthItems drops every item whose duration is exactly zero.
func (t *Track) removeZeroLengthItems() {
	kept := t.children[:0:0]
	for _, c := range t.children {
		if c.Duration().Value() == 0 {
			continue
		}
		kept = append(kept, c)
	}
	t.children = kept
}

// mergeAdjacentGaps collapses every run of two or more consecutive Gap
// items into a single Gap whose duration is the sum of the run, keeping
// the first gap's name, metadata, and cosmetic source-range start time.
func (t *Track) mergeAdjacentGaps() {
	if len(t.children) == 0 {
		return
	}
	merged := make([]Item, 0, len(t.children))
	for _, c := range t.children {
		gap, isGap := c.(*Gap)
		if isGap && len(merged) > 0 {
			if prevGap, ok := merged[len(merged)-1].(*Gap); ok {
				mergeGapInto(prevGap, gap)
				continue
			}
		}
		merged = append(merged, c)
	}
	t.children = merged
}

func mergeGapInto(dst, src *Gap) {
	if dst.sourceRange == nil {
		dst.sourceRange = src.sourceRange
		return
	}
	extra := opentime.RationalTime{}
	if src.sourceRange != nil {
		extra = src.sourceRange.Duration()
	}
	*dst.sourceRange = dst.sourceRange.DurationExtendedBy(extra)
}

// Sanitize sanitizes every track in the stack.
func (s *Stack) Sanitize() {
	for _, tr := range s.tracks {
		tr.Sanitize()
	}
}

// Sanitize sanitizes the timeline's stack.
func (t *Timeline) Sanitize() {
	if t.tracks != nil {
		t.tracks.Sanitize()
	}
}
