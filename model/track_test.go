// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package model

import (
	"testing"

	"github.com/tellers-ai/tellers-timeline/opentime"
)

func clipOf(duration float64, rate float64) *Clip {
	r := opentime.NewTimeRange(opentime.NewRationalTime(0, rate), opentime.NewRationalTime(duration, rate))
	return NewClip("", &r, nil)
}

func TestTrackStartTimeOfItemIsDerived(t *testing.T) {
	tr := NewTrack("V1", TrackKindVideo, nil)
	tr.SetChildren([]Item{
		clipOf(10, 24),
		NewGap(5, 24, nil),
		clipOf(20, 24),
	})

	wantStarts := []float64{0, 10, 15}
	for i, want := range wantStarts {
		got := tr.StartTimeOfItem(i).Value()
		if got != want {
			t.Errorf("item %d: expected start %g, got %g", i, want, got)
		}
	}
	if d := tr.Duration().Value(); d != 35 {
		t.Errorf("expected total duration 35, got %g", d)
	}
}

func TestTrackIndexOfItemAtTime(t *testing.T) {
	tr := NewTrack("V1", TrackKindVideo, nil)
	tr.SetChildren([]Item{clipOf(10, 24), clipOf(10, 24)})

	tests := []struct {
		time    float64
		wantIdx int
		wantOK  bool
	}{
		{0, 0, true},
		{9.999999999, 0, true},
		{10, 1, true},
		{19.999999999, 1, true},
		{20, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		idx, ok := tr.IndexOfItemAtTime(opentime.NewRationalTime(tt.time, 24), 1e-9)
		if ok != tt.wantOK || (ok && idx != tt.wantIdx) {
			t.Errorf("time %g: expected (%d, %v), got (%d, %v)", tt.time, tt.wantIdx, tt.wantOK, idx, ok)
		}
	}
}

func TestTrackSanitizeMergesAdjacentGapsAndDropsZeroLength(t *testing.T) {
	tr := NewTrack("V1", TrackKindVideo, nil)
	tr.SetChildren([]Item{
		NewGap(5, 24, nil),
		NewGap(3, 24, nil),
		clipOf(0, 24),
		clipOf(10, 24),
	})
	tr.Sanitize()

	if got := tr.Len(); got != 2 {
		t.Fatalf("expected 2 items after sanitize, got %d", got)
	}
	gap, ok := tr.ChildAt(0).(*Gap)
	if !ok {
		t.Fatalf("expected first item to remain a Gap")
	}
	if d := gap.Duration().Value(); d != 8 {
		t.Errorf("expected merged gap duration 8, got %g", d)
	}
	if d := tr.ChildAt(1).Duration().Value(); d != 10 {
		t.Errorf("expected second item duration 10, got %g", d)
	}
}

func TestStackDurationIsLongestTrack(t *testing.T) {
	s := NewStack("tracks", nil)
	short := NewTrack("A1", TrackKindAudio, nil)
	short.SetChildren([]Item{clipOf(5, 24)})
	long := NewTrack("V1", TrackKindVideo, nil)
	long.SetChildren([]Item{clipOf(20, 24)})
	s.AppendTrack(short)
	s.AppendTrack(long)

	if d := s.Duration().Value(); d != 20 {
		t.Errorf("expected stack duration 20, got %g", d)
	}
}

func TestGetIDMigratesLegacyFlatKey(t *testing.T) {
	meta := AnyDictionary{"tellers_id": "abc123"}
	id := GetID(meta)
	if id != "abc123" {
		t.Fatalf("expected migrated id abc123, got %s", id)
	}
	if _, present := meta["tellers_id"]; present {
		t.Errorf("expected legacy key removed after migration")
	}
	ns, ok := meta["tellers.ai"].(AnyDictionary)
	if !ok {
		t.Fatalf("expected nested tellers.ai namespace")
	}
	if ns["timeline_id"] != "abc123" {
		t.Errorf("expected nested id abc123, got %v", ns["timeline_id"])
	}
	// Second call must be stable, not regenerate.
	if again := GetID(meta); again != "abc123" {
		t.Errorf("expected stable id on second call, got %s", again)
	}
}

func TestGetIDGeneratesWhenAbsent(t *testing.T) {
	meta := AnyDictionary{}
	id := GetID(meta)
	if len(id) != 12 {
		t.Errorf("expected 12-hex-character id, got %q", id)
	}
	if again := GetID(meta); again != id {
		t.Errorf("expected stable id on repeat call, got %s vs %s", again, id)
	}
}

func TestCloneIsDeep(t *testing.T) {
	tr := NewTrack("V1", TrackKindVideo, nil)
	tr.SetChildren([]Item{clipOf(10, 24)})
	clone := tr.Clone()
	clone.ChildAt(0).(*Clip).SetName("changed")
	if tr.ChildAt(0).Name() == "changed" {
		t.Errorf("expected clone mutation not to affect original")
	}
}
