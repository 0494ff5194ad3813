// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package external

import (
	"strings"
	"testing"

	"github.com/tellers-ai/tellers-timeline/model"
)

const sampleClip = `{
  "OTIO_SCHEMA": "Clip.2",
  "name": "inserted",
  "metadata": {},
  "source_range": {
    "start_time": {"value": 0, "rate": 24},
    "duration": {"value": 12, "rate": 24}
  },
  "media_references": {}
}`

func emptyTimeline() *model.Timeline {
	tl := model.NewTimeline("t", nil)
	AddTrack(tl, "V1", "video", -1)
	return tl
}

func TestAddAndDeleteTrack(t *testing.T) {
	tl := model.NewTimeline("t", nil)
	AddTrack(tl, "V1", "video", -1)
	if len(tl.Tracks().Tracks()) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tl.Tracks().Tracks()))
	}
	id := model.GetID(tl.Tracks().Tracks()[0].Metadata())
	if !DeleteTrack(tl, id) {
		t.Fatal("expected DeleteTrack to succeed")
	}
	if len(tl.Tracks().Tracks()) != 0 {
		t.Errorf("expected 0 tracks after delete, got %d", len(tl.Tracks().Tracks()))
	}
}

func TestInsertClipAtTimeAndRoundTrip(t *testing.T) {
	tl := emptyTimeline()
	if err := InsertClipAtTime(tl, 0, 0, 24, []byte(sampleClip), "override", "before_or_after"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tl.Tracks().Tracks()[0].Len() != 1 {
		t.Fatalf("expected 1 item in track, got %d", tl.Tracks().Tracks()[0].Len())
	}

	out, err := ToJSON(tl, -1, false)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if !strings.Contains(string(out), "inserted") {
		t.Errorf("expected clip name to survive round-trip, got %s", out)
	}

	back, err := ParseTimeline(out)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if d := back.Duration().Value(); d != 12 {
		t.Errorf("expected duration 12, got %g", d)
	}
}

func TestValidateSurfacesNegativeDuration(t *testing.T) {
	tl := emptyTimeline()
	badClip := `{"OTIO_SCHEMA": "Clip.2", "name": "bad", "metadata": {}, "source_range": {
		"start_time": {"value": 0, "rate": 24}, "duration": {"value": -5, "rate": 24}
	}, "media_references": {}}`
	if err := InsertClipAtTime(tl, 0, 0, 24, []byte(badClip), "push", "before"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	findings := Validate(tl)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].Kind != "NegativeDuration" {
		t.Errorf("expected NegativeDuration, got %s", findings[0].Kind)
	}
}

func TestDeleteItemByID(t *testing.T) {
	tl := emptyTimeline()
	if err := InsertClipAtTime(tl, 0, 0, 24, []byte(sampleClip), "override", "before_or_after"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := model.GetID(tl.Tracks().Tracks()[0].ChildAt(0).Metadata())
	if !DeleteItem(tl, id, false) {
		t.Fatal("expected DeleteItem to succeed")
	}
	if tl.Tracks().Tracks()[0].Len() != 0 {
		t.Errorf("expected track emptied, has %d items", tl.Tracks().Tracks()[0].Len())
	}
}
