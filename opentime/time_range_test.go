// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package opentime

import (
	"math"
	"testing"
)

func TestNewTimeRange(t *testing.T) {
	start := NewRationalTime(10, 24)
	dur := NewRationalTime(20, 24)
	tr := NewTimeRange(start, dur)

	if tr.StartTime() != start {
		t.Error("Start time mismatch")
	}
	if tr.Duration() != dur {
		t.Error("Duration mismatch")
	}
}

func TestTimeRangeEndTime(t *testing.T) {
	tr := NewTimeRange(NewRationalTime(10, 24), NewRationalTime(20, 24))

	endExclusive := tr.EndTimeExclusive()
	if endExclusive.Value() != 30 {
		t.Errorf("Expected end exclusive 30, got %g", endExclusive.Value())
	}
}

func TestTimeRangeEndTimeDifferentRate(t *testing.T) {
	tr := NewTimeRange(NewRationalTime(5, 12), NewRationalTime(20, 24))

	endExclusive := tr.EndTimeExclusive()
	if endExclusive.Rate() != 24 {
		t.Errorf("Expected end exclusive rate 24, got %g", endExclusive.Rate())
	}
	if endExclusive.Value() != 30 {
		t.Errorf("Expected end exclusive 30, got %g", endExclusive.Value())
	}
}

func TestTimeRangeDurationExtendedBy(t *testing.T) {
	tr := NewTimeRange(NewRationalTime(10, 24), NewRationalTime(20, 24))
	extension := NewRationalTime(5, 24)

	extended := tr.DurationExtendedBy(extension)
	if extended.Duration().Value() != 25 {
		t.Errorf("Expected duration 25, got %g", extended.Duration().Value())
	}
	if extended.StartTime().Value() != 10 {
		t.Errorf("Start time should not change, got %g", extended.StartTime().Value())
	}
}

func TestTimeRangeString(t *testing.T) {
	tr := NewTimeRange(NewRationalTime(10, 24), NewRationalTime(20, 24))
	str := tr.String()
	expected := "TimeRange(RationalTime(10, 24), RationalTime(20, 24))"
	if str != expected {
		t.Errorf("Expected '%s', got '%s'", expected, str)
	}
}

func TestDefaultEpsilon(t *testing.T) {
	expected := 1.0 / (2 * 192000.0)
	if math.Abs(DefaultEpsilon-expected) > 1e-15 {
		t.Errorf("DefaultEpsilon = %g, want %g", DefaultEpsilon, expected)
	}
}
