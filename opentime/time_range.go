// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package opentime

import (
	"fmt"
)

// DefaultEpsilon is the default epsilon value for time range comparisons.
// It is computed to be twice 192kHz, the fastest commonly used audio rate.
// This library's own editing algebra uses a fixed wall-clock epsilon
// instead (see algorithms.Epsilon); DefaultEpsilon is kept for parity
// with the upstream OTIO time model.
const DefaultEpsilon = 1.0 / (2 * 192000.0)

// TimeRange represents a time range defined by a start time and duration.
// The duration indicates a time range that is inclusive of the start time,
// and exclusive of the end time.
type TimeRange struct {
	startTime RationalTime
	duration  RationalTime
}

// NewTimeRange creates a new TimeRange with the given start time and duration.
func NewTimeRange(startTime, duration RationalTime) TimeRange {
	return TimeRange{startTime: startTime, duration: duration}
}

// StartTime returns the start time.
func (tr TimeRange) StartTime() RationalTime {
	return tr.startTime
}

// Duration returns the duration.
func (tr TimeRange) Duration() RationalTime {
	return tr.duration
}

// EndTimeExclusive returns the exclusive end time (first sample after range).
func (tr TimeRange) EndTimeExclusive() RationalTime {
	rescaledStart := RationalTime{
		value: tr.startTime.ValueRescaledTo(tr.duration.rate),
		rate:  tr.duration.rate,
	}
	return tr.duration.Add(rescaledStart)
}

// DurationExtendedBy extends the duration by the given time.
func (tr TimeRange) DurationExtendedBy(other RationalTime) TimeRange {
	return TimeRange{
		startTime: tr.startTime,
		duration:  tr.duration.Add(other),
	}
}

// String returns a string representation of the TimeRange.
func (tr TimeRange) String() string {
	return fmt.Sprintf("TimeRange(%s, %s)", tr.startTime.String(), tr.duration.String())
}
