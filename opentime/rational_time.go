// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package opentime provides the time representation types used throughout
// the timeline model: RationalTime for a moment in time at a given rate,
// and TimeRange for a start/duration pair.
package opentime

import (
	"fmt"
)

// RationalTime represents a measure of time defined by a value and rate.
// The time is value/rate seconds.
type RationalTime struct {
	value float64
	rate  float64
}

// NewRationalTime creates a new RationalTime with the given value and rate.
func NewRationalTime(value, rate float64) RationalTime {
	return RationalTime{value: value, rate: rate}
}

// Value returns the time value (number of ticks at the given rate).
func (rt RationalTime) Value() float64 {
	return rt.value
}

// Rate returns the time rate (ticks per second).
func (rt RationalTime) Rate() float64 {
	return rt.rate
}

// ValueRescaledTo returns the time value converted to a new rate.
func (rt RationalTime) ValueRescaledTo(newRate float64) float64 {
	if newRate == rt.rate {
		return rt.value
	}
	return (rt.value * newRate) / rt.rate
}

// ToSeconds returns the value in seconds.
func (rt RationalTime) ToSeconds() float64 {
	return rt.ValueRescaledTo(1)
}

// Add returns the sum of two times.
func (rt RationalTime) Add(other RationalTime) RationalTime {
	// Handle zero-rate (invalid) times by returning the other time.
	if rt.rate <= 0 {
		return other
	}
	if other.rate <= 0 {
		return rt
	}

	if rt.rate < other.rate {
		return RationalTime{
			value: rt.ValueRescaledTo(other.rate) + other.value,
			rate:  other.rate,
		}
	}
	return RationalTime{
		value: rt.value + other.ValueRescaledTo(rt.rate),
		rate:  rt.rate,
	}
}

// String returns a string representation of the RationalTime.
func (rt RationalTime) String() string {
	return fmt.Sprintf("RationalTime(%g, %g)", rt.value, rt.rate)
}
