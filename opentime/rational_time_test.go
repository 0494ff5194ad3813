// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package opentime

import (
	"testing"
)

func TestNewRationalTime(t *testing.T) {
	rt := NewRationalTime(24, 24)
	if rt.Value() != 24 {
		t.Errorf("Expected value 24, got %g", rt.Value())
	}
	if rt.Rate() != 24 {
		t.Errorf("Expected rate 24, got %g", rt.Rate())
	}
}

func TestRationalTimeValueRescale(t *testing.T) {
	rt := NewRationalTime(24, 24)
	value := rt.ValueRescaledTo(48)

	if value != 48 {
		t.Errorf("Expected 48, got %g", value)
	}

	// Same rate should return same value
	sameValue := rt.ValueRescaledTo(24)
	if sameValue != 24 {
		t.Errorf("Expected 24, got %g", sameValue)
	}
}

func TestToSeconds(t *testing.T) {
	rt := NewRationalTime(24, 24)
	if rt.ToSeconds() != 1.0 {
		t.Errorf("Expected 1.0, got %g", rt.ToSeconds())
	}
}

func TestRationalTimeArithmetic(t *testing.T) {
	rt1 := NewRationalTime(10, 24)
	rt2 := NewRationalTime(5, 24)

	sum := rt1.Add(rt2)
	if sum.Value() != 15 {
		t.Errorf("Expected sum 15, got %g", sum.Value())
	}
}

func TestRationalTimeArithmeticDifferentRates(t *testing.T) {
	rt1 := NewRationalTime(24, 24) // 1 second
	rt2 := NewRationalTime(48, 48) // 1 second

	sum := rt1.Add(rt2)
	// Should use higher rate (48)
	if sum.Rate() != 48 {
		t.Errorf("Expected rate 48, got %g", sum.Rate())
	}
	if sum.ToSeconds() != 2.0 {
		t.Errorf("Expected 2.0 seconds, got %g", sum.ToSeconds())
	}
}

func TestRationalTimeAddZeroRate(t *testing.T) {
	zero := RationalTime{}
	rt := NewRationalTime(10, 24)

	if sum := zero.Add(rt); sum != rt {
		t.Errorf("Expected zero-rate left operand to return the other time, got %v", sum)
	}
	if sum := rt.Add(zero); sum != rt {
		t.Errorf("Expected zero-rate right operand to return the other time, got %v", sum)
	}
}

func TestRationalTimeString(t *testing.T) {
	rt := NewRationalTime(24, 24)
	str := rt.String()
	if str != "RationalTime(24, 24)" {
		t.Errorf("Expected 'RationalTime(24, 24)', got '%s'", str)
	}
}
