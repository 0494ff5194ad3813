// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package algorithms implements the editing algebra: the Track editor,
// the Stack orchestrator, and the read-only Validator. Everything here
// is a free function over *model.Track / *model.Stack rather than a
// method on those types, mirroring the teacher's own algorithms package
// layout, which keeps the model package free of editing policy.
package algorithms

// Epsilon is the fixed absolute tolerance used for every boundary
// comparison in the editing algebra. It is not scaled by magnitude:
// times here are human-scale seconds, not frame counts.
const Epsilon = 1e-9

// OverlapPolicy governs how an insertion interacts with existing
// content that shares its time span.
type OverlapPolicy int

const (
	// Override displaces any overlapping region, trimming or deleting
	// existing pieces to make room for the inserted item.
	Override OverlapPolicy = iota
	// Push shifts the remainder of the track to the right; no existing
	// content is lost.
	Push
)

// String returns the policy's canonical name.
func (p OverlapPolicy) String() string {
	if p == Push {
		return "Push"
	}
	return "Override"
}

// InsertPolicy governs how an insertion time that falls inside an
// existing item is snapped to an index.
type InsertPolicy int

const (
	// InsertBefore snaps to the containing item's start index.
	InsertBefore InsertPolicy = iota
	// InsertAfter snaps to the containing item's end index.
	InsertAfter
	// InsertBeforeOrAfter snaps to whichever of start/end is closer to
	// the requested time; ties favour start.
	InsertBeforeOrAfter
	// SplitAndInsert splits the containing item at the requested time,
	// then inserts at the new boundary (after the left piece).
	SplitAndInsert
)

// String returns the policy's canonical name.
func (p InsertPolicy) String() string {
	switch p {
	case InsertBefore:
		return "InsertBefore"
	case InsertAfter:
		return "InsertAfter"
	case SplitAndInsert:
		return "SplitAndInsert"
	default:
		return "InsertBeforeOrAfter"
	}
}

// OverlapPolicyFromString resolves a case-insensitive binding-facing
// policy string, defaulting to Override for anything unrecognized (see
// the External interface surface's policy-string contract).
func OverlapPolicyFromString(s string) OverlapPolicy {
	switch lower(s) {
	case "push":
		return Push
	default:
		return Override
	}
}

// InsertPolicyFromString resolves a case-insensitive binding-facing
// policy string, defaulting to InsertBeforeOrAfter for anything
// unrecognized.
func InsertPolicyFromString(s string) InsertPolicy {
	switch lower(s) {
	case "split", "split_and_insert":
		return SplitAndInsert
	case "before", "insert_before":
		return InsertBefore
	case "after", "insert_after":
		return InsertAfter
	default:
		return InsertBeforeOrAfter
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
