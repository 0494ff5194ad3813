// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package algorithms

import (
	"fmt"

	"github.com/tellers-ai/tellers-timeline/model"
)

// ValidationErrorKind classifies a single finding from Validate.
type ValidationErrorKind int

// NegativeDuration is currently the only finding the validator reports.
// The source this library is grounded on also carried commented-out
// overlap and sort-order checks; those are meaningless once tracks are
// defined as gapless sequences and are intentionally not reinstated.
const NegativeDuration ValidationErrorKind = iota

func (k ValidationErrorKind) String() string { return "NegativeDuration" }

// ValidationError names one item that failed validation.
type ValidationError struct {
	Kind       ValidationErrorKind
	TrackIndex int
	ItemIndex  int
	ItemID     string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: track %d item %d (id=%s)", e.Kind, e.TrackIndex, e.ItemIndex, e.ItemID)
}

// Validate inspects every track in the timeline's stack and returns one
// ValidationError per item with a negative duration. It never mutates
// the timeline and never itself fails: an empty result means the
// timeline passed.
func Validate(timeline *model.Timeline) []ValidationError {
	if timeline.Tracks() == nil {
		return nil
	}
	return ValidateStack(timeline.Tracks())
}

// ValidateStack inspects every track in stack, as Validate does for a
// whole timeline.
func ValidateStack(stack *model.Stack) []ValidationError {
	var errs []ValidationError
	for ti, tr := range stack.Tracks() {
		for ii, it := range tr.Children() {
			if it.Duration().Value() < 0 {
				errs = append(errs, ValidationError{
					Kind:       NegativeDuration,
					TrackIndex: ti,
					ItemIndex:  ii,
					ItemID:     model.GetID(it.Metadata()),
				})
			}
		}
	}
	return errs
}
