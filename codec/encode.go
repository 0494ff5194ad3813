// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package codec

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/bytedance/sonic"

	"github.com/tellers-ai/tellers-timeline/model"
)

// EncodeOptions controls EncodeTimeline's output.
type EncodeOptions struct {
	// Precision, if non-nil, rounds every number in the document to
	// this many fractional digits (half-away-from-zero), the same
	// contract the reference implementation's json encoder applies to
	// RationalTime values and any other float field. A nil Precision
	// emits numbers exactly as Go's json package would.
	Precision *int
	// Pretty indents the output two spaces per level, matching the
	// reference implementation's default human-readable serialization.
	Pretty bool
}

// EncodeTimeline serializes a Timeline to its canonical OTIO JSON form.
func EncodeTimeline(timeline *model.Timeline, opts EncodeOptions) ([]byte, error) {
	raw, err := json.Marshal(timeline)
	if err != nil {
		return nil, err
	}

	if opts.Precision != nil {
		var tree any
		if err := sonic.Unmarshal(raw, &tree); err != nil {
			return nil, &DecodeError{Message: err.Error()}
		}
		tree = roundTree(tree, *opts.Precision)
		raw, err = sonic.Marshal(tree)
		if err != nil {
			return nil, err
		}
	}

	if !opts.Pretty {
		return raw, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return raw, nil
	}
	return buf.Bytes(), nil
}

// roundTree walks a generic JSON value tree, rounding every float64 leaf
// to p fractional digits. Values that arrived as non-finite were
// already collapsed to null by the decode path; any NaN/Inf that
// somehow still reaches here is left unrounded (see roundToPrecision).
func roundTree(v any, p int) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = roundTree(child, p)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = roundTree(child, p)
		}
		return t
	case float64:
		return roundToPrecision(t, p)
	default:
		return v
	}
}

// roundToPrecision rounds away from zero at the given number of
// fractional digits. Integral values pass through unchanged so an
// integer field never grows a spurious ".0" from the round-trip.
func roundToPrecision(v float64, p int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if v == math.Trunc(v) {
		return v
	}
	scale := math.Pow(10, float64(p))
	if v >= 0 {
		return math.Floor(v*scale+0.5) / scale
	}
	return math.Ceil(v*scale-0.5) / scale
}
