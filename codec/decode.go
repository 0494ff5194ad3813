// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package codec

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/tellers-ai/tellers-timeline/model"
	"github.com/tellers-ai/tellers-timeline/opentime"
)

// DecodeTimeline parses an OTIO JSON document into a Timeline. Legacy
// shapes (externally-tagged items, a flat tellers_id, a flat-duration
// Gap) are accepted tolerantly; Decode never re-emits them (see Encode).
func DecodeTimeline(data []byte) (*model.Timeline, error) {
	root, err := decodeToTree(data)
	if err != nil {
		return nil, err
	}
	m := asMap(root)
	if m == nil {
		return nil, &DecodeError{Message: "root is not a JSON object"}
	}
	return buildTimeline(m)
}

// decodeToTree sanitizes non-standard non-finite number tokens (NaN,
// Infinity, -Infinity — which OTIO's Python reference implementation's
// json module emits, and which the JSON grammar does not otherwise
// allow) to null, then hands the result to sonic for the generic decode
// that drives schema dispatch.
func decodeToTree(data []byte) (any, error) {
	clean := sanitizeNonFiniteTokens(data)
	var v any
	if err := sonic.Unmarshal(clean, &v); err != nil {
		return nil, &DecodeError{Message: err.Error()}
	}
	return v, nil
}

// sanitizeNonFiniteTokens replaces bare NaN / Infinity / -Infinity
// tokens appearing where a JSON number is expected with the literal
// null, leaving everything else (including those words if they appear
// inside a quoted string) untouched.
func sanitizeNonFiniteTokens(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false
	escaped := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			out = append(out, c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			out = append(out, c)
			continue
		}
		if matchToken(data, i, "NaN") {
			out = append(out, []byte("null")...)
			i += len("NaN") - 1
			continue
		}
		if matchToken(data, i, "-Infinity") {
			out = append(out, []byte("null")...)
			i += len("-Infinity") - 1
			continue
		}
		if matchToken(data, i, "Infinity") {
			out = append(out, []byte("null")...)
			i += len("Infinity") - 1
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchToken(data []byte, i int, token string) bool {
	if i+len(token) > len(data) {
		return false
	}
	return string(data[i:i+len(token)]) == token
}

// DecodeItem parses a single Clip or Gap JSON document — the shape a
// binding passes when inserting one item rather than a whole timeline —
// using the same tolerant dispatch buildTrack applies to each of a
// track's children.
func DecodeItem(data []byte) (model.Item, error) {
	root, err := decodeToTree(data)
	if err != nil {
		return nil, err
	}
	return buildItem(root)
}

func buildTimeline(m map[string]any) (*model.Timeline, error) {
	timeline := model.NewTimeline(getString(m, "name"), buildMetadata(m))

	if gm := getMap(m, "global_start_time"); gm != nil {
		rt, err := buildRationalTime(gm)
		if err != nil {
			return nil, err
		}
		timeline.SetGlobalStartTime(&rt)
	}

	stackValue, ok := m["tracks"]
	if !ok {
		return timeline, nil
	}
	stackMap := asMap(stackValue)
	if stackMap == nil {
		return nil, &DecodeError{Message: "timeline.tracks is not an object"}
	}
	stack, err := buildStack(stackMap)
	if err != nil {
		return nil, err
	}
	timeline.SetTracks(stack)
	return timeline, nil
}

func buildStack(m map[string]any) (*model.Stack, error) {
	stack := model.NewStack(getString(m, "name"), buildMetadata(m))
	for _, child := range getSlice(m, "children") {
		trackMap := asMap(child)
		if trackMap == nil {
			continue
		}
		track, err := buildTrack(trackMap)
		if err != nil {
			return nil, err
		}
		stack.AppendTrack(track)
	}
	return stack, nil
}

func buildTrack(m map[string]any) (*model.Track, error) {
	kind, err := resolveTrackKind(getString(m, "kind"))
	if err != nil {
		return nil, err
	}
	track := model.NewTrack(getString(m, "name"), kind, buildMetadata(m))

	var items []model.Item
	for _, child := range getSlice(m, "children") {
		item, err := buildItem(child)
		if err != nil {
			return nil, err
		}
		if item != nil {
			items = append(items, item)
		}
	}
	track.SetChildren(items)
	return track, nil
}

// resolveTrackKind is case-insensitive over {video, audio, other}, reads
// an absent or empty kind as video, and fails for anything else.
func resolveTrackKind(kind string) (model.TrackKind, error) {
	switch strings.ToLower(kind) {
	case "video", "":
		return model.TrackKindVideo, nil
	case "audio":
		return model.TrackKindAudio, nil
	case "other":
		return model.TrackKindOther, nil
	default:
		return "", &DecodeError{Message: fmt.Sprintf("unknown track kind %q", kind)}
	}
}

// buildItem tolerantly decodes a single track child into a Clip or Gap,
// trying in order:
//  1. a single-key externally-tagged envelope, {"Clip": {...}} or
//     {"Gap": {...}}
//  2. an explicit "type": "clip"|"gap" discriminator
//  3. the OTIO_SCHEMA prefix
//  4. content sniffing: source_range + media_references implies Clip
//  5. Clip, then Gap, tried directly
func buildItem(raw any) (model.Item, error) {
	m := asMap(raw)
	if m == nil {
		return nil, &DecodeError{Message: "track child is not a JSON object"}
	}

	if inner, kind, ok := unwrapLegacyEnvelope(m); ok {
		switch kind {
		case "clip":
			return buildClip(inner)
		case "gap":
			return buildGap(inner)
		}
	}

	switch strings.ToLower(getString(m, "type")) {
	case "clip":
		return buildClip(m)
	case "gap":
		return buildGap(m)
	}

	if name, ok := schemaName(getString(m, "OTIO_SCHEMA")); ok {
		switch name {
		case model.ClipSchema.Name:
			return buildClip(m)
		case model.GapSchema.Name:
			return buildGap(m)
		}
	}

	if getMap(m, "source_range") != nil && getMap(m, "media_references") != nil {
		return buildClip(m)
	}

	// Legacy flat Gap shape: {"duration": <number>, ...} with no
	// source_range at all.
	if _, hasSourceRange := m["source_range"]; !hasSourceRange {
		if _, hasDuration := getFloat64(m, "duration"); hasDuration {
			return buildGap(m)
		}
	}

	if item, err := buildClip(m); err == nil && item.SourceRange() != nil {
		return item, nil
	}
	return buildGap(m)
}

// unwrapLegacyEnvelope recognizes the externally-tagged {"Clip": {...}}
// / {"Gap": {...}} shape: a single-key object whose key names the kind.
func unwrapLegacyEnvelope(m map[string]any) (inner map[string]any, kind string, ok bool) {
	if len(m) != 1 {
		return nil, "", false
	}
	for k, v := range m {
		switch strings.ToLower(k) {
		case "clip":
			return asMap(v), "clip", true
		case "gap":
			return asMap(v), "gap", true
		}
	}
	return nil, "", false
}

func buildClip(m map[string]any) (*model.Clip, error) {
	sourceRange, err := buildTimeRangePtr(getMap(m, "source_range"))
	if err != nil {
		return nil, err
	}
	clip := model.NewClip(getString(m, "name"), sourceRange, buildMetadata(m))

	for key, v := range getMap(m, "media_references") {
		refMap := asMap(v)
		if refMap == nil {
			continue
		}
		ref, err := buildMediaReference(refMap)
		if err != nil {
			return nil, err
		}
		clip.SetMediaReference(key, ref)
	}
	clip.SetActiveMediaReferenceKey(getString(m, "active_media_reference_key"))

	if raw, ok := m["effects"]; ok {
		clip.SetRawEffects(mustRemarshal(raw))
	}
	if raw, ok := m["markers"]; ok {
		clip.SetRawMarkers(mustRemarshal(raw))
	}
	if raw, ok := m["transitions"]; ok {
		clip.SetRawTransitions(mustRemarshal(raw))
	}
	return clip, nil
}

func buildGap(m map[string]any) (*model.Gap, error) {
	sourceRange, err := buildTimeRangePtr(getMap(m, "source_range"))
	if err != nil {
		return nil, err
	}
	duration := 0.0
	rate := 1.0
	switch {
	case sourceRange != nil:
		duration = sourceRange.Duration().Value()
		rate = sourceRange.Duration().Rate()
	default:
		// Legacy flat Gap shape: {"duration": <number>, "rate": <number>}
		// with no source_range at all.
		if d, ok := getFloat64(m, "duration"); ok {
			duration = d
		}
		if r, ok := getFloat64(m, "rate"); ok && r > 0 {
			rate = r
		}
	}
	gap := model.NewGap(duration, rate, buildMetadata(m))
	gap.SetName(getString(m, "name"))
	if sourceRange != nil {
		gap.SetSourceRange(sourceRange)
	}
	if raw, ok := m["markers"]; ok {
		gap.SetRawMarkers(mustRemarshal(raw))
	}
	return gap, nil
}

func buildMediaReference(m map[string]any) (*model.MediaReference, error) {
	availableRange, err := buildTimeRangePtr(getMap(m, "available_range"))
	if err != nil {
		return nil, err
	}
	ref := model.NewMediaReference(getString(m, "name"), getString(m, "target_url"), availableRange, buildMetadata(m))
	if bounds, ok := m["available_image_bounds"]; ok {
		ref.SetAvailableImageBounds(bounds)
	}
	return ref, nil
}

func buildTimeRangePtr(m map[string]any) (*opentime.TimeRange, error) {
	if m == nil {
		return nil, nil
	}
	tr, err := buildTimeRange(m)
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

func buildTimeRange(m map[string]any) (opentime.TimeRange, error) {
	start, err := buildRationalTime(getMap(m, "start_time"))
	if err != nil {
		return opentime.TimeRange{}, err
	}
	duration, err := buildRationalTime(getMap(m, "duration"))
	if err != nil {
		return opentime.TimeRange{}, err
	}
	return opentime.NewTimeRange(start, duration), nil
}

func buildRationalTime(m map[string]any) (opentime.RationalTime, error) {
	if m == nil {
		return opentime.RationalTime{}, nil
	}
	value, _ := getFloat64(m, "value")
	rate, ok := getFloat64(m, "rate")
	if !ok || rate <= 0 {
		rate = 1
	}
	return opentime.NewRationalTime(value, rate), nil
}

func buildMetadata(m map[string]any) model.AnyDictionary {
	meta := model.AnyDictionary{}
	for k, v := range getMap(m, "metadata") {
		meta[k] = v
	}
	if legacy, ok := m["tellers_id"]; ok {
		meta["tellers_id"] = legacy
	}
	return meta
}

// mustRemarshal re-encodes an already-decoded generic value back to
// JSON so it can be stored as an opaque json.RawMessage. It cannot fail
// for values that came out of sonic.Unmarshal.
func mustRemarshal(v any) []byte {
	b, err := sonic.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
