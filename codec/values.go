// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package codec

import "strings"

// asMap returns v as a map[string]any, or nil if it isn't one.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asSlice returns v as a []any, or nil if it isn't one.
func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func getFloat64(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func getBool(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	b, _ := m[key].(bool)
	return b
}

func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	return asMap(m[key])
}

func getSlice(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	return asSlice(m[key])
}

// schemaName splits "Clip.2" into ("Clip", true). A string with no
// version suffix is returned whole with ok=true; only an empty string
// gives ok=false, so callers can fall back to content sniffing.
func schemaName(otioSchema string) (name string, ok bool) {
	idx := strings.LastIndex(otioSchema, ".")
	if idx <= 0 {
		return otioSchema, otioSchema != ""
	}
	return otioSchema[:idx], true
}
