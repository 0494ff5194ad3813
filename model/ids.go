// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package model

import (
	"crypto/rand"
	"encoding/hex"
)

// tellersNamespace is the metadata key under which this library stores
// its own identity fields, kept separate from metadata a caller or a
// different OTIO-producing tool may have attached.
const tellersNamespace = "tellers.ai"

// timelineIDKey is the nested key holding a composable's 12-hex-character id.
const timelineIDKey = "timeline_id"

// legacyIDKey is the older flat metadata key migrated on first access.
const legacyIDKey = "tellers_id"

// GenerateID returns a fresh 12-hex-character identifier.
func GenerateID() string {
	var buf [6]byte
	// crypto/rand.Read never returns a short read without an error, and an
	// error here would only come from a broken entropy source; there's no
	// degraded mode worth falling back to, so the zero-ID case is left to
	// the caller should it ever occur.
	_, _ = rand.Read(buf[:])
	return hex.EncodeToString(buf[:])
}

// GetID returns the identifier stored in metadata, migrating the legacy
// flat tellers_id key if present and generating a fresh id otherwise.
// The metadata map is mutated in place so the migration/generation is
// only ever paid once per object.
func GetID(metadata AnyDictionary) string {
	ns := nestedMap(metadata, tellersNamespace)
	if id, ok := ns[timelineIDKey].(string); ok && id != "" {
		return id
	}
	if legacy, ok := metadata[legacyIDKey].(string); ok && legacy != "" {
		ns[timelineIDKey] = legacy
		delete(metadata, legacyIDKey)
		return legacy
	}
	id := GenerateID()
	ns[timelineIDKey] = id
	return id
}

// SetID overwrites the identifier stored in metadata under the nested
// tellers.ai namespace.
func SetID(metadata AnyDictionary, id string) {
	ns := nestedMap(metadata, tellersNamespace)
	ns[timelineIDKey] = id
}

// legacy media-reference identification fields, shadow-copied into the
// tellers.ai namespace the first time they're seen (see migrateMediaFields).
const (
	legacyMediaIDKey    = "media_id"
	legacyScoreKey      = "score"
	legacyKeyframeIDKey = "keyframe_id"
)

// migrateMediaFields copies legacy root-level identification/ranking
// fields a media-ingestion pipeline may have attached to a reference
// into the tellers.ai namespace, without removing the originals (unlike
// the id migration, these are not renamed, only mirrored, since other
// tools may still expect them at the root).
func migrateMediaFields(metadata AnyDictionary) {
	ns := nestedMap(metadata, tellersNamespace)
	for _, key := range [...]string{legacyMediaIDKey, legacyScoreKey, legacyKeyframeIDKey} {
		if _, present := ns[key]; present {
			continue
		}
		if v, ok := metadata[key]; ok {
			ns[key] = v
		}
	}
}
