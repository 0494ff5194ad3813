// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package model

import "fmt"

// Schema identifies an OTIO schema by name and version (e.g. "Clip.2").
type Schema struct {
	Name    string
	Version int
}

// String returns the schema string representation, e.g. "Clip.2".
func (s Schema) String() string {
	return fmt.Sprintf("%s.%d", s.Name, s.Version)
}

// Canonical schema identifiers this library reads and writes.
var (
	ClipSchema     = Schema{Name: "Clip", Version: 2}
	GapSchema      = Schema{Name: "Gap", Version: 1}
	TrackSchema    = Schema{Name: "Track", Version: 1}
	StackSchema    = Schema{Name: "Stack", Version: 1}
	TimelineSchema = Schema{Name: "Timeline", Version: 1}
)
