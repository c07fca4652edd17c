package telemetry

import (
	"strconv"
	"strings"
)

// Field names recognised in a telemetry record.
const (
	FieldTimestamp = "timestamp"
	FieldSpeed     = "speed"
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
)

// RawRecord is one telemetry record as decoded from the metadata file.
type RawRecord map[string]any

// Timestamp returns the raw timestamp value and whether the key is present.
func (r RawRecord) Timestamp() (any, bool) {
	value, ok := r[FieldTimestamp]
	return value, ok
}

// OptionalFloat coerces an auxiliary field to a number. Absent, null, and
// unconvertible values all yield nil; it never fails.
func OptionalFloat(value any) *float64 {
	if value == nil {
		return nil
	}
	if f, ok, err := nativeNumber(value); ok {
		if err != nil {
			return nil
		}
		return &f
	}
	text, ok := value.(string)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || !isFinite(f) {
		return nil
	}
	return &f
}

// Record is the documented shape of a telemetry record, used for schema output.
type Record struct {
	Timestamp any      `json:"timestamp" jsonschema:"required,oneof_type=string;number,description=ISO-8601 instant\\, HH:MM:SS[.ffffff] clock text\\, or raw seconds"`
	Speed     *float64 `json:"speed,omitempty" jsonschema:"description=Vehicle speed in the configured unit"`
	Latitude  *float64 `json:"latitude,omitempty" jsonschema:"minimum=-90,maximum=90"`
	Longitude *float64 `json:"longitude,omitempty" jsonschema:"minimum=-180,maximum=180"`
}

// Document is the wrapped payload shape; a bare array of records is also accepted.
type Document struct {
	Data    []Record `json:"data,omitempty"`
	Entries []Record `json:"entries,omitempty"`
	Points  []Record `json:"points,omitempty"`
}
