package telemetry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// payloadKeys lists the wrapper keys checked, in order, when the document is an object.
var payloadKeys = []string{"data", "entries", "points"}

// LoadFile reads and decodes a telemetry document from disk.
func LoadFile(path string) ([]RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open telemetry: %w", err)
	}
	defer file.Close()
	return LoadPayload(file)
}

// LoadPayload decodes a telemetry document: either a top-level array of records
// or an object whose first present key among data, entries, points holds one.
func LoadPayload(r io.Reader) ([]RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read telemetry: %w", err)
	}

	var payload any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, &MalformedPayloadError{Reason: "invalid JSON", Err: err}
	}
	if decoder.More() {
		return nil, &MalformedPayloadError{Reason: "trailing data after JSON document"}
	}

	switch doc := payload.(type) {
	case []any:
		return toRecords(doc)
	case map[string]any:
		for _, key := range payloadKeys {
			if list, ok := doc[key].([]any); ok {
				return toRecords(list)
			}
		}
	}
	return nil, &MalformedPayloadError{Reason: "metadata JSON must be a list or contain a top-level 'data', 'entries', or 'points' array"}
}

func toRecords(list []any) ([]RawRecord, error) {
	records := make([]RawRecord, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &MalformedPayloadError{Reason: fmt.Sprintf("record %d is not an object", i)}
		}
		records = append(records, RawRecord(obj))
	}
	return records, nil
}
