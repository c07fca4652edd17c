package telemetry

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPayloadShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
	}{
		{"top-level list", `[{"timestamp": 1}, {"timestamp": 2}]`, 2},
		{"data key", `{"data": [{"timestamp": 1}]}`, 1},
		{"entries key", `{"entries": [{"timestamp": 1}, {"timestamp": 2}, {"timestamp": 3}]}`, 3},
		{"points key", `{"points": []}`, 0},
		{"first key wins", `{"points": [{"timestamp": 1}], "data": [{"timestamp": 1}, {"timestamp": 2}]}`, 2},
		{"non-list key skipped", `{"data": "nope", "entries": [{"timestamp": 1}]}`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := LoadPayload(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("LoadPayload error: %v", err)
			}
			if len(records) != tt.count {
				t.Fatalf("got %d records, want %d", len(records), tt.count)
			}
		})
	}
}

func TestLoadPayloadKeepsNumbersDistinct(t *testing.T) {
	records, err := LoadPayload(strings.NewReader(`[{"timestamp": 1700000000, "speed": "12"}]`))
	if err != nil {
		t.Fatalf("LoadPayload error: %v", err)
	}
	if _, ok := records[0]["timestamp"].(json.Number); !ok {
		t.Fatalf("expected json.Number timestamp, got %T", records[0]["timestamp"])
	}
	if _, ok := records[0]["speed"].(string); !ok {
		t.Fatalf("expected string speed, got %T", records[0]["speed"])
	}
}

func TestLoadPayloadMalformed(t *testing.T) {
	inputs := []string{
		`{"items": []}`,
		`"just a string"`,
		`42`,
		`{not json`,
		`[1, 2]`,
		`[] []`,
	}
	for _, input := range inputs {
		_, err := LoadPayload(strings.NewReader(input))
		if !errors.Is(err, ErrMalformedMetadataPayload) {
			t.Fatalf("LoadPayload(%q) error = %v, want ErrMalformedMetadataPayload", input, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drive.json")
	if err := os.WriteFile(path, []byte(`{"data": [{"timestamp": "00:00:01"}]}`), 0o644); err != nil {
		t.Fatalf("write telemetry: %v", err)
	}
	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
