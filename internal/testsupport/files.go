package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// RecordingFolder creates a folder holding a placeholder video and a telemetry
// file with the given JSON payload. It returns the folder path.
func RecordingFolder(t testing.TB, videoName, payload string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "recording")
	WriteFile(t, filepath.Join(dir, videoName), "video")
	WriteFile(t, filepath.Join(dir, "telemetry.json"), payload)
	return dir
}

// TelemetryJSON marshals records into a top-level JSON array.
func TelemetryJSON(t testing.TB, records ...map[string]any) string {
	t.Helper()

	if records == nil {
		records = []map[string]any{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal telemetry: %v", err)
	}
	return string(data)
}
