package main

import (
	"encoding/json"
	"testing"
)

func TestSchemaCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"schema"}, "")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	if doc["title"] != "bmwoverlay telemetry" {
		t.Fatalf("unexpected title %v", doc["title"])
	}
	requireContains(t, out, `"timestamp"`)
	requireContains(t, out, `"points"`)
}
