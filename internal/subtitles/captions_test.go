package subtitles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/telemetry"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "00:00:00,000"},
		{3661.2005, "01:01:01,200"},
		{1.5, "00:00:01,500"},
		{59.9996, "00:01:00,000"},
		{0.0025, "00:00:00,002"},
		{-4, "00:00:00,000"},
		{90000, "25:00:00,000"},
		{12.0, "00:00:12,000"},
		{1e18, "277777777777777:46:40,000"},
		{1e19, "2777777777777777:46:40,000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatTimestamp(tt.seconds); got != tt.expected {
				t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.expected)
			}
		})
	}
}

func TestParseTimestampRoundTrip(t *testing.T) {
	for _, code := range []string{"00:00:00,000", "01:01:01,200", "25:00:00,999"} {
		seconds, err := ParseTimestamp(code)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", code, err)
		}
		if got := FormatTimestamp(seconds); got != code {
			t.Fatalf("round trip %q -> %v -> %q", code, seconds, got)
		}
	}
	if _, err := ParseTimestamp("00:00"); err == nil {
		t.Fatal("expected error for malformed time code")
	}
}

func TestBuildCaptionsWindows(t *testing.T) {
	entries := []telemetry.Entry{
		{Offset: 0, Display: "0.000s"},
		{Offset: 5, Display: "5.000s"},
		{Offset: 12, Display: "12.000s"},
	}
	captions := BuildCaptions(entries, "mph")
	if len(captions) != 3 {
		t.Fatalf("expected 3 captions, got %d", len(captions))
	}
	wantEnds := []float64{5, 12, 13}
	for i, caption := range captions {
		if caption.Index != i+1 {
			t.Errorf("caption %d index = %d", i, caption.Index)
		}
		if caption.Start != entries[i].Offset {
			t.Errorf("caption %d start = %v, want %v", i, caption.Start, entries[i].Offset)
		}
		if caption.End != wantEnds[i] {
			t.Errorf("caption %d end = %v, want %v", i, caption.End, wantEnds[i])
		}
	}
}

func TestCaptionLines(t *testing.T) {
	speed := 42.25
	lat := 48.137154
	lon := 11.0
	tests := []struct {
		name  string
		entry telemetry.Entry
		want  []string
	}{
		{
			name:  "time only",
			entry: telemetry.Entry{Display: "2024-01-01T00:00:00+00:00"},
			want:  []string{"Time: 2024-01-01T00:00:00+00:00"},
		},
		{
			name:  "all fields",
			entry: telemetry.Entry{Display: "1.000s", Speed: &speed, Latitude: &lat, Longitude: &lon},
			want:  []string{"Time: 1.000s", "Speed: 42.2 km/h", "Lat/Lon: 48.137154, 11.0"},
		},
		{
			name:  "latitude only",
			entry: telemetry.Entry{Display: "1.000s", Latitude: &lat},
			want:  []string{"Time: 1.000s", "Lat/Lon: 48.137154, —"},
		},
		{
			name:  "longitude only",
			entry: telemetry.Entry{Display: "1.000s", Longitude: &lon},
			want:  []string{"Time: 1.000s", "Lat/Lon: —, 11.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := captionLines(tt.entry, "km/h")
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("captionLines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCoordinate(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{37.7749, "37.7749"},
		{-122.0, "-122.0"},
		{0, "0.0"},
		{0.00001, "1e-05"},
	}
	for _, tt := range tests {
		v := tt.value
		if got := formatCoordinate(&v); got != tt.expected {
			t.Errorf("formatCoordinate(%v) = %q, want %q", tt.value, got, tt.expected)
		}
	}
	if got := formatCoordinate(nil); got != "—" {
		t.Errorf("formatCoordinate(nil) = %q", got)
	}
}

func TestRender(t *testing.T) {
	speed := 10.0
	entries := []telemetry.Entry{
		{Offset: 0, Display: "0.000s", Speed: &speed},
		{Offset: 2.5, Display: "2.500s"},
	}
	got := Render(BuildCaptions(entries, "mph"))
	want := "1\n" +
		"00:00:00,000 --> 00:00:02,500\n" +
		"Time: 0.000s\n" +
		"Speed: 10.0 mph\n" +
		"\n" +
		"2\n" +
		"00:00:02,500 --> 00:00:03,500\n" +
		"Time: 2.500s\n"
	if got != want {
		t.Fatalf("Render mismatch\n got: %q\nwant: %q", got, want)
	}
	if Render(nil) != "" {
		t.Fatal("expected empty render for no captions")
	}
}

func TestWriteSRTAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "telemetry.srt")
	entries := []telemetry.Entry{
		{Offset: 0, Display: "0.000s"},
		{Offset: 30, Display: "30.000s"},
	}
	if err := WriteSRT(path, BuildCaptions(entries, "mph")); err != nil {
		t.Fatalf("WriteSRT: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read srt: %v", err)
	}
	if !strings.HasSuffix(string(data), "Time: 30.000s\n") {
		t.Fatalf("unexpected content: %q", data)
	}

	if issues := ValidateSRTContent(path, 0); len(issues) != 0 {
		t.Fatalf("unexpected issues without video duration: %v", issues)
	}
	if issues := ValidateSRTContent(path, 60); len(issues) != 0 {
		t.Fatalf("unexpected issues for long video: %v", issues)
	}
	issues := ValidateSRTContent(path, 10)
	if len(issues) != 1 || !strings.HasPrefix(issues[0], "duration_mismatch") {
		t.Fatalf("expected duration mismatch, got %v", issues)
	}
}

func TestValidateSRTContentEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.srt")
	if err := os.WriteFile(path, []byte("\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	issues := ValidateSRTContent(path, 0)
	if len(issues) != 1 || issues[0] != "empty_subtitle_file" {
		t.Fatalf("unexpected issues: %v", issues)
	}
}

func TestLastCueEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cues.srt")
	content := "1\n00:00:05,000 --> 00:00:42,500\nTime: a\n\n" +
		"2\n00:00:01,000 --> 00:00:07,000\nTime: b\n\n" +
		"3\nbroken --> 00:09:00,000\nTime: c\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	last, found, err := lastCueEnd(path)
	if err != nil || !found {
		t.Fatalf("lastCueEnd: found=%v err=%v", found, err)
	}
	if last != 42.5 {
		t.Fatalf("last = %v, want 42.5", last)
	}

	empty := filepath.Join(t.TempDir(), "none.srt")
	if err := os.WriteFile(empty, []byte("1\nno timing\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, found, err := lastCueEnd(empty); err != nil || found {
		t.Fatalf("expected no cues, found=%v err=%v", found, err)
	}
}
