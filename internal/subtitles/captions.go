package subtitles

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/telemetry"
)

// Caption is one subtitle block.
type Caption struct {
	Index int // 1-based, following the entry order
	Start float64
	End   float64
	Lines []string
}

// BuildCaptions derives one caption per entry. Each caption lasts until the
// next entry starts; the last one lasts FinalCaptionDuration.
func BuildCaptions(entries []telemetry.Entry, speedUnit string) []Caption {
	captions := make([]Caption, 0, len(entries))
	for i, entry := range entries {
		end := entry.Offset + FinalCaptionDuration
		if i+1 < len(entries) {
			end = entries[i+1].Offset
		}
		captions = append(captions, Caption{
			Index: i + 1,
			Start: entry.Offset,
			End:   end,
			Lines: captionLines(entry, speedUnit),
		})
	}
	return captions
}

func captionLines(entry telemetry.Entry, speedUnit string) []string {
	lines := []string{"Time: " + entry.Display}
	if entry.Speed != nil {
		lines = append(lines, strings.TrimSpace(fmt.Sprintf("Speed: %.1f %s", *entry.Speed, speedUnit)))
	}
	if entry.Latitude != nil || entry.Longitude != nil {
		lines = append(lines, fmt.Sprintf("Lat/Lon: %s, %s", formatCoordinate(entry.Latitude), formatCoordinate(entry.Longitude)))
	}
	return lines
}

// formatCoordinate prints the shortest decimal that round-trips, always with a
// fractional digit, and switches to exponent form for very small or large values.
func formatCoordinate(value *float64) string {
	if value == nil {
		return coordinatePlaceholder
	}
	v := *value
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

// Text joins the caption lines as they appear in the track.
func (c Caption) Text() string {
	return strings.Join(c.Lines, "\n")
}

// Timing renders the "start --> end" line.
func (c Caption) Timing() string {
	return FormatTimestamp(c.Start) + " --> " + FormatTimestamp(c.End)
}
