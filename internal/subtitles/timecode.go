package subtitles

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatTimestamp renders seconds as an SRT time code (HH:MM:SS,mmm).
// Negative input clamps to zero and hours are not wrapped at 24. Milliseconds
// are rounded half-to-even from the fractional part after whole seconds are
// split off; a rounded value of 1000 carries into the seconds.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	whole := math.Floor(seconds)
	millis := math.RoundToEven((seconds - whole) * 1000)
	if millis >= 1000 {
		whole++
		millis -= 1000
	}
	hours, rem := divmod(whole, 3600)
	minutes, secs := divmod(rem, 60)
	return fmt.Sprintf("%02.0f:%02d:%02d,%03d", hours, int(minutes), int(secs), int(millis))
}

// divmod splits a non-negative whole number of seconds in float arithmetic so
// offsets beyond the int64 range still render.
func divmod(x, y float64) (float64, float64) {
	mod := math.Mod(x, y)
	return math.Round((x - mod) / y), mod
}

// ParseTimestamp converts an SRT time code back into seconds. A period is
// accepted in place of the comma.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	// Normalize period to comma (SRT standard uses comma for milliseconds)
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}
