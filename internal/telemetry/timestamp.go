package telemetry

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which variant a Timestamp holds.
type Kind int

const (
	KindNumeric Kind = iota + 1
	KindAbsolute
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindAbsolute:
		return "absolute"
	default:
		return "unknown"
	}
}

// Timestamp is a parsed timestamp: either raw seconds or an instant.
// Only the fields belonging to Kind are meaningful.
type Timestamp struct {
	Kind    Kind
	Seconds float64
	Instant time.Time
	// Aware reports whether the source text carried a UTC offset.
	Aware bool
}

// Numeric builds a numeric timestamp.
func Numeric(seconds float64) Timestamp {
	return Timestamp{Kind: KindNumeric, Seconds: seconds}
}

// Absolute builds an absolute timestamp.
func Absolute(instant time.Time, aware bool) Timestamp {
	return Timestamp{Kind: KindAbsolute, Instant: instant, Aware: aware}
}

// clockReferenceDate is the calendar day assigned to bare clock strings.
var clockReferenceDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	clockWithFraction = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2})\.(\d{1,6})$`)
	clockWhole        = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2})$`)
	isoOffsetSuffix   = regexp.MustCompile(`[+-]\d{2}(:?\d{2})?$`)
)

var isoDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15",
}

var isoOffsetLayouts = []string{"-07:00", "-0700", "-07"}

// ParseTimestamp classifies a raw timestamp value. The rules are tried in a
// fixed order and the first match wins: native number, numeric string, ISO-8601,
// HH:MM:SS.ffffff, HH:MM:SS.
func ParseTimestamp(value any) (Timestamp, error) {
	if seconds, ok, err := nativeNumber(value); ok {
		if err != nil {
			return Timestamp{}, &UnsupportedTimestampFormatError{Value: value}
		}
		return Numeric(seconds), nil
	}

	text, ok := value.(string)
	if !ok {
		return Timestamp{}, &UnsupportedTimestampFormatError{Value: value}
	}
	text = strings.TrimSpace(text)

	if hexLiteral(text) {
		return Timestamp{}, &UnsupportedTimestampFormatError{Value: text}
	}
	if seconds, err := strconv.ParseFloat(text, 64); err == nil {
		if !isFinite(seconds) {
			return Timestamp{}, &UnsupportedTimestampFormatError{Value: text}
		}
		return Numeric(seconds), nil
	}

	candidate := text
	if strings.HasSuffix(candidate, "Z") {
		candidate = strings.TrimSuffix(candidate, "Z") + "+00:00"
	}
	if instant, aware, ok := parseISO(candidate); ok {
		return Absolute(instant, aware), nil
	}

	if instant, ok := parseClock(text, clockWithFraction); ok {
		return Absolute(instant, false), nil
	}
	if instant, ok := parseClock(text, clockWhole); ok {
		return Absolute(instant, false), nil
	}

	return Timestamp{}, &UnsupportedTimestampFormatError{Value: text}
}

// nativeNumber reports whether value is already a number. The error is set for
// numbers that cannot serve as a timestamp (non-finite or out of range).
func nativeNumber(value any) (float64, bool, error) {
	var f float64
	switch v := value.(type) {
	case json.Number:
		parsed, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, true, err
		}
		f = parsed
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	default:
		return 0, false, nil
	}
	if !isFinite(f) {
		return 0, true, strconv.ErrRange
	}
	return f, true, nil
}

// hexLiteral reports a 0x-prefixed number. strconv accepts hex floats but
// timestamp text is decimal only.
func hexLiteral(text string) bool {
	unsigned := strings.TrimLeft(text, "+-")
	return len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X')
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func parseISO(text string) (time.Time, bool, bool) {
	if text == "" {
		return time.Time{}, false, false
	}
	body, offset := text, ""
	// A date-only value ends in "-DD", which the offset pattern would also match.
	if len(text) > len("2006-01-02") {
		if loc := isoOffsetSuffix.FindStringIndex(text); loc != nil && loc[0] >= len("2006-01-02T15") {
			body, offset = text[:loc[0]], text[loc[0]:]
		}
	}

	if offset == "" {
		if t, err := time.ParseInLocation("2006-01-02", body, time.UTC); err == nil {
			return t, false, true
		}
	}
	for _, layout := range isoDateTimeLayouts {
		if offset == "" {
			if t, err := time.ParseInLocation(layout, body, time.UTC); err == nil {
				return t.Truncate(time.Microsecond), false, true
			}
			continue
		}
		for _, offLayout := range isoOffsetLayouts {
			if t, err := time.Parse(layout+offLayout, body+offset); err == nil {
				return t.Truncate(time.Microsecond), true, true
			}
		}
	}
	return time.Time{}, false, false
}

func parseClock(text string, pattern *regexp.Regexp) (time.Time, bool) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return time.Time{}, false
	}
	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	second, _ := strconv.Atoi(match[3])
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}
	micros := 0
	if len(match) > 4 && match[4] != "" {
		digits := match[4] + strings.Repeat("0", 6-len(match[4]))
		micros, _ = strconv.Atoi(digits)
	}
	return clockReferenceDate.Add(
		time.Duration(hour)*time.Hour +
			time.Duration(minute)*time.Minute +
			time.Duration(second)*time.Second +
			time.Duration(micros)*time.Microsecond,
	), true
}

// FormatISO renders an absolute timestamp in ISO-8601: microseconds are shown
// only when non-zero and the UTC offset only for offset-aware instants.
func (t Timestamp) FormatISO() string {
	var b strings.Builder
	b.WriteString(t.Instant.Format("2006-01-02T15:04:05"))
	if micros := t.Instant.Nanosecond() / 1000; micros != 0 {
		b.WriteString("." + leftPad(strconv.Itoa(micros), 6))
	}
	if t.Aware {
		b.WriteString(t.Instant.Format("-07:00"))
	}
	return b.String()
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
