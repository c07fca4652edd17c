package telemetry

import (
	"fmt"
	"sort"
	"time"
)

// Entry is one normalized telemetry sample positioned on the caption timeline.
type Entry struct {
	// Offset is the position in seconds relative to the sequence start.
	Offset float64
	// Display is the human-readable timestamp shown in the caption.
	Display   string
	Speed     *float64
	Latitude  *float64
	Longitude *float64
}

type parsedRecord struct {
	ts     Timestamp
	record RawRecord
}

// Sequence normalizes every record and returns the entries ordered by offset.
// Failures abort the whole batch; no partial result is returned.
func Sequence(records []RawRecord) ([]Entry, error) {
	entries, _, err := SequenceWithMode(records)
	return entries, err
}

// SequenceWithMode is Sequence that also reports the batch's timestamp variant.
// The kind is zero for an empty batch.
func SequenceWithMode(records []RawRecord) ([]Entry, Kind, error) {
	parsed := make([]parsedRecord, 0, len(records))
	for i, record := range records {
		raw, ok := record.Timestamp()
		if !ok {
			return nil, 0, &MissingTimestampFieldError{Index: i}
		}
		ts, err := ParseTimestamp(raw)
		if err != nil {
			return nil, 0, fmt.Errorf("record %d: %w", i, err)
		}
		parsed = append(parsed, parsedRecord{ts: ts, record: record})
	}
	if len(parsed) == 0 {
		return []Entry{}, 0, nil
	}

	mode, err := batchMode(parsed)
	if err != nil {
		return nil, 0, err
	}

	var entries []Entry
	switch mode {
	case KindAbsolute:
		entries = absoluteEntries(parsed)
	case KindNumeric:
		entries = numericEntries(parsed)
	default:
		return nil, 0, fmt.Errorf("unhandled timestamp kind %v", mode)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Offset < entries[j].Offset
	})
	return entries, mode, nil
}

// batchMode picks the batch variant: absolute when any value is absolute.
// Absolute batches must contain only absolute values with the same awareness.
func batchMode(parsed []parsedRecord) (Kind, error) {
	firstAbsolute := -1
	for i, p := range parsed {
		if p.ts.Kind == KindAbsolute {
			firstAbsolute = i
			break
		}
	}
	if firstAbsolute < 0 {
		return KindNumeric, nil
	}

	aware := parsed[firstAbsolute].ts.Aware
	for i, p := range parsed {
		switch p.ts.Kind {
		case KindNumeric:
			return 0, &MixedTimestampFormatsError{
				Index:  i,
				Reason: "mixing absolute datetime strings with raw numeric seconds is not supported",
			}
		case KindAbsolute:
			if p.ts.Aware != aware {
				return 0, &MixedTimestampFormatsError{
					Index:  i,
					Reason: "mixing timestamps with and without a UTC offset is not supported",
				}
			}
		default:
			return 0, fmt.Errorf("record %d: unhandled timestamp kind %v", i, p.ts.Kind)
		}
	}
	return KindAbsolute, nil
}

func absoluteEntries(parsed []parsedRecord) []Entry {
	start := parsed[0].ts.Instant
	for _, p := range parsed[1:] {
		if p.ts.Instant.Before(start) {
			start = p.ts.Instant
		}
	}
	entries := make([]Entry, 0, len(parsed))
	for _, p := range parsed {
		entries = append(entries, newEntry(secondsBetween(start, p.ts.Instant), p.ts.FormatISO(), p.record))
	}
	return entries
}

func numericEntries(parsed []parsedRecord) []Entry {
	entries := make([]Entry, 0, len(parsed))
	for _, p := range parsed {
		entries = append(entries, newEntry(p.ts.Seconds, fmt.Sprintf("%.3fs", p.ts.Seconds), p.record))
	}
	return entries
}

func newEntry(offset float64, display string, record RawRecord) Entry {
	return Entry{
		Offset:    offset,
		Display:   display,
		Speed:     OptionalFloat(record[FieldSpeed]),
		Latitude:  OptionalFloat(record[FieldLatitude]),
		Longitude: OptionalFloat(record[FieldLongitude]),
	}
}

// secondsBetween returns end-start in fractional seconds at microsecond
// precision. time.Duration saturates near 292 years, so the difference is
// taken on Unix seconds; four-digit years keep the microsecond count well
// inside int64.
func secondsBetween(start, end time.Time) float64 {
	seconds := end.Unix() - start.Unix()
	micros := int64(end.Nanosecond()/1000 - start.Nanosecond()/1000)
	return float64(seconds*1_000_000+micros) / 1e6
}
