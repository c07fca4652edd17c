package telemetry

import (
	"errors"
	"fmt"
)

var (
	ErrMissingTimestampField      = errors.New("missing timestamp field")
	ErrUnsupportedTimestampFormat = errors.New("unsupported timestamp format")
	ErrMixedTimestampFormats      = errors.New("mixed timestamp formats")
	ErrMalformedMetadataPayload   = errors.New("malformed metadata payload")
)

// MissingTimestampFieldError reports the first record without a timestamp key.
type MissingTimestampFieldError struct {
	Index int
}

func (e *MissingTimestampFieldError) Error() string {
	return fmt.Sprintf("each telemetry entry must include a 'timestamp' field (record %d has none)", e.Index)
}

func (e *MissingTimestampFieldError) Is(target error) bool {
	return target == ErrMissingTimestampField
}

// UnsupportedTimestampFormatError carries the raw value no parsing rule accepted.
type UnsupportedTimestampFormatError struct {
	Value any
}

func (e *UnsupportedTimestampFormatError) Error() string {
	return fmt.Sprintf("unsupported timestamp format: %v", e.Value)
}

func (e *UnsupportedTimestampFormatError) Is(target error) bool {
	return target == ErrUnsupportedTimestampFormat
}

// MixedTimestampFormatsError is returned when a batch mixes timestamp variants.
type MixedTimestampFormatsError struct {
	Index  int
	Reason string
}

func (e *MixedTimestampFormatsError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
}

func (e *MixedTimestampFormatsError) Is(target error) bool {
	return target == ErrMixedTimestampFormats
}

// MalformedPayloadError describes a telemetry document with an unusable shape.
type MalformedPayloadError struct {
	Reason string
	Err    error
}

func (e *MalformedPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed telemetry payload: %s: %v", e.Reason, e.Err)
	}
	return "malformed telemetry payload: " + e.Reason
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

func (e *MalformedPayloadError) Is(target error) bool {
	return target == ErrMalformedMetadataPayload
}
