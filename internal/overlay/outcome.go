package overlay

import (
	"errors"

	"github.com/fizzzzyyyyy/bmwrecorder/internal/discovery"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/subtitles"
	"github.com/fizzzzyyyyy/bmwrecorder/internal/telemetry"
)

// Outcome classifies how a run ended. Each outcome maps to a process exit code.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeOther
	OutcomeMissingInput
	OutcomeMalformedData
	OutcomeEncoderFailure
)

// ExitCode returns the process exit status for the outcome.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeOK:
		return 0
	case OutcomeMissingInput:
		return 2
	case OutcomeMalformedData:
		return 3
	case OutcomeEncoderFailure:
		return 4
	default:
		return 1
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeMissingInput:
		return "missing_input"
	case OutcomeMalformedData:
		return "malformed_data"
	case OutcomeEncoderFailure:
		return "encoder_failure"
	default:
		return "error"
	}
}

// Classify maps an error returned by the pipeline to its outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, discovery.ErrInputFileNotFound):
		return OutcomeMissingInput
	case errors.Is(err, telemetry.ErrMissingTimestampField),
		errors.Is(err, telemetry.ErrUnsupportedTimestampFormat),
		errors.Is(err, telemetry.ErrMixedTimestampFormats),
		errors.Is(err, telemetry.ErrMalformedMetadataPayload):
		return OutcomeMalformedData
	case errors.Is(err, subtitles.ErrExternalEncoderFailure):
		return OutcomeEncoderFailure
	default:
		return OutcomeOther
	}
}
