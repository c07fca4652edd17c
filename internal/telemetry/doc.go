// Package telemetry turns raw telemetry records into an ordered caption timeline.
//
// Records arrive with timestamps in several shapes (ISO-8601 instants, bare
// clock text, raw seconds). ParseTimestamp classifies a single value, Sequence
// enforces that a batch uses one variant, computes offsets, and orders the
// result with a stable sort. Auxiliary numeric fields degrade to absent instead
// of failing, while timestamp problems abort the whole batch.
package telemetry
