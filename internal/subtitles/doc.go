// Package subtitles renders telemetry captions as an SRT track and burns that
// track into a video.
//
// BuildCaptions derives one display window per telemetry entry, Render and
// WriteSRT produce the numbered-block text, ValidateSRTContent sanity-checks the
// written file against the video duration, and Burner drives ffmpeg's
// subtitles filter through an injectable command runner so tests never spawn
// the real encoder.
package subtitles
