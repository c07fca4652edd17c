// Package overlay orchestrates a render run: it finds the video and telemetry
// in a recording folder, normalizes the telemetry, writes the subtitle track,
// and optionally burns it into a new video with ffmpeg.
//
// Classify maps the errors a run can return onto the CLI exit codes.
package overlay
