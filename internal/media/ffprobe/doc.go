// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// The overlay pipeline uses it to learn the source video duration so a
// written subtitle track can be checked for captions that run past the end.
package ffprobe
