// Package config loads, normalizes, and validates bmwoverlay configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the BMWOVERLAY_FFMPEG and BMWOVERLAY_SPEED_UNIT
// environment fallbacks. Command-line flags are applied on top by the CLI.
package config
