// Package main hosts the bmwoverlay CLI entrypoint and command graph.
//
// The Cobra command tree turns a recording folder into an SRT caption track
// and, unless --srt-only is set, burns it into a copy of the video with
// ffmpeg. Supporting commands preview the captions, run preflight checks,
// list past runs, print the telemetry JSON Schema, and scaffold a config file.
//
// Keep this package lean: behaviour lives in the internal packages and the
// commands here only resolve configuration, build collaborators, and format
// output.
package main
