package subtitles

// FinalCaptionDuration is how long, in seconds, the last caption stays on
// screen since it has no successor to bound it.
const FinalCaptionDuration = 1.0

// coordinatePlaceholder stands in for a missing latitude or longitude.
const coordinatePlaceholder = "—"

// External tool commands.
const ffmpegCommand = "ffmpeg"

// Captions may run past the end of the video by this many seconds before the
// track is reported as a duration mismatch.
const subtitleOverrunToleranceSeconds = 8.0
