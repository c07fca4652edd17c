package deps

// OverlayRequirements lists the binaries used by a render run. ffmpeg is only
// required when a video is burned; ffprobe is always optional because the
// duration check is advisory.
func OverlayRequirements(ffmpegBinary, ffprobeBinary string, burn bool) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     ffmpegBinary,
			Description: "Burns the subtitle track into the output video",
			Optional:    !burn,
		},
		{
			Name:        "FFprobe",
			Command:     ffprobeBinary,
			Description: "Reads the video duration to check caption coverage",
			Optional:    true,
		},
	}
}
