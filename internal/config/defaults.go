package config

const (
	defaultConfigPath    = "~/.config/bmwoverlay/config.toml"
	projectConfigName    = "bmwoverlay.toml"
	defaultLogDir        = "~/.local/share/bmwoverlay/logs"
	defaultStateDir      = "~/.local/share/bmwoverlay"
	historyFileName      = "history.db"
	defaultSpeedUnit     = "mph"
	defaultSRTOutput     = "output/telemetry.srt"
	defaultOutputVideo   = "output/video_with_overlay.mp4"
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"

	envFFmpegBinary = "BMWOVERLAY_FFMPEG"
	envSpeedUnit    = "BMWOVERLAY_SPEED_UNIT"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			StateDir: defaultStateDir,
		},
		Overlay: Overlay{
			SpeedUnit:   defaultSpeedUnit,
			SRTOutput:   defaultSRTOutput,
			OutputVideo: defaultOutputVideo,
		},
		FFmpeg: FFmpeg{
			FFmpegBinary:  defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
