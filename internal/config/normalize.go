package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOverlay()
	c.normalizeFFmpeg()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

// normalizeOverlay keeps output paths relative: they resolve against the
// working directory of each run, not the config file.
func (c *Config) normalizeOverlay() {
	c.Overlay.SRTOutput = strings.TrimSpace(c.Overlay.SRTOutput)
	if c.Overlay.SRTOutput == "" {
		c.Overlay.SRTOutput = defaultSRTOutput
	}
	c.Overlay.OutputVideo = strings.TrimSpace(c.Overlay.OutputVideo)
	if value, ok := os.LookupEnv(envSpeedUnit); ok && strings.TrimSpace(value) != "" && c.Overlay.SpeedUnit == defaultSpeedUnit {
		c.Overlay.SpeedUnit = value
	}
	c.Overlay.SpeedUnit = strings.TrimSpace(c.Overlay.SpeedUnit)
}

func (c *Config) normalizeFFmpeg() {
	c.FFmpeg.FFmpegBinary = strings.TrimSpace(c.FFmpeg.FFmpegBinary)
	if value, ok := os.LookupEnv(envFFmpegBinary); ok && strings.TrimSpace(value) != "" {
		if c.FFmpeg.FFmpegBinary == "" || c.FFmpeg.FFmpegBinary == defaultFFmpegBinary {
			c.FFmpeg.FFmpegBinary = strings.TrimSpace(value)
		}
	}
	if c.FFmpeg.FFmpegBinary == "" {
		c.FFmpeg.FFmpegBinary = defaultFFmpegBinary
	}
	c.FFmpeg.FFprobeBinary = strings.TrimSpace(c.FFmpeg.FFprobeBinary)
	if c.FFmpeg.FFprobeBinary == "" {
		c.FFmpeg.FFprobeBinary = defaultFFprobeBinary
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level
}
