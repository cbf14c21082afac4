// Package config holds the tunables for a mediaslim run: external tool
// names, encoder quality settings, per-invocation timeouts and the patterns
// the sweeper treats as leftover intermediates.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Tools names the external binaries. Each must resolve on PATH.
type Tools struct {
	ExifTool    string `yaml:"exiftool"`
	JpegOptim   string `yaml:"jpegoptim"`
	OptiPNG     string `yaml:"optipng"`
	HeifConvert string `yaml:"heif_convert"`
	CWebP       string `yaml:"cwebp"`
	FFmpeg      string `yaml:"ffmpeg"`
}

// Names returns the tool names in the order they are checked.
func (t Tools) Names() []string {
	return []string{t.ExifTool, t.JpegOptim, t.OptiPNG, t.HeifConvert, t.CWebP, t.FFmpeg}
}

type JPEG struct {
	MaxQuality int `yaml:"max_quality"`
}

type PNG struct {
	Level int `yaml:"level"`
}

type HEIC struct {
	ThresholdBytes int64 `yaml:"threshold_bytes"`
	WebPQuality    int   `yaml:"webp_quality"`
}

type Video struct {
	Codec        string `yaml:"codec"`
	CRF          int    `yaml:"crf"`
	Preset       string `yaml:"preset"`
	AudioCodec   string `yaml:"audio_codec"`
	AudioBitrate string `yaml:"audio_bitrate"`
}

// Timeouts bound a single tool invocation.
type Timeouts struct {
	Image time.Duration `yaml:"image"`
	Video time.Duration `yaml:"video"`
}

type Sweep struct {
	Patterns []string `yaml:"patterns"`
}

// Config is the full run configuration.
type Config struct {
	Tools    Tools    `yaml:"tools"`
	JPEG     JPEG     `yaml:"jpeg"`
	PNG      PNG      `yaml:"png"`
	HEIC     HEIC     `yaml:"heic"`
	Video    Video    `yaml:"video"`
	Timeouts Timeouts `yaml:"timeouts"`
	Sweep    Sweep    `yaml:"sweep"`
}

// DefaultSweepPatterns match the intermediates the handlers and tools can
// leave behind when a run is interrupted.
var DefaultSweepPatterns = []string{
	"*.opt.mp4",
	"*.opt.mov",
	"*_exiftool_tmp",
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tools: Tools{
			ExifTool:    "exiftool",
			JpegOptim:   "jpegoptim",
			OptiPNG:     "optipng",
			HeifConvert: "heif-convert",
			CWebP:       "cwebp",
			FFmpeg:      "ffmpeg",
		},
		JPEG: JPEG{MaxQuality: 60},
		PNG:  PNG{Level: 7},
		HEIC: HEIC{
			ThresholdBytes: 3 * 1024 * 1024,
			WebPQuality:    60,
		},
		Video: Video{
			Codec:        "libx264",
			CRF:          28,
			Preset:       "medium",
			AudioCodec:   "aac",
			AudioBitrate: "128k",
		},
		Timeouts: Timeouts{
			Image: 2 * time.Minute,
			Video: time.Hour,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path yields the defaults; a named file that cannot be read is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}

// SweepPatterns returns the built-in patterns followed by configured extras.
func (c Config) SweepPatterns() []string {
	out := make([]string, 0, len(DefaultSweepPatterns)+len(c.Sweep.Patterns))
	out = append(out, DefaultSweepPatterns...)
	out = append(out, c.Sweep.Patterns...)
	return out
}

// Validate checks ranges and names. The first problem found is returned.
func (c Config) Validate() error {
	tools := []struct{ field, name string }{
		{"tools.exiftool", c.Tools.ExifTool},
		{"tools.jpegoptim", c.Tools.JpegOptim},
		{"tools.optipng", c.Tools.OptiPNG},
		{"tools.heif_convert", c.Tools.HeifConvert},
		{"tools.cwebp", c.Tools.CWebP},
		{"tools.ffmpeg", c.Tools.FFmpeg},
	}
	for _, t := range tools {
		if strings.TrimSpace(t.name) == "" {
			return fmt.Errorf("%s: tool name must not be empty", t.field)
		}
	}

	if err := inRange("jpeg.max_quality", c.JPEG.MaxQuality, 1, 100); err != nil {
		return err
	}
	if err := inRange("png.level", c.PNG.Level, 0, 7); err != nil {
		return err
	}
	if err := inRange("heic.webp_quality", c.HEIC.WebPQuality, 1, 100); err != nil {
		return err
	}
	if c.HEIC.ThresholdBytes <= 0 {
		return fmt.Errorf("heic.threshold_bytes: must be positive, got %d", c.HEIC.ThresholdBytes)
	}
	if err := inRange("video.crf", c.Video.CRF, 0, 51); err != nil {
		return err
	}
	if c.Video.Codec == "" || c.Video.Preset == "" || c.Video.AudioCodec == "" || c.Video.AudioBitrate == "" {
		return fmt.Errorf("video: codec, preset, audio_codec and audio_bitrate are required")
	}
	if c.Timeouts.Image <= 0 {
		return fmt.Errorf("timeouts.image: must be positive, got %s", c.Timeouts.Image)
	}
	if c.Timeouts.Video <= 0 {
		return fmt.Errorf("timeouts.video: must be positive, got %s", c.Timeouts.Video)
	}
	for _, p := range c.Sweep.Patterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("sweep.patterns: empty pattern")
		}
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("sweep.patterns: %q: %w", p, err)
		}
	}
	return nil
}

func inRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s: %d out of range [%d, %d]", field, v, lo, hi)
	}
	return nil
}
