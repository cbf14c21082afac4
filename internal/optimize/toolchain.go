// Package optimize wraps each external optimizer with its argument list and
// the cleanup its failure paths owe the filesystem.
package optimize

import (
	"context"

	"mediaslim/internal/config"
	"mediaslim/internal/toolrun"
)

// Toolchain is the shell-out implementation of every per-file operation.
type Toolchain struct {
	runner toolrun.Runner
	cfg    config.Config
}

// New returns a Toolchain that invokes tools through runner.
func New(cfg config.Config, runner toolrun.Runner) *Toolchain {
	return &Toolchain{runner: runner, cfg: cfg}
}

// StripMetadata removes every tag from an image in place. A failure or
// timeout leaves the file as it was; exiftool only swaps in its rewritten
// copy after a complete write.
func (t *Toolchain) StripMetadata(ctx context.Context, path string) toolrun.Result {
	return t.runner.Run(ctx, t.cfg.Timeouts.Image, t.cfg.Tools.ExifTool, stripArgs(path)...)
}

// OptimizeJPEG re-encodes a JPEG in place, capped at the configured quality.
func (t *Toolchain) OptimizeJPEG(ctx context.Context, path string) toolrun.Result {
	return t.runner.Run(ctx, t.cfg.Timeouts.Image, t.cfg.Tools.JpegOptim, jpegArgs(path, t.cfg.JPEG.MaxQuality)...)
}

// OptimizePNG recompresses a PNG in place.
func (t *Toolchain) OptimizePNG(ctx context.Context, path string) toolrun.Result {
	return t.runner.Run(ctx, t.cfg.Timeouts.Image, t.cfg.Tools.OptiPNG, pngArgs(path, t.cfg.PNG.Level)...)
}
