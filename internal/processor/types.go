package processor

import (
	"context"

	"mediaslim/internal/optimize"
	"mediaslim/internal/toolrun"
)

// Optimizer is the set of per-file operations the loop dispatches to.
// optimize.Toolchain is the production implementation.
type Optimizer interface {
	StripMetadata(ctx context.Context, path string) toolrun.Result
	OptimizeJPEG(ctx context.Context, path string) toolrun.Result
	OptimizePNG(ctx context.Context, path string) toolrun.Result
	ConvertHEIC(ctx context.Context, path string) optimize.HEICResult
	TranscodeVideo(ctx context.Context, path string) optimize.VideoResult
}

var _ Optimizer = (*optimize.Toolchain)(nil)

// Counters aggregate per-category outcomes. Only the loop mutates them;
// everyone else sees copies.
type Counters struct {
	MetadataCleaned int
	MetadataTags    int
	JPEGOptimized   int
	PNGOptimized    int
	HEICFound       int
	HEICConverted   int
	VideosFound     int
	VideosOptimized int
	VideoErrors     int
	VideoTimeouts   int
	VideoBytesSaved int64
	// Failures and Timeouts count soft failures across every operation.
	Failures int
	Timeouts int
}

// Summary is what Run reports, whether it finished or was interrupted.
type Summary struct {
	Counters
	Total     int
	Processed int
	Cancelled bool
}

// ProgressUpdate is a snapshot sent to the display after each step.
type ProgressUpdate struct {
	Total     int
	Processed int
	// Current is the file being worked on, empty between files.
	Current  string
	Counters Counters
	// Note carries a soft-failure message worth showing the user.
	Note string
}
