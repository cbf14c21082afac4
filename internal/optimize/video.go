package optimize

import (
	"context"
	"fmt"
	"os"

	"mediaslim/internal/toolrun"
)

// VideoResult describes one transcode attempt.
type VideoResult struct {
	Outcome      toolrun.Outcome
	OriginalSize int64
	NewSize      int64
	// Saved is OriginalSize-NewSize when Replaced, else zero.
	Saved    int64
	Replaced bool
	// Err is set for tool failures and filesystem errors. A timeout is
	// reported through Outcome alone, with zero savings.
	Err error
}

// TranscodeVideo encodes src to a name.opt.ext sibling and swaps it in
// only when strictly smaller. The candidate never outlives the call.
func (t *Toolchain) TranscodeVideo(ctx context.Context, src string) VideoResult {
	info, err := os.Stat(src)
	if err != nil {
		return VideoResult{Outcome: toolrun.ToolFailure, Err: err}
	}
	out := VideoResult{OriginalSize: info.Size()}

	dst := candidatePath(src)
	defer removeQuietly(dst)

	res := t.runner.Run(ctx, t.cfg.Timeouts.Video, t.cfg.Tools.FFmpeg, ffmpegArgs(src, dst, t.cfg.Video)...)
	out.Outcome = res.Outcome
	switch res.Outcome {
	case toolrun.TimedOut:
		return out
	case toolrun.ToolFailure:
		out.Err = res.Err
		if out.Err == nil {
			out.Err = fmt.Errorf("%s exited with status %d", t.cfg.Tools.FFmpeg, res.ExitCode)
		}
		return out
	}

	cand, err := os.Stat(dst)
	if err != nil {
		out.Outcome = toolrun.ToolFailure
		out.Err = fmt.Errorf("%s produced no output: %w", t.cfg.Tools.FFmpeg, err)
		return out
	}
	out.NewSize = cand.Size()
	if out.NewSize == 0 {
		out.Outcome = toolrun.ToolFailure
		out.Err = fmt.Errorf("%s produced an empty file", t.cfg.Tools.FFmpeg)
		return out
	}
	if out.NewSize >= out.OriginalSize {
		return out
	}

	if err := os.Rename(dst, src); err != nil {
		out.Outcome = toolrun.ToolFailure
		out.Err = fmt.Errorf("replace original: %w", err)
		return out
	}
	out.Replaced = true
	out.Saved = out.OriginalSize - out.NewSize
	return out
}
