package optimize

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mediaslim/internal/toolrun"
	"mediaslim/pkg/imgutil"
)

// ErrOutputExists is returned when a conversion target is already on disk.
// The pipeline deletes its intermediate, so it refuses to write over a
// file it did not create.
var ErrOutputExists = errors.New("conversion output already exists")

// HEICResult describes one HEIC to WebP conversion.
type HEICResult struct {
	Outcome toolrun.Outcome
	// Stage names where the pipeline stopped early: "preflight", "decode",
	// "encode" or "finalize".
	Stage    string
	WebPPath string
	Err      error
}

// Converted reports whether the HEIC was replaced by a WebP.
func (r HEICResult) Converted() bool { return r.Outcome == toolrun.Success }

// ConvertHEIC decodes src to an intermediate JPEG and encodes that to WebP.
// On full success only the WebP remains. Otherwise src is untouched and
// neither the intermediate nor a partial WebP is left behind.
func (t *Toolchain) ConvertHEIC(ctx context.Context, src string) HEICResult {
	jpg, webp := siblingPaths(src)
	for _, p := range []string{jpg, webp} {
		if _, err := os.Lstat(p); err == nil {
			return HEICResult{Outcome: toolrun.ToolFailure, Stage: "preflight", Err: fmt.Errorf("%s: %w", p, ErrOutputExists)}
		}
	}

	res := t.runner.Run(ctx, t.cfg.Timeouts.Image, t.cfg.Tools.HeifConvert, heifArgs(src, jpg)...)
	if res.OK() && !imgutil.IsKind(jpg, imgutil.KindJPEG) {
		res = toolrun.Result{Outcome: toolrun.ToolFailure, ExitCode: res.ExitCode, Err: fmt.Errorf("%s produced no JPEG", t.cfg.Tools.HeifConvert)}
	}
	if !res.OK() {
		removeQuietly(jpg)
		return HEICResult{Outcome: res.Outcome, Stage: "decode", Err: res.Err}
	}

	res = t.runner.Run(ctx, t.cfg.Timeouts.Image, t.cfg.Tools.CWebP, webpArgs(jpg, webp, t.cfg.HEIC.WebPQuality)...)
	if res.OK() && !imgutil.IsKind(webp, imgutil.KindWebP) {
		res = toolrun.Result{Outcome: toolrun.ToolFailure, ExitCode: res.ExitCode, Err: fmt.Errorf("%s produced no WebP", t.cfg.Tools.CWebP)}
	}
	if !res.OK() {
		removeQuietly(jpg, webp)
		return HEICResult{Outcome: res.Outcome, Stage: "encode", Err: res.Err}
	}

	removeQuietly(jpg)
	if err := os.Remove(src); err != nil {
		// Keep the original and drop the WebP rather than leave both.
		removeQuietly(webp)
		return HEICResult{Outcome: toolrun.ToolFailure, Stage: "finalize", Err: fmt.Errorf("remove original: %w", err)}
	}
	return HEICResult{Outcome: toolrun.Success, WebPPath: webp}
}

func removeQuietly(paths ...string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}
