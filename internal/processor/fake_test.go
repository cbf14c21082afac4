package processor

import (
	"context"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mediaslim/internal/optimize"
	"mediaslim/internal/toolrun"
)

// fakeOptimizer records every call and answers from per-op hooks.
type fakeOptimizer struct {
	calls []string

	strip     func(path string) toolrun.Result
	jpeg      func(path string) toolrun.Result
	png       func(path string) toolrun.Result
	heic      func(path string) optimize.HEICResult
	transcode func(path string) optimize.VideoResult
}

var okResult = toolrun.Result{Outcome: toolrun.Success}

func (f *fakeOptimizer) record(op, path string) {
	f.calls = append(f.calls, op+" "+path)
}

func (f *fakeOptimizer) StripMetadata(_ context.Context, path string) toolrun.Result {
	f.record("strip", path)
	if f.strip != nil {
		return f.strip(path)
	}
	return okResult
}

func (f *fakeOptimizer) OptimizeJPEG(_ context.Context, path string) toolrun.Result {
	f.record("jpeg", path)
	if f.jpeg != nil {
		return f.jpeg(path)
	}
	return okResult
}

func (f *fakeOptimizer) OptimizePNG(_ context.Context, path string) toolrun.Result {
	f.record("png", path)
	if f.png != nil {
		return f.png(path)
	}
	return okResult
}

func (f *fakeOptimizer) ConvertHEIC(_ context.Context, path string) optimize.HEICResult {
	f.record("heic", path)
	if f.heic != nil {
		return f.heic(path)
	}
	return optimize.HEICResult{Outcome: toolrun.Success}
}

func (f *fakeOptimizer) TranscodeVideo(_ context.Context, path string) optimize.VideoResult {
	f.record("video", path)
	if f.transcode != nil {
		return f.transcode(path)
	}
	return optimize.VideoResult{Outcome: toolrun.Success}
}

// callsFor returns the ops recorded for paths ending in suffix.
func (f *fakeOptimizer) callsFor(suffix string) []string {
	var ops []string
	for _, c := range f.calls {
		op, path, _ := strings.Cut(c, " ")
		if strings.HasSuffix(path, suffix) {
			ops = append(ops, op)
		}
	}
	return ops
}

func writeSized(t *testing.T, path string, size int64) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(size))
	require.NoError(t, f.Close())
}

func listTree(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, e := range entries {
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}
