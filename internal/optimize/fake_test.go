package optimize

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mediaslim/internal/config"
	"mediaslim/internal/toolrun"
)

type call struct {
	name    string
	args    []string
	timeout time.Duration
}

// fakeRunner dispatches on tool name; unknown tools succeed without output.
type fakeRunner struct {
	calls    []call
	handlers map[string]func(args []string) toolrun.Result
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{handlers: map[string]func([]string) toolrun.Result{}}
}

func (f *fakeRunner) on(name string, fn func(args []string) toolrun.Result) *fakeRunner {
	f.handlers[name] = fn
	return f
}

func (f *fakeRunner) Run(_ context.Context, timeout time.Duration, name string, args ...string) toolrun.Result {
	f.calls = append(f.calls, call{name: name, args: args, timeout: timeout})
	if fn, ok := f.handlers[name]; ok {
		return fn(args)
	}
	return toolrun.Result{Outcome: toolrun.Success}
}

func (f *fakeRunner) called(name string) bool {
	for _, c := range f.calls {
		if c.name == name {
			return true
		}
	}
	return false
}

var (
	jpegBytes = append([]byte{0xff, 0xd8, 0xff, 0xe0}, make([]byte, 32)...)
	webpBytes = []byte("RIFF\x24\x00\x00\x00WEBPVP8 \x18\x00\x00\x00")
	heicBytes = []byte("\x00\x00\x00\x18ftypheic\x00\x00\x00\x00mif1heic")
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func writeOutput(path string, data []byte) toolrun.Result {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return toolrun.Result{Outcome: toolrun.ToolFailure, ExitCode: 1, Err: err}
	}
	return toolrun.Result{Outcome: toolrun.Success}
}

var (
	fail    = toolrun.Result{Outcome: toolrun.ToolFailure, ExitCode: 1}
	timeout = toolrun.Result{Outcome: toolrun.TimedOut, ExitCode: -1}
)

func testToolchain(r toolrun.Runner) *Toolchain {
	return New(config.Default(), r)
}
