package toolrun

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// Outcome classifies how a bounded invocation ended.
type Outcome int

const (
	Success Outcome = iota
	ToolFailure
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case ToolFailure:
		return "failure"
	case TimedOut:
		return "timeout"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is consumed immediately by the calling handler.
type Result struct {
	Outcome  Outcome
	ExitCode int
	Pid      int
	Elapsed  time.Duration
	Err      error
}

// OK reports whether the tool succeeded.
func (r Result) OK() bool { return r.Outcome == Success }

// Runner starts a command and waits at most timeout for it.
type Runner interface {
	Run(ctx context.Context, timeout time.Duration, name string, args ...string) Result
}

// waitDelay bounds how long Wait lingers after the kill for I/O to drain.
const waitDelay = 5 * time.Second

// Exec is the os/exec backed Runner.
type Exec struct{}

var _ Runner = Exec{}

func (Exec) Run(ctx context.Context, timeout time.Duration, name string, args ...string) Result {
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(tctx, name, args...)
	// nil streams are wired to the null device.
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.WaitDelay = waitDelay
	isolate(cmd)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Result{Outcome: ToolFailure, ExitCode: -1, Elapsed: time.Since(start), Err: err}
	}
	res := Result{Pid: cmd.Process.Pid}

	err := cmd.Wait()
	res.Elapsed = time.Since(start)
	res.ExitCode = -1
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	switch {
	case err == nil:
		res.Outcome = Success
	case errors.Is(tctx.Err(), context.DeadlineExceeded):
		res.Outcome = TimedOut
		res.Err = fmt.Errorf("%s: killed after %s", name, timeout)
	default:
		res.Outcome = ToolFailure
		res.Err = fmt.Errorf("%s: %w", name, err)
	}
	return res
}
