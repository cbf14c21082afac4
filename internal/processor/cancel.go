package processor

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// CancelFlag is set once, asynchronously, and read by the loop at
// iteration boundaries. There is no reset.
type CancelFlag struct {
	set atomic.Bool
}

// Cancel raises the flag. Safe from any goroutine.
func (f *CancelFlag) Cancel() {
	if f != nil {
		f.set.Store(true)
	}
}

// Cancelled reports whether Cancel was called. A nil flag is never set.
func (f *CancelFlag) Cancelled() bool {
	return f != nil && f.set.Load()
}

// NotifyOnSignal raises the flag on the first SIGINT or SIGTERM. A second
// signal calls abort, which should kill the in-flight tool, and restores
// default handling so a third one terminates the process. The returned
// func stops delivery.
func (f *CancelFlag) NotifyOnSignal(abort func()) (stop func()) {
	sigs := make(chan os.Signal, 2)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		for n := 0; n < 2; n++ {
			select {
			case <-sigs:
			case <-done:
				return
			}
			if n == 0 {
				f.Cancel()
				continue
			}
			signal.Stop(sigs)
			if abort != nil {
				abort()
			}
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
