package cmd

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"mediaslim/internal/config"
	"mediaslim/internal/optimize"
	"mediaslim/internal/processor"
	"mediaslim/internal/toolcheck"
	"mediaslim/internal/tui"
)

type runIO struct {
	out    io.Writer
	errOut io.Writer
	// tui selects the interactive display over the plain bar.
	tui bool
}

// runOptimize is a full run: preconditions, the loop, the sweep, the report.
func runOptimize(ctx context.Context, rio runIO, dir string, cfg config.Config, log *logrus.Logger, d deps) error {
	if err := toolcheck.CheckWith(cfg.Tools.Names(), d.lookPath); err != nil {
		return err
	}
	before, err := processor.FolderSize(dir)
	if err != nil {
		return fmt.Errorf("measure %s: %w", dir, err)
	}
	skip, err := processor.NewMatcher(cfg.SweepPatterns())
	if err != nil {
		return err
	}

	// The first interrupt stops the loop after the current file; the
	// second cancels runCtx, which kills the tool still running.
	runCtx, abort := context.WithCancel(ctx)
	defer abort()
	cancel := &processor.CancelFlag{}
	stop := cancel.NotifyOnSignal(abort)
	defer stop()

	updates := make(chan processor.ProgressUpdate, 64)
	uiDone := make(chan struct{})
	if rio.tui {
		program := tea.NewProgram(tui.NewModel(updates, cancel.Cancel, abort),
			tea.WithOutput(rio.out),
			tea.WithoutSignalHandler(),
		)
		go func() {
			defer close(uiDone)
			if _, err := program.Run(); err != nil {
				log.WithError(err).Warn("progress display stopped")
				for range updates {
				}
			}
		}()
	} else {
		go func() {
			defer close(uiDone)
			tui.RunPlain(rio.errOut, updates)
		}()
	}

	log.WithFields(logrus.Fields{"dir": dir, "size_before": before}).Info("run started")
	summary, err := processor.Run(runCtx, dir, processor.Options{
		Optimizer:     optimize.New(cfg, d.runner),
		Cancel:        cancel,
		HEICThreshold: cfg.HEIC.ThresholdBytes,
		Skip:          skip,
		Log:           log,
	}, updates)
	close(updates)
	<-uiDone
	if err != nil {
		return err
	}

	report := tui.Report{Dir: displayDir(dir), Summary: summary, Before: before}
	if !summary.Cancelled {
		res, err := processor.Sweep(dir, skip, log)
		if err != nil {
			log.WithError(err).Warn("sweep failed")
		} else {
			report.Swept = &res
		}
	}
	report.After, report.AfterErr = processor.FolderSize(dir)
	if report.AfterErr != nil {
		log.WithError(report.AfterErr).Warn("could not measure folder after run")
	}

	log.WithFields(logrus.Fields{
		"processed": summary.Processed,
		"total":     summary.Total,
		"cancelled": summary.Cancelled,
		"failures":  summary.Failures,
		"timeouts":  summary.Timeouts,
	}).Info("run finished")
	printReport(rio.out, report.Headline(), report.Rows())
	return nil
}
