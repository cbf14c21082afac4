package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"mediaslim/internal/config"
	"mediaslim/internal/processor"
	"mediaslim/internal/tui"
)

// runCleanup sweeps leftover intermediates and reports. No tools are needed.
func runCleanup(out io.Writer, dir string, cfg config.Config, log logrus.FieldLogger) error {
	m, err := processor.NewMatcher(cfg.SweepPatterns())
	if err != nil {
		return err
	}

	res, err := processor.Sweep(dir, m, log)
	if err != nil {
		return fmt.Errorf("sweep %s: %w", dir, err)
	}
	log.WithFields(logrus.Fields{
		"dir":     dir,
		"deleted": res.Deleted,
		"failed":  res.Failed,
	}).Info("cleanup complete")

	printReport(out, "Cleanup complete", tui.CleanupRows(displayDir(dir), res))
	return nil
}
