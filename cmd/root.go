package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mediaslim/internal/config"
	"mediaslim/internal/logging"
	"mediaslim/internal/toolcheck"
	"mediaslim/internal/toolrun"
	"mediaslim/internal/tui"
)

type options struct {
	cleanup    bool
	configPath string
	logFile    string
	verbose    bool
	noTUI      bool
}

// deps are the process-level collaborators, replaced in tests.
type deps struct {
	lookPath   toolcheck.LookPathFunc
	runner     toolrun.Runner
	isTerminal func() bool
}

func defaultDeps() deps {
	return deps{
		lookPath: exec.LookPath,
		runner:   toolrun.Exec{},
		isTerminal: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

func newRootCmd(d deps) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "mediaslim [flags] [dir]",
		Short: "mediaslim - shrink a photo and video folder in place",
		Long: "mediaslim strips image metadata, recompresses JPEG and PNG files, converts large HEIC\n" +
			"photos to WebP and re-encodes videos, keeping a result only when it is smaller.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			dir, err := resolveDir(dir)
			if err != nil {
				return err
			}

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			useTUI := !opts.cleanup && !opts.noTUI && d.isTerminal()
			log, closeLog, err := logging.New(logging.Options{
				Verbose: opts.verbose,
				File:    opts.logFile,
				Quiet:   useTUI,
			})
			if err != nil {
				return err
			}
			defer closeLog()

			if opts.cleanup {
				return runCleanup(cmd.OutOrStdout(), dir, cfg, log)
			}
			return runOptimize(cmd.Context(), runIO{
				out:    cmd.OutOrStdout(),
				errOut: cmd.ErrOrStderr(),
				tui:    useTUI,
			}, dir, cfg, log, d)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.cleanup, "cleanup", "c", false, "only delete leftover temporary files, then exit")
	flags.StringVar(&opts.configPath, "config", "", "YAML file overriding tool names, quality settings and timeouts")
	flags.StringVar(&opts.logFile, "log-file", "", "append logs to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug detail")
	flags.BoolVar(&opts.noTUI, "no-tui", false, "use a plain progress bar even on a terminal")

	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	return cmd
}

func Execute() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveDir follows symlinks in the target so the walks below see the
// directory itself rather than a link they would not descend.
func resolveDir(dir string) (string, error) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", fmt.Errorf("target directory: %w", err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("target directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("target %s is not a directory", dir)
	}
	return resolved, nil
}

func displayDir(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

func printReport(w io.Writer, headline string, rows []tui.SummaryRow) {
	fmt.Fprintln(w, headline)
	fmt.Fprintln(w, tui.RenderSummary(rows))
}
