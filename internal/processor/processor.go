// Package processor drives a run: it enumerates media files once, applies
// the matching operations to each file in turn, and aggregates counters.
// Files are handled strictly one at a time; the cancellation flag is
// checked only between files.
package processor

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"mediaslim/internal/classify"
	"mediaslim/internal/logging"
	"mediaslim/internal/toolrun"
)

// Options configures Run.
type Options struct {
	Optimizer Optimizer
	Cancel    *CancelFlag
	// HEICThreshold is the size a HEIC must exceed to be converted.
	HEICThreshold int64
	// Skip excludes intermediate-looking names from discovery.
	Skip *Matcher
	Log  logrus.FieldLogger
}

// Run processes every media file under root. It fails only when discovery
// fails; per-file problems are absorbed into the returned counters.
func Run(ctx context.Context, root string, opts Options, updates chan<- ProgressUpdate) (Summary, error) {
	var summary Summary
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}

	entries, err := Discover(root, opts.Skip, log)
	if err != nil {
		return summary, err
	}
	summary.Total = len(entries)

	send := func(current, note string) {
		if updates == nil {
			return
		}
		updates <- ProgressUpdate{
			Total:     summary.Total,
			Processed: summary.Processed,
			Current:   current,
			Counters:  summary.Counters,
			Note:      note,
		}
	}
	send("", "")

	for _, entry := range entries {
		if opts.Cancel.Cancelled() {
			summary.Cancelled = true
			log.WithField("remaining", summary.Total-summary.Processed).Warn("interrupted, stopping before next file")
			break
		}

		display := displayPath(root, entry.Path)
		send(display, "")
		h := fileRun{
			ctx:      ctx,
			opts:     opts,
			entry:    entry,
			display:  display,
			counters: &summary.Counters,
			log:      log.WithField("file", display),
			note:     func(msg string) { send(display, msg) },
		}
		h.process()
		summary.Processed++
		send("", "")
	}

	return summary, nil
}

// fileRun applies each operation whose predicate matches one file.
type fileRun struct {
	ctx      context.Context
	opts     Options
	entry    classify.Entry
	display  string
	counters *Counters
	log      logrus.FieldLogger
	note     func(string)
}

func (h *fileRun) process() {
	path := h.entry.Path
	cat := h.entry.Category

	if cat.IsImage() {
		tags := countMetadataTags(path)
		res := h.opts.Optimizer.StripMetadata(h.ctx, path)
		if res.OK() {
			h.counters.MetadataCleaned++
			h.counters.MetadataTags += tags
		} else {
			h.soft("strip-metadata", res, false)
		}
	}

	switch cat {
	case classify.JPEG:
		res := h.opts.Optimizer.OptimizeJPEG(h.ctx, path)
		if res.OK() {
			h.counters.JPEGOptimized++
		} else {
			h.soft("optimize-jpeg", res, true)
		}
	case classify.PNG:
		res := h.opts.Optimizer.OptimizePNG(h.ctx, path)
		if res.OK() {
			h.counters.PNGOptimized++
		} else {
			h.soft("optimize-png", res, true)
		}
	case classify.HEIC:
		h.convertHEIC()
	case classify.Video:
		h.transcode()
	}
}

func (h *fileRun) convertHEIC() {
	info, err := os.Stat(h.entry.Path)
	if err != nil {
		h.log.WithError(err).Warn("cannot stat HEIC, skipping conversion")
		return
	}
	if info.Size() <= h.opts.HEICThreshold {
		return
	}

	h.counters.HEICFound++
	res := h.opts.Optimizer.ConvertHEIC(h.ctx, h.entry.Path)
	if res.Converted() {
		h.counters.HEICConverted++
		return
	}
	h.soft("convert-heic/"+res.Stage, toolrun.Result{Outcome: res.Outcome, Err: res.Err}, true)
}

func (h *fileRun) transcode() {
	h.counters.VideosFound++
	res := h.opts.Optimizer.TranscodeVideo(h.ctx, h.entry.Path)
	switch {
	case res.Replaced:
		h.counters.VideosOptimized++
		h.counters.VideoBytesSaved += res.Saved
		h.log.WithField("saved", res.Saved).Debug("video replaced with smaller transcode")
	case res.Outcome == toolrun.TimedOut:
		h.counters.VideoTimeouts++
		h.soft("transcode-video", toolrun.Result{Outcome: res.Outcome, Err: res.Err}, true)
	case res.Err != nil:
		h.counters.VideoErrors++
		h.soft("transcode-video", toolrun.Result{Outcome: toolrun.ToolFailure, Err: res.Err}, true)
	default:
		h.log.WithField("candidate_size", res.NewSize).Debug("transcode not smaller, original kept")
	}
}

// soft records a per-file failure. Loud failures are logged at warn level
// and surfaced to the display; quiet ones are debug only.
func (h *fileRun) soft(op string, res toolrun.Result, loud bool) {
	switch res.Outcome {
	case toolrun.TimedOut:
		h.counters.Timeouts++
	default:
		h.counters.Failures++
	}

	entry := h.log.WithFields(logrus.Fields{
		"op":        op,
		"outcome":   res.Outcome.String(),
		"exit_code": res.ExitCode,
	})
	if res.Err != nil {
		entry = entry.WithError(res.Err)
	}
	if !loud {
		entry.Debug("operation failed, file left as is")
		return
	}
	entry.Warn("operation failed, file left as is")
	h.note(op + " " + res.Outcome.String() + ": " + h.display)
}

func displayPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
