package tui

import (
	"io"

	"github.com/schollz/progressbar/v3"

	"mediaslim/internal/processor"
)

// RunPlain draws a line-oriented progress bar on w until updates closes.
// Soft-failure notes are left to the logger in this mode.
func RunPlain(w io.Writer, updates <-chan processor.ProgressUpdate) {
	var bar *progressbar.ProgressBar
	for u := range updates {
		if bar == nil {
			max := u.Total
			if max <= 0 {
				max = -1
			}
			bar = progressbar.NewOptions(max,
				progressbar.OptionSetWriter(w),
				progressbar.OptionSetDescription("Optimizing"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(30),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "#",
					SaucerPadding: "-",
					BarStart:      "[",
					BarEnd:        "]",
				}),
			)
		}
		if u.Current != "" {
			bar.Describe(u.Current)
		}
		_ = bar.Set(u.Processed)
	}
	if bar != nil {
		_ = bar.Finish()
		_, _ = io.WriteString(w, "\n")
	}
}
