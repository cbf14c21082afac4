package tui

import (
	"fmt"
	"strings"

	"mediaslim/internal/processor"
)

type SummaryRow struct {
	Label string
	Value string
}

func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		line := fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(value))
		lines = append(lines, line)
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Report is everything the final (or partial) summary shows.
type Report struct {
	Dir     string
	Summary processor.Summary
	Before  int64
	After   int64
	// AfterErr is set when the second size measurement failed.
	AfterErr error
	// Swept is nil when the sweep did not run.
	Swept *processor.SweepResult
}

// Headline is the line printed above the table.
func (r Report) Headline() string {
	if r.Summary.Cancelled {
		return "Interrupted: partial report"
	}
	return "Optimization complete"
}

// Rows lays the report out for RenderSummary.
func (r Report) Rows() []SummaryRow {
	s := r.Summary
	rows := []SummaryRow{
		{Label: "Target directory", Value: r.Dir},
		{Label: "Files processed", Value: fmt.Sprintf("%d/%d", s.Processed, s.Total)},
		{Label: "Size before", Value: kb(r.Before)},
	}
	if r.AfterErr != nil {
		rows = append(rows,
			SummaryRow{Label: "Size after", Value: "unavailable"},
			SummaryRow{Label: "Space saved", Value: "unavailable"},
		)
	} else {
		rows = append(rows,
			SummaryRow{Label: "Size after", Value: kb(r.After)},
			SummaryRow{Label: "Space saved", Value: savings(r.Before, r.After)},
		)
	}

	rows = append(rows,
		SummaryRow{Label: "Metadata cleaned", Value: fmt.Sprintf("%d (%d tags)", s.MetadataCleaned, s.MetadataTags)},
		SummaryRow{Label: "JPG optimized", Value: fmt.Sprintf("%d", s.JPEGOptimized)},
		SummaryRow{Label: "PNG optimized", Value: fmt.Sprintf("%d", s.PNGOptimized)},
		SummaryRow{Label: "HEIC found / converted", Value: fmt.Sprintf("%d / %d", s.HEICFound, s.HEICConverted)},
		SummaryRow{Label: "Videos found / optimized", Value: fmt.Sprintf("%d / %d", s.VideosFound, s.VideosOptimized)},
		SummaryRow{Label: "Video errors / timeouts", Value: fmt.Sprintf("%d / %d", s.VideoErrors, s.VideoTimeouts)},
		SummaryRow{Label: "Video space saved", Value: kb(s.VideoBytesSaved)},
		SummaryRow{Label: "Soft failures / timeouts", Value: fmt.Sprintf("%d / %d", s.Failures, s.Timeouts)},
	)
	if r.Swept != nil {
		rows = append(rows, sweptRow(*r.Swept))
	}
	return rows
}

// CleanupRows reports a sweep-only run.
func CleanupRows(dir string, res processor.SweepResult) []SummaryRow {
	return []SummaryRow{
		{Label: "Target directory", Value: dir},
		sweptRow(res),
	}
}

func sweptRow(res processor.SweepResult) SummaryRow {
	value := fmt.Sprintf("%d", res.Deleted)
	if res.Failed > 0 {
		value += fmt.Sprintf(" (%d could not be removed)", res.Failed)
	}
	return SummaryRow{Label: "Temp files swept", Value: value}
}

func kb(n int64) string {
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}

// savings is signed: a folder that grew shows a negative figure.
func savings(before, after int64) string {
	saved := before - after
	if before <= 0 {
		return kb(saved)
	}
	return fmt.Sprintf("%s (%.1f%%)", kb(saved), float64(saved)/float64(before)*100)
}
