package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mediaslim/internal/processor"
)

func rowValue(rows []SummaryRow, label string) string {
	for _, r := range rows {
		if r.Label == label {
			return r.Value
		}
	}
	return ""
}

func TestReportRows(t *testing.T) {
	r := Report{
		Dir:    "/photos",
		Before: 4096,
		After:  1024,
		Summary: processor.Summary{
			Total:     5,
			Processed: 5,
			Counters: processor.Counters{
				MetadataCleaned: 3,
				MetadataTags:    17,
				HEICFound:       1,
				HEICConverted:   1,
				VideosFound:     2,
				VideoErrors:     1,
				VideoTimeouts:   1,
			},
		},
		Swept: &processor.SweepResult{Deleted: 2},
	}
	rows := r.Rows()

	assert.Equal(t, "Optimization complete", r.Headline())
	assert.Equal(t, "5/5", rowValue(rows, "Files processed"))
	assert.Equal(t, "4.0 KB", rowValue(rows, "Size before"))
	assert.Equal(t, "1.0 KB", rowValue(rows, "Size after"))
	assert.Equal(t, "3.0 KB (75.0%)", rowValue(rows, "Space saved"))
	assert.Equal(t, "3 (17 tags)", rowValue(rows, "Metadata cleaned"))
	assert.Equal(t, "1 / 1", rowValue(rows, "HEIC found / converted"))
	assert.Equal(t, "1 / 1", rowValue(rows, "Video errors / timeouts"))
	assert.Equal(t, "2", rowValue(rows, "Temp files swept"))
}

func TestReportPartialAndGrowth(t *testing.T) {
	r := Report{
		Before:  1024,
		After:   2048,
		Summary: processor.Summary{Total: 4, Processed: 2, Cancelled: true},
	}
	rows := r.Rows()

	assert.Equal(t, "Interrupted: partial report", r.Headline())
	assert.Equal(t, "2/4", rowValue(rows, "Files processed"))
	assert.Equal(t, "-1.0 KB (-100.0%)", rowValue(rows, "Space saved"))
	assert.Empty(t, rowValue(rows, "Temp files swept"))
}

func TestReportAfterSizeUnavailable(t *testing.T) {
	r := Report{Before: 1024, AfterErr: errors.New("boom")}
	rows := r.Rows()
	assert.Equal(t, "unavailable", rowValue(rows, "Size after"))
	assert.Equal(t, "unavailable", rowValue(rows, "Space saved"))
}

func TestSavingsEmptyFolder(t *testing.T) {
	assert.Equal(t, "0.0 KB", savings(0, 0))
}

func TestCleanupRows(t *testing.T) {
	rows := CleanupRows("/photos", processor.SweepResult{Deleted: 3, Failed: 1})
	assert.Equal(t, "3 (1 could not be removed)", rowValue(rows, "Temp files swept"))
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary([]SummaryRow{
		{Label: "Short", Value: "1"},
		{Label: "A longer label", Value: "22"},
	})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, lines[0], lines[3])
	assert.Contains(t, out, "A longer label")
	assert.Contains(t, out, "Short")
}

func TestRunPlain(t *testing.T) {
	updates := make(chan processor.ProgressUpdate, 3)
	updates <- processor.ProgressUpdate{Total: 2}
	updates <- processor.ProgressUpdate{Total: 2, Processed: 1, Current: "a.jpg"}
	updates <- processor.ProgressUpdate{Total: 2, Processed: 2}
	close(updates)

	var buf bytes.Buffer
	RunPlain(&buf, updates)
	assert.Contains(t, buf.String(), "2/2")
}

func TestRunPlainNoUpdates(t *testing.T) {
	updates := make(chan processor.ProgressUpdate)
	close(updates)

	var buf bytes.Buffer
	RunPlain(&buf, updates)
	assert.Empty(t, buf.String())
}
