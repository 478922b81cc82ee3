package importer

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ProgressCallback defines the interface for progress reporting
type ProgressCallback interface {
	Update(filename string)
	Finish()
}

// ProgressReporter draws a progress bar while files are placed
type ProgressReporter struct {
	writer    io.Writer
	total     int
	current   int
	startTime time.Time
}

// NewProgressReporter creates a new progress reporter
func NewProgressReporter(w io.Writer, total int) *ProgressReporter {
	return &ProgressReporter{
		writer:    w,
		total:     total,
		startTime: time.Now(),
	}
}

// Update advances the bar by one file
func (p *ProgressReporter) Update(filename string) {
	p.current++
	if p.total == 0 {
		return
	}

	pct := float64(p.current) / float64(p.total) * 100

	// Draw progress bar (30 chars wide)
	barWidth := 30
	filled := int(float64(barWidth) * float64(p.current) / float64(p.total))
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	displayText := filename
	if len(displayText) > 40 {
		displayText = displayText[:37] + "..."
	}

	_, _ = fmt.Fprintf(p.writer, "\r[%s] %3.0f%% (%d/%d) | %s", bar, pct, p.current, p.total, displayText)
}

// Finish completes the progress display
func (p *ProgressReporter) Finish() {
	elapsed := time.Since(p.startTime)
	_, _ = fmt.Fprintf(p.writer, "\nCompleted: Placed %d files in %s\n", p.current, elapsed.Round(time.Millisecond))
}
