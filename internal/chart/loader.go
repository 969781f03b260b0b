package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yourusername/result-reporter/internal/logger"
	"github.com/yourusername/result-reporter/internal/metrics"
)

// Skip reasons reported to logs and metrics.
const (
	SkipReasonMissing    = "missing"
	SkipReasonIncomplete = "incomplete"
	SkipReasonMalformed  = "malformed"
	SkipReasonUnreadable = "unreadable"
)

// Loader discovers and decodes chart files for one track.
type Loader struct {
	logger *logger.ChartLogger
}

// NewLoader creates a new chart loader
func NewLoader(log *logger.ChartLogger) *Loader {
	return &Loader{logger: log}
}

// Load decodes every chart for trackCode found one directory below root.
// A chart file name is the track code followed by a digit (e.g. AQU20240105.csv).
// Files that are missing, unreadable or incomplete are logged and skipped.
func (l *Loader) Load(root, trackCode string) ([]*Chart, error) {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart root %s: %w", root, err)
	}

	var charts []*Chart
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		dirPath := filepath.Join(root, dir.Name())
		entries, err := os.ReadDir(dirPath)
		if err != nil {
			l.skip(dirPath, SkipReasonUnreadable, err)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !IsChartFileName(entry.Name(), trackCode) {
				continue
			}
			path := filepath.Join(dirPath, entry.Name())
			c, err := ParseFile(path)
			if err != nil {
				l.skip(path, skipReason(err), err)
				continue
			}
			metrics.RecordChartLoaded()
			if l.logger != nil {
				l.logger.LogChartLoaded(path, c.TrackCode, c.RaceDate, len(c.Races))
			}
			charts = append(charts, c)
		}
	}
	return charts, nil
}

func (l *Loader) skip(path, reason string, err error) {
	metrics.RecordChartSkipped(reason)
	if l.logger != nil {
		l.logger.LogChartSkipped(path, reason, err)
	}
}

// IsChartFileName reports whether name is a chart file for trackCode.
func IsChartFileName(name, trackCode string) bool {
	if len(name) <= len(trackCode) || name[:len(trackCode)] != trackCode {
		return false
	}
	c := name[len(trackCode)]
	return c >= '0' && c <= '9'
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return SkipReasonMissing
	case errors.Is(err, ErrIncompleteChart):
		return SkipReasonIncomplete
	case errors.Is(err, ErrMalformedRecord):
		return SkipReasonMalformed
	default:
		return SkipReasonUnreadable
	}
}
