// Package logger provides chart-processing logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// ChartLogger provides dedicated logging for chart loading and figure building.
type ChartLogger struct {
	*logrus.Entry
}

// NewChartLogger creates a new chart logger.
func NewChartLogger(baseLogger *logrus.Logger) *ChartLogger {
	return &ChartLogger{
		Entry: baseLogger.WithField("component", "chart"),
	}
}

// LogChartLoaded logs a successfully decoded chart.
func (cl *ChartLogger) LogChartLoaded(path, trackCode, raceDate string, races int) {
	cl.WithFields(logrus.Fields{
		"path":       path,
		"track_code": trackCode,
		"race_date":  raceDate,
		"races":      races,
	}).Debug("Chart loaded")
}

// LogChartSkipped logs a chart file dropped from the batch.
func (cl *ChartLogger) LogChartSkipped(path, reason string, err error) {
	entry := cl.WithFields(logrus.Fields{
		"path":   path,
		"reason": reason,
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("Chart skipped")
}

// LogReportsBuilt logs the pace reports built for one chart.
func (cl *ChartLogger) LogReportsBuilt(model, trackCode, raceDate string, reports, undefinedFigures int) {
	cl.WithFields(logrus.Fields{
		"model":             model,
		"track_code":        trackCode,
		"race_date":         raceDate,
		"reports":           reports,
		"undefined_figures": undefinedFigures,
	}).Info("Pace reports built")
}
