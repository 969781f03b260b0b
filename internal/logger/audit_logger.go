// Package logger provides audit logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// AuditLogger provides dedicated audit trail logging for report outputs.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogGuideWritten logs a spreadsheet guide written to disk.
func (al *AuditLogger) LogGuideWritten(model, path string, charts, surfaces int, durationMs float64) {
	al.WithFields(logrus.Fields{
		"model":       model,
		"path":        path,
		"charts":      charts,
		"surfaces":    surfaces,
		"duration_ms": durationMs,
	}).Info("Guide written")
}

// LogDailyRecordStored logs a daily record persistence attempt.
func (al *AuditLogger) LogDailyRecordStored(runID, table, raceDate, course, distanceKey string, inserted bool) {
	al.WithFields(logrus.Fields{
		"run_id":       runID,
		"table":        table,
		"race_date":    raceDate,
		"course":       course,
		"distance_key": distanceKey,
		"inserted":     inserted,
	}).Debug("Daily record stored")
}
