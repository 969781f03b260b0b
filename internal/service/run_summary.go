package service

import (
	"fmt"
	"sync"
	"time"
)

// RunSummary tracks statistics about one reporter run
type RunSummary struct {
	mu               sync.RWMutex
	StartTime        time.Time
	Duration         time.Duration
	Charts           int
	Reports          int
	UndefinedFigures int
	ValidationIssues int
	RecordsInserted  int
	Duplicates       int
}

// NewRunSummary creates a new run summary
func NewRunSummary() *RunSummary {
	return &RunSummary{StartTime: time.Now()}
}

// Reset resets all counters
func (s *RunSummary) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.StartTime = time.Now()
	s.Duration = 0
	s.Charts = 0
	s.Reports = 0
	s.UndefinedFigures = 0
	s.ValidationIssues = 0
	s.RecordsInserted = 0
	s.Duplicates = 0
}

// RecordCharts adds loaded charts and their validation issues
func (s *RunSummary) RecordCharts(charts, issues int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Charts += charts
	s.ValidationIssues += issues
}

// RecordReports adds built reports and their undefined figures
func (s *RunSummary) RecordReports(reports, undefined int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reports += reports
	s.UndefinedFigures += undefined
}

// RecordStored counts a stored or duplicate daily record
func (s *RunSummary) RecordStored(inserted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inserted {
		s.RecordsInserted++
	} else {
		s.Duplicates++
	}
}

// Finish stamps the run duration
func (s *RunSummary) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Duration = time.Since(s.StartTime)
}

// String returns a formatted string representation of the summary
func (s *RunSummary) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fmt.Sprintf(
		"RunSummary{Charts=%d, Reports=%d, UndefinedFigures=%d, ValidationIssues=%d, Inserted=%d, Duplicates=%d, Duration=%v}",
		s.Charts,
		s.Reports,
		s.UndefinedFigures,
		s.ValidationIssues,
		s.RecordsInserted,
		s.Duplicates,
		s.Duration,
	)
}
