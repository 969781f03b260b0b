package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/result-reporter/internal/chart"
)

// ChartValidator checks decoded charts for data that would distort figures.
// Issues are warnings; they never stop a run.
type ChartValidator struct {
	logger *logrus.Logger
}

// NewChartValidator creates a new chart validator
func NewChartValidator(logger *logrus.Logger) *ChartValidator {
	return &ChartValidator{logger: logger}
}

// ValidateRace returns the problems found in one race.
func (v *ChartValidator) ValidateRace(race *chart.Race) []string {
	var issues []string
	data := race.Data

	if data.Distance() <= 0 {
		issues = append(issues, fmt.Sprintf("distance must be positive, got %d", data.Distance()))
	}
	if data.FinalTime() <= 0 {
		issues = append(issues, "final_time is missing")
	}

	previous := 0.0
	for i, split := range []float64{data.Fraction1(), data.Fraction2(), data.Fraction3()} {
		if split == 0 {
			continue
		}
		if split < previous {
			issues = append(issues, fmt.Sprintf("fraction%d %.2f is earlier than the previous call", i+1, split))
		}
		previous = split
	}
	if data.FinalTime() > 0 && previous > data.FinalTime() {
		issues = append(issues, fmt.Sprintf("final_time %.2f is earlier than the last call", data.FinalTime()))
	}

	if len(race.Starters) > data.NumberOfHorses() && data.NumberOfHorses() > 0 {
		issues = append(issues, fmt.Sprintf("%d starters exceed number_of_horses %d", len(race.Starters), data.NumberOfHorses()))
	}
	for _, starter := range race.Starters {
		if starter.PostPosition() < 1 {
			issues = append(issues, fmt.Sprintf("post_position must be positive, got %d", starter.PostPosition()))
		}
	}

	return issues
}

// ValidateChart returns the problems found across a chart, prefixed by race.
func (v *ChartValidator) ValidateChart(c *chart.Chart) []string {
	var issues []string

	if c.NumberOfRaces != len(c.Races) {
		issues = append(issues, fmt.Sprintf("header lists %d races, chart has %d", c.NumberOfRaces, len(c.Races)))
	}
	seen := make(map[int]bool)
	for _, race := range c.Races {
		number := race.Data.RaceNumber()
		if seen[number] {
			issues = append(issues, fmt.Sprintf("race %d appears more than once", number))
		}
		seen[number] = true

		if len(race.Starters) == 0 {
			issues = append(issues, fmt.Sprintf("race %d has no starters", number))
		}
		for _, issue := range v.ValidateRace(race) {
			issues = append(issues, fmt.Sprintf("race %d: %s", number, issue))
		}
	}

	if v.logger != nil {
		for _, issue := range issues {
			v.logger.WithFields(logrus.Fields{
				"component":  "validator",
				"track_code": c.TrackCode,
				"race_date":  c.RaceDate,
			}).Warn(issue)
		}
	}
	return issues
}
