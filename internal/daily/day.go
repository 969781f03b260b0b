package daily

import (
	"fmt"
	"sort"
	"time"

	"github.com/yourusername/result-reporter/internal/bias"
	"github.com/yourusername/result-reporter/internal/chart"
	"github.com/yourusername/result-reporter/internal/models"
	"github.com/yourusername/result-reporter/internal/pace"
)

// RaceDateLayout is the chart race date format.
const RaceDateLayout = "20060102"

// Record is one (surface, distance bucket) row of a day.
type Record struct {
	RaceDate  time.Time          `json:"race_date"`
	TrackCode string             `json:"track_code"`
	Surface   string             `json:"surface"`
	Key       models.DistanceKey `json:"distance_key"`
	Band
	Comment string `json:"comment"`
}

// Course returns the course type of the record's surface letter.
func (r Record) Course() models.CourseType {
	return models.ParseCourseType(r.Surface)
}

// Values flattens the record to date, (min, max) per fraction and comment.
// Undefined figures become 0.
func (r Record) Values() []any {
	values := make([]any, 0, 8)
	values = append(values, r.RaceDate)
	for i := range r.Minimums {
		values = append(values, r.Minimums[i].Or(0), r.Maximums[i].Or(0))
	}
	return append(values, r.Comment)
}

// Day is one chart reduced to daily records.
type Day struct {
	TrackCode        string       `json:"track_code"`
	RaceDate         time.Time    `json:"race_date"`
	Model            models.Model `json:"model"`
	Reports          int          `json:"reports"`
	UndefinedFigures int          `json:"undefined_figures"`
	Records          []Record     `json:"records"`
}

// Surfaces returns the sorted distinct course letters across charts.
func Surfaces(charts []*chart.Chart) []string {
	seen := make(map[string]bool)
	var surfaces []string
	for _, c := range charts {
		for _, letter := range c.CourseLetters() {
			if !seen[letter] {
				seen[letter] = true
				surfaces = append(surfaces, letter)
			}
		}
	}
	sort.Strings(surfaces)
	return surfaces
}

// Build reduces a chart to one record per surface and distance bucket, in
// surface order with sprints before routes.
func Build(c *chart.Chart, model models.Model, surfaces []string) (*Day, error) {
	raceDate, err := time.Parse(RaceDateLayout, c.RaceDate)
	if err != nil {
		return nil, fmt.Errorf("%s race date %q: %w", c.TrackCode, c.RaceDate, err)
	}

	band, reports, undefined, err := bander(c, model)
	if err != nil {
		return nil, err
	}

	day := &Day{
		TrackCode:        c.TrackCode,
		RaceDate:         raceDate,
		Model:            model,
		Reports:          reports,
		UndefinedFigures: undefined,
		Records:          make([]Record, 0, 2*len(surfaces)),
	}
	for _, surface := range surfaces {
		for _, key := range models.DistanceKeys() {
			comment, err := bias.DailyComment(c, surface, key)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", c.TrackCode, c.RaceDate, err)
			}
			day.Records = append(day.Records, Record{
				RaceDate:  raceDate,
				TrackCode: c.TrackCode,
				Surface:   surface,
				Key:       key,
				Band:      band(surface, key),
				Comment:   comment,
			})
		}
	}
	return day, nil
}

type bandFunc func(surface string, key models.DistanceKey) Band

// bander builds the model's reports once and returns a band lookup over them
// along with the report and undefined figure counts.
func bander(c *chart.Chart, model models.Model) (bandFunc, int, int, error) {
	switch model {
	case models.ShakeUpModel:
		reports, err := pace.ShakeUpReports(c)
		if err != nil {
			return nil, 0, 0, err
		}
		undefined := 0
		for _, r := range reports {
			undefined += r.UndefinedCount()
		}
		return func(surface string, key models.DistanceKey) Band {
			return ShakeUpBand(surface, key, reports)
		}, len(reports), undefined, nil
	case models.BrohamerModel:
		reports, err := pace.BrohamerReports(c)
		if err != nil {
			return nil, 0, 0, err
		}
		undefined := 0
		for _, r := range reports {
			undefined += r.UndefinedCount()
		}
		return func(surface string, key models.DistanceKey) Band {
			return BrohamerBand(models.ParseCourseType(surface), key, reports)
		}, len(reports), undefined, nil
	}
	return nil, 0, 0, fmt.Errorf("%w: %q", models.ErrUnknownModel, model)
}
