// Package daily reduces a chart's pace reports to per-surface daily bands and
// bias comments.
package daily

import (
	"github.com/yourusername/result-reporter/internal/models"
	"github.com/yourusername/result-reporter/internal/pace"
)

// Band is the element-wise minimum and maximum of fr1..fr3 over a set of races.
type Band struct {
	Minimums models.Triple `json:"minimums"`
	Maximums models.Triple `json:"maximums"`
}

// Add folds one race's figures into the band. Undefined figures are ignored.
func (b *Band) Add(figures models.Triple) {
	for i, f := range figures {
		if f.Less(b.Minimums[i]) {
			b.Minimums[i] = f
		}
		if f.Greater(b.Maximums[i]) {
			b.Maximums[i] = f
		}
	}
}

// ShakeUpBand bands the Shake-Up reports run over the surface letter in the
// distance bucket.
func ShakeUpBand(surface string, key models.DistanceKey, reports []pace.ShakeUpReport) Band {
	var b Band
	for _, r := range reports {
		if r.Surface == surface && key.Matches(r.Distance) {
			b.Add(r.Figures())
		}
	}
	return b
}

// BrohamerBand bands the Brohamer reports whose course parses to the course
// type in the distance bucket.
func BrohamerBand(course models.CourseType, key models.DistanceKey, reports []pace.BrohamerReport) Band {
	var b Band
	for _, r := range reports {
		if models.ParseCourseType(r.Course) == course && key.Matches(r.Distance) {
			b.Add(r.Figures())
		}
	}
	return b
}
