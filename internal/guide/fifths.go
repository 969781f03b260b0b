package guide

import (
	"math"

	"github.com/yourusername/result-reporter/internal/models"
)

// Fifths rewrites a time in seconds so the decimal digit counts fifths of a
// second, the way hand timers read a clock: 22.7 becomes 22.3.
func Fifths(f models.Figure) models.Figure {
	v, ok := f.Value()
	if !ok {
		return f
	}
	truncated := math.Floor(v*5) / 5
	whole := math.Floor(truncated)
	return models.NewFigure(whole + models.Round(truncated-whole, 1)/2).Round(1)
}
