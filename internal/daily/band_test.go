package daily

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/result-reporter/internal/models"
	"github.com/yourusername/result-reporter/internal/pace"
)

func fig(v float64) models.Figure { return models.NewFigure(v) }

func TestBandAddIgnoresUndefined(t *testing.T) {
	var b Band
	b.Add(models.Triple{fig(22.4), fig(46.0), models.Undefined()})
	b.Add(models.Triple{fig(23.1), models.Undefined(), models.Undefined()})
	b.Add(models.Triple{fig(22.0), fig(45.2), models.Undefined()})

	assert.Equal(t, fig(22.0), b.Minimums[0])
	assert.Equal(t, fig(23.1), b.Maximums[0])
	assert.Equal(t, fig(45.2), b.Minimums[1])
	assert.Equal(t, fig(46.0), b.Maximums[1])
	assert.False(t, b.Minimums[2].Defined())
	assert.False(t, b.Maximums[2].Defined())
}

func TestShakeUpBandMatchesSurfaceAndBucket(t *testing.T) {
	reports := []pace.ShakeUpReport{
		{Surface: "D", Distance: 6.0, Fr1: fig(22.7), Fr2: fig(46.1), Fr3: fig(70.8)},
		{Surface: "D", Distance: 7.0, Fr1: fig(22.3), Fr2: fig(45.4), Fr3: fig(71.9)},
		{Surface: "D", Distance: 9.0, Fr1: fig(24.2), Fr2: fig(47.7), Fr3: fig(72.1)},
		{Surface: "T", Distance: 6.0, Fr1: fig(21.9), Fr2: fig(44.0), Fr3: fig(68.0)},
	}

	sprint := ShakeUpBand("D", models.Sprint, reports)
	assert.Equal(t, models.Triple{fig(22.3), fig(45.4), fig(70.8)}, sprint.Minimums)
	assert.Equal(t, models.Triple{fig(22.7), fig(46.1), fig(71.9)}, sprint.Maximums)

	route := ShakeUpBand("D", models.Route, reports)
	assert.Equal(t, route.Minimums, route.Maximums)
	assert.Equal(t, fig(72.1), route.Maximums[2])

	empty := ShakeUpBand("E", models.Sprint, reports)
	assert.Equal(t, models.UndefinedTriple(), empty.Minimums)
	assert.Equal(t, models.UndefinedTriple(), empty.Maximums)
}

func TestBrohamerBandParsesCourse(t *testing.T) {
	reports := []pace.BrohamerReport{
		{Course: "T", Distance: 8.0, Fr1: fig(50.1), Fr2: fig(55.0), Fr3: fig(54.3)},
		{Course: "I", Distance: 8.5, Fr1: fig(49.0), Fr2: fig(56.0), Fr3: fig(53.0)},
		// unknown letters parse as dirt
		{Course: "Z", Distance: 6.0, Fr1: fig(58.0), Fr2: fig(56.0), Fr3: fig(52.0)},
	}

	turf := BrohamerBand(models.Turf, models.Route, reports)
	assert.Equal(t, models.Triple{fig(50.1), fig(55.0), fig(54.3)}, turf.Minimums)

	dirt := BrohamerBand(models.Dirt, models.Sprint, reports)
	assert.Equal(t, fig(58.0), dirt.Maximums[0])
}
