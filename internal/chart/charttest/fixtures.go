// Package charttest provides chart fixtures shared by package tests.
package charttest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/result-reporter/internal/chart"
)

// TwoRaceCardCSV is the delimited form of TwoRaceCard plus an ignored footnote.
const TwoRaceCardCSV = `H,AQU,20240105,2
R,1,TB,CLM,B,3U,D,D,600,25000,16000,8,22.47,45.91,0,70.83
S,1,1,1,250,150,100,50,0
S,1,2,2,410,0,0,0,75
R,2,TB,ALW,B,3U,D,D,900,62000,0,7,23.62,47.38,71.94,110.37
S,2,4,2,180,0,0,0,125
S,2,1,1,900,300,200,100,0
F,2,Winner rallied wide
`

// TBRace builds a thoroughbred race record.
func TBRace(number int, course string, distance int, splits [3]float64, final float64) chart.RaceData {
	return chart.RaceData{
		Number:        number,
		Breed:         chart.ThoroughbredBreed,
		Class:         "CLM",
		Sex:           "B",
		Age:           "3U",
		SurfaceCode:   course,
		CourseCode:    course,
		Hundredths:    distance,
		PurseAmount:   25000,
		ClaimingPrice: 16000,
		Horses:        8,
		Splits:        splits,
		Final:         final,
	}
}

// Winner builds the official winner of a race.
func Winner(race, post, odds int, margins [3]int, finishMargin int) chart.StarterData {
	return chart.StarterData{
		Race:         race,
		Post:         post,
		Finish:       1,
		OddsValue:    odds,
		Margins:      margins,
		FinishMargin: finishMargin,
	}
}

// Runner builds a beaten starter.
func Runner(race, post, finish, odds int) chart.StarterData {
	return chart.StarterData{
		Race:         race,
		Post:         post,
		Finish:       finish,
		OddsValue:    odds,
		FinishMargin: 100 * (finish - 1),
	}
}

// Build groups records into a chart and fails the test on error.
func Build(t testing.TB, track, date string, races []chart.RaceData, starters []chart.StarterData) *chart.Chart {
	t.Helper()

	raceRecords := make([]chart.RaceRecord, len(races))
	for i, r := range races {
		raceRecords[i] = r
	}
	starterRecords := make([]chart.StarterRecord, len(starters))
	for i, s := range starters {
		starterRecords[i] = s
	}

	c, err := chart.New(chart.HeaderData{Track: track, Date: date, Races: len(races)}, raceRecords, starterRecords)
	require.NoError(t, err)
	return c
}

// TwoRaceCard is a dirt card with a six furlong sprint and a nine furlong route,
// both won from post 1.
func TwoRaceCard(t testing.TB) *chart.Chart {
	t.Helper()

	return Build(t, "AQU", "20240105",
		[]chart.RaceData{
			TBRace(1, "D", 600, [3]float64{22.47, 45.91, 0}, 70.83),
			TBRace(2, "D", 900, [3]float64{23.62, 47.38, 71.94}, 110.37),
		},
		[]chart.StarterData{
			Winner(1, 1, 250, [3]int{150, 100, 50}, 0),
			Runner(1, 2, 2, 410),
			Runner(2, 4, 2, 180),
			Winner(2, 1, 900, [3]int{300, 200, 100}, 0),
		},
	)
}

// Charts collects charts into a batch.
func Charts(charts ...*chart.Chart) []*chart.Chart {
	return charts
}
