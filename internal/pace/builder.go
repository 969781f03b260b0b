package pace

import (
	"fmt"

	"github.com/yourusername/result-reporter/internal/chart"
	"github.com/yourusername/result-reporter/internal/models"
)

// ShakeUpReports builds one Shake-Up report per thoroughbred race of the chart,
// in race order.
func ShakeUpReports(c *chart.Chart) ([]ShakeUpReport, error) {
	reports := make([]ShakeUpReport, 0, len(c.Races))
	for _, race := range c.Thoroughbreds() {
		winner, err := race.Winner()
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", c.TrackCode, c.RaceDate, err)
		}

		data := race.Data
		reports = append(reports, NewShakeUpReport(ShakeUpInput{
			Key:           c.Key(race),
			Class:         data.RaceType(),
			ClaimingPrice: data.MaximumClaimingPrice(),
			Purse:         data.Purse(),
			Surface:       data.CourseType(),
			PostPosition:  winner.PostPosition(),
			Distance:      data.Distance(),
			Margins: [3]int{
				winner.LengthBehindAtPOC1(),
				winner.LengthBehindAtPOC2(),
				winner.LengthBehindAtPOC3(),
			},
			FinishMargin: winner.LengthBehindAtFinish(),
			Fractions:    [3]float64{data.Fraction1(), data.Fraction2(), data.Fraction3()},
			FinalTime:    data.FinalTime(),
		}))
	}
	return reports, nil
}

// BrohamerReports builds one Brohamer report per thoroughbred race of the
// chart, in race order. Sprints use the first two calls, routes the second
// and third.
func BrohamerReports(c *chart.Chart) ([]BrohamerReport, error) {
	reports := make([]BrohamerReport, 0, len(c.Races))
	for _, race := range c.Thoroughbreds() {
		winner, err := race.Winner()
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", c.TrackCode, c.RaceDate, err)
		}

		data := race.Data
		in := BrohamerInput{
			Key:            c.Key(race),
			Class:          data.RaceType(),
			Sex:            data.SexRestriction(),
			Age:            data.AgeRestriction(),
			ClaimingPrice:  data.MaximumClaimingPrice(),
			Purse:          data.Purse(),
			RaceNumber:     data.RaceNumber(),
			Surface:        data.Surface(),
			Course:         data.CourseType(),
			Distance:       data.Distance(),
			NumberOfHorses: data.NumberOfHorses(),
			PostPosition:   winner.PostPosition(),
			Odds:           winner.Odds(),
			FC:             data.FinalTime(),
		}
		if race.Furlongs() <= models.MaximumSprintDistance {
			in.C1, in.C2 = data.Fraction1(), data.Fraction2()
			in.BL1, in.BL2 = winner.LengthBehindAtPOC1(), winner.LengthBehindAtPOC2()
		} else {
			in.C1, in.C2 = data.Fraction2(), data.Fraction3()
			in.BL1, in.BL2 = winner.LengthBehindAtPOC2(), winner.LengthBehindAtPOC3()
		}
		reports = append(reports, NewBrohamerReport(in))
	}
	return reports, nil
}
