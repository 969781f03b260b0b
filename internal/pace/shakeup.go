// Package pace computes Shake-Up and Brohamer pace figures for race winners.
package pace

import "github.com/yourusername/result-reporter/internal/models"

// FeetPerBeatenLength converts beaten lengths to distance.
const FeetPerBeatenLength = 11.0

// ShakeUpReport holds the Shake-Up figures for one race winner. Figures are
// floored to one decimal.
type ShakeUpReport struct {
	Key           string        `json:"key"`
	Class         string        `json:"class"`
	ClaimingPrice float64       `json:"claiming_price"`
	Purse         float64       `json:"purse"`
	Surface       string        `json:"surface"`
	PostPosition  int           `json:"post_position"`
	Distance      float64       `json:"distance"`
	BL1           float64       `json:"bl1"`
	BL2           float64       `json:"bl2"`
	BL3           float64       `json:"bl3"`
	BLF           float64       `json:"blf"`
	Fr1           models.Figure `json:"fr1"`
	Fr2           models.Figure `json:"fr2"`
	Fr3           models.Figure `json:"fr3"`
	Finish        models.Figure `json:"finish"`
}

// ShakeUpInput is the raw race and winner data a Shake-Up report is built from.
// Distance is hundredths of a furlong, margins are hundredths of a length.
type ShakeUpInput struct {
	Key           string
	Class         string
	ClaimingPrice float64
	Purse         float64
	Surface       string
	PostPosition  int
	Distance      int
	Margins       [3]int
	FinishMargin  int
	Fractions     [3]float64
	FinalTime     float64
}

// TimePerLength is the seconds a beaten length is worth over the race.
// The second result is false when the distance cannot carry a figure.
func TimePerLength(furlongs, finalTime float64) (float64, bool) {
	if furlongs <= 0 {
		return 0, false
	}
	beatenLengthsInRace := furlongs * 660 / FeetPerBeatenLength
	return finalTime / beatenLengthsInRace, true
}

// NewShakeUpReport computes Shake-Up figures. fr3 exists for six furlongs and
// up; at exactly six furlongs it is taken from the final time.
func NewShakeUpReport(in ShakeUpInput) ShakeUpReport {
	r := ShakeUpReport{
		Key:           in.Key,
		Class:         in.Class,
		ClaimingPrice: in.ClaimingPrice,
		Purse:         in.Purse,
		Surface:       in.Surface,
		PostPosition:  in.PostPosition,
		Distance:      models.RoundedFurlongs(in.Distance),
		BL1:           float64(in.Margins[0]) / 100,
		BL2:           float64(in.Margins[1]) / 100,
		BL3:           float64(in.Margins[2]) / 100,
		BLF:           float64(in.FinishMargin) / 100,
	}

	tpl, ok := TimePerLength(r.Distance, in.FinalTime)
	if !ok {
		return r
	}

	adjusted := func(seconds, lengths float64) models.Figure {
		return models.NewFigure(seconds + tpl*lengths).Floor(1)
	}

	r.Fr1 = adjusted(in.Fractions[0], r.BL1)
	r.Fr2 = adjusted(in.Fractions[1], r.BL2)
	switch {
	case r.Distance > 6:
		r.Fr3 = adjusted(in.Fractions[2], r.BL3)
	case r.Distance == 6:
		r.Fr3 = adjusted(in.FinalTime, r.BLF)
	}
	r.Finish = adjusted(in.FinalTime, r.BLF)
	return r
}

// Figures returns fr1, fr2 and fr3.
func (r ShakeUpReport) Figures() models.Triple {
	return models.Triple{r.Fr1, r.Fr2, r.Fr3}
}

// UndefinedCount returns how many of the report's figures are undefined.
func (r ShakeUpReport) UndefinedCount() int {
	return countUndefined(r.Fr1, r.Fr2, r.Fr3, r.Finish)
}

func countUndefined(figures ...models.Figure) int {
	n := 0
	for _, f := range figures {
		if !f.Defined() {
			n++
		}
	}
	return n
}
