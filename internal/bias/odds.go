// Package bias detects post-position and running-style track biases from
// the winners of a chart.
package bias

import "github.com/shopspring/decimal"

// Takeout is the pari-mutuel takeout applied to win expectations.
var Takeout = decimal.RequireFromString("0.2")

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

var oddsLevels = []struct {
	upTo  decimal.Decimal
	score decimal.Decimal
}{
	{upTo: decimal.NewFromInt(4), score: decimal.NewFromInt(1)},
	{upTo: decimal.NewFromInt(8), score: decimal.NewFromInt(2)},
	{upTo: decimal.NewFromInt(12), score: decimal.NewFromInt(3)},
}

var longshotScore = decimal.NewFromInt(4)

// DecimalOdds converts chart odds (hundredths) to odds-to-one.
func DecimalOdds(odds int) decimal.Decimal {
	return decimal.NewFromInt(int64(odds)).Div(hundred)
}

// OddsScore scores a winner's odds from 1 (short price) to 4 (longshot).
func OddsScore(odds int) decimal.Decimal {
	o := DecimalOdds(odds)
	for _, level := range oddsLevels {
		if o.LessThanOrEqual(level.upTo) {
			return level.score
		}
	}
	return longshotScore
}

// ExpectedValue is the win expectation implied by chart odds after takeout.
func ExpectedValue(odds int) float64 {
	o := DecimalOdds(odds)
	share := one.Sub(Takeout)

	var ev decimal.Decimal
	if o.LessThanOrEqual(one) {
		ev = o.Div(o.Add(one)).Mul(share)
	} else {
		ev = one.Div(o.Add(one)).Mul(share)
	}
	return ev.InexactFloat64()
}
