package models

import (
	"math"
	"strconv"
)

// Figure is a pace figure that may be undefined. Undefined figures come from
// distance thresholds and missing split times and must never be rendered or
// stored as a number without an explicit substitution.
type Figure struct {
	value   float64
	defined bool
}

// NewFigure returns a defined figure. NaN and infinities yield an undefined figure.
func NewFigure(v float64) Figure {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Figure{}
	}
	return Figure{value: v, defined: true}
}

// Undefined returns the undefined figure.
func Undefined() Figure {
	return Figure{}
}

// Defined reports whether the figure carries a value.
func (f Figure) Defined() bool {
	return f.defined
}

// Value returns the figure and whether it is defined.
func (f Figure) Value() (float64, bool) {
	return f.value, f.defined
}

// Float64 returns the value, or NaN when undefined.
func (f Figure) Float64() float64 {
	if !f.defined {
		return math.NaN()
	}
	return f.value
}

// Or returns the value, or fallback when undefined.
func (f Figure) Or(fallback float64) float64 {
	if !f.defined {
		return fallback
	}
	return f.value
}

// Round rounds to the given number of decimals; see the package-level Round.
func (f Figure) Round(places int) Figure {
	if !f.defined {
		return f
	}
	return NewFigure(Round(f.value, places))
}

// Floor floors to the given number of decimals.
func (f Figure) Floor(places int) Figure {
	if !f.defined {
		return f
	}
	scale := math.Pow(10, float64(places))
	return NewFigure(math.Floor(f.value*scale) / scale)
}

// Less reports whether f is defined and smaller than other, or other is undefined.
func (f Figure) Less(other Figure) bool {
	if !f.defined {
		return false
	}
	return !other.defined || f.value < other.value
}

// Greater reports whether f is defined and larger than other, or other is undefined.
func (f Figure) Greater(other Figure) bool {
	if !f.defined {
		return false
	}
	return !other.defined || f.value > other.value
}

// Format renders the figure with one decimal, or placeholder when undefined.
func (f Figure) Format(placeholder string) string {
	if !f.defined {
		return placeholder
	}
	return strconv.FormatFloat(f.value, 'f', 1, 64)
}

func (f Figure) String() string {
	return f.Format("-")
}

// MarshalJSON encodes undefined figures as null.
func (f Figure) MarshalJSON() ([]byte, error) {
	if !f.defined {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f.value, 'f', -1, 64)), nil
}

// Round rounds the exact binary value of v to the given number of decimals,
// ties to even. 55.35 is stored as 55.3499... and rounds to 55.3; 55.75 is
// exact and rounds to 55.8.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// Triple holds the three fractional figures fr1, fr2, fr3.
type Triple [3]Figure

// UndefinedTriple returns three undefined figures.
func UndefinedTriple() Triple {
	return Triple{}
}
