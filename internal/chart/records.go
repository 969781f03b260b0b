// Package chart groups decoded chart records into a Chart → Race → Starter tree.
package chart

// Header is the track-level record of a chart.
type Header interface {
	TrackCode() string
	RaceDate() string
	NumberOfRaces() int
}

// RaceRecord is the race-level record of a chart. Distances are hundredths of
// a furlong; split and final times are seconds with 0 meaning missing.
type RaceRecord interface {
	RaceNumber() int
	BreedIndicator() string
	RaceType() string
	SexRestriction() string
	AgeRestriction() string
	Surface() string
	CourseType() string
	Distance() int
	Purse() float64
	MaximumClaimingPrice() float64
	NumberOfHorses() int
	Fraction1() float64
	Fraction2() float64
	Fraction3() float64
	FinalTime() float64
}

// StarterRecord is one horse's running line. Odds and beaten lengths are in hundredths.
type StarterRecord interface {
	RaceNumber() int
	PostPosition() int
	OfficialFinish() int
	Odds() int
	LengthBehindAtPOC1() int
	LengthBehindAtPOC2() int
	LengthBehindAtPOC3() int
	LengthBehindAtFinish() int
}

// HeaderData is the decoder's Header implementation.
type HeaderData struct {
	Track string
	Date  string
	Races int
}

func (h HeaderData) TrackCode() string  { return h.Track }
func (h HeaderData) RaceDate() string   { return h.Date }
func (h HeaderData) NumberOfRaces() int { return h.Races }

// RaceData is the decoder's RaceRecord implementation.
type RaceData struct {
	Number        int
	Breed         string
	Class         string
	Sex           string
	Age           string
	SurfaceCode   string
	CourseCode    string
	Hundredths    int
	PurseAmount   float64
	ClaimingPrice float64
	Horses        int
	Splits        [3]float64
	Final         float64
}

func (r RaceData) RaceNumber() int               { return r.Number }
func (r RaceData) BreedIndicator() string        { return r.Breed }
func (r RaceData) RaceType() string              { return r.Class }
func (r RaceData) SexRestriction() string        { return r.Sex }
func (r RaceData) AgeRestriction() string        { return r.Age }
func (r RaceData) Surface() string               { return r.SurfaceCode }
func (r RaceData) CourseType() string            { return r.CourseCode }
func (r RaceData) Distance() int                 { return r.Hundredths }
func (r RaceData) Purse() float64                { return r.PurseAmount }
func (r RaceData) MaximumClaimingPrice() float64 { return r.ClaimingPrice }
func (r RaceData) NumberOfHorses() int           { return r.Horses }
func (r RaceData) Fraction1() float64            { return r.Splits[0] }
func (r RaceData) Fraction2() float64            { return r.Splits[1] }
func (r RaceData) Fraction3() float64            { return r.Splits[2] }
func (r RaceData) FinalTime() float64            { return r.Final }

// StarterData is the decoder's StarterRecord implementation.
type StarterData struct {
	Race         int
	Post         int
	Finish       int
	OddsValue    int
	Margins      [3]int
	FinishMargin int
}

func (s StarterData) RaceNumber() int           { return s.Race }
func (s StarterData) PostPosition() int         { return s.Post }
func (s StarterData) OfficialFinish() int       { return s.Finish }
func (s StarterData) Odds() int                 { return s.OddsValue }
func (s StarterData) LengthBehindAtPOC1() int   { return s.Margins[0] }
func (s StarterData) LengthBehindAtPOC2() int   { return s.Margins[1] }
func (s StarterData) LengthBehindAtPOC3() int   { return s.Margins[2] }
func (s StarterData) LengthBehindAtFinish() int { return s.FinishMargin }
