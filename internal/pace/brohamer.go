package pace

import "github.com/yourusername/result-reporter/internal/models"

// MinimumBrohamerDistance is the shortest race, in furlongs, given Brohamer figures.
const MinimumBrohamerDistance = 5.0

// BrohamerReport holds the Brohamer velocity figures (feet per second) for one
// race winner.
type BrohamerReport struct {
	Key            string        `json:"key"`
	Class          string        `json:"class"`
	Sex            string        `json:"sex"`
	Age            string        `json:"age"`
	ClaimingPrice  float64       `json:"claiming_price"`
	Purse          float64       `json:"purse"`
	RaceNumber     int           `json:"race"`
	Surface        string        `json:"surface"`
	Course         string        `json:"course"`
	Distance       float64       `json:"distance"`
	NumberOfHorses int           `json:"number"`
	PostPosition   int           `json:"post"`
	Odds           int           `json:"odds"`
	BL1            float64       `json:"bl1"`
	BL2            float64       `json:"bl2"`
	C1             float64       `json:"c1"`
	C2             float64       `json:"c2"`
	FC             float64       `json:"fc"`
	Fr1            models.Figure `json:"fr1"`
	Fr2            models.Figure `json:"fr2"`
	Fr3            models.Figure `json:"fr3"`
	EP             models.Figure `json:"ep"`
	SP             models.Figure `json:"sp"`
	AP             models.Figure `json:"ap"`
	FX             models.Figure `json:"fx"`
	Energy         models.Figure `json:"energy"`
}

// BrohamerInput is the raw data a Brohamer report is built from. C1 and C2 are
// the cumulative times at the two calls used for the distance, BL1 and BL2 the
// winner's margins there in hundredths of a length. Odds are in hundredths.
type BrohamerInput struct {
	Key            string
	Class          string
	Sex            string
	Age            string
	ClaimingPrice  float64
	Purse          float64
	RaceNumber     int
	Surface        string
	Course         string
	Distance       int
	NumberOfHorses int
	PostPosition   int
	Odds           int
	BL1            int
	BL2            int
	C1             float64
	C2             float64
	FC             float64
}

type brohamerConstants struct {
	firstCallFeet  float64
	earlyPaceFeet  float64
	finalFurlongs  float64
	energyDecimals int
}

var (
	sprintConstants = brohamerConstants{firstCallFeet: 1320, earlyPaceFeet: 2640, finalFurlongs: 4, energyDecimals: 2}
	routeConstants  = brohamerConstants{firstCallFeet: 2640, earlyPaceFeet: 3960, finalFurlongs: 6, energyDecimals: 1}
)

// NewBrohamerReport computes Brohamer figures. Every figure stays undefined
// below five furlongs, when either call time is missing, or when a segment
// has no elapsed time.
func NewBrohamerReport(in BrohamerInput) BrohamerReport {
	r := BrohamerReport{
		Key:            in.Key,
		Class:          in.Class,
		Sex:            in.Sex,
		Age:            in.Age,
		ClaimingPrice:  in.ClaimingPrice,
		Purse:          in.Purse,
		RaceNumber:     in.RaceNumber,
		Surface:        in.Surface,
		Course:         in.Course,
		Distance:       models.RoundedFurlongs(in.Distance),
		NumberOfHorses: in.NumberOfHorses,
		PostPosition:   in.PostPosition,
		Odds:           in.Odds,
		BL1:            models.Round(float64(in.BL1)/100, 2),
		BL2:            models.Round(float64(in.BL2)/100, 2),
		C1:             in.C1,
		C2:             in.C2,
		FC:             in.FC,
	}

	if r.Distance < MinimumBrohamerDistance || r.C1 == 0 || r.C2 == 0 {
		return r
	}
	if r.C2 == r.C1 || r.FC == r.C2 {
		return r
	}

	k := sprintConstants
	if models.DistanceKeyFor(r.Distance) == models.Route {
		k = routeConstants
	}

	fr1 := models.NewFigure((k.firstCallFeet - 10*r.BL1) / r.C1).Round(1)
	fr2 := models.NewFigure((1320 - 10*(r.BL2-r.BL1)) / (r.C2 - r.C1)).Round(1)
	fr3 := models.NewFigure((660*(r.Distance-k.finalFurlongs) + 10*r.BL2) / (r.FC - r.C2)).Round(1)
	ep := models.NewFigure((k.earlyPaceFeet - 10*r.BL2) / r.C2).Round(1)

	f1, e, f3 := fr1.Float64(), ep.Float64(), fr3.Float64()
	if e+f3 == 0 {
		return r
	}

	r.Fr1, r.Fr2, r.Fr3, r.EP = fr1, fr2, fr3, ep
	r.SP = models.NewFigure((e + f3) / 2).Round(1)
	if k == routeConstants {
		r.AP = models.NewFigure((f1 + f3) / 2).Round(1)
	} else {
		r.AP = models.NewFigure((f1 + fr2.Float64() + f3) / 3).Round(1)
	}
	r.FX = models.NewFigure((f1 + f3) / 2).Round(1)
	r.Energy = models.NewFigure(e / (e + f3)).Round(k.energyDecimals)
	return r
}

// Figures returns fr1, fr2 and fr3.
func (r BrohamerReport) Figures() models.Triple {
	return models.Triple{r.Fr1, r.Fr2, r.Fr3}
}

// UndefinedCount returns how many of the report's figures are undefined.
func (r BrohamerReport) UndefinedCount() int {
	return countUndefined(r.Fr1, r.Fr2, r.Fr3, r.EP, r.SP, r.AP, r.FX, r.Energy)
}
