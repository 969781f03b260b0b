package bias

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/result-reporter/internal/chart"
	"github.com/yourusername/result-reporter/internal/models"
)

// Sample size codes reported instead of a bias when too few races match.
const (
	NoRaces  = "nr"
	OneRace  = "1r"
	TwoRaces = "2r"
)

// Bias codes.
const (
	Inside  = "In"
	Outside = "Br"
	Speed   = "Sp"
	Stalker = "St"
	Closer  = "Cl"
)

// NoComment is the daily comment when no bias shows.
const NoComment = "-"

var (
	postPositionSentinel = decimal.RequireFromString("2.0")
	runningStyleSentinel = decimal.RequireFromString("1.9")
	biasThreshold        = decimal.NewFromInt(1)
)

// Post-position bands are 1-3, 4-6, 7-9 and 10-12.
var postBandLimits = []int{3, 6, 9, 12}

// Running styles by beaten lengths at the call.
const (
	early = iota
	presser
	sustained
)

var styleCodes = []string{Speed, Stalker, Closer}

// tally accumulates odds scores per band.
type tally struct {
	total  int
	counts []int
	scores []decimal.Decimal
}

func newTally(bands int) *tally {
	scores := make([]decimal.Decimal, bands)
	for i := range scores {
		scores[i] = decimal.Zero
	}
	return &tally{counts: make([]int, bands), scores: scores}
}

func (t *tally) add(band int, score decimal.Decimal) {
	if band < 0 {
		return
	}
	t.counts[band]++
	t.scores[band] = t.scores[band].Add(score)
}

func (t *tally) means() []decimal.Decimal {
	means := make([]decimal.Decimal, len(t.scores))
	for i, score := range t.scores {
		if t.counts[i] == 0 {
			means[i] = decimal.Zero
			continue
		}
		means[i] = score.Div(decimal.NewFromInt(int64(t.counts[i])))
	}
	return means
}

// leader returns the index of the band with the highest mean when it beats
// the runner-up by more than the threshold, or -1.
func (t *tally) leader(sentinel decimal.Decimal) int {
	means := t.means()
	sorted := append([]decimal.Decimal(nil), means...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].GreaterThan(sorted[j]) })

	high, second := sorted[0], sorted[1]
	diff := sentinel
	if !second.IsZero() {
		diff = high.Sub(second).Div(second).Round(2)
	}
	if !diff.GreaterThan(biasThreshold) {
		return -1
	}
	for i, mean := range means {
		if mean.Equal(high) {
			return i
		}
	}
	return -1
}

func sampleCode(total int) (string, bool) {
	switch total {
	case 0:
		return NoRaces, true
	case 1:
		return OneRace, true
	case 2:
		return TwoRaces, true
	}
	return "", false
}

// IsSampleCode reports whether code is one of the small-sample codes.
func IsSampleCode(code string) bool {
	return code == NoRaces || code == OneRace || code == TwoRaces
}

// winners returns the winners of thoroughbred races run over the surface
// letter in the distance bucket.
func winners(c *chart.Chart, surface string, key models.DistanceKey) ([]chart.StarterRecord, error) {
	var matched []chart.StarterRecord
	for _, race := range c.Thoroughbreds() {
		if !race.Matches(surface, key) {
			continue
		}
		winner, err := race.Winner()
		if err != nil {
			return nil, err
		}
		matched = append(matched, winner)
	}
	return matched, nil
}

// PostBand returns the band index of a post position, or -1 above post 12.
func PostBand(post int) int {
	for i, limit := range postBandLimits {
		if post <= limit {
			return i
		}
	}
	return -1
}

// PostPosition returns the post-position bias code for the surface and
// distance bucket: a sample code, Inside, Outside, or "".
func PostPosition(c *chart.Chart, surface string, key models.DistanceKey) (string, error) {
	matched, err := winners(c, surface, key)
	if err != nil {
		return "", err
	}

	t := newTally(len(postBandLimits))
	for _, winner := range matched {
		t.total++
		t.add(PostBand(winner.PostPosition()), OddsScore(winner.Odds()))
	}
	if code, ok := sampleCode(t.total); ok {
		return code, nil
	}

	switch t.leader(postPositionSentinel) {
	case -1:
		return "", nil
	case 0:
		return Inside, nil
	default:
		return Outside, nil
	}
}

// RunningStyle classifies a winner's beaten lengths (hundredths) at the call.
func RunningStyle(lengthsBehind int) int {
	switch {
	case lengthsBehind < 100:
		return early
	case lengthsBehind <= 500:
		return presser
	default:
		return sustained
	}
}

// RunningStyleBias returns the running-style bias code for the surface and
// distance bucket: a sample code, Speed, Stalker, Closer, or "". Sprints are
// judged at the first call, routes at the second.
func RunningStyleBias(c *chart.Chart, surface string, key models.DistanceKey) (string, error) {
	matched, err := winners(c, surface, key)
	if err != nil {
		return "", err
	}

	t := newTally(len(styleCodes))
	for _, winner := range matched {
		lengths := winner.LengthBehindAtPOC1()
		if key == models.Route {
			lengths = winner.LengthBehindAtPOC2()
		}
		t.total++
		t.add(RunningStyle(lengths), OddsScore(winner.Odds()))
	}
	if code, ok := sampleCode(t.total); ok {
		return code, nil
	}

	if i := t.leader(runningStyleSentinel); i >= 0 {
		return styleCodes[i], nil
	}
	return "", nil
}

// DailyComment combines both detectors into the guide comment.
func DailyComment(c *chart.Chart, surface string, key models.DistanceKey) (string, error) {
	post, err := PostPosition(c, surface, key)
	if err != nil {
		return "", err
	}
	if IsSampleCode(post) {
		return post, nil
	}

	style, err := RunningStyleBias(c, surface, key)
	if err != nil {
		return "", err
	}

	var codes []string
	for _, code := range []string{post, style} {
		if code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return NoComment, nil
	}
	return strings.Join(codes, ","), nil
}
