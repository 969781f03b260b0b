package bias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/result-reporter/internal/chart"
	"github.com/yourusername/result-reporter/internal/chart/charttest"
	"github.com/yourusername/result-reporter/internal/models"
)

type winnerLine struct {
	post    int
	odds    int
	margins [3]int
}

// card builds a chart of dirt races at the given distance, one per winner line.
func card(t *testing.T, distance int, lines ...winnerLine) *chart.Chart {
	t.Helper()

	races := make([]chart.RaceData, 0, len(lines))
	starters := make([]chart.StarterData, 0, len(lines))
	for i, line := range lines {
		number := i + 1
		races = append(races, charttest.TBRace(number, "D", distance, [3]float64{22.5, 46.0, 71.0}, 110.0))
		starters = append(starters, charttest.Winner(number, line.post, line.odds, line.margins, 0))
	}
	return charttest.Build(t, "AQU", "20240105", races, starters)
}

func TestPostBand(t *testing.T) {
	assert.Equal(t, 0, PostBand(1))
	assert.Equal(t, 0, PostBand(3))
	assert.Equal(t, 1, PostBand(4))
	assert.Equal(t, 2, PostBand(9))
	assert.Equal(t, 3, PostBand(12))
	assert.Equal(t, -1, PostBand(13))
}

func TestPostPositionSampleCodes(t *testing.T) {
	one := winnerLine{post: 1, odds: 300}

	tests := []struct {
		name string
		c    *chart.Chart
		want string
	}{
		{name: "one race", c: card(t, 600, one), want: OneRace},
		{name: "two races", c: card(t, 600, one, one), want: TwoRaces},
		{name: "other bucket", c: card(t, 900, one, one, one), want: NoRaces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PostPosition(tt.c, "D", models.Sprint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostPosition(t *testing.T) {
	tests := []struct {
		name  string
		lines []winnerLine
		want  string
	}{
		{
			name:  "inside posts win at long odds",
			lines: []winnerLine{{post: 1, odds: 1500}, {post: 2, odds: 1500}, {post: 5, odds: 300}},
			want:  Inside,
		},
		{
			name:  "outside posts win at long odds",
			lines: []winnerLine{{post: 8, odds: 1500}, {post: 8, odds: 1500}, {post: 2, odds: 300}},
			want:  Outside,
		},
		{
			name:  "even spread",
			lines: []winnerLine{{post: 1, odds: 300}, {post: 4, odds: 300}, {post: 7, odds: 300}},
			want:  "",
		},
		{
			name:  "single band uses the sentinel",
			lines: []winnerLine{{post: 1, odds: 300}, {post: 2, odds: 300}, {post: 3, odds: 300}},
			want:  Inside,
		},
		{
			// wide posts count toward the sample but fill no band
			name:  "posts past twelve",
			lines: []winnerLine{{post: 13, odds: 300}, {post: 14, odds: 300}, {post: 13, odds: 300}},
			want:  Inside,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PostPosition(card(t, 600, tt.lines...), "D", models.Sprint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunningStyleSampleCodes(t *testing.T) {
	early := winnerLine{post: 1, odds: 2500, margins: [3]int{0, 0, 0}}
	closer := winnerLine{post: 9, odds: 150, margins: [3]int{900, 900, 0}}

	tests := []struct {
		name string
		c    *chart.Chart
		key  models.DistanceKey
		want string
	}{
		{name: "no races in the bucket", c: card(t, 900, early, closer, early), key: models.Sprint, want: NoRaces},
		{name: "one long shot", c: card(t, 600, early), key: models.Sprint, want: OneRace},
		{name: "two races mixed odds", c: card(t, 600, early, closer), key: models.Sprint, want: TwoRaces},
		{name: "two route races one style", c: card(t, 900, early, early), key: models.Route, want: TwoRaces},
		{name: "no sprints on a route card", c: card(t, 900, closer), key: models.Sprint, want: NoRaces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RunningStyleBias(tt.c, "D", tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := RunningStyleBias(card(t, 600, early, early, early), "T", models.Sprint)
	require.NoError(t, err)
	assert.Equal(t, NoRaces, got)
}

func TestRunningStyleBias(t *testing.T) {
	tests := []struct {
		name     string
		distance int
		key      models.DistanceKey
		lines    []winnerLine
		want     string
	}{
		{
			name:     "speed",
			distance: 600,
			key:      models.Sprint,
			lines: []winnerLine{
				{post: 1, odds: 1500, margins: [3]int{50, 0, 0}},
				{post: 2, odds: 1500, margins: [3]int{0, 0, 0}},
				{post: 3, odds: 300, margins: [3]int{300, 0, 0}},
			},
			want: Speed,
		},
		{
			name:     "stalker",
			distance: 600,
			key:      models.Sprint,
			lines: []winnerLine{
				{post: 1, odds: 1500, margins: [3]int{300, 0, 0}},
				{post: 2, odds: 1500, margins: [3]int{500, 0, 0}},
				{post: 3, odds: 300, margins: [3]int{50, 0, 0}},
			},
			want: Stalker,
		},
		{
			name:     "closer",
			distance: 600,
			key:      models.Sprint,
			lines: []winnerLine{
				{post: 1, odds: 1500, margins: [3]int{700, 0, 0}},
				{post: 2, odds: 1500, margins: [3]int{900, 0, 0}},
				{post: 3, odds: 300, margins: [3]int{300, 0, 0}},
			},
			want: Closer,
		},
		{
			name:     "all early uses the sentinel",
			distance: 600,
			key:      models.Sprint,
			lines: []winnerLine{
				{post: 1, odds: 300}, {post: 2, odds: 300}, {post: 3, odds: 300},
			},
			want: Speed,
		},
		{
			name:     "no bias",
			distance: 600,
			key:      models.Sprint,
			lines: []winnerLine{
				{post: 1, odds: 300, margins: [3]int{0, 0, 0}},
				{post: 2, odds: 300, margins: [3]int{300, 0, 0}},
				{post: 3, odds: 300, margins: [3]int{700, 0, 0}},
			},
			want: "",
		},
		{
			name:     "routes are judged at the second call",
			distance: 900,
			key:      models.Route,
			lines: []winnerLine{
				{post: 1, odds: 1500, margins: [3]int{0, 800, 0}},
				{post: 2, odds: 1500, margins: [3]int{0, 600, 0}},
				{post: 3, odds: 300, margins: [3]int{800, 200, 0}},
			},
			want: Closer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RunningStyleBias(card(t, tt.distance, tt.lines...), "D", tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDailyComment(t *testing.T) {
	tests := []struct {
		name  string
		lines []winnerLine
		want  string
	}{
		{
			name:  "sample code only",
			lines: []winnerLine{{post: 1, odds: 1500}, {post: 1, odds: 1500}},
			want:  TwoRaces,
		},
		{
			name: "post and style joined",
			lines: []winnerLine{
				{post: 1, odds: 1500, margins: [3]int{0, 0, 0}},
				{post: 2, odds: 1500, margins: [3]int{0, 0, 0}},
				{post: 5, odds: 300, margins: [3]int{300, 0, 0}},
			},
			want: "In,Sp",
		},
		{
			name: "style only",
			lines: []winnerLine{
				{post: 1, odds: 1500, margins: [3]int{700, 0, 0}},
				{post: 4, odds: 1500, margins: [3]int{800, 0, 0}},
				{post: 7, odds: 300, margins: [3]int{50, 0, 0}},
				{post: 10, odds: 300, margins: [3]int{300, 0, 0}},
			},
			want: Closer,
		},
		{
			name: "nothing to report",
			lines: []winnerLine{
				{post: 1, odds: 300, margins: [3]int{0, 0, 0}},
				{post: 4, odds: 300, margins: [3]int{300, 0, 0}},
				{post: 7, odds: 300, margins: [3]int{700, 0, 0}},
			},
			want: NoComment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DailyComment(card(t, 600, tt.lines...), "D", models.Sprint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDailyCommentTwoRaceCard(t *testing.T) {
	c := charttest.TwoRaceCard(t)

	for _, key := range models.DistanceKeys() {
		got, err := DailyComment(c, "D", key)
		require.NoError(t, err)
		assert.Equal(t, OneRace, got)
	}

	got, err := DailyComment(c, "T", models.Sprint)
	require.NoError(t, err)
	assert.Equal(t, NoRaces, got)
}

func TestDetectorsRejectRaceWithoutWinner(t *testing.T) {
	c := charttest.Build(t, "AQU", "20240105",
		[]chart.RaceData{charttest.TBRace(1, "D", 600, [3]float64{}, 70)},
		[]chart.StarterData{charttest.Runner(1, 1, 2, 300)},
	)

	_, err := DailyComment(c, "D", models.Sprint)
	assert.ErrorIs(t, err, chart.ErrNoWinner)
}
