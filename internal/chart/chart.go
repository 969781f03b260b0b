package chart

import (
	"errors"
	"fmt"

	"github.com/yourusername/result-reporter/internal/models"
)

// ThoroughbredBreed is the breed indicator of races that get pace figures.
const ThoroughbredBreed = "TB"

var (
	ErrIncompleteChart = errors.New("incomplete chart")
	ErrNoWinner        = errors.New("race has no official winner")
	ErrMultipleWinners = errors.New("race has more than one official winner")
	ErrMalformedRecord = errors.New("malformed chart record")
)

// Race is one race record plus its starters in chart order.
type Race struct {
	Data     RaceRecord
	Starters []StarterRecord
}

// Chart is one track's card for one date.
type Chart struct {
	TrackCode     string
	RaceDate      string
	NumberOfRaces int
	Races         []*Race
}

// New groups flat race and starter records into a Chart. Race order and the
// relative order of each race's starters are preserved.
func New(header Header, races []RaceRecord, starters []StarterRecord) (*Chart, error) {
	if header == nil || len(races) == 0 || len(starters) == 0 {
		return nil, ErrIncompleteChart
	}

	c := &Chart{
		TrackCode:     header.TrackCode(),
		RaceDate:      header.RaceDate(),
		NumberOfRaces: header.NumberOfRaces(),
		Races:         make([]*Race, 0, len(races)),
	}
	for _, data := range races {
		race := &Race{Data: data}
		for _, starter := range starters {
			if starter.RaceNumber() == data.RaceNumber() {
				race.Starters = append(race.Starters, starter)
			}
		}
		c.Races = append(c.Races, race)
	}
	return c, nil
}

// Winner returns the starter with official finish 1.
func (r *Race) Winner() (StarterRecord, error) {
	var winner StarterRecord
	for _, starter := range r.Starters {
		if starter.OfficialFinish() != 1 {
			continue
		}
		if winner != nil {
			return nil, fmt.Errorf("race %d: %w", r.Data.RaceNumber(), ErrMultipleWinners)
		}
		winner = starter
	}
	if winner == nil {
		return nil, fmt.Errorf("race %d: %w", r.Data.RaceNumber(), ErrNoWinner)
	}
	return winner, nil
}

// IsThoroughbred reports whether the race is a thoroughbred race.
func (r *Race) IsThoroughbred() bool {
	return r.Data.BreedIndicator() == ThoroughbredBreed
}

// Furlongs returns the race distance in furlongs.
func (r *Race) Furlongs() float64 {
	return models.Furlongs(r.Data.Distance())
}

// Matches reports whether the race was run on the course letter within the distance bucket.
func (r *Race) Matches(courseLetter string, key models.DistanceKey) bool {
	return r.Data.CourseType() == courseLetter && key.Matches(r.Furlongs())
}

// Key identifies a race within a batch: race date plus two-digit race number.
func (c *Chart) Key(r *Race) string {
	return fmt.Sprintf("%s%02d", c.RaceDate, r.Data.RaceNumber())
}

// Thoroughbreds returns the chart's thoroughbred races in order.
func (c *Chart) Thoroughbreds() []*Race {
	races := make([]*Race, 0, len(c.Races))
	for _, race := range c.Races {
		if race.IsThoroughbred() {
			races = append(races, race)
		}
	}
	return races
}

// CourseLetters returns the distinct course letters of the chart in race order.
func (c *Chart) CourseLetters() []string {
	seen := make(map[string]bool)
	var letters []string
	for _, race := range c.Races {
		letter := race.Data.CourseType()
		if !seen[letter] {
			seen[letter] = true
			letters = append(letters, letter)
		}
	}
	return letters
}
