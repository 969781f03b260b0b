package chart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record types of the delimited chart stream; the type is the first column.
const (
	RecordHeader         = "H"
	RecordRace           = "R"
	RecordStarter        = "S"
	RecordExoticWagering = "E"
	RecordAttendance     = "A"
	RecordComment        = "C"
	RecordFootnote       = "F"
)

const (
	headerFields  = 4
	raceFields    = 16
	starterFields = 9
)

// Decode reads a delimited chart stream and builds its Chart. Exotic wagering,
// attendance, comment and footnote records are ignored.
func Decode(r io.Reader) (*Chart, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		header   Header
		races    []RaceRecord
		starters []StarterRecord
	)

	for line := 1; ; line++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read chart record: %w", err)
		}
		if len(fields) == 0 {
			continue
		}

		switch strings.TrimSpace(fields[0]) {
		case RecordHeader:
			h, err := decodeHeader(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			header = h
		case RecordRace:
			race, err := decodeRace(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			races = append(races, race)
		case RecordStarter:
			starter, err := decodeStarter(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			starters = append(starters, starter)
		case RecordExoticWagering, RecordAttendance, RecordComment, RecordFootnote:
		}
	}

	return New(header, races, starters)
}

// ParseFile decodes the chart stored at path.
func ParseFile(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chart %s: %w", path, err)
	}
	return c, nil
}

func decodeHeader(fields []string) (HeaderData, error) {
	if len(fields) < headerFields {
		return HeaderData{}, fmt.Errorf("%w: header has %d fields, want %d", ErrMalformedRecord, len(fields), headerFields)
	}
	p := fieldParser{fields: fields}
	h := HeaderData{
		Track: p.text(1),
		Date:  p.text(2),
		Races: p.integer(3),
	}
	return h, p.err
}

func decodeRace(fields []string) (RaceData, error) {
	if len(fields) < raceFields {
		return RaceData{}, fmt.Errorf("%w: race has %d fields, want %d", ErrMalformedRecord, len(fields), raceFields)
	}
	p := fieldParser{fields: fields}
	r := RaceData{
		Number:        p.integer(1),
		Breed:         p.text(2),
		Class:         p.text(3),
		Sex:           p.text(4),
		Age:           p.text(5),
		SurfaceCode:   p.text(6),
		CourseCode:    p.text(7),
		Hundredths:    p.integer(8),
		PurseAmount:   p.decimal(9),
		ClaimingPrice: p.decimal(10),
		Horses:        p.integer(11),
		Splits:        [3]float64{p.decimal(12), p.decimal(13), p.decimal(14)},
		Final:         p.decimal(15),
	}
	return r, p.err
}

func decodeStarter(fields []string) (StarterData, error) {
	if len(fields) < starterFields {
		return StarterData{}, fmt.Errorf("%w: starter has %d fields, want %d", ErrMalformedRecord, len(fields), starterFields)
	}
	p := fieldParser{fields: fields}
	s := StarterData{
		Race:         p.integer(1),
		Post:         p.integer(2),
		Finish:       p.integer(3),
		OddsValue:    p.integer(4),
		Margins:      [3]int{p.integer(5), p.integer(6), p.integer(7)},
		FinishMargin: p.integer(8),
	}
	return s, p.err
}

// fieldParser keeps the first conversion error so records decode in one pass.
type fieldParser struct {
	fields []string
	err    error
}

func (p *fieldParser) text(i int) string {
	return strings.TrimSpace(p.fields[i])
}

func (p *fieldParser) integer(i int) int {
	s := p.text(i)
	if s == "" || p.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		p.err = fmt.Errorf("%w: field %d: %v", ErrMalformedRecord, i, err)
		return 0
	}
	return v
}

func (p *fieldParser) decimal(i int) float64 {
	s := p.text(i)
	if s == "" || p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.err = fmt.Errorf("%w: field %d: %v", ErrMalformedRecord, i, err)
		return 0
	}
	return v
}
