// Package guide renders daily pace bands into spreadsheet guides and prints
// per-race reports.
package guide

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/result-reporter/internal/daily"
	"github.com/yourusername/result-reporter/internal/models"
)

// ErrGuideExists is returned instead of overwriting a guide.
var ErrGuideExists = errors.New("guide already exists")

const (
	// SheetName is the worksheet guides are written to.
	SheetName = "Sheet1"

	DefaultFontName = "Aptos Narrow"
	DefaultFontSize = 14.0

	defaultColor  = "000000"
	columnsPerKey = 4
	dateLayout    = "01/02"
	placeholder   = "-"
)

// Writer renders guides with a fixed font.
type Writer struct {
	fontName string
	fontSize float64
}

// NewWriter creates a Writer. Empty values fall back to the defaults.
func NewWriter(fontName string, fontSize float64) *Writer {
	if fontName == "" {
		fontName = DefaultFontName
	}
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	return &Writer{fontName: fontName, fontSize: fontSize}
}

// SurfaceName returns the header name of a course letter, or "" when the
// letter has no display name of its own.
func SurfaceName(letter string) string {
	ct := models.ParseCourseType(letter)
	if own, ok := ct.Letter(); !ok || own != letter {
		return ""
	}
	name, _ := ct.DisplayName()
	return name
}

// HeaderTitle is the merged header text over one surface and bucket.
func HeaderTitle(letter string, key models.DistanceKey) string {
	return strings.TrimSpace(SurfaceName(letter) + " " + key.Label())
}

// Write renders one header row plus a minimums and a maximums row per day.
// Days must be built for the same surfaces, in the same order.
func (w *Writer) Write(path string, model models.Model, surfaces []string, days []*daily.Day) (err error) {
	format, err := figureFormat(model)
	if err != nil {
		return err
	}

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrGuideExists)
		}
		return fmt.Errorf("create guide: %w", err)
	}
	defer func() {
		out.Close()
		if err != nil {
			os.Remove(path)
		}
	}()

	f := excelize.NewFile()
	defer f.Close()

	sheet := &sheetWriter{file: f, writer: w, styles: make(map[string]int)}
	if err := sheet.header(surfaces); err != nil {
		return err
	}
	row := 2
	for _, day := range days {
		if err := sheet.day(row, day, format); err != nil {
			return fmt.Errorf("%s %s: %w", day.TrackCode, day.RaceDate.Format(daily.RaceDateLayout), err)
		}
		row += 2
	}

	if err := f.Write(out); err != nil {
		return fmt.Errorf("write guide: %w", err)
	}
	return out.Close()
}

func figureFormat(model models.Model) (func(models.Figure) models.Figure, error) {
	switch model {
	case models.ShakeUpModel:
		return Fifths, nil
	case models.BrohamerModel:
		return func(f models.Figure) models.Figure { return f.Round(1) }, nil
	}
	return nil, fmt.Errorf("%w: %q", models.ErrUnknownModel, model)
}

type sheetWriter struct {
	file   *excelize.File
	writer *Writer
	styles map[string]int
}

func (s *sheetWriter) surfaceStyle(letter string) (int, error) {
	color, ok := models.CourseColor(letter)
	if !ok {
		color = defaultColor
	}
	return s.style(color)
}

func (s *sheetWriter) style(color string) (int, error) {
	if id, ok := s.styles[color]; ok {
		return id, nil
	}
	id, err := s.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Family: s.writer.fontName,
			Size:   s.writer.fontSize,
			Color:  color,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return 0, fmt.Errorf("create style: %w", err)
	}
	s.styles[color] = id
	return id, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func (s *sheetWriter) header(surfaces []string) error {
	col := 2
	for _, surface := range surfaces {
		style, err := s.surfaceStyle(surface)
		if err != nil {
			return err
		}
		for _, key := range models.DistanceKeys() {
			start, end := cell(col, 1), cell(col+columnsPerKey-1, 1)
			if err := s.file.SetCellValue(SheetName, start, HeaderTitle(surface, key)); err != nil {
				return err
			}
			if err := s.file.MergeCell(SheetName, start, end); err != nil {
				return err
			}
			if err := s.file.SetCellStyle(SheetName, start, end, style); err != nil {
				return err
			}
			col += columnsPerKey
		}
	}
	return nil
}

func (s *sheetWriter) day(row int, day *daily.Day, format func(models.Figure) models.Figure) error {
	dateStyle, err := s.style(defaultColor)
	if err != nil {
		return err
	}
	top, bottom := cell(1, row), cell(1, row+1)
	if err := s.file.SetCellValue(SheetName, top, day.RaceDate.Format(dateLayout)); err != nil {
		return err
	}
	if err := s.file.MergeCell(SheetName, top, bottom); err != nil {
		return err
	}
	if err := s.file.SetCellStyle(SheetName, top, bottom, dateStyle); err != nil {
		return err
	}

	col := 2
	for _, record := range day.Records {
		style, err := s.surfaceStyle(record.Surface)
		if err != nil {
			return err
		}
		for i := range record.Minimums {
			if err := s.figure(cell(col+i, row), format(record.Minimums[i])); err != nil {
				return err
			}
			if err := s.figure(cell(col+i, row+1), format(record.Maximums[i])); err != nil {
				return err
			}
		}
		if err := s.file.SetCellValue(SheetName, cell(col+3, row), record.Comment); err != nil {
			return err
		}
		if err := s.file.SetCellStyle(SheetName, cell(col, row), cell(col+3, row+1), style); err != nil {
			return err
		}
		col += columnsPerKey
	}
	return nil
}

func (s *sheetWriter) figure(axis string, f models.Figure) error {
	if v, ok := f.Value(); ok {
		return s.file.SetCellValue(SheetName, axis, v)
	}
	return s.file.SetCellValue(SheetName, axis, placeholder)
}
