package guide

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/yourusername/result-reporter/internal/bias"
	"github.com/yourusername/result-reporter/internal/daily"
	"github.com/yourusername/result-reporter/internal/models"
	"github.com/yourusername/result-reporter/internal/pace"
)

var dayReportColumns = []string{
	"KEY", "CLASS", "SEX", "AGE", "CLAIM", "PURSE", "RACE", "SURF", "CRS", "DIST", "N", "PP",
	"ODDS", "EV", "BL1", "BL2", "C1", "C2", "FC", "FR1", "FR2", "FR3", "EP", "SP", "AP", "FX", "ENERGY",
}

// DayReport prints one line per Brohamer report with the winner's decimal odds
// and win expectation. Undefined figures print as "-".
func DayReport(w io.Writer, reports []pace.BrohamerReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintln(tw, strings.Join(dayReportColumns, "\t"))
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.0f\t%.0f\t%d\t%s\t%s\t%.1f\t%d\t%d\t%s\t%.3f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Key, r.Class, r.Sex, r.Age, r.ClaimingPrice, r.Purse, r.RaceNumber, r.Surface, r.Course,
			r.Distance, r.NumberOfHorses, r.PostPosition,
			bias.DecimalOdds(r.Odds).StringFixed(2), bias.ExpectedValue(r.Odds), r.BL1, r.BL2, r.C1, r.C2, r.FC,
			r.Fr1, r.Fr2, r.Fr3, r.EP, r.SP, r.AP, r.FX, energyText(r.Energy),
		)
	}
	return tw.Flush()
}

// GenerateConsoleReport summarises a built day for terminal output.
func GenerateConsoleReport(day *daily.Day) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%s %s (%s)\n", day.TrackCode, day.RaceDate.Format(daily.RaceDateLayout), day.Model))
	builder.WriteString(fmt.Sprintf("Reports: %d, undefined figures: %d\n", day.Reports, day.UndefinedFigures))
	for _, record := range day.Records {
		builder.WriteString(fmt.Sprintf("%-24s min %s/%s/%s  max %s/%s/%s  %s\n",
			HeaderTitle(record.Surface, record.Key),
			record.Minimums[0], record.Minimums[1], record.Minimums[2],
			record.Maximums[0], record.Maximums[1], record.Maximums[2],
			record.Comment,
		))
	}
	return builder.String()
}

func energyText(f models.Figure) string {
	v, ok := f.Value()
	if !ok {
		return placeholder
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
