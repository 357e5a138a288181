package export

import (
	"encoding/csv"
	"io"
)

// SummaryRow is one reporting period, already formatted for export. Empty
// duration strings stand for "no time recorded" and are written as "–".
type SummaryRow struct {
	Period         string
	WorkingTime    string
	TimeOff        string
	PublicHolidays string
	Total          string
	Level          string
	Excess         string
}

const emptyCell = "–"

func orDash(s string) string {
	if s == "" {
		return emptyCell
	}
	return s
}

// WriteSummaryCSV writes period summaries as CSV. Downstream consumers parse
// this output, so the header and cell formats are stable.
func WriteSummaryCSV(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	// Header
	if err := cw.Write([]string{"Period", "Working Time", "Time Off", "Public Holidays", "Total", "Overwork Level", "Excess"}); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			r.Period,
			orDash(r.WorkingTime),
			orDash(r.TimeOff),
			orDash(r.PublicHolidays),
			orDash(r.Total),
			r.Level,
			orDash(r.Excess),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
