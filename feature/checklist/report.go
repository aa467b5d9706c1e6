package checklist

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"list-control/feature/checklist/models"
)

// reportTimeLayout renders check timestamps in the report.
const reportTimeLayout = "2006-01-02 15:04:05"

// BuildReport produces the reconciliation report for the current run:
// one row per checklist entry in original load order.
func BuildReport(store *Store) models.Report {
	codes := store.Codes()
	report := models.Report{
		Rows: make([]models.ReportRow, 0, len(codes)),
	}
	for _, code := range codes {
		row := models.ReportRow{
			Code:   code,
			Status: models.StatusUnchecked,
			Date:   "-",
		}
		if rec, ok := store.Check(code); ok {
			row.Status = string(rec.Status)
			row.Date = rec.CheckedAt.Format(reportTimeLayout)
		}
		report.Rows = append(report.Rows, row)
	}
	report.Total, report.Checked = store.Counts()
	return report
}

// WriteCSV writes the report as CSV with the fixed columns Code, Status, Date.
func WriteCSV(w io.Writer, report models.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Code", "Status", "Date"}); err != nil {
		return err
	}
	for _, row := range report.Rows {
		if err := cw.Write([]string{row.Code, row.Status, row.Date}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReportFileName returns the dated export file name for a report.
func ReportFileName(now time.Time) string {
	return fmt.Sprintf("control_report_%s.csv", now.Format("2006-01-02"))
}
