package checklist

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"list-control/feature/checklist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	store := NewStore()
	store.Replace([]string{"LBL001", "LBL002", "LBL003"})
	checkedAt := time.Date(2026, 8, 30, 14, 30, 0, 0, time.Local)
	store.MarkFound("LBL002", checkedAt)

	report := BuildReport(store)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Checked)
	require.Len(t, report.Rows, 3)

	assert.Equal(t, models.ReportRow{Code: "LBL001", Status: "Unchecked", Date: "-"}, report.Rows[0])
	assert.Equal(t, models.ReportRow{Code: "LBL002", Status: "Found", Date: "2026-08-30 14:30:00"}, report.Rows[1])
	assert.Equal(t, models.ReportRow{Code: "LBL003", Status: "Unchecked", Date: "-"}, report.Rows[2])
}

func TestWriteCSV(t *testing.T) {
	store := NewStore()
	store.Replace([]string{"LBL001", "LBL002"})
	store.MarkFound("LBL001", time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local))

	var buf bytes.Buffer
	err := WriteCSV(&buf, BuildReport(store))
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Code", "Status", "Date"}, records[0])
	assert.Equal(t, []string{"LBL001", "Found", "2026-08-30 09:00:00"}, records[1])
	assert.Equal(t, []string{"LBL002", "Unchecked", "-"}, records[2])
}

func TestReportFileName(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "control_report_2026-08-30.csv", ReportFileName(now))
}
