package models

import "time"

// CheckStatus is the outcome recorded for a matched code.
type CheckStatus string

// StatusFound is the only status a check can produce; codes are never
// un-checked within a run.
const StatusFound CheckStatus = "Found"

// CheckRecord is the per-code result of a successful match.
type CheckRecord struct {
	// Code is the canonical code that was matched.
	Code string `json:"code"`
	// Status is the check outcome.
	Status CheckStatus `json:"status"`
	// CheckedAt is the time of the (latest) successful match.
	CheckedAt time.Time `json:"checkedAt"`
}

// ReportRow is one line of the reconciliation report.
type ReportRow struct {
	// Code is the checklist entry.
	Code string `json:"code"`
	// Status is "Found" or "Unchecked".
	Status string `json:"status"`
	// Date is the localized check time, or "-" when unchecked.
	Date string `json:"date"`
}

// Report summarizes a check run over the full checklist.
type Report struct {
	// Total is the number of checklist entries.
	Total int `json:"total"`
	// Checked is the number of entries marked found.
	Checked int `json:"checked"`
	// Rows lists every checklist entry in original load order.
	Rows []ReportRow `json:"rows"`
}

// StatusUnchecked is the report rendering for entries never matched.
const StatusUnchecked = "Unchecked"
