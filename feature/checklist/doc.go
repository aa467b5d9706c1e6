// Package checklist implements loading and verifying lists of identifier codes.
//
// A check run starts by loading a CSV or plain-text document. The first
// column of every row is canonicalized (trimmed, uppercased), empty rows are
// dropped and duplicates collapse to their first occurrence, preserving load
// order. Scanned or typed input is then matched against the list: the
// configured literal prefix is prepended, the result compared
// case-insensitively, and a hit records a Found check with a timestamp.
// Matching is idempotent; a re-scan only refreshes the timestamp.
//
// The reconciliation report renders one row per checklist entry in load
// order with the fixed columns Code, Status, Date, and is exportable as CSV.
//
// State lives in an explicit Store struct owned by the Service; lookup is a
// linear-scale membership test, adequate for human-scale lists and
// human-paced scanning.
package checklist
