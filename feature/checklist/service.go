package checklist

import (
	"context"
	"io"
	"strings"
	"time"

	"list-control/feature/checklist/models"

	"go.uber.org/zap"
)

// Listener receives notifications about check-run lifecycle events.
// The session feature implements it to drive its sync policy.
type Listener interface {
	// CheckRecorded is called after every successful match.
	CheckRecorded(ctx context.Context)
	// RunReset is called when a brand-new check run is started.
	RunReset(ctx context.Context)
}

// Service handles checklist operations.
type Service struct {
	store    *Store
	prefix   string
	logger   *zap.Logger
	listener Listener
}

// NewService creates a new checklist service. prefix is the literal code
// prefix applied to scanned input (see matcher.Normalize).
func NewService(store *Store, prefix string, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		prefix: prefix,
		logger: logger,
	}
}

// SetListener wires the lifecycle listener. Must be called before the
// service starts handling requests.
func (s *Service) SetListener(l Listener) {
	s.listener = l
}

// Store exposes the underlying state store.
func (s *Service) Store() *Store {
	return s.store
}

// Load parses rows from r and replaces the checklist wholesale, clearing all
// check records. It returns the number of unique codes loaded. On parse
// failure no state changes.
func (s *Service) Load(r io.Reader) (int, error) {
	rows, err := ParseRows(r)
	if err != nil {
		return 0, err
	}
	codes := Canonicalize(rows)
	s.store.Replace(codes)
	s.logger.Info("Checklist loaded",
		zap.Int("rows", len(rows)),
		zap.Int("codes", len(codes)),
	)
	return len(codes), nil
}

// Check matches raw user input against the checklist. On a hit the code is
// marked found (idempotent; re-checking refreshes the timestamp) and the
// listener is notified. On a miss nothing changes.
func (s *Service) Check(ctx context.Context, raw string) (code string, found bool) {
	code = Normalize(s.prefix, raw)
	if !s.store.Lookup(code) {
		return code, false
	}
	s.store.MarkFound(code, time.Now())
	if s.listener != nil {
		s.listener.CheckRecorded(ctx)
	}
	return code, true
}

// Rows returns report rows, optionally filtered by a case-insensitive
// substring over the code.
func (s *Service) Rows(filter string) []models.ReportRow {
	report := BuildReport(s.store)
	if filter == "" {
		return report.Rows
	}
	needle := strings.ToUpper(strings.TrimSpace(filter))
	rows := make([]models.ReportRow, 0, len(report.Rows))
	for _, row := range report.Rows {
		if strings.Contains(row.Code, needle) {
			rows = append(rows, row)
		}
	}
	return rows
}

// Report builds the full reconciliation report.
func (s *Service) Report() models.Report {
	return BuildReport(s.store)
}

// WriteReportCSV writes the report as CSV to w.
func (s *Service) WriteReportCSV(w io.Writer) error {
	return WriteCSV(w, BuildReport(s.store))
}

// Reset starts a new check run: checklist, check records and (via the
// listener) any session identity are cleared unconditionally. Calling it
// twice yields the same empty state as calling it once.
func (s *Service) Reset(ctx context.Context) {
	s.store.Clear()
	if s.listener != nil {
		s.listener.RunReset(ctx)
	}
	s.logger.Info("Check run reset")
}
