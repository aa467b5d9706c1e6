package cmd

import (
	"errors"
	"fmt"
	"time"

	"list-control/core/config"
	"list-control/core/database"
	"list-control/core/logger"
	"list-control/core/storage"
	"list-control/feature/checklist"
	"list-control/feature/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var joinOutFile string

// sessionCmd is the parent command for session operations.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Work with shared check sessions",
}

// sessionJoinCmd loads a shared session and exports its report.
var sessionJoinCmd = &cobra.Command{
	Use:   "join [code]",
	Short: "Join a shared session by its 6-character code",
	Long: `Loads the shared session identified by the code, adopting its checklist
and check records, and exports the reconciliation report as CSV.

The remote store is tried first; when it is unreachable the local session
cache is used instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionJoin,
}

func init() {
	sessionJoinCmd.Flags().StringVar(&joinOutFile, "out", "", "report file path (default control_report_<date>.csv)")
	sessionCmd.AddCommand(sessionJoinCmd)
	RootCmd.AddCommand(sessionCmd)
}

func runSessionJoin(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	remote := session.NewObjectStore(client, cfg.Storage.Bucket)

	var cache session.Cache = session.NewMemoryCache()
	if db, err := database.Connect(cfg.Database); err != nil {
		l.Warn("Optional database connection failed, session cache is in-memory", zap.Error(err))
	} else if dbCache, err := session.NewDBCache(db); err != nil {
		l.Warn("Session cache migration failed, session cache is in-memory", zap.Error(err))
	} else {
		cache = dbCache
	}

	store := checklist.NewStore()
	checklistSvc := checklist.NewService(store, cfg.Server.CodePrefix, l)
	sessionSvc := session.NewService(store, remote, cache, l, cfg.Session)

	switch err := sessionSvc.Join(cmd.Context(), args[0]); {
	case err == nil:
		// fallthrough to report
	case errors.Is(err, session.ErrExpired):
		return fmt.Errorf("session %s has expired", args[0])
	case errors.Is(err, session.ErrNotFound):
		return fmt.Errorf("session %s was not found", args[0])
	default:
		return err
	}

	out := joinOutFile
	if out == "" {
		out = checklist.ReportFileName(time.Now())
	}
	if err := writeReportFile(checklistSvc, out); err != nil {
		return err
	}

	total, checked := store.Counts()
	fmt.Printf("Joined session %s. Report written to %s (total %d, checked %d)\n",
		args[0], out, total, checked)
	return nil
}
