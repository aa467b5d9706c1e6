package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"list-control/core/config"
	"list-control/core/logger"
	"list-control/feature/checklist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkOutFile string

// checkCmd runs an interactive check against a local code list file.
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Run an interactive check against a code list file",
	Long: `Loads a CSV or newline-delimited code list and reads codes from stdin,
marking each one found or not found. Type "done" to finish and export the
reconciliation report as CSV.

Examples:
  # Check against a list, export report to the dated default file
  list-control check codes.csv

  # Explicit report path
  list-control check codes.csv --out report.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkOutFile, "out", "", "report file path (default control_report_<date>.csv)")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open code list: %w", err)
	}
	defer file.Close()

	store := checklist.NewStore()
	svc := checklist.NewService(store, cfg.Server.CodePrefix, l)

	count, err := svc.Load(file)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d codes from %s\n", count, args[0])
	fmt.Println(`Scan or type codes, one per line. Type "done" to finish.`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "done") {
			break
		}

		code, found := svc.Check(cmd.Context(), input)
		if found {
			fmt.Printf("FOUND     %s\n", code)
		} else {
			fmt.Printf("NOT FOUND %s\n", code)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	out := checkOutFile
	if out == "" {
		out = checklist.ReportFileName(time.Now())
	}
	if err := writeReportFile(svc, out); err != nil {
		return err
	}

	total, checked := store.Counts()
	fmt.Printf("Report written to %s (total %d, checked %d)\n", out, total, checked)
	l.Info("Check run completed",
		zap.Int("total", total),
		zap.Int("checked", checked),
		zap.String("report", out),
	)
	return nil
}

func writeReportFile(svc *checklist.Service, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := svc.WriteReportCSV(f); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
