package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nmap2csv/db"
	"nmap2csv/internal/config"
	"nmap2csv/internal/csvout"
	"nmap2csv/internal/extract"
	"nmap2csv/internal/history"
	"nmap2csv/internal/prompt"
	"nmap2csv/internal/ui"
	"nmap2csv/internal/viewer"
	"nmap2csv/models"
)

// Global loggers for different output streams
var (
	infoLogger  = log.New(os.Stdout, "", log.LstdFlags)
	errorLogger = log.New(os.Stderr, "", log.LstdFlags)
)

var (
	flagOutput         string
	flagIncludeNonOpen bool
	flagBasic          bool
	flagPreview        bool
	flagNoViewer       bool
	flagNoHistory      bool
	flagForce          bool

	flagHistoryLimit int
	flagHistoryJSON  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nmap2csv [input-file]",
		Short: "Convert plain-text nmap output to a CSV surface map",
		Long: `Reads line-oriented nmap output (e.g. from nmap -Pn -sC -sV), extracts
the port rows and writes them as a CSV table with empty triage columns
for manual annotation.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runConvert,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output CSV path")
	rootCmd.Flags().BoolVar(&flagIncludeNonOpen, "include-non-open", false, "Include ports not in an open* state")
	rootCmd.Flags().BoolVar(&flagBasic, "basic", false, "Write the 5-column table without triage columns")
	rootCmd.Flags().BoolVar(&flagPreview, "preview", false, "Print the extracted findings to the terminal")
	rootCmd.Flags().BoolVar(&flagNoViewer, "no-viewer", false, "Do not launch the external table viewer")
	rootCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this import in the history database")
	rootCmd.Flags().BoolVarP(&flagForce, "force", "y", false, "Overwrite an existing output file without asking")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversion runs",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of entries to show")
	historyCmd.Flags().BoolVar(&flagHistoryJSON, "json", false, "Output JSON")
	rootCmd.AddCommand(historyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Bare invocation (no input, no -o) falls back to the configured
	// default input/output pair under the enum directory.
	noArgs := len(args) == 0 && flagOutput == ""

	inputPath := cfg.DefaultInput
	if len(args) > 0 {
		inputPath = args[0]
	}

	info, err := os.Stat(inputPath)
	if err != nil || info.IsDir() {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	candidateOut := cfg.ResolveOutputPath(inputPath, flagOutput, noArgs)
	if dir := filepath.Dir(candidateOut); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	outPath := candidateOut
	if !flagForce {
		p := prompt.NewPrompter(os.Stdin, os.Stderr, cfg.EnumDir)
		outPath, err = p.ResolveOutputPath(candidateOut)
		if err == prompt.ErrCancelled {
			errorLogger.Println("Cancelled; output file not written.")
			return err
		}
		if err != nil {
			return err
		}
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	lines, err := extract.ReadLines(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	onlyOpen := !flagIncludeNonOpen
	findings := extract.NewService().ParseLines(lines, onlyOpen)

	schema := models.SchemaAnnotated
	if flagBasic {
		schema = models.SchemaBasic
	}

	if err := csvout.NewWriter(schema).WriteFile(outPath, findings); err != nil {
		return err
	}
	infoLogger.Printf("Wrote %d findings to %s", len(findings), outPath)

	if flagPreview {
		ui.PrintFindings(os.Stdout, findings)
	}

	if cfg.HistoryEnabled && !flagNoHistory {
		recordImport(cfg, inputPath, outPath, len(findings), onlyOpen, schema)
	}

	if !flagNoViewer {
		if err := viewer.NewService(cfg.ViewerCommand).Open(outPath); err != nil {
			errorLogger.Printf("Warning: %v; CSV written but not opened.", err)
		}
	}

	return nil
}

// recordImport saves the run to the history database. History is a
// convenience; any failure here is a warning, never a failed run.
func recordImport(cfg *config.Config, inputPath, outPath string, count int, onlyOpen bool, schema models.Schema) {
	sqliteDB, err := db.ConnectToSQLite(cfg.SQLitePath)
	if err != nil {
		errorLogger.Printf("Warning: failed to open history database: %v", err)
		return
	}
	defer sqliteDB.Close()

	if err := db.InitializeSchema(sqliteDB); err != nil {
		errorLogger.Printf("Warning: failed to initialize history schema: %v", err)
		return
	}

	service := history.NewHistoryService(db.NewSQLiteScanImportRepository(sqliteDB))
	if _, err := service.RecordImport(context.Background(), inputPath, outPath, count, onlyOpen, schema); err != nil {
		errorLogger.Printf("Warning: failed to record import: %v", err)
	}
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	sqliteDB, err := db.ConnectToSQLite(cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer sqliteDB.Close()

	if err := db.InitializeSchema(sqliteDB); err != nil {
		return err
	}

	service := history.NewHistoryService(db.NewSQLiteScanImportRepository(sqliteDB))
	imports, err := service.FindLatest(context.Background(), flagHistoryLimit)
	if err != nil {
		return err
	}

	if flagHistoryJSON {
		data, err := json.MarshalIndent(imports, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(imports) == 0 {
		fmt.Println("No imports recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "WHEN\tINPUT\tOUTPUT\tRECORDS\tONLY-OPEN\tSCHEMA")
	for _, imp := range imports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%t\t%s\n",
			imp.CreatedAt.Format("2006-01-02 15:04:05"),
			imp.InputPath,
			imp.OutputPath,
			imp.RecordCount,
			imp.OnlyOpen,
			imp.Schema,
		)
	}
	return w.Flush()
}
