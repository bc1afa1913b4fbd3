package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iamdhiraj69/mongo-copy/pkg/config"
	"github.com/iamdhiraj69/mongo-copy/pkg/models"
	"github.com/iamdhiraj69/mongo-copy/pkg/mongodb"
	"github.com/iamdhiraj69/mongo-copy/pkg/report"
	"github.com/iamdhiraj69/mongo-copy/pkg/transfer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mongocopy",
		Short: "Copy MongoDB collections between deployments or JSON files",
		Long: "mongocopy streams collections from a source MongoDB deployment in fixed-size batches\n" +
			"into a destination deployment, or exports them to one JSON file per collection,\n" +
			"or imports such files back. The job aborts on the first unrecoverable error.\n\n" +
			"Every flag can also be set through a MONGOCOPY_* environment variable,\n" +
			"e.g. MONGOCOPY_SOURCE or MONGOCOPY_BATCH_SIZE.",
		SilenceUsage: true,
		RunE:         run,
	}

	flags := cmd.Flags()
	flags.String("source", "", "source MongoDB URI")
	flags.String("dest", "", "destination MongoDB URI")
	flags.String("source-db", "", "source database name")
	flags.String("dest-db", "", "destination database name (default: source database)")
	flags.String("collections", "", "comma-separated list of collections to transfer (default: all)")
	flags.Int("batch-size", config.DefaultBatchSize, "number of documents per batch")
	flags.Bool("export", false, "export collections to JSON files instead of copying live")
	flags.Bool("import", false, "import previously exported JSON files into the destination")
	flags.String("output-dir", config.DefaultOutputDir, "directory for exported JSON files")
	flags.Bool("dry-run", false, "resolve the plan and log intent without reading or writing documents")
	flags.Bool("yes", false, "skip the confirmation prompt")
	flags.Bool("log-json", false, "emit JSON logs instead of console output")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.Yes && !cfg.DryRun && !confirm(cmd, cfg) {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}

	ctx := context.Background()
	job := cfg.Job()

	destURI := cfg.DestURI
	if job.Mode == models.ModeExportJSON {
		destURI = "" // export never writes to a store
	}
	source, dest, err := mongodb.Open(ctx, cfg.SourceURI, cfg.SourceDB, destURI, cfg.DestDB)
	if err != nil {
		logger.Error("connection failed", zap.Error(err))
		return err
	}

	result, err := transfer.NewOrchestrator(source, dest, job, report.New(logger)).Run(ctx)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), result)
	return nil
}

func newLogger(jsonOutput bool) (*zap.Logger, error) {
	if jsonOutput {
		return zap.NewProductionConfig().Build()
	}
	return zap.NewDevelopmentConfig().Build()
}

// confirm describes the resolved job and asks for an interactive go-ahead.
func confirm(cmd *cobra.Command, cfg *config.Config) bool {
	out := cmd.OutOrStdout()

	what := "all collections"
	if len(cfg.Collections) > 0 {
		what = "collections " + strings.Join(cfg.Collections, ", ")
	}
	switch cfg.Mode() {
	case models.ModeExportJSON:
		fmt.Fprintf(out, "About to export %s of database %s to %s.\n", what, cfg.SourceDB, cfg.OutputDir)
	case models.ModeImportJSON:
		fmt.Fprintf(out, "About to import %s from %s into database %s.\n", what, cfg.OutputDir, cfg.DestDB)
	default:
		fmt.Fprintf(out, "About to copy %s of database %s to database %s.\n", what, cfg.SourceDB, cfg.DestDB)
	}
	fmt.Fprint(out, "Continue? [y/N] ")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// printSummary prints a human summary of a completed run.
func printSummary(out io.Writer, result models.TransferReport) {
	fmt.Fprintln(out, "\n=== Transfer Summary ===")
	fmt.Fprintf(out, "Total documents transferred: %d\n", result.TotalDocuments)
	for _, res := range result.CollectionResults {
		status := fmt.Sprintf("%d documents", res.ProcessedDocs)
		if res.Skipped {
			status = "skipped"
		}
		fmt.Fprintf(out, "  - %s: %s\n", res.CollectionName, status)
	}
}
