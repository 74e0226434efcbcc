package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dealdesk/internal/app"
	"dealdesk/internal/models"
)

var (
	exportOut    string
	exportStage  string
	exportSearch string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the pipeline board as PDF",
	Long: `Renders the pipeline board (optionally filtered by stage and search text)
to a PDF file. Without --out the file lands in files.root_dir.`,
	Example: `  dealdesk export --out pipeline.pdf
  dealdesk export --stage negotiation --search acme`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file")
	exportCmd.Flags().StringVar(&exportStage, "stage", "", "Only deals in this stage")
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "Only deals whose name, company or contact contains this text")
}

func runExport(cmd *cobra.Command, args []string) error {
	stage := models.Stage(exportStage)
	if stage != "" && stage != models.StageAll && !models.IsStage(stage) {
		return fmt.Errorf("unknown stage %q", exportStage)
	}

	a, err := app.New(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	path, err := a.ExportPipeline(models.DealFilter{Stage: stage, Search: exportSearch}, exportOut)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
