// Package enrich implements the enrichment-only command.
package enrich

import (
	"context"

	"fjacquet/sales-csv/cmd/common"
	"fjacquet/sales-csv/cmd/root"
	"fjacquet/sales-csv/internal/enrichment"
	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/validation"

	"github.com/spf13/cobra"
)

var (
	enrichedFile string
	offline      bool
)

// Cmd is the enrich command
var Cmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich a sales data file with catalog metadata",
	Long: `Parse and validate a sales data file, join each transaction against the
product catalog, and write the enriched pipe-delimited data file.`,
	Run: enrichFunc,
}

func enrichFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	cfg := root.Cfg

	records, summary, err := common.LoadRecords(root.SharedFlags.Input, validation.Filter{}, log)
	if err != nil {
		log.Fatalf("Error reading sales data: %v", err)
	}
	log.Info("Validation summary",
		logging.Field{Key: "valid", Value: summary.FinalCount},
		logging.Field{Key: "invalid", Value: summary.Invalid})

	products := common.FetchCatalog(context.Background(), cfg, offline, log)
	mapping := enrichment.BuildMapping(products)
	enriched := enrichment.Enrich(records, mapping, log)

	enrichmentSummary := enrichment.Summarize(enriched)
	log.Info("Enrichment summary",
		logging.Field{Key: "matched", Value: enrichmentSummary.Matched},
		logging.Field{Key: "total", Value: enrichmentSummary.Total},
		logging.Field{Key: "success_rate", Value: enrichmentSummary.SuccessRate.StringFixed(2)})

	outFile := enrichedFile
	if outFile == "" {
		outFile = cfg.Output.EnrichedFile
	}
	if err := enrichment.WriteEnrichedCSV(enriched, outFile, log); err != nil {
		log.Fatalf("Error saving enriched data: %v", err)
	}
	log.Info("Enriched data saved",
		logging.Field{Key: logging.FieldOutputFile, Value: outFile})
}

func init() {
	Cmd.Flags().StringVarP(&enrichedFile, "enriched", "e", "", "Enriched data output file (default from configuration)")
	Cmd.Flags().BoolVar(&offline, "offline", false, "Skip the catalog fetch and use the local cache only")
}
