// Package analyze implements the full analysis pipeline command.
package analyze

import (
	"context"

	"fjacquet/sales-csv/cmd/common"
	"fjacquet/sales-csv/cmd/root"
	"fjacquet/sales-csv/internal/analytics"
	"fjacquet/sales-csv/internal/enrichment"
	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/report"

	"github.com/spf13/cobra"
)

var (
	reportFile   string
	enrichedFile string
	region       string
	minAmount    string
	maxAmount    string
	topN         int
	lowThreshold int
	offline      bool
)

// Cmd is the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full sales analysis pipeline",
	Long: `Read a sales data file, validate and optionally filter the records,
compute the aggregate analyses, enrich the transactions with product
catalog metadata, and write the text report and the enriched data file.`,
	Run: analyzeFunc,
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	cfg := root.Cfg

	filter, err := common.BuildFilter(region, minAmount, maxAmount)
	if err != nil {
		log.Fatalf("Invalid filter: %v", err)
	}

	records, summary, err := common.LoadRecords(root.SharedFlags.Input, filter, log)
	if err != nil {
		log.Fatalf("Error reading sales data: %v", err)
	}
	log.Info("Validation summary",
		logging.Field{Key: "valid", Value: summary.FinalCount},
		logging.Field{Key: "invalid", Value: summary.Invalid})

	totalRevenue := analytics.TotalRevenue(records)
	log.Info("Analysis complete",
		logging.Field{Key: "total_revenue", Value: totalRevenue.StringFixed(2)},
		logging.Field{Key: "regions", Value: len(analytics.RegionWiseSales(records))},
		logging.Field{Key: "days", Value: len(analytics.DailySalesTrend(records))})

	products := common.FetchCatalog(context.Background(), cfg, offline, log)
	mapping := enrichment.BuildMapping(products)
	enriched := enrichment.Enrich(records, mapping, log)

	outFile := enrichedFile
	if outFile == "" {
		outFile = cfg.Output.EnrichedFile
	}
	if err := enrichment.WriteEnrichedCSV(enriched, outFile, log); err != nil {
		log.Fatalf("Error saving enriched data: %v", err)
	}
	log.Info("Enriched data saved",
		logging.Field{Key: logging.FieldOutputFile, Value: outFile})

	repFile := reportFile
	if repFile == "" {
		repFile = cfg.Output.ReportFile
	}
	top := topN
	if top <= 0 {
		top = cfg.Analysis.TopProducts
	}
	threshold := lowThreshold
	if threshold <= 0 {
		threshold = cfg.Analysis.LowThreshold
	}
	generator := report.NewGenerator(log,
		report.WithCurrency(cfg.Output.Currency),
		report.WithTopN(top),
		report.WithLowThreshold(threshold))
	if err := generator.WriteReport(records, enriched, repFile); err != nil {
		log.Fatalf("Error generating report: %v", err)
	}
	log.Info("Report saved",
		logging.Field{Key: logging.FieldOutputFile, Value: repFile})
}

func init() {
	Cmd.Flags().StringVarP(&reportFile, "report", "r", "", "Report output file (default from configuration)")
	Cmd.Flags().StringVarP(&enrichedFile, "enriched", "e", "", "Enriched data output file (default from configuration)")
	Cmd.Flags().StringVar(&region, "region", "", "Filter by region (exact match)")
	Cmd.Flags().StringVar(&minAmount, "min-amount", "", "Minimum transaction amount (inclusive)")
	Cmd.Flags().StringVar(&maxAmount, "max-amount", "", "Maximum transaction amount (inclusive)")
	Cmd.Flags().IntVar(&topN, "top", 0, "How many products and customers to rank (default from configuration)")
	Cmd.Flags().IntVar(&lowThreshold, "threshold", 0, "Low-performer quantity threshold (default from configuration)")
	Cmd.Flags().BoolVar(&offline, "offline", false, "Skip the catalog fetch and use the local cache only")
}
