// Package validate implements the validation-only command.
package validate

import (
	"strings"

	"fjacquet/sales-csv/cmd/common"
	"fjacquet/sales-csv/cmd/root"
	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/salesparser"
	"fjacquet/sales-csv/internal/validation"

	"github.com/spf13/cobra"
)

var (
	region    string
	minAmount string
	maxAmount string
)

// Cmd is the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse and validate a sales data file without writing outputs",
	Long: `Parse a sales data file, report the available regions and amount range,
then validate the records (and apply any filters) and print the
disposition summary.`,
	Run: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	filter, err := common.BuildFilter(region, minAmount, maxAmount)
	if err != nil {
		log.Fatalf("Invalid filter: %v", err)
	}

	records, err := salesparser.ParseFile(root.SharedFlags.Input, log)
	if err != nil {
		log.Fatalf("Error reading sales data: %v", err)
	}

	overview := validation.Summarize(records)
	log.Info("Available regions",
		logging.Field{Key: "regions", Value: strings.Join(overview.Regions, ", ")})
	log.Info("Transaction amount range",
		logging.Field{Key: "min_amount", Value: overview.MinAmount.StringFixed(2)},
		logging.Field{Key: "max_amount", Value: overview.MaxAmount.StringFixed(2)})

	_, _, summary := validation.ValidateAndFilter(records, filter, log)
	log.Info("Validation summary",
		logging.Field{Key: "total_input", Value: summary.TotalInput},
		logging.Field{Key: "invalid", Value: summary.Invalid},
		logging.Field{Key: "filtered_by_region", Value: summary.FilteredByRegion},
		logging.Field{Key: "filtered_by_amount", Value: summary.FilteredByAmount},
		logging.Field{Key: "final_count", Value: summary.FinalCount})
}

func init() {
	Cmd.Flags().StringVar(&region, "region", "", "Filter by region (exact match)")
	Cmd.Flags().StringVar(&minAmount, "min-amount", "", "Minimum transaction amount (inclusive)")
	Cmd.Flags().StringVar(&maxAmount, "max-amount", "", "Maximum transaction amount (inclusive)")
}
