// Package validation applies structural validation rules and optional
// region/amount filters to parsed transaction records.
package validation

import (
	"sort"
	"strings"

	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Filter holds the optional filter criteria. An empty Region means no
// region filter; a nil amount bound means that bound is absent. A
// supplied bound of zero is honored as a real bound, unlike the legacy
// zero-disables convention.
type Filter struct {
	Region    string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// Overview describes the pre-filter input set, reported to the caller
// for display before any filtering happens.
type Overview struct {
	Regions   []string
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
}

// IsValid reports whether a record passes the structural validation
// rules: positive quantity and unit price, and the required identifier
// prefixes on transaction, product and customer IDs.
func IsValid(t models.TransactionRecord) bool {
	if t.Quantity <= 0 || !t.UnitPrice.IsPositive() {
		return false
	}
	if !strings.HasPrefix(t.TransactionID, models.TransactionIDPrefix) {
		return false
	}
	if !strings.HasPrefix(t.ProductID, models.ProductIDPrefix) {
		return false
	}
	return strings.HasPrefix(t.CustomerID, models.CustomerIDPrefix)
}

// Summarize returns the available region set (sorted) and the amount
// range of the given record set. Zero values on empty input.
func Summarize(records []models.TransactionRecord) Overview {
	overview := Overview{}
	seen := make(map[string]bool)
	for i, t := range records {
		if t.Region != "" && !seen[t.Region] {
			seen[t.Region] = true
			overview.Regions = append(overview.Regions, t.Region)
		}
		amount := t.Amount()
		if i == 0 {
			overview.MinAmount = amount
			overview.MaxAmount = amount
			continue
		}
		if amount.LessThan(overview.MinAmount) {
			overview.MinAmount = amount
		}
		if amount.GreaterThan(overview.MaxAmount) {
			overview.MaxAmount = amount
		}
	}
	sort.Strings(overview.Regions)
	return overview
}

// ValidateAndFilter validates records and applies the optional filters.
// Invalid records are counted and dropped before any filtering. Filters
// apply in order: region, minimum amount, maximum amount; each stage
// increments its own counter in the summary.
func ValidateAndFilter(records []models.TransactionRecord, filter Filter, logger logging.Logger) ([]models.TransactionRecord, int, models.FilterSummary) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	summary := models.FilterSummary{TotalInput: len(records)}
	valid := make([]models.TransactionRecord, 0, len(records))

	for _, t := range records {
		if !IsValid(t) {
			summary.Invalid++
			continue
		}

		amount := t.Amount()

		if filter.Region != "" && t.Region != filter.Region {
			summary.FilteredByRegion++
			continue
		}
		if filter.MinAmount != nil && amount.LessThan(*filter.MinAmount) {
			summary.FilteredByAmount++
			continue
		}
		if filter.MaxAmount != nil && amount.GreaterThan(*filter.MaxAmount) {
			summary.FilteredByAmount++
			continue
		}

		valid = append(valid, t)
	}

	summary.FinalCount = len(valid)

	logger.Info("Validated and filtered transactions",
		logging.Field{Key: "total_input", Value: summary.TotalInput},
		logging.Field{Key: "invalid", Value: summary.Invalid},
		logging.Field{Key: "filtered_by_region", Value: summary.FilteredByRegion},
		logging.Field{Key: "filtered_by_amount", Value: summary.FilteredByAmount},
		logging.Field{Key: "final_count", Value: summary.FinalCount})

	return valid, summary.Invalid, summary
}
