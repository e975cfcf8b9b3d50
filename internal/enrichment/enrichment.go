// Package enrichment joins validated transaction records against the
// external product catalog and annotates each record with match status.
package enrichment

import (
	"strconv"
	"strings"

	"fjacquet/sales-csv/internal/catalog"
	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/models"

	"github.com/shopspring/decimal"
)

// ProductInfo is the projection of a catalog entry consumed by the join.
type ProductInfo struct {
	Title    string
	Category string
	Brand    string
	Rating   decimal.Decimal
}

// BuildMapping indexes catalog entries by their numeric product id.
func BuildMapping(products []catalog.Product) map[int]ProductInfo {
	mapping := make(map[int]ProductInfo, len(products))
	for _, p := range products {
		mapping[p.ID] = ProductInfo{
			Title:    p.Title,
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
		}
	}
	return mapping
}

// numericProductKey derives the catalog lookup key by stripping the
// product-identifier prefix and parsing the remainder as an integer.
func numericProductKey(productID string) (int, bool) {
	key, err := strconv.Atoi(strings.TrimPrefix(productID, models.ProductIDPrefix))
	if err != nil {
		return 0, false
	}
	return key, true
}

// Enrich annotates every record with catalog metadata. The join is
// total: each input record yields exactly one output record in input
// order, as a value copy of the original. A key that fails to parse or
// is absent from the mapping yields a non-match, never an error. An
// empty mapping is valid and produces universal non-match.
func Enrich(records []models.TransactionRecord, mapping map[int]ProductInfo, logger logging.Logger) []models.EnrichedRecord {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	enriched := make([]models.EnrichedRecord, 0, len(records))
	matched := 0

	for _, t := range records {
		e := models.EnrichedRecord{TransactionRecord: t}

		if key, ok := numericProductKey(t.ProductID); ok {
			if info, found := mapping[key]; found {
				category := info.Category
				brand := info.Brand
				rating := info.Rating
				e.APICategory = &category
				e.APIBrand = &brand
				e.APIRating = &rating
				e.APIMatch = true
				matched++
			}
		}

		enriched = append(enriched, e)
	}

	logger.Info("Enriched sales data",
		logging.Field{Key: logging.FieldCount, Value: len(enriched)},
		logging.Field{Key: "matched", Value: matched})

	return enriched
}

// UnmatchedProduct identifies a record the join could not enrich.
type UnmatchedProduct struct {
	ProductID   string
	ProductName string
}

// Summary reports the outcome of an enrichment pass.
type Summary struct {
	Total       int
	Matched     int
	SuccessRate decimal.Decimal
	Unmatched   []UnmatchedProduct
}

// Summarize computes match counts, the success rate percentage (two
// decimals, zero for an empty input) and the list of records that could
// not be enriched, in input order.
func Summarize(enriched []models.EnrichedRecord) Summary {
	summary := Summary{Total: len(enriched)}

	for _, e := range enriched {
		if e.APIMatch {
			summary.Matched++
		} else {
			summary.Unmatched = append(summary.Unmatched, UnmatchedProduct{
				ProductID:   e.ProductID,
				ProductName: e.ProductName,
			})
		}
	}

	if summary.Total > 0 {
		summary.SuccessRate = decimal.NewFromInt(int64(summary.Matched)).
			Div(decimal.NewFromInt(int64(summary.Total))).
			Mul(decimal.NewFromInt(100)).Round(2)
	}

	return summary
}
