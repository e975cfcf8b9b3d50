// Package models defines the core data structures shared by all
// sales-csv components.
package models

import (
	"github.com/shopspring/decimal"
)

// Identifier prefixes required by the input schema.
const (
	TransactionIDPrefix = "T"
	ProductIDPrefix     = "P"
	CustomerIDPrefix    = "C"
)

// TransactionRecord represents one parsed line of the pipe-delimited
// sales file. Dates stay in ISO string form (YYYY-MM-DD) so that
// lexicographic ordering is chronological ordering.
type TransactionRecord struct {
	TransactionID string          `csv:"TransactionID"`
	Date          string          `csv:"Date"`
	ProductID     string          `csv:"ProductID"`
	ProductName   string          `csv:"ProductName"`
	Quantity      int             `csv:"Quantity"`
	UnitPrice     decimal.Decimal `csv:"UnitPrice"`
	CustomerID    string          `csv:"CustomerID"`
	Region        string          `csv:"Region"`
}

// Amount returns the line amount (quantity x unit price). It is derived
// on demand and never stored.
func (t TransactionRecord) Amount() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// EnrichedRecord is a TransactionRecord annotated with catalog metadata.
// Either all three API fields are set and APIMatch is true, or all three
// are nil and APIMatch is false.
type EnrichedRecord struct {
	TransactionRecord
	APICategory *string
	APIBrand    *string
	APIRating   *decimal.Decimal
	APIMatch    bool
}

// FilterSummary reports the disposition of every input record after
// validation and filtering.
type FilterSummary struct {
	TotalInput       int
	Invalid          int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int
}
