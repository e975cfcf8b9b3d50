package models

import (
	"github.com/shopspring/decimal"
)

// RegionSummary holds per-region aggregates. Percentage is computed
// against the grand total of the same record set and rounded to two
// decimal places.
type RegionSummary struct {
	Region           string
	TotalSales       decimal.Decimal
	TransactionCount int
	Percentage       decimal.Decimal
}

// ProductSummary holds per-product aggregates, used for both the
// top-seller ranking and the low-performer listing.
type ProductSummary struct {
	ProductName   string
	TotalQuantity int
	TotalRevenue  decimal.Decimal
}

// CustomerProfile holds per-customer purchase statistics.
// ProductsBought keeps distinct product names in first-seen order.
type CustomerProfile struct {
	CustomerID     string
	TotalSpent     decimal.Decimal
	PurchaseCount  int
	AvgOrderValue  decimal.Decimal
	ProductsBought []string
}

// DailyBucket holds per-date aggregates, keyed by the ISO date string.
type DailyBucket struct {
	Date             string
	Revenue          decimal.Decimal
	TransactionCount int
	UniqueCustomers  int
}

// PeakDay identifies the date with the strictly highest revenue.
// The zero value is the sentinel for an empty or all-zero input.
type PeakDay struct {
	Date             string
	Revenue          decimal.Decimal
	TransactionCount int
}

// IsZero reports whether no peak day was found.
func (p PeakDay) IsZero() bool {
	return p.Date == "" && p.Revenue.IsZero() && p.TransactionCount == 0
}
