package validation

import (
	"testing"

	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, date, pid, pname string, qty int, price float64, cid, region string) models.TransactionRecord {
	return models.TransactionRecord{
		TransactionID: id,
		Date:          date,
		ProductID:     pid,
		ProductName:   pname,
		Quantity:      qty,
		UnitPrice:     decimal.NewFromFloat(price),
		CustomerID:    cid,
		Region:        region,
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name   string
		record models.TransactionRecord
		want   bool
	}{
		{"valid record", record("T001", "2024-01-01", "P1", "Pen", 10, 2.0, "C1", "North"), true},
		{"zero quantity", record("T001", "2024-01-01", "P1", "Pen", 0, 2.0, "C1", "North"), false},
		{"negative quantity", record("T001", "2024-01-01", "P1", "Pen", -3, 2.0, "C1", "North"), false},
		{"zero price", record("T001", "2024-01-01", "P1", "Pen", 10, 0, "C1", "North"), false},
		{"negative price", record("T001", "2024-01-01", "P1", "Pen", 10, -2.0, "C1", "North"), false},
		{"bad transaction prefix", record("X001", "2024-01-01", "P1", "Pen", 10, 2.0, "C1", "North"), false},
		{"bad product prefix", record("T001", "2024-01-01", "Q1", "Pen", 10, 2.0, "C1", "North"), false},
		{"bad customer prefix", record("T001", "2024-01-01", "P1", "Pen", 10, 2.0, "K1", "North"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.record))
		})
	}
}

func TestValidateAndFilter_InvalidCounting(t *testing.T) {
	records := []models.TransactionRecord{
		record("T001", "2024-01-01", "P1", "Pen", 10, 2.0, "C1", "North"),
		record("T002", "2024-01-01", "P2", "Book", 0, 50.0, "C2", "South"),
		record("X003", "2024-01-01", "P3", "Lamp", 1, 20.0, "C3", "North"),
	}

	valid, invalidCount, summary := ValidateAndFilter(records, Filter{}, &logging.MockLogger{})

	require.Len(t, valid, 1)
	assert.Equal(t, 2, invalidCount)
	assert.Equal(t, 3, summary.TotalInput)
	assert.Equal(t, 2, summary.Invalid)
	assert.Equal(t, 0, summary.FilteredByRegion)
	assert.Equal(t, 0, summary.FilteredByAmount)
	assert.Equal(t, 1, summary.FinalCount)
}

func TestValidateAndFilter_RegionFilter(t *testing.T) {
	records := []models.TransactionRecord{
		record("T001", "2024-01-01", "P1", "Pen", 10, 2.0, "C1", "North"),
		record("T002", "2024-01-01", "P2", "Book", 1, 50.0, "C2", "South"),
		record("T003", "2024-01-02", "P3", "Lamp", 1, 20.0, "C3", "North"),
	}

	valid, _, summary := ValidateAndFilter(records, Filter{Region: "North"}, &logging.MockLogger{})

	require.Len(t, valid, 2)
	assert.Equal(t, 1, summary.FilteredByRegion)
	assert.Equal(t, 2, summary.FinalCount)
	for _, r := range valid {
		assert.Equal(t, "North", r.Region)
	}
}

func TestValidateAndFilter_AmountFilters(t *testing.T) {
	records := []models.TransactionRecord{
		record("T001", "2024-01-01", "P1", "Pen", 10, 2.0, "C1", "North"),   // 20
		record("T002", "2024-01-01", "P2", "Book", 1, 50.0, "C2", "South"),  // 50
		record("T003", "2024-01-02", "P3", "Lamp", 5, 100.0, "C3", "East"),  // 500
	}

	minAmount := decimal.NewFromInt(30)
	maxAmount := decimal.NewFromInt(100)
	valid, _, summary := ValidateAndFilter(records, Filter{MinAmount: &minAmount, MaxAmount: &maxAmount}, &logging.MockLogger{})

	require.Len(t, valid, 1)
	assert.Equal(t, "T002", valid[0].TransactionID)
	assert.Equal(t, 2, summary.FilteredByAmount)
}

func TestValidateAndFilter_BoundsAreInclusive(t *testing.T) {
	records := []models.TransactionRecord{
		record("T001", "2024-01-01", "P1", "Pen", 10, 2.0, "C1", "North"), // 20
	}

	bound := decimal.NewFromInt(20)
	valid, _, _ := ValidateAndFilter(records, Filter{MinAmount: &bound, MaxAmount: &bound}, &logging.MockLogger{})
	assert.Len(t, valid, 1)
}

func TestValidateAndFilter_ZeroBoundIsARealBound(t *testing.T) {
	// A supplied zero minimum must not disable the filter; every valid
	// record has a positive amount so all pass it.
	records := []models.TransactionRecord{
		record("T001", "2024-01-01", "P1", "Pen", 10, 2.0, "C1", "North"),
	}

	zero := decimal.Zero
	valid, _, summary := ValidateAndFilter(records, Filter{MinAmount: &zero}, &logging.MockLogger{})
	assert.Len(t, valid, 1)
	assert.Equal(t, 0, summary.FilteredByAmount)

	// A zero maximum excludes every positive amount.
	valid, _, summary = ValidateAndFilter(records, Filter{MaxAmount: &zero}, &logging.MockLogger{})
	assert.Empty(t, valid)
	assert.Equal(t, 1, summary.FilteredByAmount)
}

func TestValidateAndFilter_InvalidRecordsNeverReachFilters(t *testing.T) {
	records := []models.TransactionRecord{
		record("T001", "2024-01-01", "P1", "Pen", 0, 2.0, "C1", "West"),
	}

	_, invalidCount, summary := ValidateAndFilter(records, Filter{Region: "North"}, &logging.MockLogger{})
	assert.Equal(t, 1, invalidCount)
	assert.Equal(t, 0, summary.FilteredByRegion)
}

func TestSummarize(t *testing.T) {
	records := []models.TransactionRecord{
		record("T001", "2024-01-01", "P1", "Pen", 10, 2.0, "C1", "South"),  // 20
		record("T002", "2024-01-01", "P2", "Book", 1, 50.0, "C2", "North"), // 50
		record("T003", "2024-01-02", "P3", "Lamp", 2, 5.0, "C3", "South"),  // 10
	}

	overview := Summarize(records)

	assert.Equal(t, []string{"North", "South"}, overview.Regions)
	assert.True(t, overview.MinAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, overview.MaxAmount.Equal(decimal.NewFromInt(50)))
}

func TestSummarize_Empty(t *testing.T) {
	overview := Summarize(nil)
	assert.Empty(t, overview.Regions)
	assert.True(t, overview.MinAmount.IsZero())
	assert.True(t, overview.MaxAmount.IsZero())
}
