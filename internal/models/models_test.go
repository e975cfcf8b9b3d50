package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	record := TransactionRecord{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("45000.50"),
	}
	assert.True(t, record.Amount().Equal(decimal.RequireFromString("135001.50")))
}

func TestAmountZeroQuantity(t *testing.T) {
	record := TransactionRecord{
		Quantity:  0,
		UnitPrice: decimal.RequireFromString("99.99"),
	}
	assert.True(t, record.Amount().IsZero())
}

func TestEnrichedRecordEmbedsTransaction(t *testing.T) {
	category := "laptops"
	enriched := EnrichedRecord{
		TransactionRecord: TransactionRecord{ProductID: "P101", Region: "North"},
		APICategory:       &category,
		APIMatch:          true,
	}
	assert.Equal(t, "P101", enriched.ProductID)
	assert.Equal(t, "North", enriched.Region)
	assert.Equal(t, "laptops", *enriched.APICategory)
	assert.Nil(t, enriched.APIBrand)
}
