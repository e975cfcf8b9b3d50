package salesparser

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/sales-csv/internal/logging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	lines := []string{
		"T001|2024-12-01|P101|Laptop|2|45000|C001|North",
		"T002|2024-12-01|P102|Mouse|5|500.50|C002|South",
	}

	records := Parse(lines, &logging.MockLogger{})

	require.Len(t, records, 2)
	assert.Equal(t, "T001", records[0].TransactionID)
	assert.Equal(t, "2024-12-01", records[0].Date)
	assert.Equal(t, "P101", records[0].ProductID)
	assert.Equal(t, "Laptop", records[0].ProductName)
	assert.Equal(t, 2, records[0].Quantity)
	assert.True(t, records[0].UnitPrice.Equal(decimal.NewFromInt(45000)))
	assert.Equal(t, "C001", records[0].CustomerID)
	assert.Equal(t, "North", records[0].Region)
	assert.True(t, records[1].UnitPrice.Equal(decimal.RequireFromString("500.50")))
}

func TestParse_SkipsWrongFieldCount(t *testing.T) {
	lines := []string{
		"T001|2024-12-01|P101|Laptop|2|45000|C001|North",
		"T002|2024-12-01|P102|Mouse|5|500",
		"T003|2024-12-01|P103|Keyboard|3|1500|C003|East|extra",
	}

	records := Parse(lines, &logging.MockLogger{})

	require.Len(t, records, 1)
	assert.Equal(t, "T001", records[0].TransactionID)
}

func TestParse_SkipsUnparseableNumbers(t *testing.T) {
	lines := []string{
		"T001|2024-12-01|P101|Laptop|two|45000|C001|North",
		"T002|2024-12-01|P102|Mouse|5|expensive|C002|South",
		"T003|2024-12-01|P103|Keyboard|3|1500|C003|East",
	}

	records := Parse(lines, &logging.MockLogger{})

	require.Len(t, records, 1)
	assert.Equal(t, "T003", records[0].TransactionID)
}

func TestParse_StripsCommas(t *testing.T) {
	lines := []string{
		"T001|2024-12-01|P101|Laptop, Pro|1,000|45,000.50|C001|North",
	}

	records := Parse(lines, &logging.MockLogger{})

	require.Len(t, records, 1)
	assert.Equal(t, "Laptop Pro", records[0].ProductName)
	assert.Equal(t, 1000, records[0].Quantity)
	assert.True(t, records[0].UnitPrice.Equal(decimal.RequireFromString("45000.50")))
}

func TestParse_PreservesInputOrder(t *testing.T) {
	lines := []string{
		"T003|2024-12-03|P103|Keyboard|3|1500|C003|East",
		"T001|2024-12-01|P101|Laptop|2|45000|C001|North",
		"T002|2024-12-02|P102|Mouse|5|500|C002|South",
	}

	records := Parse(lines, &logging.MockLogger{})

	require.Len(t, records, 3)
	assert.Equal(t, "T003", records[0].TransactionID)
	assert.Equal(t, "T001", records[1].TransactionID)
	assert.Equal(t, "T002", records[2].TransactionID)
}

func TestParse_EmptyInput(t *testing.T) {
	records := Parse(nil, &logging.MockLogger{})
	assert.Empty(t, records)
}

func TestParseFile(t *testing.T) {
	tempDir := t.TempDir()
	content := "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region\n" +
		"T001|2024-12-01|P101|Laptop|2|45000|C001|North\n" +
		"\n" +
		"T002|2024-12-01|P102|Mouse|5|500|C002|South\n"

	inputFile := filepath.Join(tempDir, "sales_data.txt")
	require.NoError(t, os.WriteFile(inputFile, []byte(content), 0600))

	records, err := ParseFile(inputFile, &logging.MockLogger{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt"), &logging.MockLogger{})
	assert.Error(t, err)
}
