// Package salesparser provides functionality to parse pipe-delimited
// sales transaction lines into typed records.
package salesparser

import (
	"strconv"
	"strings"

	"fjacquet/sales-csv/internal/fileutils"
	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/models"

	"github.com/shopspring/decimal"
)

// FieldCount is the expected schema width of an input line.
const FieldCount = 8

// Delimiter separates fields within an input line.
const Delimiter = "|"

// Parse turns raw delimited lines into typed transaction records.
// Malformed lines are skipped, never surfaced as errors: wrong field
// count and unparseable numeric fields both drop the line. Comma
// grouping is stripped from the numeric fields and any commas inside
// the product name are removed. Output order follows input order.
func Parse(lines []string, logger logging.Logger) []models.TransactionRecord {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	records := make([]models.TransactionRecord, 0, len(lines))
	skipped := 0

	for _, line := range lines {
		record, ok := parseLine(line)
		if !ok {
			skipped++
			logger.WithField("line", line).Debug("Skipping malformed line")
			continue
		}
		records = append(records, record)
	}

	logger.Info("Parsed sales data",
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: "skipped", Value: skipped})

	return records
}

// parseLine converts a single raw line into a record. The second return
// value reports whether the line was well formed.
func parseLine(line string) (models.TransactionRecord, bool) {
	parts := strings.Split(line, Delimiter)
	if len(parts) != FieldCount {
		return models.TransactionRecord{}, false
	}

	quantity, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(parts[4]), ",", ""))
	if err != nil {
		return models.TransactionRecord{}, false
	}

	unitPrice, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(parts[5]), ",", ""))
	if err != nil {
		return models.TransactionRecord{}, false
	}

	return models.TransactionRecord{
		TransactionID: strings.TrimSpace(parts[0]),
		Date:          strings.TrimSpace(parts[1]),
		ProductID:     strings.TrimSpace(parts[2]),
		ProductName:   strings.ReplaceAll(strings.TrimSpace(parts[3]), ",", ""),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    strings.TrimSpace(parts[6]),
		Region:        strings.TrimSpace(parts[7]),
	}, true
}

// ParseFile reads a sales file (handling encoding fallback and header
// stripping) and parses its lines into records.
func ParseFile(filePath string, logger logging.Logger) ([]models.TransactionRecord, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Reading sales file",
		logging.Field{Key: logging.FieldFile, Value: filePath})

	lines, err := fileutils.ReadSalesLines(filePath)
	if err != nil {
		return nil, err
	}
	return Parse(lines, logger), nil
}
