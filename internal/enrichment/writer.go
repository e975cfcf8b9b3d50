package enrichment

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"fjacquet/sales-csv/internal/logging"
	"fjacquet/sales-csv/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Tokens used in the enriched output file for absent optional fields
// and the boolean match flag.
const (
	NullMarker = "None"
	TrueToken  = "True"
	FalseToken = "False"
)

// Delimiter is the field separator for the enriched output file.
var Delimiter rune = '|'

// SetDelimiter allows setting the delimiter for the enriched output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// enrichedCSVRow maps an EnrichedRecord onto the 12-column enriched
// file schema, with every field stringified.
type enrichedCSVRow struct {
	TransactionID string `csv:"TransactionID"`
	Date          string `csv:"Date"`
	ProductID     string `csv:"ProductID"`
	ProductName   string `csv:"ProductName"`
	Quantity      string `csv:"Quantity"`
	UnitPrice     string `csv:"UnitPrice"`
	CustomerID    string `csv:"CustomerID"`
	Region        string `csv:"Region"`
	APICategory   string `csv:"API_Category"`
	APIBrand      string `csv:"API_Brand"`
	APIRating     string `csv:"API_Rating"`
	APIMatch      string `csv:"API_Match"`
}

func toCSVRow(e models.EnrichedRecord) enrichedCSVRow {
	row := enrichedCSVRow{
		TransactionID: e.TransactionID,
		Date:          e.Date,
		ProductID:     e.ProductID,
		ProductName:   e.ProductName,
		Quantity:      strconv.Itoa(e.Quantity),
		UnitPrice:     e.UnitPrice.String(),
		CustomerID:    e.CustomerID,
		Region:        e.Region,
		APICategory:   NullMarker,
		APIBrand:      NullMarker,
		APIRating:     NullMarker,
		APIMatch:      FalseToken,
	}
	if e.APIMatch {
		row.APICategory = *e.APICategory
		row.APIBrand = *e.APIBrand
		row.APIRating = e.APIRating.String()
		row.APIMatch = TrueToken
	}
	return row
}

func fromCSVRow(row enrichedCSVRow) (models.EnrichedRecord, error) {
	quantity, err := strconv.Atoi(row.Quantity)
	if err != nil {
		return models.EnrichedRecord{}, fmt.Errorf("invalid quantity %q: %w", row.Quantity, err)
	}
	unitPrice, err := decimal.NewFromString(row.UnitPrice)
	if err != nil {
		return models.EnrichedRecord{}, fmt.Errorf("invalid unit price %q: %w", row.UnitPrice, err)
	}

	e := models.EnrichedRecord{
		TransactionRecord: models.TransactionRecord{
			TransactionID: row.TransactionID,
			Date:          row.Date,
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			Quantity:      quantity,
			UnitPrice:     unitPrice,
			CustomerID:    row.CustomerID,
			Region:        row.Region,
		},
	}

	if row.APIMatch == TrueToken {
		rating, err := decimal.NewFromString(row.APIRating)
		if err != nil {
			return models.EnrichedRecord{}, fmt.Errorf("invalid rating %q: %w", row.APIRating, err)
		}
		category := row.APICategory
		brand := row.APIBrand
		e.APICategory = &category
		e.APIBrand = &brand
		e.APIRating = &rating
		e.APIMatch = true
	}

	return e, nil
}

// WriteEnrichedCSV writes the enriched records to a pipe-delimited file
// with the standard 12-column header, creating parent directories as
// needed.
func WriteEnrichedCSV(enriched []models.EnrichedRecord, csvFile string, logger logging.Logger) error {
	if enriched == nil {
		return fmt.Errorf("cannot write nil enriched records to CSV")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	logger.Info("Writing enriched data",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(enriched)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool writes user-provided output paths
	if err != nil {
		return fmt.Errorf("error creating enriched file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]enrichedCSVRow, 0, len(enriched))
	for _, e := range enriched {
		rows = append(rows, toCSVRow(e))
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing enriched data: %w", err)
	}

	return nil
}

// ReadEnrichedCSV reads a pipe-delimited enriched file back into
// records, reversing the null-marker and boolean-token encoding.
func ReadEnrichedCSV(csvFile string) ([]models.EnrichedRecord, error) {
	file, err := os.Open(csvFile) // #nosec G304 -- CLI tool reads user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening enriched file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter

	var rows []enrichedCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing enriched file: %w", err)
	}

	enriched := make([]models.EnrichedRecord, 0, len(rows))
	for _, row := range rows {
		e, err := fromCSVRow(row)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, e)
	}

	return enriched, nil
}
