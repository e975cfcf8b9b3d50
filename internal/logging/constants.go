package logging

// Standardized field names for structured logging. These constants keep
// the application's log output consistent and easy to filter.
const (
	FieldFile       = "file_path"
	FieldCount      = "count"
	FieldRegion     = "region"
	FieldProduct    = "product"
	FieldCustomer   = "customer"
	FieldDate       = "date"
	FieldURL        = "url"
	FieldStatus     = "status"
	FieldEncoding   = "encoding"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
