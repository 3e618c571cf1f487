package formatters

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter handles CSV formatting
type CSVFormatter struct {
	Separator rune
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{
		Separator: ',',
	}
}

// Format formats data as CSV with a header line
func (f *CSVFormatter) Format(data interface{}) (string, error) {
	headers, rows, err := table(data)
	if err != nil {
		return "", err
	}
	if len(headers) == 0 {
		return "", nil
	}

	var output strings.Builder
	writer := csv.NewWriter(&output)
	writer.Comma = f.Separator

	if err := writer.Write(headers); err != nil {
		return "", err
	}
	if err := writer.WriteAll(rows); err != nil {
		return "", err
	}
	return output.String(), nil
}
