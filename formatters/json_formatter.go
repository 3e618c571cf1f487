package formatters

import (
	"encoding/json"
)

// JSONFormatter handles JSON formatting
type JSONFormatter struct {
	Indent string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		Indent: "  ",
	}
}

// Format formats data as JSON
func (f *JSONFormatter) Format(data interface{}) (string, error) {
	if data == nil {
		return "null", nil
	}
	b, err := json.MarshalIndent(data, "", f.Indent)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
