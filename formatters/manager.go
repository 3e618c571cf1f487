package formatters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type FormatManager struct {
	jsonFormatter   *JSONFormatter
	yamlFormatter   *YAMLFormatter
	csvFormatter    *CSVFormatter
	prettyFormatter *PrettyFormatter
}

// NewFormatManager creates a new format manager with all formatters initialized
func NewFormatManager() *FormatManager {
	return &FormatManager{
		jsonFormatter:   NewJSONFormatter(),
		yamlFormatter:   NewYAMLFormatter(),
		csvFormatter:    NewCSVFormatter(),
		prettyFormatter: NewPrettyFormatter(),
	}
}

func (f *FormatManager) JSON(data interface{}) (string, error) {
	return f.jsonFormatter.Format(data)
}

func (f *FormatManager) YAML(data interface{}) (string, error) {
	return f.yamlFormatter.Format(data)
}

func (f *FormatManager) CSV(data interface{}) (string, error) {
	return f.csvFormatter.Format(data)
}

func (f *FormatManager) Pretty(data interface{}) (string, error) {
	return f.prettyFormatter.Format(data)
}

// Format delegates to the formatter registered for format
func (f *FormatManager) Format(format string, data interface{}) (string, error) {
	switch strings.ToLower(format) {
	case "json", "":
		return f.JSON(data)
	case "yaml", "yml":
		return f.YAML(data)
	case "csv":
		return f.CSV(data)
	case "pretty":
		return f.Pretty(data)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatWithOptions resolves the format flags and formats data
func (f *FormatManager) FormatWithOptions(opts FormatOptions, data interface{}) (string, error) {
	if err := opts.ResolveFormat(); err != nil {
		return "", err
	}
	f.prettyFormatter.NoColor = opts.NoColor
	return f.Format(opts.Format, data)
}

// FormatToFile writes the formatted data to opts.Output, or stdout when unset
func (f *FormatManager) FormatToFile(opts FormatOptions, data interface{}) error {
	if opts.Output != "" {
		// files never carry escape codes
		opts.NoColor = true
	}
	out, err := f.FormatWithOptions(opts, data)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if opts.Output == "" {
		_, err = fmt.Fprint(os.Stdout, out)
		return err
	}
	if dir := filepath.Dir(opts.Output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	return os.WriteFile(opts.Output, []byte(out), 0o644)
}

var DEFAULT_MANAGER = NewFormatManager()
