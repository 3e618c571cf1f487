package formatters

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Tabular is implemented by records that can be laid out as rows
type Tabular interface {
	Headers() []string
	Rows() [][]string
}

// FormatOptions contains options for formatting operations
type FormatOptions struct {
	Format  string
	NoColor bool
	Output  string

	// Format-specific boolean flags (mutually exclusive)
	JSON   bool
	YAML   bool
	CSV    bool
	Pretty bool
}

func MergeOptions(opts ...FormatOptions) FormatOptions {
	merged := FormatOptions{}
	for _, opt := range opts {
		if opt.Format != "" {
			merged.Format = opt.Format
		}
		if opt.NoColor {
			merged.NoColor = true
		}
		if opt.Output != "" {
			merged.Output = opt.Output
		}
		switch {
		case opt.JSON:
			merged.JSON = true
		case opt.YAML:
			merged.YAML = true
		case opt.CSV:
			merged.CSV = true
		case opt.Pretty:
			merged.Pretty = true
		}
	}
	return merged
}

// BindPFlags adds formatting flags to the provided pflag set (for cobra)
func BindPFlags(flags *pflag.FlagSet, options *FormatOptions) {
	flags.StringVar(&options.Format, "format", "json", "Report format: json, yaml, csv, pretty")
	flags.StringVar(&options.Output, "report", "", "Write the report to a file instead of stdout")
	flags.BoolVar(&options.NoColor, "no-color", false, "Disable colored output")

	flags.BoolVar(&options.JSON, "json", false, "Report in JSON format (default)")
	flags.BoolVar(&options.YAML, "yaml", false, "Report in YAML format")
	flags.BoolVar(&options.CSV, "csv", false, "Report in CSV format")
	flags.BoolVar(&options.Pretty, "pretty", false, "Report as a styled table")
}

// ResolveFormat resolves the output format from format-specific flags
func (options *FormatOptions) ResolveFormat() error {
	formatCount := 0
	selectedFormat := ""

	for name, set := range map[string]bool{
		"json":   options.JSON,
		"yaml":   options.YAML,
		"csv":    options.CSV,
		"pretty": options.Pretty,
	} {
		if set {
			formatCount++
			selectedFormat = name
		}
	}

	if formatCount > 1 {
		return fmt.Errorf("multiple format flags specified; please use only one format flag")
	}
	if formatCount == 1 {
		options.Format = selectedFormat
	}
	if options.Format == "" {
		options.Format = "json"
	}
	return nil
}
