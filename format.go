package svg2png

import (
	"github.com/flanksource/svg2png/formatters"
	"github.com/spf13/pflag"
)

type FormatOptions = formatters.FormatOptions

var Formatter = formatters.NewFormatManager()
var defaultOpts FormatOptions

func BindFormatFlags(flags *pflag.FlagSet, opts *FormatOptions) {
	formatters.BindPFlags(flags, opts)
}

func Format(o any, opts ...FormatOptions) (string, error) {
	return Formatter.FormatWithOptions(formatters.MergeOptions(append([]FormatOptions{defaultOpts}, opts...)...), o)
}

func MustFormat(o any, opts ...FormatOptions) string {
	result, _ := Format(o, opts...)
	return result
}

// FormatToFile writes o to file, or to stdout when file is empty
func FormatToFile(o any, opts FormatOptions, file string) error {
	opts.Output = file
	return Formatter.FormatToFile(formatters.MergeOptions(defaultOpts, opts), o)
}

func UseFormatter(opts FormatOptions) {
	defaultOpts = opts
}
