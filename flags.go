package svg2png

import (
	"github.com/flanksource/commons/logger"
	"github.com/spf13/pflag"
)

type AllFlags struct {
	FormatOptions
	BackendOptions
	logger.Flags
}

// BackendOptions select and tune the rasterizer
type BackendOptions struct {
	Backend    string // preferred backend name, empty for the first available
	Strict     bool   // fail on SVG elements the oksvg backend cannot render
	NoProgress bool
}

var Flags AllFlags = AllFlags{
	FormatOptions: FormatOptions{Format: "json"},
	Flags: logger.Flags{
		Level:        "info",
		LevelCount:   0,
		JsonLogs:     false,
		ReportCaller: false,
		LogToStderr:  true,
	},
}

// BindAllFlags adds logging, report format and backend flags to a pflag set (for Cobra)
func BindAllFlags(flags *pflag.FlagSet) AllFlags {
	flags.CountVarP(&Flags.Flags.LevelCount, "loglevel", "v", "Increase logging level")
	flags.StringVar(&Flags.Flags.Level, "log-level", "info", "Set the default log level")
	flags.BoolVar(&Flags.Flags.JsonLogs, "json-logs", false, "Print logs in json format to stderr")

	flags.BoolVar(&Flags.Flags.ReportCaller, "report-caller", false, "Report log caller info")
	flags.BoolVar(&Flags.Flags.LogToStderr, "log-to-stderr", true, "Log to stderr instead of stdout")

	flags.StringVar(&Flags.Backend, "backend", "", "Rasterizer backend: oksvg, rsvg-convert, inkscape, playwright (default: first available)")
	flags.BoolVar(&Flags.Strict, "strict", false, "Fail on SVG elements the oksvg backend cannot render")
	flags.BoolVar(&Flags.NoProgress, "no-progress", false, "Disable the batch progress bar")

	BindFormatFlags(flags, &Flags.FormatOptions)
	return Flags
}

func (a AllFlags) String() string {
	s, _ := Format(a, FormatOptions{YAML: true})
	return s
}

func (a AllFlags) UseFlags() {
	logger.Configure(a.Flags)
	logger.Debugf("Using flags: %s", a)
	UseFormatter(a.FormatOptions)
}
