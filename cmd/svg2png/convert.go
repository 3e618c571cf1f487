package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/flanksource/commons/logger"
	"github.com/flanksource/commons/text"
	"github.com/flanksource/svg2png"
	"github.com/flanksource/svg2png/converter"
	"github.com/flanksource/svg2png/shutdown"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

type convertOptions struct {
	outputDir   string
	width       int
	height      int
	quality     int
	background  string
	requestFile string
	batch       bool
}

func bindConvertFlags(flags *pflag.FlagSet, opts *convertOptions) {
	flags.StringVarP(&opts.outputDir, "output-dir", "o", ".", "Directory to write PNG files to (created if missing)")
	flags.IntVar(&opts.width, "width", 0, "Target width in pixels (1-10000), the image is contained within width x height")
	flags.IntVar(&opts.height, "height", 0, "Target height in pixels (1-10000)")
	flags.IntVar(&opts.quality, "quality", converter.DefaultQuality, "Quality 1-100, controls the palette size of grayscale output")
	flags.StringVar(&opts.background, "background", converter.Transparent, "Background color: hex, rgb(), rgba(), a color name or transparent")
	flags.StringVar(&opts.requestFile, "request", "", "Read the request from a yaml, toml or json file; flags override its values")
	flags.BoolVar(&opts.batch, "batch", false, "Report as a batch even for a single input")
}

// buildRequest merges the request file, the positional inputs and any flags
// explicitly set on the command line
func buildRequest(flags *pflag.FlagSet, args []string, opts convertOptions, stdin io.Reader) (converter.Request, error) {
	req := converter.Request{}
	if opts.requestFile != "" {
		loaded, err := converter.LoadRequest(opts.requestFile)
		if err != nil {
			return req, err
		}
		req = *loaded
	}

	if len(args) > 0 {
		inputs, err := readInputs(args, stdin)
		if err != nil {
			return req, err
		}
		if len(inputs) == 1 && !opts.batch {
			req.SVG = converter.Single(inputs[0])
		} else {
			req.SVG = converter.Batch(inputs...)
		}
	} else if opts.batch && !req.SVG.IsBatch() && !req.SVG.IsZero() {
		req.SVG = converter.Batch(req.SVG.Items()...)
	}

	if req.OutputDir == "" || flags.Changed("output-dir") {
		req.OutputDir = opts.outputDir
	}
	if flags.Changed("width") {
		req.Width = lo.ToPtr(opts.width)
	}
	if flags.Changed("height") {
		req.Height = lo.ToPtr(opts.height)
	}
	if flags.Changed("quality") {
		req.Quality = lo.ToPtr(opts.quality)
	}
	if flags.Changed("background") {
		req.Background = lo.ToPtr(opts.background)
	}
	return req, nil
}

// readInputs passes markup and paths through unchanged and replaces - with
// the contents of stdin
func readInputs(args []string, stdin io.Reader) ([]string, error) {
	inputs := make([]string, 0, len(args))
	read := false
	for _, arg := range args {
		if arg != "-" {
			inputs = append(inputs, arg)
			continue
		}
		if read {
			return nil, fmt.Errorf("stdin (-) can only be used once")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		read = true
		inputs = append(inputs, string(data))
	}
	return inputs, nil
}

func runConvert(cmd *cobra.Command, args []string, opts convertOptions) error {
	req, err := buildRequest(cmd.Flags(), args, opts, cmd.InOrStdin())
	if err != nil {
		return err
	}

	ctx, cancel := shutdown.WithSignals(cmd.Context())
	defer cancel()

	reportOpts := svg2png.Flags.FormatOptions
	options := []converter.Option{
		converter.WithReporter(converter.ReporterFunc(func(record any) {
			if _, failed := record.(converter.ErrorRecord); failed {
				fmt.Fprintln(os.Stderr, svg2png.MustFormat(record, reportOpts))
				return
			}
			if err := svg2png.FormatToFile(record, reportOpts, reportOpts.Output); err != nil {
				logger.Errorf("failed to write report: %v", err)
			}
		})),
	}

	if bar := newProgressBar(req); bar != nil {
		shutdown.AddHookWithPriority("progress", shutdown.PriorityProgress, func() {
			_ = bar.Finish()
		})
		options = append(options, converter.WithProgress(func(done, total int) {
			_ = bar.Set(done)
		}))
	}

	start := time.Now()
	out, err := svg2png.Convert(ctx, req, options...)
	if err != nil {
		return err
	}

	total := lo.SumBy(out.Results, func(r converter.Result) int64 { return r.Size })
	logger.Infof("Converted %d file(s), %s in %s", len(out.Results),
		humanize.Bytes(uint64(total)), text.HumanizeDuration(time.Since(start)))
	return nil
}

// newProgressBar returns a bar for batches when stderr is a terminal
func newProgressBar(req converter.Request) *progressbar.ProgressBar {
	if svg2png.Flags.NoProgress || !req.SVG.IsBatch() || req.SVG.Len() < 2 {
		return nil
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return progressbar.NewOptions(req.SVG.Len(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionThrottle(80*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
