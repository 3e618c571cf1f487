package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/flanksource/svg2png"
	"github.com/flanksource/svg2png/converter"
	"github.com/flanksource/svg2png/shutdown"
	"github.com/spf13/cobra"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCommand()
	err := rootCmd.Execute()
	shutdown.Shutdown()
	if err != nil {
		// conversion failures were already reported as an error record
		if !strings.HasPrefix(err.Error(), converter.ErrorPrefix) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts convertOptions

	rootCmd := &cobra.Command{
		Use:   "svg2png [flags] <svg-or-file> [svg-or-file...]",
		Short: "Convert SVG documents to PNG files",
		Long: `svg2png rasterizes SVG markup or .svg files into PNG images.

Each input is written to a uniquely named file in the output directory. Passing
more than one input (or --batch) converts them as a batch of up to 100 files;
the first failure aborts the batch. Use - to read a document from stdin.`,
		Example: `  svg2png -o out logo.svg
  svg2png -o out --width 256 --height 256 --background white icons/*.svg
  echo '<svg ...>' | svg2png -o out -
  svg2png --request convert.yaml --pretty`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := svg2png.Flags.FormatOptions.ResolveFormat(); err != nil {
				return err
			}
			svg2png.Flags.UseFlags()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.requestFile == "" {
				return cmd.Help()
			}
			return runConvert(cmd, args, opts)
		},
	}

	svg2png.BindAllFlags(rootCmd.PersistentFlags())
	bindConvertFlags(rootCmd.Flags(), &opts)

	rootCmd.AddCommand(newBackendsCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getVersionInfo())
		},
	}
}

func getVersionInfo() string {
	return fmt.Sprintf("svg2png %s (commit: %s, built: %s, go: %s)",
		version, commit, date, runtime.Version())
}
