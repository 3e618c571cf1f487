package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flanksource/svg2png"
	"github.com/flanksource/svg2png/converter"
	"github.com/flanksource/svg2png/shutdown"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markup = `<svg xmlns="http://www.w3.org/2000/svg" width="4" height="4"/>`

func parseFlags(t *testing.T, argv ...string) (*pflag.FlagSet, convertOptions) {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var opts convertOptions
	bindConvertFlags(flags, &opts)
	require.NoError(t, flags.Parse(argv))
	return flags, opts
}

func TestBuildRequest(t *testing.T) {
	t.Run("single input uses defaults", func(t *testing.T) {
		flags, opts := parseFlags(t, markup)
		req, err := buildRequest(flags, flags.Args(), opts, strings.NewReader(""))
		require.NoError(t, err)
		assert.False(t, req.SVG.IsBatch())
		assert.Equal(t, []string{markup}, req.SVG.Items())
		assert.Equal(t, ".", req.OutputDir)
		assert.Nil(t, req.Width)
		assert.Nil(t, req.Quality)
		assert.Nil(t, req.Background)
	})

	t.Run("several inputs make a batch", func(t *testing.T) {
		flags, opts := parseFlags(t, "-o", "out", "a.svg", "b.svg")
		req, err := buildRequest(flags, flags.Args(), opts, strings.NewReader(""))
		require.NoError(t, err)
		assert.True(t, req.SVG.IsBatch())
		assert.Equal(t, 2, req.SVG.Len())
		assert.Equal(t, "out", req.OutputDir)
	})

	t.Run("batch flag", func(t *testing.T) {
		flags, opts := parseFlags(t, "--batch", "a.svg")
		req, err := buildRequest(flags, flags.Args(), opts, strings.NewReader(""))
		require.NoError(t, err)
		assert.True(t, req.SVG.IsBatch())
		assert.Equal(t, 1, req.SVG.Len())
	})

	t.Run("only changed flags are set", func(t *testing.T) {
		flags, opts := parseFlags(t, "--width", "64", "--background", "white", "a.svg")
		req, err := buildRequest(flags, flags.Args(), opts, strings.NewReader(""))
		require.NoError(t, err)
		require.NotNil(t, req.Width)
		assert.Equal(t, 64, *req.Width)
		assert.Nil(t, req.Height)
		require.NotNil(t, req.Background)
		assert.Equal(t, "white", *req.Background)
	})

	t.Run("stdin", func(t *testing.T) {
		flags, opts := parseFlags(t, "-")
		req, err := buildRequest(flags, flags.Args(), opts, strings.NewReader(markup))
		require.NoError(t, err)
		assert.Equal(t, []string{markup}, req.SVG.Items())

		flags, opts = parseFlags(t, "-", "-")
		_, err = buildRequest(flags, flags.Args(), opts, strings.NewReader(markup))
		assert.Error(t, err)
	})

	t.Run("request file with overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "req.yaml")
		content := "svg:\n  - a.svg\n  - b.svg\noutputDir: from-file\nwidth: 50\nheight: 40\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		flags, opts := parseFlags(t, "--request", path, "--width", "20")
		req, err := buildRequest(flags, flags.Args(), opts, strings.NewReader(""))
		require.NoError(t, err)
		assert.True(t, req.SVG.IsBatch())
		assert.Equal(t, []string{"a.svg", "b.svg"}, req.SVG.Items())
		assert.Equal(t, "from-file", req.OutputDir)
		assert.Equal(t, 20, *req.Width)
		assert.Equal(t, 40, *req.Height)
	})
}

func backendOptions(name string) svg2png.BackendOptions {
	return svg2png.BackendOptions{Backend: name}
}

func TestListBackends(t *testing.T) {
	t.Cleanup(shutdown.Shutdown)

	list, err := listBackends(backendOptions("oksvg"))
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, backendInfo{Name: "oksvg", Available: true, Selected: true}, list[0])
	assert.Equal(t, []string{"oksvg", "yes", "yes"}, list.Rows()[0])
	assert.Equal(t, []string{"backend", "available", "selected"}, list.Headers())

	_, err = listBackends(backendOptions("bogus"))
	assert.Error(t, err)
}

func TestRootCommand(t *testing.T) {
	t.Cleanup(shutdown.Shutdown)
	dir := t.TempDir()
	report := filepath.Join(dir, "report.json")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"-o", filepath.Join(dir, "png"), "--report", report, "--json", "--no-progress", markup})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	var record converter.SingleRecord
	require.NoError(t, json.Unmarshal(data, &record))
	assert.FileExists(t, record.OutputPath)
	assert.Equal(t, "4x4", record.Dimensions)
}

func TestRootCommandFailure(t *testing.T) {
	t.Cleanup(shutdown.Shutdown)
	dir := t.TempDir()

	cmd := newRootCommand()
	cmd.SetArgs([]string{"-o", dir, "--report", filepath.Join(dir, "report.json"), "--quality", "0", markup})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), converter.ErrorPrefix))
	assert.Contains(t, err.Error(), "quality must be between 1 and 100")
	assert.NoFileExists(t, filepath.Join(dir, "report.json"))
}

func TestVersion(t *testing.T) {
	assert.True(t, strings.HasPrefix(getVersionInfo(), "svg2png dev (commit: unknown"))
}
