package svg2png

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/flanksource/svg2png/converter"
	"github.com/flanksource/svg2png/shutdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = `<svg xmlns="http://www.w3.org/2000/svg" width="8" height="8"><rect width="8" height="8" fill="blue"/></svg>`

func TestNewRasterizer(t *testing.T) {
	t.Cleanup(shutdown.Shutdown)

	manager, err := NewRasterizer(BackendOptions{Backend: "oksvg", Strict: true})
	require.NoError(t, err)
	assert.Equal(t, "oksvg", manager.Name())
	assert.Contains(t, manager.Available(), "oksvg")

	_, err = NewRasterizer(BackendOptions{Backend: "no-such-backend"})
	assert.Error(t, err)
}

func TestSharedRasterizer(t *testing.T) {
	t.Cleanup(shutdown.Shutdown)
	opts := BackendOptions{Backend: "oksvg"}

	first, err := sharedRasterizer(opts)
	require.NoError(t, err)
	second, err := sharedRasterizer(BackendOptions{Backend: "oksvg", NoProgress: true})
	require.NoError(t, err)
	assert.Same(t, first, second, "repeated conversions reuse one manager")

	strict, err := sharedRasterizer(BackendOptions{Backend: "oksvg", Strict: true})
	require.NoError(t, err)
	assert.NotSame(t, first, strict)

	shutdown.Shutdown()
	third, err := sharedRasterizer(opts)
	require.NoError(t, err)
	assert.NotSame(t, first, third, "shutdown releases the shared manager")
}

func TestConvert(t *testing.T) {
	t.Cleanup(shutdown.Shutdown)
	dir := t.TempDir()

	var records []any
	out, err := Convert(context.Background(), Request{SVG: Single(square), OutputDir: dir},
		converter.WithReporter(converter.ReporterFunc(func(r any) { records = append(records, r) })))
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.FileExists(t, out.Results[0].Path)
	assert.Equal(t, "8x8", out.Results[0].Dimensions())
	require.Len(t, records, 1)

	s, err := Format(records[0], FormatOptions{CSV: true})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(s), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "output,size,dimensions,format", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], out.Results[0].Path+","))
}

func TestConvertFailurePrefix(t *testing.T) {
	t.Cleanup(shutdown.Shutdown)
	dir := t.TempDir() + "/out"

	_, err := Convert(context.Background(), Request{SVG: Single("not svg"), OutputDir: dir},
		converter.WithReporter(converter.ReporterFunc(func(any) {})))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), converter.ErrorPrefix))
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFormatToFile(t *testing.T) {
	path := t.TempDir() + "/flags.yaml"
	require.NoError(t, FormatToFile(map[string]int{"width": 10}, FormatOptions{YAML: true}, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "width: 10\n", string(data))
}
