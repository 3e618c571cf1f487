package converter

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/flanksource/commons/logger"
	"github.com/samber/lo"
)

// maxEchoLength bounds how much of each batch input is echoed in reports
const maxEchoLength = 100

// Result describes a PNG file confirmed on disk
type Result struct {
	Path   string `json:"path" yaml:"path"`
	Size   int64  `json:"size" yaml:"size"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Format string `json:"format" yaml:"format"`
}

// FileSize formats the size in kilobytes
func (r Result) FileSize() string {
	return fmt.Sprintf("%.2f KB", float64(r.Size)/1024)
}

func (r Result) Dimensions() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// BatchResult is the ordered results of a batch
type BatchResult struct {
	Results        []Result `json:"results" yaml:"results"`
	TotalProcessed int      `json:"totalProcessed" yaml:"totalProcessed"`
}

func newBatchResult(results []Result) BatchResult {
	return BatchResult{Results: results, TotalProcessed: len(results)}
}

// inspect stats and decodes the header of a written file
func inspect(path string, index int) (Result, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Result{}, &IntegrityError{Index: index, Path: path}
	} else if err != nil {
		return Result{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	config, format, err := image.DecodeConfig(f)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read metadata of %s: %w", path, err)
	}

	return Result{
		Path:   path,
		Size:   info.Size(),
		Width:  config.Width,
		Height: config.Height,
		Format: format,
	}, nil
}

// Reporter receives one structured record per conversion, describing either
// the results or the context of a failure.
type Reporter interface {
	LogJSON(record any)
}

// ReporterFunc adapts a function to a Reporter
type ReporterFunc func(record any)

func (f ReporterFunc) LogJSON(record any) {
	f(record)
}

// LogReporter writes records as JSON through a logger
type LogReporter struct {
	Log logger.Logger
}

func (r LogReporter) LogJSON(record any) {
	data, err := json.Marshal(record)
	if err != nil {
		r.Log.Warnf("failed to marshal report: %v", err)
		return
	}
	r.Log.Infof("%s", data)
}

// SingleRecord reports a single conversion
type SingleRecord struct {
	OutputPath string `json:"outputPath" yaml:"outputPath"`
	FileSize   string `json:"fileSize" yaml:"fileSize"`
	Dimensions string `json:"dimensions" yaml:"dimensions"`
	Format     string `json:"format,omitempty" yaml:"format,omitempty"`
}

// BatchItem reports one entry of a batch
type BatchItem struct {
	Input      string `json:"input" yaml:"input"`
	Output     string `json:"output" yaml:"output"`
	FileSize   string `json:"fileSize" yaml:"fileSize"`
	Dimensions string `json:"dimensions" yaml:"dimensions"`
	Format     string `json:"format,omitempty" yaml:"format,omitempty"`
}

// BatchRecord reports a batch conversion
type BatchRecord struct {
	BatchResults   []BatchItem `json:"batchResults" yaml:"batchResults"`
	TotalProcessed int         `json:"totalProcessed" yaml:"totalProcessed"`
}

// InputParams is the request context logged on failure, without the SVG content
type InputParams struct {
	SVGType   string `json:"svgType" yaml:"svgType"`
	SVGCount  int    `json:"svgCount" yaml:"svgCount"`
	OutputDir string `json:"outputDir" yaml:"outputDir"`
	Width     *int   `json:"width" yaml:"width"`
	Height    *int   `json:"height" yaml:"height"`
}

// ErrorRecord reports a failed conversion
type ErrorRecord struct {
	Error       string      `json:"error" yaml:"error"`
	InputParams InputParams `json:"inputParams" yaml:"inputParams"`
}

func newSingleRecord(result Result) SingleRecord {
	return SingleRecord{
		OutputPath: result.Path,
		FileSize:   result.FileSize(),
		Dimensions: result.Dimensions(),
		Format:     result.Format,
	}
}

func newBatchRecord(inputs []string, batch BatchResult) BatchRecord {
	return BatchRecord{
		BatchResults: lo.Map(batch.Results, func(result Result, i int) BatchItem {
			return BatchItem{
				Input:      truncate(inputs[i], maxEchoLength),
				Output:     result.Path,
				FileSize:   result.FileSize(),
				Dimensions: result.Dimensions(),
				Format:     result.Format,
			}
		}),
		TotalProcessed: batch.TotalProcessed,
	}
}

func newErrorRecord(req Request, err error) ErrorRecord {
	count := req.SVG.Len()
	if !req.SVG.IsBatch() {
		count = 1
	}
	return ErrorRecord{
		Error: err.Error(),
		InputParams: InputParams{
			SVGType:   req.SVG.Type(),
			SVGCount:  count,
			OutputDir: req.OutputDir,
			Width:     req.Width,
			Height:    req.Height,
		},
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// Headers and Rows give the records a tabular form for CSV and pretty output

func (r SingleRecord) Headers() []string {
	return []string{"output", "size", "dimensions", "format"}
}

func (r SingleRecord) Rows() [][]string {
	return [][]string{{r.OutputPath, r.FileSize, r.Dimensions, r.Format}}
}

func (r BatchRecord) Headers() []string {
	return []string{"input", "output", "size", "dimensions", "format"}
}

func (r BatchRecord) Rows() [][]string {
	return lo.Map(r.BatchResults, func(item BatchItem, _ int) []string {
		return []string{item.Input, item.Output, item.FileSize, item.Dimensions, item.Format}
	})
}
