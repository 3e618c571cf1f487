package formatters

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/samber/lo"
)

// PrettyFormatter renders records as styled terminal output
type PrettyFormatter struct {
	Theme   Theme
	NoColor bool
	Writer  io.Writer
}

// NewPrettyFormatter creates a new formatter with default theme
func NewPrettyFormatter() *PrettyFormatter {
	return &PrettyFormatter{
		Theme:  DefaultTheme(),
		Writer: os.Stdout,
	}
}

func (f *PrettyFormatter) renderer() *lipgloss.Renderer {
	w := f.Writer
	if w == nil {
		w = os.Stdout
	}
	r := lipgloss.NewRenderer(w)
	if f.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Format renders Tabular data as a bordered table and anything else as an
// aligned key: value list
func (f *PrettyFormatter) Format(data interface{}) (string, error) {
	r := f.renderer()
	if t, ok := data.(Tabular); ok {
		return f.formatTable(r, t.Headers(), t.Rows()), nil
	}

	fields, err := flatten(data)
	if err != nil {
		return "", err
	}
	if len(fields) == 0 {
		return "", nil
	}

	keyStyle := r.NewStyle().Foreground(f.Theme.Primary).Bold(true)
	valueStyle := r.NewStyle()
	errorStyle := r.NewStyle().Foreground(f.Theme.Error)

	width := lo.Max(lo.Map(fields, func(fd field, _ int) int { return len(fd.Key) }))
	lines := lo.Map(fields, func(fd field, _ int) string {
		style := valueStyle
		if fd.Key == "error" {
			style = errorStyle
		}
		key := keyStyle.Render(fd.Key + ":")
		return key + strings.Repeat(" ", width-len(fd.Key)+1) + style.Render(fd.Value)
	})
	return strings.Join(lines, "\n"), nil
}

func (f *PrettyFormatter) formatTable(r *lipgloss.Renderer, headers []string, rows [][]string) string {
	headerStyle := r.NewStyle().Foreground(f.Theme.Primary).Bold(true).Padding(0, 1)
	cellStyle := r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(f.Theme.Muted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
