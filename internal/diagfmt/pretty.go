// Package diagfmt renders analysis failures for humans and machines.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lumen/internal/diag"
	"lumen/internal/source"
)

var (
	pathStyle = lipgloss.NewStyle().Bold(true)
	sevStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	codeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	markStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Pretty renders one located error:
//
//	<path>:<line>:<col>: ERROR [SEM3013]: message
//	   42 | var x: int = f(1, 2, 3);
//	      |              ^~~~~~~~~~
//
// The context line and underline are omitted when the file set does not
// know the offending file.
func Pretty(w io.Writer, e *diag.Error, fs *source.FileSet, opts Options) {
	path := e.Path
	if path == "" {
		path = "<input>"
	} else if !opts.FullPath {
		path = filepath.Base(path)
	}

	sev := diag.SevError.String()
	code := "[" + e.Code.ID() + "]"
	if opts.Color {
		path = pathStyle.Render(path)
		sev = sevStyle.Render(sev)
		code = codeStyle.Render(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, e.Pos.Line, e.Pos.Col, sev, code, e.Message)

	if fs == nil {
		return
	}
	line := fs.Line(e.Span.File, e.Pos.Line)
	if line == "" {
		return
	}

	gutter := fmt.Sprintf("%5d", e.Pos.Line)
	fmt.Fprintf(w, "%s | %s\n", gutter, line)

	// Underline the span's portion of the line; display width counts
	// rendered cells, not bytes.
	startIdx := int(e.Pos.Col) - 1
	if startIdx > len(line) {
		startIdx = len(line)
	}
	_, end := fs.Resolve(e.Span)
	endIdx := len(line)
	if end.Line == e.Pos.Line && int(end.Col)-1 < endIdx {
		endIdx = int(end.Col) - 1
	}
	if endIdx < startIdx {
		endIdx = startIdx
	}

	pad := runewidth.StringWidth(line[:startIdx])
	width := runewidth.StringWidth(line[startIdx:endIdx])
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = markStyle.Render(marker)
	}
	fmt.Fprintf(w, "%s | %s%s\n", strings.Repeat(" ", len(gutter)), strings.Repeat(" ", pad), marker)
}
