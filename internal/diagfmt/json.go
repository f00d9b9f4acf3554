package diagfmt

import (
	"encoding/json"
	"io"

	"lumen/internal/diag"
)

// Report is the machine-readable status of one checked document.
type Report struct {
	Path  string     `json:"path"`
	OK    bool       `json:"ok"`
	Error *ErrorJSON `json:"error,omitempty"`
}

// ErrorJSON is the wire shape of a located error.
type ErrorJSON struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
	Message string `json:"message"`
}

// NewReport converts a per-document outcome. err may be nil.
func NewReport(path string, err error) Report {
	r := Report{Path: path, OK: err == nil}
	if err == nil {
		return r
	}
	if de, ok := diag.AsError(err); ok {
		r.Error = &ErrorJSON{
			Code:    de.Code.ID(),
			Title:   de.Code.Title(),
			Line:    de.Pos.Line,
			Col:     de.Pos.Col,
			Message: de.Message,
		}
	} else {
		r.Error = &ErrorJSON{Code: diag.UnknownCode.ID(), Message: err.Error()}
	}
	return r
}

// JSON writes reports as an indented JSON array.
func JSON(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}
