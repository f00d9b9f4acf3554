package diag

import (
	"errors"
	"fmt"

	"lumen/internal/source"
)

// Error is the single located, unrecoverable failure an analysis run can
// produce. Analysis is fail-fast: the first violation aborts the pass and
// unwinds as exactly one *Error.
type Error struct {
	Code    Code
	Path    string
	Span    source.Span
	Pos     source.LineCol
	Message string
}

// Error renders the contractual "line:column: message" form. File path and
// code styling are the renderer's concern, not the core's.
func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Message)
}

// Errorf builds a located error, resolving the span against fs.
func Errorf(fs *source.FileSet, code Code, span source.Span, format string, args ...any) *Error {
	e := &Error{
		Code:    code,
		Span:    span,
		Pos:     source.LineCol{Line: 1, Col: 1},
		Message: fmt.Sprintf(format, args...),
	}
	if fs != nil {
		start, _ := fs.Resolve(span)
		e.Pos = start
		if f := fs.Get(span.File); f != nil {
			e.Path = f.Path
		}
	}
	return e
}

// AsError extracts an *Error from err, if it carries one.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
