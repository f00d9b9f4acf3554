package diag

import (
	"testing"

	"lumen/internal/source"
)

func TestCodeIDBlocks(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{SemaUndeclaredIdentifier, "SEM3001"},
		{SemaArgumentCountMismatch, "SEM3013"},
		{IODecodeError, "IO4002"},
		{ProjInvalidManifest, "PRJ5001"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Fatalf("ID(%d): got %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestCodeTitle(t *testing.T) {
	if got := SemaIllegalBreak.Title(); got != "Break outside loop" {
		t.Fatalf("title: %q", got)
	}
	if got := Code(9999).Title(); got != UnknownCode.Title() {
		t.Fatalf("unknown code title: %q", got)
	}
}

func TestErrorfResolvesPosition(t *testing.T) {
	fset := source.NewFileSet()
	file := fset.AddVirtual("t.lum", []byte("abc\ndef\n"))

	e := Errorf(fset, SemaTypeMismatch, source.Span{File: file, Start: 5, End: 6}, "bad %s", "thing")
	if e.Pos.Line != 2 || e.Pos.Col != 2 {
		t.Fatalf("pos: %d:%d", e.Pos.Line, e.Pos.Col)
	}
	if e.Path != "t.lum" {
		t.Fatalf("path: %q", e.Path)
	}
	if e.Message != "bad thing" {
		t.Fatalf("message: %q", e.Message)
	}
	if got := e.Error(); got != "2:2: bad thing" {
		t.Fatalf("rendered: %q", got)
	}
}

func TestErrorfWithoutFileSet(t *testing.T) {
	e := Errorf(nil, SemaTypeMismatch, source.Span{}, "x")
	if e.Pos.Line != 1 || e.Pos.Col != 1 {
		t.Fatalf("fallback pos: %+v", e.Pos)
	}
}

func TestAsError(t *testing.T) {
	e := Errorf(nil, SemaNotBoolean, source.Span{}, "not bool")
	got, ok := AsError(e)
	if !ok || got != e {
		t.Fatalf("AsError: %v %v", got, ok)
	}
	if _, ok := AsError(nil); ok {
		t.Fatalf("nil must not carry an error")
	}
}
