package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	got, changed := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	if !changed {
		t.Fatalf("expected change")
	}
	if string(got) != "a\nb\rc\n" {
		t.Fatalf("got %q", got)
	}
	got, changed = normalizeCRLF([]byte("plain\n"))
	if changed {
		t.Fatalf("unexpected change for %q", got)
	}
}

func TestRemoveBOM(t *testing.T) {
	got, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(got) != "x" {
		t.Fatalf("BOM not stripped: %q %v", got, had)
	}
	if _, had := removeBOM([]byte("xy")); had {
		t.Fatalf("short input must not report a BOM")
	}
}

func TestToLineCol(t *testing.T) {
	// offsets:          0123 4567 8
	content := []byte("ab\ncd\nef")
	idx := buildLineIndex(content)

	cases := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline is the last column of its line
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{7, 3, 2},
	}
	for _, tc := range cases {
		got := toLineCol(idx, tc.off)
		if got.Line != tc.line || got.Col != tc.col {
			t.Fatalf("off %d: got %d:%d, want %d:%d", tc.off, got.Line, got.Col, tc.line, tc.col)
		}
	}
}

func TestFileSetResolveAndLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.lum", []byte("var x = 1\nprint(x)\n"))

	start, end := fs.Resolve(Span{File: id, Start: 10, End: 15})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("start: got %d:%d", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 6 {
		t.Fatalf("end: got %d:%d", end.Line, end.Col)
	}

	if got := fs.Line(id, 1); got != "var x = 1" {
		t.Fatalf("line 1: %q", got)
	}
	if got := fs.Line(id, 2); got != "print(x)" {
		t.Fatalf("line 2: %q", got)
	}
	if got := fs.Line(id, 9); got != "" {
		t.Fatalf("out-of-range line: %q", got)
	}
}

func TestFileSetLatestWins(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("doc.lum", []byte("one"))
	second := fs.AddVirtual("doc.lum", []byte("two"))
	if first == second {
		t.Fatalf("re-adding must mint a fresh ID")
	}
	latest, ok := fs.GetLatest("doc.lum")
	if !ok || latest != second {
		t.Fatalf("GetLatest: got %v %v", latest, ok)
	}
	if fs.Len() != 2 {
		t.Fatalf("Len: got %d", fs.Len())
	}
}

func TestFileSetLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.lum")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Fatalf("content: %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags: %b", f.Flags)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Fatalf("cover: %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("cross-file cover must be a no-op: %v", got)
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()
	x := in.Intern("x")
	y := in.Intern("y")
	if x == y || x == NoStringID {
		t.Fatalf("ids: %v %v", x, y)
	}
	if in.Intern("x") != x {
		t.Fatalf("re-interning must return the same ID")
	}
	if got := in.MustLookup(y); got != "y" {
		t.Fatalf("lookup: %q", got)
	}
	if _, ok := in.Lookup(StringID(999)); ok {
		t.Fatalf("unknown ID must not resolve")
	}
}
