package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lumen/internal/cst"
	"lumen/internal/diag"
	"lumen/internal/source"
)

func writeDoc(t *testing.T, dir, name, src string, root cst.Node) string {
	t.Helper()
	data, err := cst.EncodeDocument(&cst.Document{Path: name, Source: src, Root: root})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func printStmt(expr cst.Node) cst.Node {
	return cst.New(cst.KindStmtPrint, "", source.Span{}, expr)
}

func goodProgram() cst.Node {
	return cst.New(cst.KindProgram, "", source.Span{},
		printStmt(cst.New(cst.KindExprInt, "42", source.Span{})))
}

func badProgram() cst.Node {
	return cst.New(cst.KindProgram, "", source.Span{},
		printStmt(cst.New(cst.KindExprIdent, "ghost", source.Span{})))
}

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o700); err != nil {
		t.Fatal(err)
	}
	writeDoc(t, dir, "b.lmc", "print(42)", goodProgram())
	writeDoc(t, dir, "a.lmc", "print(42)", goodProgram())
	writeDoc(t, sub, "c.lmc", "print(42)", goodProgram())
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	files, err := ListDocuments(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.lmc"),
		filepath.Join(dir, "b.lmc"),
		filepath.Join(sub, "c.lmc"),
	}
	if len(files) != len(want) {
		t.Fatalf("files: %v", files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("order: got %v, want %v", files, want)
		}
	}
}

func TestCheckPathsIndependentFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeDoc(t, dir, "good.lmc", "print(42)", goodProgram())
	bad := writeDoc(t, dir, "bad.lmc", "print(ghost)", badProgram())
	good2 := writeDoc(t, dir, "tail.lmc", "print(42)", goodProgram())

	fset := source.NewFileSet()
	results, err := CheckPaths(context.Background(), fset, []string{good, bad, good2}, Options{Jobs: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results: %d", len(results))
	}

	// Results come back in input order.
	if results[0].Path != good || results[1].Path != bad || results[2].Path != good2 {
		t.Fatalf("order: %v %v %v", results[0].Path, results[1].Path, results[2].Path)
	}

	if results[0].Err != nil || results[0].Program == nil {
		t.Fatalf("good doc: %v", results[0].Err)
	}
	if results[2].Err != nil || results[2].Program == nil {
		t.Fatalf("tail doc must not be poisoned by its neighbor: %v", results[2].Err)
	}

	de, ok := diag.AsError(results[1].Err)
	if !ok {
		t.Fatalf("bad doc error: %v", results[1].Err)
	}
	if de.Code != diag.SemaUndeclaredIdentifier {
		t.Fatalf("bad doc code: %s", de.Code)
	}
}

func TestCheckPathsUnreadableFile(t *testing.T) {
	results, err := CheckPaths(context.Background(), nil,
		[]string{filepath.Join(t.TempDir(), "missing.lmc")}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err == nil {
		t.Fatalf("missing file must fail its slot")
	}
}

func TestCheckPathsRejectsBadSchema(t *testing.T) {
	dir := t.TempDir()
	data, err := cst.EncodeDocument(&cst.Document{
		Schema: cst.CurrentSchema + 1,
		Root:   goodProgram(),
	})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "future.lmc")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	results, err := CheckPaths(context.Background(), nil, []string{path}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err == nil {
		t.Fatalf("schema mismatch must fail the document")
	}
}

func TestCheckPathsRegistersEmbeddedSource(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "demo.lmc", "print(42)", goodProgram())

	fset := source.NewFileSet()
	results, err := CheckPaths(context.Background(), fset, []string{path}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	f := fset.Get(results[0].FileID)
	if f == nil || string(f.Content) != "print(42)" {
		t.Fatalf("embedded source not registered")
	}
	// The document's own path names the file, not the .lmc container.
	if f.Path != "demo.lmc" {
		t.Fatalf("path: %q", f.Path)
	}
}
