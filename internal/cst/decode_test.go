package cst

import (
	"testing"

	"lumen/internal/source"
)

func testDoc() *Document {
	root := New(KindProgram, "", source.Span{Start: 0, End: 9},
		New(KindStmtPrint, "", source.Span{Start: 0, End: 9},
			New(KindExprInt, "42", source.Span{Start: 6, End: 8}),
		),
	)
	return &Document{Path: "hello.lum", Source: "print(42)", Root: root}
}

func TestDocumentRoundTrip(t *testing.T) {
	data, err := EncodeDocument(testDoc())
	if err != nil {
		t.Fatal(err)
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Schema != CurrentSchema {
		t.Fatalf("schema: %d", doc.Schema)
	}
	if doc.Path != "hello.lum" || doc.Source != "print(42)" {
		t.Fatalf("metadata: %q %q", doc.Path, doc.Source)
	}
	if doc.Root.Kind != KindProgram || len(doc.Root.Children) != 1 {
		t.Fatalf("root: %s with %d children", doc.Root.Kind, len(doc.Root.Children))
	}
	lit := doc.Root.Children[0].Children[0]
	if lit.Kind != KindExprInt || lit.Text != "42" {
		t.Fatalf("literal: %s %q", lit.Kind, lit.Text)
	}
	if lit.Span.Start != 6 || lit.Span.End != 8 {
		t.Fatalf("literal span: %v", lit.Span)
	}
}

func TestDecodeRejectsSchemaMismatch(t *testing.T) {
	doc := testDoc()
	doc.Schema = CurrentSchema + 1
	data, err := EncodeDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeDocument(data); err == nil {
		t.Fatalf("expected schema error")
	}
}

func TestDecodeRejectsNonProgramRoot(t *testing.T) {
	doc := testDoc()
	doc.Root = New(KindBlock, "", source.Span{})
	data, err := EncodeDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeDocument(data); err == nil {
		t.Fatalf("expected root kind error")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeDocument([]byte{0xc1, 0xff, 0x00}); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestRebind(t *testing.T) {
	doc := testDoc()
	doc.Root.Rebind(source.FileID(7))
	check := func(n *Node) {
		if n.Span.File != 7 {
			t.Fatalf("%s span not rebound: %v", n.Kind, n.Span)
		}
	}
	check(&doc.Root)
	for i := range doc.Root.Children {
		check(&doc.Root.Children[i])
		for j := range doc.Root.Children[i].Children {
			check(&doc.Root.Children[i].Children[j])
		}
	}
}

func TestNodeKindNames(t *testing.T) {
	if KindStmtFnDecl.String() != "fn-decl" {
		t.Fatalf("got %q", KindStmtFnDecl.String())
	}
	if NodeKind(200).String() == "" {
		t.Fatalf("unknown kind must still stringify")
	}
}
