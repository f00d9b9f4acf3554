package cst

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// CurrentSchema is the wire schema version this decoder understands.
// Increment when the Document format changes.
const CurrentSchema uint16 = 1

// Document is one parsed source file as emitted by the front-end: the
// original source text (for diagnostics) plus the tree.
type Document struct {
	Schema uint16 `msgpack:"schema"`
	Path   string `msgpack:"path"`
	Source string `msgpack:"source"`
	Root   Node   `msgpack:"root"`
}

// DecodeDocument parses a msgpack-encoded document and validates the
// schema version.
func DecodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode CST document: %w", err)
	}
	if doc.Schema != CurrentSchema {
		return nil, fmt.Errorf("unsupported CST schema %d (want %d)", doc.Schema, CurrentSchema)
	}
	if doc.Root.Kind != KindProgram {
		return nil, fmt.Errorf("document root is %s, want program", doc.Root.Kind)
	}
	return &doc, nil
}

// EncodeDocument serializes a document; used by front-end shims and tests.
func EncodeDocument(doc *Document) ([]byte, error) {
	if doc.Schema == 0 {
		doc.Schema = CurrentSchema
	}
	data, err := msgpack.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode CST document: %w", err)
	}
	return data, nil
}
