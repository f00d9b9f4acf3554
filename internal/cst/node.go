// Package cst models the concrete syntax tree handed over by the external
// parsing front-end. The analyzer consumes nodes; it never sees raw text.
package cst

import (
	"fmt"

	"lumen/internal/source"
)

// NodeKind enumerates every production the analyzer consumes.
type NodeKind uint8

const (
	KindInvalid NodeKind = iota

	// Program is the root; children are its statements.
	KindProgram

	// Statements. Child layouts are listed per kind.
	KindStmtPrint    // [expr]
	KindStmtVarDecl  // [ident, type, init]
	KindStmtConst    // [ident, type, init]
	KindStmtAssign   // [ident, value]
	KindStmtCall     // [call-expr]
	KindStmtPass     // []
	KindStmtBreak    // []
	KindStmtReturn   // [] or [expr]
	KindStmtWhile    // [cond, block]
	KindStmtForRange // [ident, from, to, block]
	KindStmtForIn    // [ident, iter, block]
	KindStmtIf       // [cond, block] or [cond, block, else]; else is a block or a nested if
	KindStmtTry      // [block, catch] or [block, timeout-expr, catch]
	KindStmtFnDecl   // [ident, params, return-type, block]

	KindBlock  // [stmt...]
	KindCatch  // [params, block]
	KindParams // [param...]
	KindParam  // [ident, type]

	// Expressions.
	KindExprBinary  // [lhs, rhs], Text is the operator
	KindExprUnary   // [operand], Text is the operator
	KindExprUnwrap  // [optional, default]; the ?? operator
	KindExprIndex   // [base, index]
	KindExprCall    // [ident, arg...]
	KindExprIdent   // Text is the name
	KindExprInt     // Text is the literal
	KindExprFloat   // Text is the literal
	KindExprString  // Text is the decoded string value
	KindExprBool    // Text is "true" or "false"
	KindExprArray   // [element...]
	KindExprDict    // [entry...]
	KindDictEntry   // [key, value]

	// Type syntax.
	KindTypeName     // Text names a primitive: int, float, string, bool, void, any
	KindTypeOptional // [base]
	KindTypeArray    // [elem]
	KindTypeDict     // [key, value]
	KindTypeFn       // [param-type..., return-type]; last child is the return
)

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return fmt.Sprintf("NodeKind(%d)", k)
}

var nodeKindNames = [...]string{
	KindInvalid:      "invalid",
	KindProgram:      "program",
	KindStmtPrint:    "print",
	KindStmtVarDecl:  "var-decl",
	KindStmtConst:    "const-decl",
	KindStmtAssign:   "assign",
	KindStmtCall:     "call-stmt",
	KindStmtPass:     "pass",
	KindStmtBreak:    "break",
	KindStmtReturn:   "return",
	KindStmtWhile:    "while",
	KindStmtForRange: "for-range",
	KindStmtForIn:    "for-in",
	KindStmtIf:       "if",
	KindStmtTry:      "try",
	KindStmtFnDecl:   "fn-decl",
	KindBlock:        "block",
	KindCatch:        "catch",
	KindParams:       "params",
	KindParam:        "param",
	KindExprBinary:   "binary",
	KindExprUnary:    "unary",
	KindExprUnwrap:   "unwrap-default",
	KindExprIndex:    "index",
	KindExprCall:     "call",
	KindExprIdent:    "identifier",
	KindExprInt:      "int-literal",
	KindExprFloat:    "float-literal",
	KindExprString:   "string-literal",
	KindExprBool:     "bool-literal",
	KindExprArray:    "array-literal",
	KindExprDict:     "dict-literal",
	KindDictEntry:    "dict-entry",
	KindTypeName:     "type-name",
	KindTypeOptional: "type-optional",
	KindTypeArray:    "type-array",
	KindTypeDict:     "type-dict",
	KindTypeFn:       "type-fn",
}

// Node is one CST production: its kind, the matched source text (where
// meaningful), a source span for diagnostics, and child nodes.
type Node struct {
	Kind     NodeKind    `msgpack:"kind"`
	Text     string      `msgpack:"text,omitempty"`
	Span     source.Span `msgpack:"span"`
	Children []Node      `msgpack:"children,omitempty"`
}

// New builds a node; mostly a convenience for tests and front-end shims.
func New(kind NodeKind, text string, span source.Span, children ...Node) Node {
	return Node{Kind: kind, Text: text, Span: span, Children: children}
}

// Rebind points every span in the subtree at the given file. The
// front-end emits offsets only; the consumer assigns the FileID after
// registering the embedded source in its FileSet.
func (n *Node) Rebind(file source.FileID) {
	n.Span.File = file
	for i := range n.Children {
		n.Children[i].Rebind(file)
	}
}
