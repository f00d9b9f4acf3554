package diag

import (
	"fmt"
)

// Code identifies a diagnostic category.
type Code uint16

const (
	UnknownCode Code = 0

	// Semantic analysis
	SemaInfo                  Code = 3000
	SemaUndeclaredIdentifier  Code = 3001
	SemaDuplicateDeclaration  Code = 3002
	SemaTypeMismatch          Code = 3003
	SemaNotNumeric            Code = 3004
	SemaNotBoolean            Code = 3005
	SemaNotInteger            Code = 3006
	SemaNotArray              Code = 3007
	SemaNotOptional           Code = 3008
	SemaNotIterable           Code = 3009
	SemaOperandTypeMismatch   Code = 3010
	SemaNotAssignable         Code = 3011
	SemaNotCallable           Code = 3012
	SemaArgumentCountMismatch Code = 3013
	SemaIllegalBreak          Code = 3014
	SemaIllegalReturn         Code = 3015
	SemaReadOnlyViolation     Code = 3016

	// I/O and input decoding
	IOLoadFileError  Code = 4001
	IODecodeError    Code = 4002
	IOSchemaMismatch Code = 4003

	// Project manifest
	ProjInvalidManifest Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:               "Unknown error",
	SemaInfo:                  "Semantic information",
	SemaUndeclaredIdentifier:  "Undeclared identifier",
	SemaDuplicateDeclaration:  "Duplicate declaration",
	SemaTypeMismatch:          "Type mismatch",
	SemaNotNumeric:            "Operand is not numeric",
	SemaNotBoolean:            "Operand is not boolean",
	SemaNotInteger:            "Operand is not an integer",
	SemaNotArray:              "Operand is not an array",
	SemaNotOptional:           "Operand is not an optional",
	SemaNotIterable:           "Operand is not iterable",
	SemaOperandTypeMismatch:   "Operand types do not match",
	SemaNotAssignable:         "Value is not assignable",
	SemaNotCallable:           "Callee is not callable",
	SemaArgumentCountMismatch: "Argument count mismatch",
	SemaIllegalBreak:          "Break outside loop",
	SemaIllegalReturn:         "Illegal return",
	SemaReadOnlyViolation:     "Assignment to read-only entity",
	IOLoadFileError:           "I/O load file error",
	IODecodeError:             "CST decode error",
	IOSchemaMismatch:          "Unsupported CST schema version",
	ProjInvalidManifest:       "Invalid project manifest",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
