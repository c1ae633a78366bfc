package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntax
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynExpectSemicolon Code = 2002
	SynExpectIdentifier Code = 2003
	SynExpectModuleName Code = 2004
	SynUnclosedBrace   Code = 2005
	SynUnclosedParen   Code = 2006

	// Semantic / pipeline stages
	SemaInfo                  Code = 3000
	SemaError                 Code = 3001
	SemaDuplicateSymbol       Code = 3002
	SemaAmbiguousSymbol       Code = 3003
	SemaUnresolvedSymbol      Code = 3004
	SemaUnresolvedImport      Code = 3005
	SemaModuleMemberNotFound  Code = 3006
	SemaModuleMemberNotPublic Code = 3007
	SemaPoisonedDeclaration   Code = 3008
	SemaCtAssertFailed        Code = 3009
	SemaCtAssertNotConstant   Code = 3010
	SemaMissingReturn         Code = 3011
	SemaTypeMismatch          Code = 3012
	SemaEntrypointNotFound    Code = 3013
	SemaMultipleEntrypoints   Code = 3014

	// I/O and source loading
	IOLoadFileError     Code = 4001
	IOInvalidSourceName Code = 4002
	IONoInputFiles      Code = 4003
	IOMissingStdlib     Code = 4004

	// Compiler-internal limits
	ScratchBufferOverflow Code = 4500

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:               "Unknown error",
	LexInfo:                   "Lexical information",
	LexUnknownChar:            "Unknown character",
	LexUnterminatedString:     "Unterminated string",
	LexBadNumber:              "Bad number",
	SynInfo:                   "Syntax information",
	SynUnexpectedToken:        "Unexpected token",
	SynExpectSemicolon:        "Expect semicolon",
	SynExpectIdentifier:       "Expect identifier",
	SynExpectModuleName:       "Expect module name",
	SynUnclosedBrace:          "Unclosed brace",
	SynUnclosedParen:          "Unclosed parenthesis",
	SemaInfo:                  "Semantic information",
	SemaError:                 "Semantic error",
	SemaDuplicateSymbol:       "Duplicate symbol",
	SemaAmbiguousSymbol:       "Ambiguous symbol reference",
	SemaUnresolvedSymbol:      "Unresolved symbol",
	SemaUnresolvedImport:      "Unresolved import",
	SemaModuleMemberNotFound:  "Module member not found",
	SemaModuleMemberNotPublic: "Module member is not public",
	SemaPoisonedDeclaration:   "Declaration poisoned by a prior collision",
	SemaCtAssertFailed:        "Compile-time assertion failed",
	SemaCtAssertNotConstant:   "Compile-time assertion condition is not constant",
	SemaMissingReturn:         "Missing return in function",
	SemaTypeMismatch:          "Type mismatch",
	SemaEntrypointNotFound:    "Entrypoint not found",
	SemaMultipleEntrypoints:   "Multiple entrypoints",
	IOLoadFileError:           "I/O load file error",
	IOInvalidSourceName:       "Invalid source name",
	IONoInputFiles:            "No input files",
	IOMissingStdlib:           "Missing standard library module",
	ScratchBufferOverflow:     "Scratch buffer overflow",
	ObsInfo:                   "Observability information",
	ObsTimings:                "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 4500:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 4500 && ic < 5000:
		return fmt.Sprintf("LIM%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
