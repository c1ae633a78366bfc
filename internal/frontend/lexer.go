// Package frontend implements a reference lexer, parser, and set of
// pipeline.StageRunner stage passes for a useful subset of .c3 — enough to
// drive the six-stage analysis pipeline end to end and reproduce the
// worked examples in spec.md §8. The full grammar (generics, contracts,
// attributes, async, pattern matching, ...) is out of scope: this package
// is the "external collaborator" the pipeline only depends on through its
// stage contract.
package frontend

import (
	"fmt"
	"strings"
	"unicode"

	"c3c/internal/intern"
	"c3c/internal/module"
)

// Token is one lexed token: its kind, its source-text payload, and the
// byte offset it started at (used to build spans once the file is known).
type Token struct {
	Kind   module.TokenKind
	Text   string
	Ident  intern.ID
	Int    int64
	Offset uint32
}

// Lexer tokenizes .c3 source text into the Token stream the parser
// consumes. It classifies identifiers via the shared intern.Interner so
// the token's Kind already reflects ident/const-ident/type-ident/keyword.
type Lexer struct {
	in      *intern.Interner
	src     []byte
	pos     int
	tokens  []Token
}

// NewLexer creates a Lexer over src using in for identifier interning.
func NewLexer(in *intern.Interner, src []byte) *Lexer {
	return &Lexer{in: in, src: src}
}

// Tokenize consumes the entire source and returns the resulting token
// stream, always ending in a TokEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	for {
		l.skipWhitespaceAndComments()
		if l.pos >= len(l.src) {
			l.tokens = append(l.tokens, Token{Kind: module.TokEOF, Offset: uint32(l.pos)})
			return l.tokens, nil
		}
		start := l.pos
		c := l.src[l.pos]
		switch {
		case isIdentStart(c):
			l.lexIdent(start)
		case c >= '0' && c <= '9':
			if err := l.lexNumber(start); err != nil {
				return nil, err
			}
		case c == '"':
			if err := l.lexString(start); err != nil {
				return nil, err
			}
		default:
			if err := l.lexPunct(start); err != nil {
				return nil, err
			}
		}
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.pos++
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isIdentCont(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c)) || (c >= '0' && c <= '9')
}

func (l *Lexer) lexIdent(start int) {
	for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
		l.pos++
	}
	text := string(l.src[start:l.pos])
	id := l.in.Intern(text)
	kind := classToTokenKind(l.in.Classify(id))
	l.tokens = append(l.tokens, Token{Kind: kind, Text: text, Ident: id, Offset: uint32(start)})
}

func classToTokenKind(c intern.Class) module.TokenKind {
	switch c {
	case intern.ClassKeyword:
		return module.TokKeyword
	case intern.ClassConstIdent:
		return module.TokConstIdent
	case intern.ClassTypeIdent:
		return module.TokTypeIdent
	default:
		return module.TokIdent
	}
}

func (l *Lexer) lexNumber(start int) error {
	for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
		l.pos++
	}
	text := string(l.src[start:l.pos])
	var value int64
	if _, err := fmt.Sscanf(text, "%d", &value); err != nil {
		return fmt.Errorf("frontend: bad number %q at offset %d: %w", text, start, err)
	}
	l.tokens = append(l.tokens, Token{Kind: module.TokIntLit, Text: text, Int: value, Offset: uint32(start)})
	return nil
}

func (l *Lexer) lexString(start int) error {
	l.pos++ // opening quote
	for l.pos < len(l.src) && l.src[l.pos] != '"' {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return fmt.Errorf("frontend: unterminated string starting at offset %d", start)
	}
	l.pos++ // closing quote
	text := string(l.src[start+1 : l.pos-1])
	l.tokens = append(l.tokens, Token{Kind: module.TokString, Text: text, Offset: uint32(start)})
	return nil
}

var punctuators = []string{
	"::", ":=", "==", "!=", "<=", ">=", "&&", "||",
	"(", ")", "{", "}", "[", "]", ";", ":", ",", ".",
	"=", "+", "-", "*", "/", "<", ">", "!",
}

func (l *Lexer) lexPunct(start int) error {
	rest := string(l.src[start:])
	for _, p := range punctuators {
		if strings.HasPrefix(rest, p) {
			l.pos += len(p)
			l.tokens = append(l.tokens, Token{Kind: module.TokPunct, Text: p, Offset: uint32(start)})
			return nil
		}
	}
	return fmt.Errorf("frontend: unknown character %q at offset %d", l.src[start], start)
}
