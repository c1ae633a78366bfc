// Package intern hash-conses strings into a canonical, pointer-comparable
// form and classifies each interned symbol's syntactic shape the way the
// lexer needs it classified (identifier, const-identifier, type-identifier,
// keyword).
package intern

import "sync"

// ID identifies an interned string. Two IDs are equal iff the underlying
// strings were interned through the same Interner and are byte-identical.
type ID uint32

// NoID is the sentinel "no string" value; index 0 is reserved for it.
const NoID ID = 0

// Class classifies the syntactic shape of an interned symbol.
type Class uint8

const (
	ClassIdent Class = iota
	ClassConstIdent
	ClassTypeIdent
	ClassKeyword
)

func (c Class) String() string {
	switch c {
	case ClassIdent:
		return "ident"
	case ClassConstIdent:
		return "const_ident"
	case ClassTypeIdent:
		return "type_ident"
	case ClassKeyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// Interner hash-conses strings behind a mutex, returning a canonical ID.
// Equality of two IDs is equality of their source strings by construction —
// the ID itself stands in for the pointer-identity comparison the spec
// describes, since Go strings interned once are never copied again.
type Interner struct {
	mu      sync.RWMutex
	byID    []string
	index   map[string]ID
	classes []Class
}

// New creates an Interner with the sentinel empty string pre-reserved at ID 0.
func New() *Interner {
	return &Interner{
		byID:    []string{""},
		index:   map[string]ID{"": NoID},
		classes: []Class{ClassIdent},
	}
}

// Intern inserts s if new and returns its canonical ID, classified by shape.
func (in *Interner) Intern(s string) ID {
	in.mu.RLock()
	if id, ok := in.index[s]; ok {
		in.mu.RUnlock()
		return id
	}
	in.mu.RUnlock()

	cpy := string([]byte(s))

	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[cpy]; ok {
		return id
	}
	id := ID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.classes = append(in.classes, classify(cpy))
	in.index[cpy] = id
	return id
}

// Lookup returns the string for id, if valid.
func (in *Interner) Lookup(id ID) (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup panics if id is not valid.
func (in *Interner) MustLookup(id ID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("intern: invalid ID")
	}
	return s
}

// Classify returns the token-type classification computed at intern time.
func (in *Interner) Classify(id ID) Class {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(id) >= len(in.classes) {
		return ClassIdent
	}
	return in.classes[id]
}

// Len returns the number of distinct interned strings, including the sentinel.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.byID)
}

// classify implements the syntactic-shape rules: a keyword match wins,
// then an all-uppercase run means const-identifier, then a leading
// uppercase letter (with at least one lowercase elsewhere) means
// type-identifier, and anything else is a plain identifier.
func classify(s string) Class {
	if s == "" {
		return ClassIdent
	}
	if IsKeyword(s) {
		return ClassKeyword
	}
	first := rune(s[0])
	if first < 'A' || first > 'Z' {
		return ClassIdent
	}
	hasLower := false
	allUpperOrDigitOrUnderscore := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
			allUpperOrDigitOrUnderscore = false
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			// stays within all-upper shape
		default:
			allUpperOrDigitOrUnderscore = false
		}
	}
	if allUpperOrDigitOrUnderscore && !hasLower {
		return ClassConstIdent
	}
	return ClassTypeIdent
}
