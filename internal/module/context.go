package module

import (
	"c3c/internal/arena"
	"c3c/internal/source"
)

// Context is the per-source-file parse result: the set of imports and
// top-level declarations the parser produced for one file. It becomes
// immutable once the parser returns it.
type Context struct {
	File          source.FileID
	CurrentModule Path
	Imports       []Path
	Declarations  []arena.Index // Decl arena indices
}
