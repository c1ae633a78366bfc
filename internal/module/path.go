package module

import (
	"c3c/internal/intern"
	"c3c/internal/source"
)

// Path is a module name as it appears at an import or module-declaration
// site: the interned dotted name plus the span it was written at.
type Path struct {
	Name   intern.ID
	Span   source.Span
	Length int // number of dotted segments
}
