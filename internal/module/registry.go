package module

import (
	"c3c/internal/intern"
	"c3c/internal/symtab"
)

// poisoned is the sentinel stored in global_symbols / qualified_symbols
// when two or more public declarations collide under the same name.
type poisoned struct{}

var poisonMark = poisoned{}

// LookupStatus classifies the result of a global or qualified lookup.
type LookupStatus uint8

const (
	LookupNotFound LookupStatus = iota
	LookupUnique
	LookupAmbiguous
)

// RegisterPublicSymbol implements spec.md §4.5: insert decl into the
// unqualified global_symbols map (poisoning on collision), then into the
// per-module qualified_symbols sub-map (poisoning there too).
func (c *Compiler) RegisterPublicSymbol(decl *Decl) {
	if _, had := c.GlobalSymbols.Get(decl.Name); had {
		c.GlobalSymbols.Set(decl.Name, poisonMark)
	} else {
		c.GlobalSymbols.Set(decl.Name, decl)
	}

	sub, ok := c.QualifiedSymbols.Get(decl.ModuleName)
	var subTable *symtab.Table
	if !ok {
		subTable = symtab.New(4)
		c.QualifiedSymbols.Set(decl.ModuleName, subTable)
	} else {
		subTable = sub.(*symtab.Table)
	}
	if _, had := subTable.Get(decl.Name); had {
		subTable.Set(decl.Name, poisonMark)
	} else {
		subTable.Set(decl.Name, decl)
	}
}

// LookupGlobal resolves an unqualified name against global_symbols.
func (c *Compiler) LookupGlobal(name intern.ID) (*Decl, LookupStatus) {
	v, ok := c.GlobalSymbols.Get(name)
	if !ok {
		return nil, LookupNotFound
	}
	if _, isPoisoned := v.(poisoned); isPoisoned {
		return nil, LookupAmbiguous
	}
	return v.(*Decl), LookupUnique
}

// LookupQualified resolves module_name::name against qualified_symbols.
func (c *Compiler) LookupQualified(moduleName, name intern.ID) (*Decl, LookupStatus) {
	sub, ok := c.QualifiedSymbols.Get(moduleName)
	if !ok {
		return nil, LookupNotFound
	}
	v, ok := sub.(*symtab.Table).Get(name)
	if !ok {
		return nil, LookupNotFound
	}
	if _, isPoisoned := v.(poisoned); isPoisoned {
		return nil, LookupAmbiguous
	}
	return v.(*Decl), LookupUnique
}
