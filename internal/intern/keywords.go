package intern

// keywords lists the subset of c3 keywords the reference front end
// recognizes. A real front end would carry the full grammar's keyword
// set; this one covers module declarations, imports, function and
// variable declarations, control flow, and compile-time assertions —
// enough to drive the pipeline's six analysis stages end to end.
var keywords = map[string]struct{}{
	"module": {}, "import": {}, "fn": {}, "return": {},
	"var": {}, "let": {}, "const": {}, "if": {}, "else": {},
	"while": {}, "for": {}, "true": {}, "false": {}, "void": {},
	"int": {}, "bool": {}, "pub": {}, "struct": {}, "enum": {},
	"union": {}, "macro": {}, "ctassert": {},
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}
