package parser

import "github.com/sam2402/logicCW/internal/ast"

// cache is the process-wide map from input string to parsed AST, never
// evicted during a run, so the driver can call Parse, Lhs, Con, Rhs on the
// same string without re-parsing (spec.md §4.1, "Caching").
var cache = map[string]ast.Formula{}

// Parse returns the AST for input, using and populating the process-wide
// parse cache. The parser is total: malformed input yields ast.NotAFormula,
// never an error.
func Parse(input string) ast.Formula {
	if f, ok := cache[input]; ok {
		return f
	}
	firstOrder, ok := dispatch(input)
	var f ast.Formula
	if !ok {
		f = ast.NotAFormula{}
	} else {
		f = parseOne(input, firstOrder)
	}
	cache[input] = f
	return f
}

// Code returns the external parse classification code (0-8) for input.
func Code(input string) int {
	return Parse(input).ParseCode()
}

// Lhs returns the printed left-hand side of a binary-connective formula,
// or "" if input does not parse to one.
func Lhs(input string) string {
	if b, ok := Parse(input).(ast.Binary); ok {
		return b.Left.String()
	}
	return ""
}

// Con returns the printed connective symbol of a binary-connective
// formula, or "" if input does not parse to one.
func Con(input string) string {
	if b, ok := Parse(input).(ast.Binary); ok {
		return string(byte(b.Con))
	}
	return ""
}

// Rhs returns the printed right-hand side of a binary-connective formula,
// or "" if input does not parse to one.
func Rhs(input string) string {
	if b, ok := Parse(input).(ast.Binary); ok {
		return b.Right.String()
	}
	return ""
}

// ResetCache clears the process-wide parse cache. Exposed for tests that
// want independent runs; the driver never needs to call it within one
// process lifetime.
func ResetCache() {
	cache = map[string]ast.Formula{}
}
