package ast

// BasicType is a primitive type name (int, boolean, ...), optionally
// followed by array dimensions (tree.py: BasicType(Type), attrs=()).
type BasicType struct {
	Base
	Name       string
	Dimensions int
}

func (BasicType) typeNode() {}

// TypeArgument is one entry of a type-argument list: either a concrete
// Type, or a wildcard with an optional bound (tree.py's TypeArgument,
// attrs = ("type", "pattern_type")). PatternType is "?" for a plain "?",
// "extends" or "super" for a bounded wildcard, and empty for a concrete
// Type.
type TypeArgument struct {
	Base
	Type        TypeNode
	PatternType string
}

// ReferenceType is a (possibly generic, possibly nested) class/interface
// type name, optionally followed by array dimensions (tree.py:
// ReferenceType(Type), attrs = ("arguments", "sub_type")). Open Question
// (iii) (SPEC_FULL.md §4 / DESIGN.md): the parser sets Arguments to a
// non-nil empty slice rather than nil, so callers never need a nil check
// to distinguish "no type arguments" from "not yet populated". Dimensions
// is a count, 0 for a non-array type.
type ReferenceType struct {
	Base
	Name       string
	Arguments  []TypeArgument
	Dimensions int
	SubType    *ReferenceType // qualified nesting, e.g. Outer<T>.Inner
}

func (*ReferenceType) typeNode() {}

// DiamondType is a ReferenceType's "<>" empty-argument-list creator form
// (tree.py: DiamondType(Type), attrs = ("sub_type",)).
type DiamondType struct {
	Base
	Name string
}

func (*DiamondType) typeNode() {}

// TypeParameter is a single entry of a class/method/constructor's
// "<T extends Bound1 & Bound2>" declaration (tree.py's TypeParameter,
// attrs = ("name", "extends")).
type TypeParameter struct {
	Base
	Name    string
	Extends []TypeNode
}
