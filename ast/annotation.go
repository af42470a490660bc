package ast

// Annotation is an "@Name(...)" usage. Element holds its contents: nil for
// a MarkerAnnotation ("@Override"), a single Expr for a
// SingleElementAnnotation ("@SuppressWarnings(\"x\")"), or a
// []ElementValuePair for a NormalAnnotation ("@Foo(a = 1, b = 2)"). The
// three tree.py subclasses (NormalAnnotation/MarkerAnnotation/
// SingleElementAnnotation) carry no attrs of their own, so this package
// keeps them as one struct disambiguated by the shape of Element, the way
// package unparser needs to render them back.
type Annotation struct {
	Base
	Name    string
	Element interface{}
}

func (Annotation) exprNode() {}

// ElementValuePair is one "name = value" entry inside a NormalAnnotation.
type ElementValuePair struct {
	Base
	Name  string
	Value Expr
}

// ElementValueArrayInitializer is the "{v1, v2, ...}" form an annotation
// element value may take. Open Question (i) (SPEC_FULL.md §4 / DESIGN.md):
// Values always holds every element of the initializer list, never just
// the last one.
type ElementValueArrayInitializer struct {
	Base
	Values []Expr
}

func (ElementValueArrayInitializer) exprNode() {}
