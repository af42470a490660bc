package ast

// CompilationUnit is the root of a parsed source file (tree.py:
// CompilationUnit, attrs = ("package", "imports", "types")).
type CompilationUnit struct {
	Base
	Package *PackageDeclaration
	Imports []Import
	Types   []Decl
}

// Import is a single "import ..." declaration (tree.py: Import,
// attrs = ("path", "static", "wildcard")).
type Import struct {
	Base
	Path     string
	Static   bool
	Wildcard bool
}

// PackageDeclaration is the "package foo.bar;" declaration at the top of a
// file (tree.py: PackageDeclaration(NonEmptyDeclaration), attrs = ("name",)).
type PackageDeclaration struct {
	DeclCommon
	Name string
}

// EmptyDeclaration is a lone ";" where a declaration is expected (tree.py:
// EmptyDeclaration(Declaration), attrs = ()).
type EmptyDeclaration struct {
	Documented
}

func (EmptyDeclaration) declNode() {}

// TypeDeclCommon carries the fields shared by every top-level or nested
// type declaration (tree.py: TypeDeclaration(NonEmptyDeclaration),
// attrs = ("name", "body")).
type TypeDeclCommon struct {
	DeclCommon
	Name string
	Body []Decl
}

// Fields returns the FieldDeclaration members of body, mirroring tree.py's
// TypeDeclaration.fields property.
func Fields(body []Decl) []*FieldDeclaration {
	var out []*FieldDeclaration
	for _, d := range body {
		if f, ok := d.(*FieldDeclaration); ok {
			out = append(out, f)
		}
	}
	return out
}

// Methods returns the MethodDeclaration members of body, mirroring
// tree.py's TypeDeclaration.methods property.
func Methods(body []Decl) []*MethodDeclaration {
	var out []*MethodDeclaration
	for _, d := range body {
		if m, ok := d.(*MethodDeclaration); ok {
			out = append(out, m)
		}
	}
	return out
}

// Constructors returns the ConstructorDeclaration members of body,
// mirroring tree.py's TypeDeclaration.constructors property.
func Constructors(body []Decl) []*ConstructorDeclaration {
	var out []*ConstructorDeclaration
	for _, d := range body {
		if c, ok := d.(*ConstructorDeclaration); ok {
			out = append(out, c)
		}
	}
	return out
}

// ClassDeclaration is a top-level or nested "class" declaration (tree.py:
// ClassDeclaration(TypeDeclaration),
// attrs = ("type_parameters", "extends", "implements")).
type ClassDeclaration struct {
	TypeDeclCommon
	TypeParameters []TypeParameter
	Extends        *ReferenceType
	Implements     []*ReferenceType
}

// InterfaceDeclaration is an "interface" declaration (tree.py:
// InterfaceDeclaration(TypeDeclaration),
// attrs = ("type_parameters", "extends")). Extends may list multiple
// interfaces, unlike a class's single superclass.
type InterfaceDeclaration struct {
	TypeDeclCommon
	TypeParameters []TypeParameter
	Extends        []*ReferenceType
}

// EnumDeclaration is an "enum" declaration (tree.py:
// EnumDeclaration(TypeDeclaration), attrs = ("implements",)). Constants
// holds the enum's constants in source order; Body holds only the
// class-body-style declarations after the optional ";" separator.
type EnumDeclaration struct {
	TypeDeclCommon
	Implements []*ReferenceType
	Constants  []*EnumConstantDeclaration
}

// AnnotationDeclaration is an "@interface" declaration (tree.py:
// AnnotationDeclaration(TypeDeclaration), attrs = ()).
type AnnotationDeclaration struct {
	TypeDeclCommon
}

// StaticInitializer is a "static { ... }" block in a class body (tree.py:
// StaticInitializer(NonEmptyDeclaration), attrs = ("block",)).
type StaticInitializer struct {
	DeclCommon
	Block []Stmt
}

// InstanceInitializer is an unlabeled "{ ... }" block in a class body
// (tree.py: InstanceInitializer(NonEmptyDeclaration), attrs = ("block",)).
type InstanceInitializer struct {
	DeclCommon
	Block []Stmt
}

// MethodDeclaration is a method member (tree.py: MethodDeclaration(Member),
// attrs = ("type_parameters", "return_type", "name", "parameters", "throws",
// "body")). ReturnType is nil for "void". Any trailing "[]" written after
// the formal-parameter list ("int foo()[]") is folded into ReturnType's own
// Dimensions. Body is nil for an abstract/interface method with no body.
type MethodDeclaration struct {
	DeclCommon
	TypeParameters []TypeParameter
	ReturnType     TypeNode
	Name           string
	Parameters     []*FormalParameter
	Throws         []*ReferenceType
	Body           []Stmt
}

func (*MethodDeclaration) declNode() {}

// FieldDeclaration is a field member (tree.py: FieldDeclaration(Member),
// attrs = ("type", "declarators")).
type FieldDeclaration struct {
	DeclCommon
	Type        TypeNode
	Declarators []*VariableDeclarator
}

func (*FieldDeclaration) declNode() {}

// ConstructorDeclaration is a constructor member (tree.py:
// ConstructorDeclaration(NonEmptyDeclaration),
// attrs = ("type_parameters", "name", "parameters", "throws", "body")).
type ConstructorDeclaration struct {
	DeclCommon
	TypeParameters []TypeParameter
	Name           string
	Parameters     []*FormalParameter
	Throws         []*ReferenceType
	Body           []Stmt
}

func (*ConstructorDeclaration) declNode() {}

// VariableDeclarator is one "name[] = initializer" entry of a field or
// local variable declaration (tree.py: VariableDeclarator,
// attrs = ("name", "dimensions", "initializer")).
type VariableDeclarator struct {
	Base
	Name        string
	Dimensions  int
	Initializer Node // Expr or *ArrayInitializer, or nil
}

// FormalParameter is a single method/constructor/lambda parameter (tree.py:
// FormalParameter(NonEmptyDeclaration), attrs = ("type", "name",
// "varargs")). Any trailing "[]" on the parameter itself (as opposed to on
// its type) is folded into Type's own Dimensions, matching how a
// declarator-style array suffix is handled throughout the grammar.
type FormalParameter struct {
	DeclCommon
	Type    TypeNode
	Name    string
	Varargs bool
}

func (*FormalParameter) declNode() {}

// ArrayInitializer is a "{ v1, v2, ... }" initializer, used both for array
// variable initializers and nested inside array creators (tree.py:
// ArrayInitializer, attrs = ("initializers", "comma")). Comma records
// whether a trailing comma followed the last element, since javac accepts
// it; the unparser reproduces it when present.
type ArrayInitializer struct {
	Base
	Initializers []Node // Expr or *ArrayInitializer
	Comma        bool
}

// TryResource is one "Type name = value" entry of a try-with-resources
// header (tree.py: TryResource(NonEmptyDeclaration),
// attrs = ("type", "name", "value")).
type TryResource struct {
	DeclCommon
	Type  TypeNode
	Name  string
	Value Expr
}

func (*TryResource) declNode() {}

// CatchClauseParameter is a catch clause's "Type1 | Type2 name" parameter
// (tree.py: CatchClauseParameter(NonEmptyDeclaration),
// attrs = ("types", "name")).
type CatchClauseParameter struct {
	DeclCommon
	Types []*ReferenceType
	Name  string
}

func (*CatchClauseParameter) declNode() {}

// EnumConstantDeclaration is a single enum constant, with optional
// constructor arguments and an optional anonymous-class body (tree.py:
// EnumConstantDeclaration(NonEmptyDeclaration),
// attrs = ("name", "arguments", "body")).
type EnumConstantDeclaration struct {
	DeclCommon
	Name      string
	Arguments []Expr
	Body      []Decl
}

func (*EnumConstantDeclaration) declNode() {}

// AnnotationMethod is an element declaration inside an "@interface" body
// (tree.py: AnnotationMethod(NonEmptyDeclaration),
// attrs = ("name", "return_type", "dimensions", "default")).
type AnnotationMethod struct {
	DeclCommon
	Name       string
	ReturnType TypeNode
	Dimensions int
	Default    Expr
}

func (*AnnotationMethod) declNode() {}
