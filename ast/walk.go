package ast

import "reflect"

// Inspect walks n and every descendant reachable through its fields,
// calling fn for each Node encountered (fn(n) first, for the root). If fn
// returns false for a node, Inspect does not descend into that node's
// fields. This mirrors original_source/javalang/ast.py's Node.children
// property plus visitor.py's generic_visit: the Python original discovers
// children by iterating each node's declared attrs and recursing into
// whichever of them are themselves Nodes, lists, or tuples. Go has no
// equivalent dynamic attribute list, so Inspect uses reflection over each
// struct's exported fields to get the same effect without a
// hand-maintained children() method on every node type in
// ast/{decl,stmt,expr,type}.go.
//
// Fields embedded anonymously (Base, Documented, DeclCommon, StmtCommon,
// PrimaryCommon, TypeDeclCommon, InvocationCommon, CreatorCommon) happen
// to implement Node themselves, since they carry Base; Inspect never calls
// fn for them directly, only flattens through to their own fields, so fn
// only ever sees the concrete node types declared across the ast package.
func Inspect(n Node, fn func(Node) bool) {
	walk(reflect.ValueOf(n), false, fn)
}

func walk(v reflect.Value, anonymous bool, fn func(Node) bool) {
	if !v.IsValid() {
		return
	}
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		walk(v.Elem(), anonymous, fn)
		return
	}
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return
	}

	cont := true
	if !anonymous {
		if node, ok := tryNode(v); ok {
			cont = fn(node)
		}
	}
	if !cont {
		return
	}

	switch v.Kind() {
	case reflect.Ptr:
		walkFields(v.Elem(), fn)
	case reflect.Struct:
		walkFields(v, fn)
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walk(v.Index(i), false, fn)
		}
	}
}

func walkFields(v reflect.Value, fn func(Node) bool) {
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		walk(v.Field(i), field.Anonymous, fn)
	}
}

var nodeType = reflect.TypeOf((*Node)(nil)).Elem()

func tryNode(v reflect.Value) (Node, bool) {
	if !v.Type().Implements(nodeType) || !v.CanInterface() {
		return nil, false
	}
	n, ok := v.Interface().(Node)
	return n, ok
}
