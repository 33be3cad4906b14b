package symbols

import "strings"

// Kind classifies a symbol node. Values are stable strings so that project
// models stay readable and do not depend on any upstream numbering.
type Kind string

const (
	KindModule        Kind = "module"
	KindNamespace     Kind = "namespace"
	KindClass         Kind = "class"
	KindInterface     Kind = "interface"
	KindFunction      Kind = "function"
	KindMethod        Kind = "method"
	KindConstructor   Kind = "constructor"
	KindAccessor      Kind = "accessor"
	KindSignature     Kind = "signature"
	KindVariable      Kind = "variable"
	KindProperty      Kind = "property"
	KindReexport      Kind = "reexport"
	KindTypeAlias     Kind = "type-alias"
	KindTypeLiteral   Kind = "type-literal"
	KindTypeParameter Kind = "type-parameter"
	KindEnum          Kind = "enum"
	KindEnumMember    Kind = "enum-member"
	KindOther         Kind = "other"
)

var knownKinds = map[Kind]bool{
	KindModule: true, KindNamespace: true, KindClass: true, KindInterface: true,
	KindFunction: true, KindMethod: true, KindConstructor: true, KindAccessor: true,
	KindSignature: true, KindVariable: true, KindProperty: true, KindReexport: true,
	KindTypeAlias: true, KindTypeLiteral: true, KindTypeParameter: true,
	KindEnum: true, KindEnumMember: true, KindOther: true,
}

// ParseKind maps a kind string to a Kind. Unknown strings yield KindOther.
func ParseKind(s string) Kind {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if knownKinds[k] {
		return k
	}
	return KindOther
}

// Node is a named member of the symbol tree.
type Node struct {
	Name     string
	Kind     Kind
	Children []*Node

	parent *Node
}

// Child returns the direct child with the given name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Path returns the chain of names from the root-level ancestor down to n.
func (n *Node) Path() []string {
	var names []string
	for cur := n; cur != nil; cur = cur.parent {
		names = append(names, cur.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// FullName is Path joined with dots, e.g. "lib.Client.send".
func (n *Node) FullName() string {
	return strings.Join(n.Path(), ".")
}

// Tree holds the root-level nodes of a project.
type Tree struct {
	Roots []*Node
}

// NewTree links parent pointers below roots and returns the tree.
func NewTree(roots ...*Node) *Tree {
	for _, r := range roots {
		r.parent = nil
		link(r)
	}
	return &Tree{Roots: roots}
}

func link(n *Node) {
	for _, c := range n.Children {
		c.parent = n
		link(c)
	}
}

// Root returns the root-level node with the given name.
func (t *Tree) Root(name string) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	for _, r := range t.Roots {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// Walk visits every node depth-first in declaration order.
func (t *Tree) Walk(fn func(*Node)) {
	if t == nil {
		return
	}
	var visit func(*Node)
	visit = func(n *Node) {
		fn(n)
		for _, c := range n.Children {
			visit(c)
		}
	}
	for _, r := range t.Roots {
		visit(r)
	}
}
