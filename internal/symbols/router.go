package symbols

import "strings"

// Router maps a node to its output-relative URL.
type Router interface {
	URL(n *Node) string
}

// kindCategories is the fallback URL directory for each kind.
var kindCategories = map[Kind]string{
	KindFunction:      "functions",
	KindMethod:        "functions",
	KindConstructor:   "functions",
	KindAccessor:      "functions",
	KindSignature:     "functions",
	KindClass:         "classes",
	KindVariable:      "variables",
	KindProperty:      "variables",
	KindReexport:      "variables",
	KindTypeAlias:     "types",
	KindTypeLiteral:   "types",
	KindTypeParameter: "types",
	KindInterface:     "interfaces",
	KindEnum:          "enums",
	KindEnumMember:    "enums",
	KindModule:        "modules",
	KindNamespace:     "namespaces",
}

// category returns the URL directory used for k, "variables" when k has none.
func category(k Kind) string {
	if c, ok := kindCategories[k]; ok {
		return c
	}
	return "variables"
}

var nameReplacer = strings.NewReplacer("/", "_", "@", "_")

// FallbackRouter synthesizes "<category>/<full.name>.html" URLs when the
// host has no routing table.
type FallbackRouter struct{}

func (FallbackRouter) URL(n *Node) string {
	path := n.Path()
	for i, p := range path {
		path[i] = nameReplacer.Replace(p)
	}
	return category(n.Kind) + "/" + strings.Join(path, ".") + ".html"
}

// TableRouter looks URLs up in the host's routing table, keyed by full
// dotted name. Nodes missing from the table are routed by Fallback.
type TableRouter struct {
	Table    map[string]string
	Fallback Router
}

func (r TableRouter) URL(n *Node) string {
	if u, ok := r.Table[n.FullName()]; ok {
		return u
	}
	if r.Fallback == nil {
		return FallbackRouter{}.URL(n)
	}
	return r.Fallback.URL(n)
}

// NewRouter returns a TableRouter when table has entries, else a FallbackRouter.
func NewRouter(table map[string]string) Router {
	if len(table) == 0 {
		return FallbackRouter{}
	}
	return TableRouter{Table: table, Fallback: FallbackRouter{}}
}

// JoinURL joins base and path with exactly one slash. An empty base returns
// path unchanged.
func JoinURL(base, path string) string {
	if base == "" {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
