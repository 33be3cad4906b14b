package resolve

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jcdickinson/llmsgen/internal/symbols"
)

var (
	// ErrBadReference marks a reference string that does not follow the
	// "container!path" grammar.
	ErrBadReference = errors.New("unrecognized reference format")
	// ErrNotFound marks a well-formed reference with no matching node.
	ErrNotFound = errors.New("reference not found")
)

// DeclarationRequest asks for one API link in the manifest.
type DeclarationRequest struct {
	Ref         string
	Label       string
	Description string
}

// Declaration is a resolved API link.
type Declaration struct {
	Label       string
	Description string
	URL         string
}

// Reference is a parsed reference string.
type Reference struct {
	Container string
	Path      []string
}

// ParseReference splits "container!a.b" into its container and member path.
// "container!" yields an empty path.
func ParseReference(ref string) (Reference, error) {
	container, rest, ok := strings.Cut(ref, "!")
	if !ok || container == "" {
		return Reference{}, fmt.Errorf("%w: %q", ErrBadReference, ref)
	}
	r := Reference{Container: container}
	if rest == "" {
		return r, nil
	}
	for _, seg := range strings.Split(rest, ".") {
		if seg == "" {
			return Reference{}, fmt.Errorf("%w: %q", ErrBadReference, ref)
		}
		r.Path = append(r.Path, seg)
	}
	return r, nil
}

// ReferenceFor formats the reference string that resolves to n:
// "lib!" for a root-level node, "lib!Client.send" below it.
func ReferenceFor(n *symbols.Node) string {
	path := n.Path()
	return path[0] + "!" + strings.Join(path[1:], ".")
}

// Resolver turns references into URLs against a symbol tree.
type Resolver struct {
	Tree    *symbols.Tree
	Router  symbols.Router
	BaseURL string
}

// New returns a Resolver. A nil router selects the fallback kind mapping.
func New(tree *symbols.Tree, router symbols.Router, baseURL string) *Resolver {
	if router == nil {
		router = symbols.FallbackRouter{}
	}
	return &Resolver{Tree: tree, Router: router, BaseURL: baseURL}
}

// Lookup finds the node a reference names. Partial matches fail.
func (r *Resolver) Lookup(ref string) (*symbols.Node, error) {
	parsed, err := ParseReference(ref)
	if err != nil {
		return nil, err
	}
	node, ok := r.Tree.Root(parsed.Container)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	for _, seg := range parsed.Path {
		node, ok = node.Child(seg)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, ref)
		}
	}
	return node, nil
}

// Resolve returns the URL for ref joined with the base URL.
func (r *Resolver) Resolve(ref string) (string, error) {
	node, err := r.Lookup(ref)
	if err != nil {
		return "", err
	}
	return symbols.JoinURL(r.BaseURL, r.Router.URL(node)), nil
}

// ResolveAll resolves every request in order. Requests that fail are left
// out of the result, logged once each, and returned as errors so callers
// can decide whether to treat them as fatal.
func (r *Resolver) ResolveAll(reqs []DeclarationRequest) ([]Declaration, []error) {
	var (
		out  []Declaration
		errs []error
	)
	for _, req := range reqs {
		url, err := r.Resolve(req.Ref)
		if err != nil {
			slog.Warn("declaration reference not resolved", "ref", req.Ref, "error", err)
			errs = append(errs, err)
			continue
		}
		out = append(out, Declaration{
			Label:       req.Label,
			Description: req.Description,
			URL:         url,
		})
	}
	return out, errs
}
