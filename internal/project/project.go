// Package project loads the host's documentation project model.
package project

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcdickinson/llmsgen/internal/sections"
	"github.com/jcdickinson/llmsgen/internal/symbols"
	"github.com/klauspost/compress/zstd"
)

// Model is a loaded project.
type Model struct {
	Name        string
	Description string

	tree      *symbols.Tree
	urls      map[string]string
	documents []sections.Document
}

// Tree returns the symbol tree.
func (m *Model) Tree() *symbols.Tree { return m.tree }

// Router returns the table router when the model carries URLs, else the
// fallback kind mapping.
func (m *Model) Router() symbols.Router { return symbols.NewRouter(m.urls) }

// Documents exposes the model's documents as a discovery source.
func (m *Model) Documents() sections.ModelSource { return sections.ModelSource(m.documents) }

// Load reads a project model from path. Files ending in .zst are
// zstd-compressed JSON.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening project model: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading project model %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes project model JSON.
func Parse(data []byte) (*Model, error) {
	var raw rawModel
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling project model: %w", err)
	}

	roots := make([]*symbols.Node, 0, len(raw.Children))
	for _, c := range raw.Children {
		roots = append(roots, convertNode(c))
	}

	docs := make([]sections.Document, 0, len(raw.Documents))
	for _, d := range raw.Documents {
		docs = append(docs, convertDocument(d))
	}

	return &Model{
		Name:        raw.Name,
		Description: raw.Description,
		tree:        symbols.NewTree(roots...),
		urls:        raw.URLs,
		documents:   docs,
	}, nil
}

func convertNode(n rawNode) *symbols.Node {
	node := &symbols.Node{Name: n.Name, Kind: symbols.ParseKind(n.Kind)}
	for _, c := range n.Children {
		node.Children = append(node.Children, convertNode(c))
	}
	return node
}

// convertDocument lifts title and category out of the passed-through
// frontmatter when the host did not set them directly.
func convertDocument(d rawDocument) sections.Document {
	doc := sections.Document{
		Title:    d.Title,
		Category: d.Category,
		URL:      d.URL,
		Source:   d.Source,
	}
	if len(d.Frontmatter) == 0 || (doc.Title != "" && doc.Category != "") {
		return doc
	}
	var fm map[string]any
	if err := json.Unmarshal(d.Frontmatter, &fm); err != nil {
		return doc
	}
	if s, ok := fm["title"].(string); ok && doc.Title == "" {
		doc.Title = strings.TrimSpace(s)
	}
	if s, ok := fm["category"].(string); ok && doc.Category == "" {
		doc.Category = strings.TrimSpace(s)
	}
	return doc
}
