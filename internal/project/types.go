package project

import "encoding/json"

// rawModel is the on-disk project model written by the host generator.
type rawModel struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Children    []rawNode         `json:"children"`
	Documents   []rawDocument     `json:"documents"`
	URLs        map[string]string `json:"urls"`
}

// rawNode is one symbol in the model.
type rawNode struct {
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Children []rawNode `json:"children"`
}

// rawDocument is a document the host already parsed. Frontmatter is kept
// for hosts that pass the header through instead of lifting the fields.
type rawDocument struct {
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	URL         string          `json:"url"`
	Source      string          `json:"source"`
	Frontmatter json.RawMessage `json:"frontmatter"`
}
