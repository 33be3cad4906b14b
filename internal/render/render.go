// Package render formats a content bundle as the markdown summary manifest.
package render

import (
	"fmt"
	"strings"

	"github.com/jcdickinson/llmsgen/internal/resolve"
	"github.com/jcdickinson/llmsgen/internal/sections"
)

// QuickReferenceLang is the fence tag used for the quick reference block.
const QuickReferenceLang = "typescript"

// Header is the manifest's title block.
type Header struct {
	Name        string
	Description string
	Features    []string
}

// Bundle is everything that goes into one manifest.
type Bundle struct {
	Header         Header
	Sections       []sections.Section
	Declarations   []resolve.Declaration
	QuickReference string
}

// FindSection returns the section whose name or display name equals name.
func (b *Bundle) FindSection(name string) (sections.Section, bool) {
	for _, s := range b.Sections {
		if s.Name == name || s.DisplayName == name {
			return s, true
		}
	}
	return sections.Section{}, false
}

// RenderHeader renders "# name", the description quote and the feature list.
func RenderHeader(h Header) string {
	lines := []string{"# " + h.Name, ""}
	if h.Description != "" {
		lines = append(lines, "> "+h.Description, "")
	}
	if len(h.Features) > 0 {
		for _, f := range h.Features {
			lines = append(lines, "- "+f)
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// RenderSection renders one section as a heading and a link list.
func RenderSection(s sections.Section) string {
	lines := []string{"## " + s.DisplayName, ""}
	for _, d := range s.Documents {
		lines = append(lines, fmt.Sprintf("- [%s](%s)", d.Title, d.URL))
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// RenderSections renders every section, separated by a blank line.
func RenderSections(secs []sections.Section) string {
	parts := make([]string, 0, len(secs))
	for _, s := range secs {
		parts = append(parts, RenderSection(s))
	}
	return strings.Join(parts, "\n\n")
}

// RenderDeclarations renders the API list, or "" when there is none.
func RenderDeclarations(decls []resolve.Declaration) string {
	if len(decls) == 0 {
		return ""
	}
	lines := []string{"## API", ""}
	for _, d := range decls {
		line := fmt.Sprintf("- [%s](%s)", d.Label, d.URL)
		if d.Description != "" {
			line += ": " + d.Description
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderQuickReference renders the fenced example block, or "" when text is blank.
func RenderQuickReference(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.Join([]string{
		"## Quick Reference",
		"",
		"```" + QuickReferenceLang,
		text,
		"```",
	}, "\n")
}

// Full renders the default manifest layout: header, sections, API list,
// quick reference, each block separated by one blank line.
func Full(b *Bundle) string {
	blocks := []string{RenderHeader(b.Header)}
	for _, s := range b.Sections {
		blocks = append(blocks, RenderSection(s))
	}
	blocks = append(blocks, RenderDeclarations(b.Declarations), RenderQuickReference(b.QuickReference))
	return joinBlocks(blocks) + "\n"
}

func joinBlocks(blocks []string) string {
	kept := blocks[:0:0]
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}
