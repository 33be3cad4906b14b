// Package summary assembles and writes the summary manifest.
package summary

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jcdickinson/llmsgen/internal/config"
	"github.com/jcdickinson/llmsgen/internal/project"
	"github.com/jcdickinson/llmsgen/internal/render"
	"github.com/jcdickinson/llmsgen/internal/resolve"
	"github.com/jcdickinson/llmsgen/internal/sections"
	"github.com/jcdickinson/llmsgen/internal/symbols"
	"github.com/jcdickinson/llmsgen/internal/template"
	"golang.org/x/text/language"
)

// DefaultOutput is the manifest file name used when none is configured.
const DefaultOutput = "llms.txt"

// ErrUnresolved is returned in strict mode when any declaration reference
// fails to resolve.
var ErrUnresolved = errors.New("unresolved declaration references")

// Generator builds the manifest for one project.
type Generator struct {
	cfg   *config.Config
	model *project.Model
}

// New returns a Generator. model may be nil when the host has no symbol
// tree; every declaration then fails to resolve.
func New(cfg *config.Config, model *project.Model) *Generator {
	return &Generator{cfg: cfg, model: model}
}

// Resolver returns the reference resolver for the project model.
func (g *Generator) Resolver() *resolve.Resolver {
	tree := &symbols.Tree{}
	var router symbols.Router
	if g.model != nil {
		tree = g.model.Tree()
		router = g.model.Router()
	}
	return resolve.New(tree, router, g.cfg.BaseURL)
}

// DiscoveryConfig translates the docs and sections config.
func (g *Generator) DiscoveryConfig() sections.Config {
	tag, err := language.Parse(g.cfg.Docs.Language)
	if err != nil {
		tag = language.English
	}
	cfg := sections.Config{
		Sections:        make(map[string]sections.SectionConfig, len(g.cfg.Sections)),
		DefaultCategory: g.cfg.Docs.DefaultCategory,
		Aggregator:      g.cfg.Docs.Aggregator,
		Language:        tag,
	}
	for name, sc := range g.cfg.Sections {
		cfg.Sections[name] = sections.SectionConfig{DisplayName: sc.DisplayName, Order: sc.Order}
	}
	return cfg
}

// Sections discovers document sections from the project model and any
// configured docs directories. Document URLs are joined with the base URL.
func (g *Generator) Sections() []sections.Section {
	var sources []sections.Source
	if g.model != nil {
		sources = append(sources, g.model.Documents())
	}
	if len(g.cfg.Docs.Dirs) > 0 {
		sources = append(sources, sections.FileSource{
			Dirs:      g.cfg.Docs.Dirs,
			URLPrefix: g.cfg.Docs.URLPrefix,
		})
	}

	secs, err := sections.DiscoverFrom(g.DiscoveryConfig(), sources...)
	if err != nil {
		slog.Warn("document source skipped", "error", err)
	}
	for i := range secs {
		for j := range secs[i].Documents {
			doc := &secs[i].Documents[j]
			doc.URL = symbols.JoinURL(g.cfg.BaseURL, doc.URL)
		}
	}
	return secs
}

// Build assembles the content bundle. Outside strict mode it never fails.
func (g *Generator) Build() (*render.Bundle, error) {
	name := g.cfg.Header.Name
	var modelDescription string
	if g.model != nil {
		if name == "" {
			name = g.model.Name
		}
		modelDescription = g.model.Description
	}

	reqs := make([]resolve.DeclarationRequest, 0, len(g.cfg.Declarations))
	for _, d := range g.cfg.Declarations {
		reqs = append(reqs, resolve.DeclarationRequest{Ref: d.Ref, Label: d.Label, Description: d.Description})
	}
	decls, errs := g.Resolver().ResolveAll(reqs)
	if len(errs) > 0 && g.cfg.Strict {
		return nil, fmt.Errorf("%w: %w", ErrUnresolved, errors.Join(errs...))
	}

	return &render.Bundle{
		Header: render.Header{
			Name: name,
			Description: ResolveDescription(DescriptionSources{
				Configured: g.cfg.Header.Description,
				Model:      modelDescription,
				Manifest:   g.cfg.Manifest,
				Readme:     g.cfg.Readme,
			}),
			Features: g.cfg.Header.Features,
		},
		Sections:       g.Sections(),
		Declarations:   decls,
		QuickReference: g.cfg.QuickReference.Value,
	}, nil
}

// Render produces the manifest text, through the user template when one
// is configured.
func (g *Generator) Render(b *render.Bundle) string {
	if g.cfg.Template.Value != "" {
		return template.Apply(g.cfg.Template.Value, b)
	}
	return render.Full(b)
}

// Generate builds, renders and writes the manifest into outDir. It returns
// the written path, or "" when generation is disabled.
func (g *Generator) Generate(outDir string) (string, error) {
	if !g.cfg.Enable {
		slog.Info("manifest generation disabled")
		return "", nil
	}

	b, err := g.Build()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	name := g.cfg.Output
	if name == "" {
		name = DefaultOutput
	}
	out := filepath.Join(outDir, name)
	if err := os.WriteFile(out, []byte(g.Render(b)), 0644); err != nil {
		return "", fmt.Errorf("writing manifest: %w", err)
	}

	slog.Info("manifest written", "path", out, "sections", len(b.Sections), "declarations", len(b.Declarations))
	return out, nil
}
