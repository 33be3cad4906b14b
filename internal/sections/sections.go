package sections

import (
	"errors"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	// DefaultCategory collects documents that carry no category.
	DefaultCategory = "Documentation"
	// DefaultAggregator is the base name of the page that indexes every
	// document; it never becomes a section member.
	DefaultAggregator = "index"
	// autoOrderStart seeds the order of unconfigured sections so they sort
	// after every configured one.
	autoOrderStart = 1000
)

// Document is one discovered document.
type Document struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	URL      string `json:"url"`
	// Source is the file the document came from, used for the aggregator check.
	Source string `json:"source,omitempty"`
}

// Section is an ordered group of documents sharing a category.
type Section struct {
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	Order       int        `json:"order"`
	Documents   []Document `json:"documents"`
}

// SectionConfig overrides how one category is presented.
type SectionConfig struct {
	DisplayName string
	Order       *int
}

// Config controls discovery.
type Config struct {
	Sections        map[string]SectionConfig
	DefaultCategory string
	Aggregator      string
	// Language selects the collation used for title sorting.
	Language language.Tag
}

// Source yields documents for discovery.
type Source interface {
	Documents() ([]Document, error)
}

// Discover groups docs into sections.
//
// Documents without a title are dropped, as is the aggregator page.
// Documents without a category go to cfg.DefaultCategory.
func Discover(docs []Document, cfg Config) []Section {
	defaultCategory := cfg.DefaultCategory
	if defaultCategory == "" {
		defaultCategory = DefaultCategory
	}
	aggregator := cfg.Aggregator
	if aggregator == "" {
		aggregator = DefaultAggregator
	}

	byName := make(map[string]*Section)
	var order []string
	nextAuto := autoOrderStart

	for _, doc := range docs {
		if doc.Title == "" || isAggregator(doc.Source, aggregator) {
			continue
		}
		if doc.Category == "" {
			doc.Category = defaultCategory
		}

		sec, ok := byName[doc.Category]
		if !ok {
			sec = &Section{Name: doc.Category, DisplayName: doc.Category}
			sc := lookupSection(cfg.Sections, doc.Category)
			if sc.DisplayName != "" {
				sec.DisplayName = sc.DisplayName
			}
			if sc.Order != nil {
				sec.Order = *sc.Order
			} else {
				sec.Order = nextAuto
				nextAuto++
			}
			byName[doc.Category] = sec
			order = append(order, doc.Category)
		}
		sec.Documents = append(sec.Documents, doc)
	}

	tag := cfg.Language
	if tag == language.Und {
		tag = language.English
	}
	col := collate.New(tag)

	out := make([]Section, 0, len(order))
	for _, name := range order {
		sec := byName[name]
		sort.SliceStable(sec.Documents, func(i, j int) bool {
			return col.CompareString(sec.Documents[i].Title, sec.Documents[j].Title) < 0
		})
		out = append(out, *sec)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// DiscoverFrom collects documents from every source, then calls Discover.
// Documents a source returns alongside an error are kept; source errors
// are joined and returned with the sections.
func DiscoverFrom(cfg Config, sources ...Source) ([]Section, error) {
	var (
		docs []Document
		errs []error
	)
	for _, src := range sources {
		d, err := src.Documents()
		if err != nil {
			errs = append(errs, err)
		}
		docs = append(docs, d...)
	}
	return Discover(docs, cfg), errors.Join(errs...)
}

// lookupSection prefers an exact key and falls back to a case-insensitive
// match, since config loaders may lowercase map keys.
func lookupSection(m map[string]SectionConfig, name string) SectionConfig {
	if sc, ok := m[name]; ok {
		return sc
	}
	for k, sc := range m {
		if strings.EqualFold(k, name) {
			return sc
		}
	}
	return SectionConfig{}
}

func isAggregator(source, aggregator string) bool {
	if source == "" {
		return false
	}
	base := path.Base(filepath.ToSlash(source))
	return strings.TrimSuffix(base, path.Ext(base)) == aggregator
}
