package sections

import (
	"encoding/json"
	"errors"
	"strings"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func intPtr(i int) *int { return &i }

func titles(sec Section) []string {
	out := make([]string, len(sec.Documents))
	for i, d := range sec.Documents {
		out[i] = d.Title
	}
	return out
}

func TestDiscover_SingleUnconfiguredSection(t *testing.T) {
	t.Parallel()

	got := Discover([]Document{
		{Title: "Getting Started", Category: "Guides"},
		{Title: "Configuration", Category: "Guides"},
	}, Config{})

	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	sec := got[0]
	if sec.Name != "Guides" || sec.DisplayName != "Guides" || sec.Order != 1000 {
		t.Errorf("unexpected section: %+v", sec)
	}
	if want := []string{"Configuration", "Getting Started"}; !reflect.DeepEqual(titles(sec), want) {
		t.Errorf("documents = %v, want %v", titles(sec), want)
	}
}

func TestDiscover_Ordering(t *testing.T) {
	t.Parallel()

	cfg := Config{Sections: map[string]SectionConfig{
		"B": {DisplayName: "Bee", Order: intPtr(5)},
		"A": {Order: intPtr(2)},
	}}
	got := Discover([]Document{
		{Title: "x1", Category: "X"},
		{Title: "b1", Category: "B"},
		{Title: "y1", Category: "Y"},
		{Title: "a1", Category: "A"},
	}, cfg)

	var names []string
	for _, s := range got {
		names = append(names, s.Name)
	}
	if want := []string{"A", "B", "X", "Y"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("order = %v, want %v", names, want)
	}
	if got[1].DisplayName != "Bee" {
		t.Errorf("display name not applied: %q", got[1].DisplayName)
	}
	if got[0].DisplayName != "A" {
		t.Errorf("display name should default to category: %q", got[0].DisplayName)
	}
	if got[2].Order != 1000 || got[3].Order != 1001 {
		t.Errorf("auto orders = %d, %d", got[2].Order, got[3].Order)
	}
}

func TestDiscover_CaseInsensitiveConfig(t *testing.T) {
	t.Parallel()

	got := Discover([]Document{{Title: "a", Category: "Guides"}}, Config{
		Sections: map[string]SectionConfig{"guides": {DisplayName: "User Guides", Order: intPtr(1)}},
	})
	if got[0].DisplayName != "User Guides" || got[0].Order != 1 {
		t.Errorf("lowercased config key not matched: %+v", got[0])
	}
}

func TestDiscover_Exclusions(t *testing.T) {
	t.Parallel()

	got := Discover([]Document{
		{Title: "", Category: "Guides"},
		{Title: "Everything", Category: "Guides", Source: "docs/index.md"},
		{Title: "Loose"},
		{Title: "Kept", Category: "Guides", Source: "docs/kept.md"},
	}, Config{})

	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %+v", got)
	}
	if got[0].Name != DefaultCategory || !reflect.DeepEqual(titles(got[0]), []string{"Loose"}) {
		t.Errorf("default section = %+v", got[0])
	}
	if got[1].Name != "Guides" || !reflect.DeepEqual(titles(got[1]), []string{"Kept"}) {
		t.Errorf("guides section = %+v", got[1])
	}
}

func TestDiscover_CustomDefaultsAndAggregator(t *testing.T) {
	t.Parallel()

	got := Discover([]Document{
		{Title: "All", Source: "docs/all.md"},
		{Title: "Index", Source: "docs/index.md"},
	}, Config{DefaultCategory: "Misc", Aggregator: "all"})

	if len(got) != 1 || got[0].Name != "Misc" || !reflect.DeepEqual(titles(got[0]), []string{"Index"}) {
		t.Errorf("unexpected sections: %+v", got)
	}
}

func TestDiscover_CollatedTitles(t *testing.T) {
	t.Parallel()

	got := Discover([]Document{
		{Title: "beta", Category: "C"},
		{Title: "Alpha", Category: "C"},
		{Title: "Été", Category: "C"},
		{Title: "zeta", Category: "C"},
	}, Config{})

	if want := []string{"Alpha", "beta", "Été", "zeta"}; !reflect.DeepEqual(titles(got[0]), want) {
		t.Errorf("titles = %v, want %v", titles(got[0]), want)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFileSource_Documents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "getting-started.md"), "---\ntitle: Getting Started\ncategory: Guides\n---\nbody")
	writeFile(t, filepath.Join(dir, "nested", "Config File.md"), "---\ntitle: \"Configuration\"\ncategory: Guides\n---\n")
	writeFile(t, filepath.Join(dir, "plain.md"), "# no frontmatter")
	writeFile(t, filepath.Join(dir, "notes.txt"), "---\ntitle: Ignored\n---\n")

	docs, err := FileSource{Dirs: []string{dir}}.Documents()
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 markdown documents, got %d: %+v", len(docs), docs)
	}

	byURL := make(map[string]Document)
	for _, d := range docs {
		byURL[d.URL] = d
	}
	if d := byURL["documents/getting-started.html"]; d.Title != "Getting Started" || d.Category != "Guides" {
		t.Errorf("getting-started = %+v", d)
	}
	if d := byURL["documents/config-file.html"]; d.Title != "Configuration" {
		t.Errorf("config file = %+v", d)
	}

	sections := Discover(docs, Config{})
	if len(sections) != 1 || len(sections[0].Documents) != 2 {
		t.Errorf("untitled document should be dropped: %+v", sections)
	}
}

func TestFileSource_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := FileSource{Dirs: []string{filepath.Join(t.TempDir(), "nope")}}.Documents()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

type failingSource struct{}

func (failingSource) Documents() ([]Document, error) { return nil, errors.New("boom") }

func TestDiscoverFrom_CombinesSources(t *testing.T) {
	t.Parallel()

	model := ModelSource{{Title: "From Model", Category: "Guides"}}
	got, err := DiscoverFrom(Config{}, failingSource{}, model)
	if err == nil {
		t.Error("expected source error to be reported")
	}
	if len(got) != 1 || got[0].Documents[0].Title != "From Model" {
		t.Errorf("sections = %+v", got)
	}
}

func TestFileSource_MissingDirKeepsOthers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "---\ntitle: Alpha\ncategory: Guides\n---\n")
	missing := filepath.Join(dir, "missing")

	src := FileSource{Dirs: []string{missing, dir}}
	docs, err := src.Documents()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
	if len(docs) != 1 || docs[0].Title != "Alpha" {
		t.Fatalf("readable directory lost: %+v", docs)
	}

	got, err := DiscoverFrom(Config{}, src)
	if err == nil {
		t.Error("expected directory error to be reported")
	}
	if len(got) != 1 || got[0].Name != "Guides" || !reflect.DeepEqual(titles(got[0]), []string{"Alpha"}) {
		t.Errorf("sections = %+v", got)
	}
}

type partialSource struct{}

func (partialSource) Documents() ([]Document, error) {
	return []Document{{Title: "Partial", Category: "Guides"}}, errors.New("one file failed")
}

func TestDiscoverFrom_KeepsPartialResults(t *testing.T) {
	t.Parallel()

	got, err := DiscoverFrom(Config{}, partialSource{}, failingSource{})
	if err == nil || !strings.Contains(err.Error(), "one file failed") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected both source errors, got %v", err)
	}
	if len(got) != 1 || got[0].Documents[0].Title != "Partial" {
		t.Errorf("sections = %+v", got)
	}
}

func TestSection_JSONFieldNames(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(Section{
		Name:        "guides",
		DisplayName: "Guides",
		Order:       1,
		Documents:   []Document{{Title: "Intro", Category: "guides", URL: "documents/intro.html"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"guides","display_name":"Guides","order":1,"documents":[{"title":"Intro","category":"guides","url":"documents/intro.html"}]}`
	if string(out) != want {
		t.Errorf("got %s, want %s", out, want)
	}
}
