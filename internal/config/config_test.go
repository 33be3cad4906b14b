package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecode_Defaults(t *testing.T) {
	cfg, err := Decode(map[string]interface{}{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Enable || cfg.Output != "" {
		t.Errorf("Decode should not invent defaults: %+v", cfg)
	}
}

func TestDecode_Full(t *testing.T) {
	cfg, err := Decode(map[string]interface{}{
		"enable":   true,
		"output":   "summary.txt",
		"base_url": "https://docs.example.com/",
		"header": map[string]interface{}{
			"name":     "mylib",
			"features": []interface{}{"Fast", "Typed"},
		},
		"sections": map[string]interface{}{
			"guides": map[string]interface{}{"display_name": "Guides", "order": 2},
		},
		"declarations": []interface{}{
			map[string]interface{}{"ref": "lib!", "label": "API"},
		},
		"quick_reference": "import x from 'mylib';",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "summary.txt" || cfg.BaseURL != "https://docs.example.com/" {
		t.Errorf("scalars = %+v", cfg)
	}
	if len(cfg.Header.Features) != 2 || cfg.Header.Name != "mylib" {
		t.Errorf("header = %+v", cfg.Header)
	}
	sec := cfg.Sections["guides"]
	if sec.DisplayName != "Guides" || sec.Order == nil || *sec.Order != 2 {
		t.Errorf("section = %+v", sec)
	}
	if len(cfg.Declarations) != 1 || cfg.Declarations[0].Ref != "lib!" {
		t.Errorf("declarations = %+v", cfg.Declarations)
	}
	if cfg.QuickReference.Value != "import x from 'mylib';" {
		t.Errorf("quick reference = %+v", cfg.QuickReference)
	}
}

func TestDecode_TextSourceFromFile(t *testing.T) {
	dir := t.TempDir()
	tplPath := filepath.Join(dir, "llms.tpl")
	if err := os.WriteFile(tplPath, []byte("{{header}}"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Decode(map[string]interface{}{
		"template": map[string]interface{}{"path": tplPath},
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Template.Value != "{{header}}" || cfg.Template.Path != tplPath {
		t.Errorf("template = %+v", cfg.Template)
	}
}

func TestDecode_TextSourceMissingFile(t *testing.T) {
	_, err := Decode(map[string]interface{}{
		"template": map[string]interface{}{"path": filepath.Join(t.TempDir(), "missing.tpl")},
	})
	if err == nil {
		t.Error("expected error for missing template file")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "llmsgen.toml")
	content := `
output = "out.txt"
base_url = "https://x.dev"

[header]
name = "mylib"

[sections.Guides]
order = 1

[[declarations]]
ref = "lib!Client"
label = "Client"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	prev := ConfigFile
	ConfigFile = path
	t.Cleanup(func() { ConfigFile = prev })

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "out.txt" || cfg.Header.Name != "mylib" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Enable || cfg.Project != "project.json" || cfg.Docs.DefaultCategory != "Documentation" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if len(cfg.Declarations) != 1 || cfg.Declarations[0].Label != "Client" {
		t.Errorf("declarations = %+v", cfg.Declarations)
	}
	if o := cfg.Sections["guides"].Order; o == nil || *o != 1 {
		t.Errorf("sections = %+v", cfg.Sections)
	}
}
