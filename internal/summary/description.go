package summary

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/jcdickinson/llmsgen/internal/markdown"
)

// DescriptionSources lists where a project description may come from, in
// order of preference. Every path is explicit; nothing is looked up relative
// to the working directory implicitly.
type DescriptionSources struct {
	Configured string
	Model      string
	Manifest   string
	Readme     string
}

// ResolveDescription returns the first non-empty description. Unreadable
// files count as absent.
func ResolveDescription(src DescriptionSources) string {
	if d := strings.TrimSpace(src.Configured); d != "" {
		return d
	}
	if d := strings.TrimSpace(src.Model); d != "" {
		return d
	}
	if src.Manifest != "" {
		if d := manifestDescription(src.Manifest); d != "" {
			return d
		}
	}
	if src.Readme != "" {
		data, err := os.ReadFile(src.Readme)
		if err != nil {
			slog.Debug("readme unavailable", "path", src.Readme, "error", err)
			return ""
		}
		return markdown.Summary(string(data))
	}
	return ""
}

// manifestDescription reads the "description" field of a JSON package manifest.
func manifestDescription(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("manifest unavailable", "path", path, "error", err)
		return ""
	}
	var pkg struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		slog.Debug("manifest not valid JSON", "path", path, "error", err)
		return ""
	}
	return strings.TrimSpace(pkg.Description)
}
