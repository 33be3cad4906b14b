package sections

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jcdickinson/llmsgen/internal/frontmatter"
)

// DefaultURLPrefix is the directory documents are linked under.
const DefaultURLPrefix = "documents"

// FileSource discovers markdown files on disk and reads their frontmatter.
type FileSource struct {
	Dirs      []string
	URLPrefix string
}

// Documents walks every directory in lexical order. Files that cannot be
// read are skipped. A directory that cannot be walked contributes nothing;
// its error is joined into the result while the other directories are
// still read.
func (s FileSource) Documents() ([]Document, error) {
	prefix := s.URLPrefix
	if prefix == "" {
		prefix = DefaultURLPrefix
	}

	var (
		docs []Document
		errs []error
	)
	for _, dir := range s.Dirs {
		if _, err := os.Stat(dir); err != nil {
			errs = append(errs, fmt.Errorf("reading docs directory %s: %w", dir, err))
			continue
		}
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && p != dir {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !strings.EqualFold(filepath.Ext(p), ".md") {
				return nil
			}
			data, err := os.ReadFile(p)
			if err != nil {
				return nil
			}
			fm, _ := frontmatter.Extract(string(data))
			docs = append(docs, Document{
				Title:    fm.Title,
				Category: fm.Category,
				URL:      path.Join(prefix, slug(p)+".html"),
				Source:   p,
			})
			return nil
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("walking docs directory %s: %w", dir, err))
		}
	}
	return docs, errors.Join(errs...)
}

func slug(p string) string {
	base := filepath.Base(p)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(base)), " ", "-")
}

// ModelSource serves documents the host's project model already parsed.
type ModelSource []Document

func (s ModelSource) Documents() ([]Document, error) {
	return append([]Document(nil), s...), nil
}
