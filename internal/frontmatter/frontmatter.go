package frontmatter

import (
	"regexp"
	"strings"
)

// Frontmatter holds the fields read from a document header. Empty strings
// mean the field was absent.
type Frontmatter struct {
	Title    string
	Category string
}

const delimiter = "---"

var fieldRe = regexp.MustCompile(`^(title|category)\s*:(.*)$`)

// Extract reads title and category from a `---` delimited header at the
// start of text. ok is false when text has no complete header block.
//
// This is a line scan, not a YAML parser: multi-line values, nesting and
// escapes inside quotes are not supported.
func Extract(text string) (fm Frontmatter, ok bool) {
	block, ok := headerBlock(text)
	if !ok {
		return Frontmatter{}, false
	}

	for _, line := range strings.Split(block, "\n") {
		m := fieldRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		value := unquote(strings.TrimSpace(m[2]))
		switch m[1] {
		case "title":
			fm.Title = value
		case "category":
			fm.Category = value
		}
	}
	return fm, true
}

// headerBlock returns the lines between the opening and closing delimiter.
func headerBlock(text string) (string, bool) {
	first, rest, found := strings.Cut(text, "\n")
	if !found || strings.TrimSuffix(first, "\r") != delimiter {
		return "", false
	}

	offset := 0
	for {
		line, next, more := strings.Cut(rest[offset:], "\n")
		if strings.TrimSuffix(line, "\r") == delimiter {
			return rest[:offset], true
		}
		if !more {
			return "", false
		}
		offset = len(rest) - len(next)
	}
}

// unquote strips exactly one pair of matching outer quotes.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	q := s[0]
	if (q == '"' || q == '\'') && s[len(s)-1] == q {
		return s[1 : len(s)-1]
	}
	return s
}
