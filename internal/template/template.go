// Package template fills {{slot}} placeholders in a user template with
// rendered manifest fragments.
package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jcdickinson/llmsgen/internal/render"
)

// slotRe matches {{word}} and {{word:name}}. The name may contain spaces so
// sections can be addressed by display name, and whitespace inside the
// braces is ignored. Plain {{word}} and {{word:word}} placeholders are a
// subset of this, so templates that stick to them stay portable to the
// stricter grammar.
var slotRe = regexp.MustCompile(`\{\{\s*(\w+)(?::([^{}]+?))?\s*\}\}`)

// Apply substitutes every placeholder in tpl in a single pass. Substituted
// text is never scanned again, and unknown slots become HTML comments.
func Apply(tpl string, b *render.Bundle) string {
	return slotRe.ReplaceAllStringFunc(tpl, func(match string) string {
		m := slotRe.FindStringSubmatch(match)
		return expand(m[1], strings.TrimSpace(m[2]), m[0], b)
	})
}

func expand(slot, arg, raw string, b *render.Bundle) string {
	if arg != "" {
		if slot != "section" {
			return unknown(raw)
		}
		sec, ok := b.FindSection(arg)
		if !ok {
			return fmt.Sprintf("<!-- Section not found: %s -->", arg)
		}
		return render.RenderSection(sec)
	}

	switch slot {
	case "header":
		return render.RenderHeader(b.Header)
	case "sections":
		return render.RenderSections(b.Sections)
	case "declarations":
		return render.RenderDeclarations(b.Declarations)
	case "quickReference":
		return render.RenderQuickReference(b.QuickReference)
	default:
		return unknown(raw)
	}
}

func unknown(raw string) string {
	token := strings.TrimSuffix(strings.TrimPrefix(raw, "{{"), "}}")
	return fmt.Sprintf("<!-- Unknown slot: %s -->", strings.TrimSpace(token))
}
