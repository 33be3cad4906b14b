package markdown

import (
	"strings"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	gmparser "github.com/gomarkdown/markdown/parser"
)

// Summary returns the plain text of the first top-level paragraph in src,
// skipping headings, images and badges. Returns "" if no paragraph has text.
func Summary(src string) string {
	doc := gm.Parse([]byte(src), gmparser.NewWithExtensions(
		gmparser.CommonExtensions|gmparser.Autolink,
	))

	for _, child := range doc.GetChildren() {
		para, ok := child.(*ast.Paragraph)
		if !ok {
			continue
		}
		if text := paragraphText(para); text != "" {
			return text
		}
	}
	return ""
}

func paragraphText(para *ast.Paragraph) string {
	var b strings.Builder
	ast.WalkFunc(para, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch n := node.(type) {
		case *ast.Image:
			return ast.SkipChildren
		case *ast.Softbreak, *ast.Hardbreak:
			b.WriteByte(' ')
		case *ast.Text:
			b.Write(n.Literal)
		case *ast.Code:
			b.Write(n.Literal)
		}
		return ast.GoToNext
	})
	return strings.Join(strings.Fields(b.String()), " ")
}
