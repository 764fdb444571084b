package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractLinkedImages parses src as CommonMark and returns every image that
// is a direct child of a link, in document order.
func ExtractLinkedImages(src []byte) []ImageLink {
	var out []ImageLink

	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		for child := link.FirstChild(); child != nil; child = child.NextSibling() {
			if img, ok := child.(*ast.Image); ok {
				out = append(out, ImageLink{
					AltText:     altText(img, src),
					ImageTarget: string(img.Destination),
					LinkTarget:  string(link.Destination),
				})
			}
		}
		return ast.WalkSkipChildren, nil
	})

	return out
}

// altText concatenates every text segment under an image node, including
// those nested in emphasis or code spans.
func altText(img *ast.Image, src []byte) string {
	var b []byte
	_ = ast.Walk(img, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b = append(b, t.Segment.Value(src)...)
			if t.SoftLineBreak() || t.HardLineBreak() {
				b = append(b, ' ')
			}
		case *ast.String:
			b = append(b, t.Value...)
		}
		return ast.WalkContinue, nil
	})
	return string(b)
}
