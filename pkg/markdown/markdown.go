// Package markdown formats badge images as markdown and reads them back.
//
// [ImageWithLink] produces the README badge form:
//
//	[![Go Version](https://img.shields.io/github/go-mod/go-version/o/r)](https://go.dev)
//
// [Compose] lays several badges out in rows, and [ExtractLinkedImages] parses
// a document and returns every link-wrapped image it contains.
package markdown

import (
	"fmt"
	"strings"
)

// ImageLink is an image reference wrapped in a hyperlink.
type ImageLink struct {
	AltText     string `json:"altText"`
	ImageTarget string `json:"imageTarget"`
	LinkTarget  string `json:"linkTarget"`
}

// ImageWithLink renders l as [![alt](image)](link). Nothing is validated or
// escaped.
func ImageWithLink(l ImageLink) string {
	return fmt.Sprintf("[%s](%s)", Image(l.AltText, l.ImageTarget), l.LinkTarget)
}

// Image renders ![alt](target).
func Image(altText, target string) string {
	return fmt.Sprintf("![%s](%s)", altText, target)
}

// Render renders l, dropping the link wrapper when LinkTarget is empty.
func (l ImageLink) Render() string {
	if l.LinkTarget == "" {
		return Image(l.AltText, l.ImageTarget)
	}
	return ImageWithLink(l)
}

// Compose joins items within a row with spaces and rows with newlines.
// Empty items and empty rows are skipped.
func Compose(rows [][]string) string {
	var lines []string
	for _, row := range rows {
		var parts []string
		for _, s := range row {
			if s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, " "))
		}
	}
	return strings.Join(lines, "\n")
}
