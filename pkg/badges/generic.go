package badges

import (
	"github.com/matzehuels/badgegen/pkg/errors"
	"github.com/matzehuels/badgegen/pkg/markdown"
	"github.com/matzehuels/badgegen/pkg/shields"
)

// DefaultColor is used by [Generic] when no colour is given.
const DefaultColor = "blue"

// Generic renders an arbitrary static badge. Message is required; a missing
// colour falls back to [DefaultColor]. Without a link the badge is a bare
// image.
func Generic(g shields.Generic) (string, error) {
	if err := errors.ValidateRequired("message", g.Message); err != nil {
		return "", err
	}
	if g.Color == "" {
		g.Color = DefaultColor
	}
	if g.Link != "" {
		if err := errors.ValidateURL(g.Link); err != nil {
			return "", err
		}
	}

	return markdown.ImageLink{
		AltText:     g.AltText(),
		ImageTarget: g.ImageURL(),
		LinkTarget:  g.Link,
	}.Render(), nil
}
