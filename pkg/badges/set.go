package badges

import (
	"fmt"
	"strings"

	"github.com/matzehuels/badgegen/pkg/errors"
	"github.com/matzehuels/badgegen/pkg/markdown"
	"github.com/matzehuels/badgegen/pkg/repo"
	"github.com/matzehuels/badgegen/pkg/shields"
)

// Kind selects the formatter for an [Entry].
type Kind string

// Entry kinds.
const (
	KindDependency Kind = "dependency"
	KindNode       Kind = "node"
	KindGo         Kind = "go"
	KindGeneric    Kind = "generic"
	KindBreak      Kind = "break" // starts a new row
)

// Kinds lists the accepted entry kinds.
func Kinds() []Kind {
	return []Kind{KindDependency, KindNode, KindGo, KindGeneric, KindBreak}
}

// Set is a list of badges rendered together, typically one README header.
type Set struct {
	Repo     string                 `toml:"repo" yaml:"repo" json:"repo,omitempty"` // default repository for node and go entries
	Defaults shields.LogoAppearance `toml:"defaults" yaml:"defaults" json:"defaults"`
	Badges   []Entry                `toml:"badges" yaml:"badges" json:"badges"`
}

// Entry is a single badge in a [Set]. Which fields apply depends on Kind.
type Entry struct {
	Kind Kind `toml:"kind" yaml:"kind" json:"kind"`

	// dependency, node
	Name     string `toml:"name" yaml:"name" json:"name,omitempty"`
	Registry string `toml:"registry" yaml:"registry" json:"registry,omitempty"`
	Env      string `toml:"env" yaml:"env" json:"env,omitempty"`

	// node, go
	Repo string `toml:"repo" yaml:"repo" json:"repo,omitempty"`

	// generic
	Label   string `toml:"label" yaml:"label" json:"label,omitempty"`
	Message string `toml:"message" yaml:"message" json:"message,omitempty"`
	Color   string `toml:"color" yaml:"color" json:"color,omitempty"`
	Link    string `toml:"link" yaml:"link" json:"link,omitempty"`

	Logo      string `toml:"logo" yaml:"logo" json:"logo,omitempty"`
	LogoColor string `toml:"logo_color" yaml:"logo_color" json:"logoColor,omitempty"`
	Large     *bool  `toml:"large" yaml:"large" json:"large,omitempty"`
}

// appearance merges the entry's logo settings over defaults.
func (e Entry) appearance(defaults shields.LogoAppearance) shields.LogoAppearance {
	a := shields.LogoAppearance{Logo: e.Logo, LogoColor: e.LogoColor, IsLarge: defaults.IsLarge}
	if e.Large != nil {
		a.IsLarge = *e.Large
	}
	return a.Merge(defaults)
}

func (e Entry) resolveRepo(fallback string) (repo.Repo, error) {
	ref := e.Repo
	if ref == "" {
		ref = fallback
	}
	return repo.Parse(ref)
}

// Render formats e. defaults fills unset logo fields and defaultRepo is used
// when e.Repo is empty. Break entries render as "".
func (e Entry) Render(defaults shields.LogoAppearance, defaultRepo string) (string, error) {
	a := e.appearance(defaults)

	switch e.Kind {
	case KindDependency:
		reg, err := shields.ParseRegistry(e.Registry)
		if err != nil {
			return "", err
		}
		return Dependency(e.Name, reg, a)

	case KindNode:
		r, err := e.resolveRepo(defaultRepo)
		if err != nil {
			return "", err
		}
		env, err := shields.ParseEnvironment(e.Env)
		if err != nil {
			return "", err
		}
		return NodeVersion(r, e.Name, a, env)

	case KindGo:
		r, err := e.resolveRepo(defaultRepo)
		if err != nil {
			return "", err
		}
		return GoVersionForRepo(r)

	case KindGeneric:
		return Generic(shields.Generic{
			Label:     e.Label,
			Message:   e.Message,
			Color:     e.Color,
			IsLarge:   a.IsLarge,
			Link:      e.Link,
			Logo:      a.Logo,
			LogoColor: a.LogoColor,
		})

	case KindBreak:
		return "", nil

	default:
		kinds := make([]string, 0, len(Kinds()))
		for _, k := range Kinds() {
			kinds = append(kinds, string(k))
		}
		return "", errors.New(errors.ErrCodeInvalidConfig, "unknown badge kind %q (supported: %s)", e.Kind, strings.Join(kinds, ", "))
	}
}

// Rows renders every entry of s, splitting rows at break entries. The error
// names the failing entry and keeps the underlying error code.
func (s Set) Rows() ([][]string, error) {
	var rows [][]string
	var current []string

	for i, e := range s.Badges {
		if e.Kind == KindBreak {
			if len(current) > 0 {
				rows = append(rows, current)
				current = nil
			}
			continue
		}
		out, err := e.Render(s.Defaults, s.Repo)
		if err != nil {
			return nil, entryError(i, e, err)
		}
		current = append(current, out)
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}
	return rows, nil
}

// RenderSet renders s as markdown: badges in a row are space separated and
// rows are newline separated.
func RenderSet(s Set) (string, error) {
	rows, err := s.Rows()
	if err != nil {
		return "", err
	}
	return markdown.Compose(rows), nil
}

func entryError(i int, e Entry, err error) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	label := fmt.Sprintf("badges[%d]", i)
	if e.Kind != "" {
		label += " (" + string(e.Kind) + ")"
	}
	return errors.Wrap(code, err, "%s", label)
}
