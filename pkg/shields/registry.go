package shields

import (
	"strconv"
	"strings"

	"github.com/matzehuels/badgegen/pkg/errors"
)

// Registry identifies a package registry. The zero value is not a valid
// registry.
type Registry int

// Supported registries.
const (
	Node Registry = iota + 1
	Python
	Go
	Rust
	Ruby
	PHP
)

var registryInfo = map[Registry]struct {
	name    string
	baseURL string
}{
	Node:   {"node", "https://www.npmjs.com/package"},
	Python: {"python", "https://pypi.org/project"},
	Go:     {"go", "https://pkg.go.dev"},
	Rust:   {"rust", "https://crates.io/crates"},
	Ruby:   {"ruby", "https://rubygems.org/gems"},
	PHP:    {"php", "https://packagist.org/packages"},
}

// registryAliases maps ecosystem and registry names to their canonical name.
var registryAliases = map[string]string{
	"npm":        "node",
	"nodejs":     "node",
	"javascript": "node",
	"pypi":       "python",
	"golang":     "go",
	"crates":     "rust",
	"cargo":      "rust",
	"rubygems":   "ruby",
	"composer":   "php",
	"packagist":  "php",
}

// Registries returns every supported registry in declaration order.
func Registries() []Registry {
	return []Registry{Node, Python, Go, Rust, Ruby, PHP}
}

// Valid reports whether r is one of the declared registries.
func (r Registry) Valid() bool {
	_, ok := registryInfo[r]
	return ok
}

// String returns the canonical lowercase name, or "registry(N)" for
// undeclared values.
func (r Registry) String() string {
	if info, ok := registryInfo[r]; ok {
		return info.name
	}
	return "registry(" + strconv.Itoa(int(r)) + ")"
}

// BaseURL returns the registry's package page prefix, without a trailing
// slash. Undeclared values return "".
func (r Registry) BaseURL() string {
	return registryInfo[r].baseURL
}

// PackageURL returns BaseURL + "/" + name.
func (r Registry) PackageURL(name string) string {
	return r.BaseURL() + "/" + name
}

// ParseRegistry resolves a registry by canonical name or alias,
// case-insensitively.
func ParseRegistry(name string) (Registry, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := registryAliases[key]; ok {
		key = alias
	}
	for _, r := range Registries() {
		if registryInfo[r].name == key {
			return r, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidRegistry, "unknown registry %q (available: %s)", name, strings.Join(RegistryNames(), ", "))
}

// RegistryNames returns the canonical names of all registries.
func RegistryNames() []string {
	regs := Registries()
	names := make([]string, len(regs))
	for i, r := range regs {
		names[i] = r.String()
	}
	return names
}

// MarshalText implements encoding.TextMarshaler.
func (r Registry) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidRegistry, "invalid registry %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so registries can be
// decoded from TOML and YAML badge sets.
func (r *Registry) UnmarshalText(text []byte) error {
	v, err := ParseRegistry(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
