package shields

import (
	"strings"

	"github.com/matzehuels/badgegen/pkg/errors"
)

// Environment is the package.json dependency section a package is read from.
type Environment int

// Dependency sections. Prod is the zero value.
const (
	Prod Environment = iota // "dependencies"
	Dev                     // "devDependencies"
	Peer                    // "peerDependencies"
)

var environmentNames = [...]string{
	Prod: "prod",
	Dev:  "dev",
	Peer: "peer",
}

var environmentAliases = map[string]Environment{
	"prod":             Prod,
	"production":       Prod,
	"dependencies":     Prod,
	"dev":              Dev,
	"development":      Dev,
	"devdependencies":  Dev,
	"peer":             Peer,
	"peerdependencies": Peer,
}

// Valid reports whether e is a declared environment.
func (e Environment) Valid() bool {
	return e >= Prod && e <= Peer
}

// String returns "prod", "dev" or "peer".
func (e Environment) String() string {
	if !e.Valid() {
		return "environment(invalid)"
	}
	return environmentNames[e]
}

// pathPrefix is the segment shields.io expects before the package name in
// package-json dependency URLs.
func (e Environment) pathPrefix() string {
	if e == Prod {
		return ""
	}
	return e.String() + "/"
}

// ParseEnvironment resolves an environment name. An empty string is Prod.
func ParseEnvironment(name string) (Environment, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Prod, nil
	}
	if e, ok := environmentAliases[key]; ok {
		return e, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidEnvironment, "unknown environment %q (available: prod, dev, peer)", name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Environment) UnmarshalText(text []byte) error {
	v, err := ParseEnvironment(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
