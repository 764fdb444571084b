package shields

import (
	"net/url"
	"strings"

	"github.com/matzehuels/badgegen/pkg/repo"
)

// shields.io endpoints.
const (
	APIBase = "https://img.shields.io"

	// StaticBase renders /badge/<label>-<message>-<color>.
	StaticBase = APIBase + "/badge"

	// PackageJSONDependencyBase reads a dependency version from a GitHub
	// repo's package.json.
	PackageJSONDependencyBase = APIBase + "/github/package-json/dependency-version"

	// GoModuleBase reads the go directive from a GitHub repo's go.mod.
	GoModuleBase = APIBase + "/github/go-mod/go-version"
)

// shields.io uses '-' as the field separator and '_' as a space in static
// badge paths, so literal ones are doubled.
var staticEscaper = strings.NewReplacer(
	"-", "--",
	"_", "__",
	" ", "_",
)

// EscapeStaticField escapes a label, message or colour for a static badge
// path segment.
func EscapeStaticField(s string) string {
	return url.PathEscape(staticEscaper.Replace(s))
}

// StaticBadgeURL returns the static badge image URL for the given fields.
// An empty label yields a message-only badge.
func StaticBadgeURL(label, message, color string) string {
	msg := EscapeStaticField(message) + "-" + EscapeStaticField(color)
	if label == "" {
		return StaticBase + "/" + msg
	}
	return StaticBase + "/" + EscapeStaticField(label) + "-" + msg
}

// NodePkgJSONShieldURL returns the dynamic badge URL showing the version of
// pkgName locked in r's package.json under the env section.
func NodePkgJSONShieldURL(r repo.Repo, pkgName string, env Environment) string {
	return PackageJSONDependencyBase + "/" + r.Owner + "/" + r.Name + "/" + env.pathPrefix() + pkgName
}

// GoModuleURL returns the dynamic badge URL showing the Go version declared in
// username/repoName's go.mod.
func GoModuleURL(username, repoName string) string {
	return GoModuleBase + "/" + username + "/" + repoName
}
