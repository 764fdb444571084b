// Package badges formats package metadata badges as markdown.
//
// # Formatters
//
//   - [Dependency]: a static "dependency | name" badge linking to a registry page
//   - [NodeVersion]: the version of a package locked in a repo's package.json
//   - [GoVersion]: the Go version declared in a repo's go.mod
//   - [Generic]: an arbitrary static label/message badge
//
// Every formatter validates its identifying arguments, builds an image URL
// with package shields and wraps it with [markdown.ImageWithLink]. Inputs are
// never modified: where a preset overrides the caller's appearance, the
// formatter works on a copy.
//
// # Badge Sets
//
// [RenderSet] renders a whole [Set] (usually loaded by package config) into
// rows of badges ready to paste into a README.
package badges

import (
	"github.com/matzehuels/badgegen/pkg/errors"
	"github.com/matzehuels/badgegen/pkg/markdown"
	"github.com/matzehuels/badgegen/pkg/repo"
	"github.com/matzehuels/badgegen/pkg/shields"
)

// Dependency returns a flat static badge for a package dependency, linked to
// the package page on reg.
//
// The label, colour and size come from [shields.StaticDependency]; only the
// logo and logo colour of a are used.
//
// TODO: accept a version range ("vue >=3") and render it as the message.
func Dependency(name string, reg shields.Registry, a shields.LogoAppearance) (string, error) {
	if err := errors.ValidateRequired("package name", name); err != nil {
		return "", err
	}
	if !reg.Valid() {
		return "", errors.New(errors.ErrCodeInvalidRegistry, "invalid registry %v", reg)
	}

	preset := shields.StaticDependency()
	return Generic(shields.Generic{
		Label:     preset.Label,
		Message:   name,
		Color:     preset.Color,
		IsLarge:   preset.IsLarge,
		Link:      reg.PackageURL(name),
		Logo:      a.Logo,
		LogoColor: a.LogoColor,
	})
}

// NodeVersion returns a dynamic badge showing the version of pkgName locked
// in r's package.json under env.
//
// The badge size always comes from [shields.NodeVersionBadge]; a is copied,
// not modified. The link goes to the npm page whatever env is, and the alt
// text is "Package - <pkgName>".
func NodeVersion(r repo.Repo, pkgName string, a shields.LogoAppearance, env shields.Environment) (string, error) {
	if err := errors.ValidateRequired("package name", pkgName); err != nil {
		return "", err
	}
	if err := r.Validate(); err != nil {
		return "", err
	}
	if !env.Valid() {
		return "", errors.New(errors.ErrCodeInvalidEnvironment, "invalid environment %d", int(env))
	}

	appearance := a.WithLarge(shields.NodeVersionBadge().IsLarge)
	imageTarget := shields.BuildURL(
		shields.NodePkgJSONShieldURL(r, pkgName, env),
		shields.LogoQueryParams(appearance),
	)

	return markdown.ImageWithLink(markdown.ImageLink{
		AltText:     NodeAltText(pkgName),
		ImageTarget: imageTarget,
		LinkTarget:  shields.Node.PackageURL(pkgName),
	}), nil
}

// NodeAltText is the alt text used by [NodeVersion].
func NodeAltText(pkgName string) string {
	return "Package - " + pkgName
}

// GoVersion returns a badge showing the Go version in username/repoName's
// go.mod. Appearance, alt text and link all come from
// [shields.GoModuleShield].
func GoVersion(username, repoName string) (string, error) {
	if err := errors.ValidateRequired("username", username); err != nil {
		return "", err
	}
	if err := errors.ValidateRequired("repository name", repoName); err != nil {
		return "", err
	}

	preset := shields.GoModuleShield()
	imageTarget := shields.BuildURL(
		shields.GoModuleURL(username, repoName),
		shields.LogoQueryParams(preset.LogoAppearance),
	)

	return markdown.ImageWithLink(markdown.ImageLink{
		AltText:     preset.AltText,
		ImageTarget: imageTarget,
		LinkTarget:  preset.LinkTarget,
	}), nil
}

// GoVersionForRepo is [GoVersion] for a validated [repo.Repo].
func GoVersionForRepo(r repo.Repo) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	return GoVersion(r.Owner, r.Name)
}
