// Package shields builds shields.io badge image URLs.
//
// # Overview
//
// A badge URL is a base endpoint plus query parameters. The base comes from
// one of the shields.io endpoints ([StaticBadgeURL], [NodePkgJSONShieldURL],
// [GoModuleURL]); the parameters come from a [LogoAppearance] mapped through
// [LogoQueryParams] and joined by [BuildURL]:
//
//	params := shields.LogoQueryParams(shields.LogoAppearance{Logo: "react", IsLarge: true})
//	img := shields.BuildURL(shields.StaticBadgeURL("dependency", "react", "blue"), params)
//	// https://img.shields.io/badge/dependency-react-blue?logo=react&style=for-the-badge
//
// # Parameter Order
//
// [Params] keeps insertion order so that generated URLs are stable and
// diffable in a README. Go maps are never used for query parameters.
//
// # Registries
//
// [Registry] is a closed set of package registries, each with a constant
// base URL used as the badge link target.
//
// # Presets
//
// [StaticDependency], [NodeVersionBadge] and [GoModuleShield] return the fixed
// label, colour and appearance settings used by the formatters in
// package badges. Each call returns a fresh value.
package shields
