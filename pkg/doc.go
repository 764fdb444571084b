// Package pkg provides the core libraries for badgegen.
//
// # Overview
//
// Badgegen turns package metadata into README badges: markdown linked images
// whose image is a shields.io URL. Nothing is fetched; shields.io resolves
// dynamic values (package.json versions, go.mod Go versions) when the README
// is viewed. The pkg directory is organized into these areas:
//
//  1. [shields] - URL building: ordered query params, logo parameters,
//     registries, environments, endpoint URLs and badge presets
//  2. [badges] - Formatters (dependency, node version, Go version, generic)
//     and badge sets
//  3. [markdown] - Linked-image formatting and extraction
//  4. [repo] - GitHub repository identifiers, parsed or read from a git checkout
//  5. [config] - Badge set files (TOML or YAML)
//  6. [server] - HTTP API over the formatters
//
// # Architecture
//
// The data flow for a single badge:
//
//	package name, registry, logo settings
//	         ↓
//	    [badges] formatter (validates, picks preset)
//	         ↓
//	    [shields] URL + query params
//	         ↓
//	    [markdown] linked image
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/badgegen/pkg/badges"
//	    "github.com/matzehuels/badgegen/pkg/shields"
//	)
//
//	md, err := badges.Dependency("react", shields.Node, shields.LogoAppearance{Logo: "react"})
//	// [![dependency - react](https://img.shields.io/badge/dependency-react-blue?logo=react)](https://www.npmjs.com/package/react)
//
// Render a whole badge set:
//
//	set, err := config.Load("badges.toml")
//	md, err := badges.RenderSet(*set)
//
// # Supporting Packages
//
// [errors] - Structured errors with machine-readable codes, shared by the CLI
// and the HTTP API.
//
// [observability] - Hooks for badge rendering and HTTP events.
//
// [buildinfo] - Version information injected via ldflags.
//
// [shields]: https://pkg.go.dev/github.com/matzehuels/badgegen/pkg/shields
// [badges]: https://pkg.go.dev/github.com/matzehuels/badgegen/pkg/badges
// [markdown]: https://pkg.go.dev/github.com/matzehuels/badgegen/pkg/markdown
// [repo]: https://pkg.go.dev/github.com/matzehuels/badgegen/pkg/repo
// [config]: https://pkg.go.dev/github.com/matzehuels/badgegen/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/badgegen/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/badgegen/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/badgegen/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/badgegen/pkg/buildinfo
package pkg
