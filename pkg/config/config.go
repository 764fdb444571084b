// Package config loads badge set files.
//
// A badge set lists the badges for one README. TOML is the primary format;
// files ending in .yml or .yaml are read as YAML with the same keys:
//
//	repo = "MichaelCurrin/badge-generator"
//
//	[defaults]
//	logo_color = "white"
//
//	[[badges]]
//	kind = "node"
//	name = "vue"
//	logo = "vue.js"
//
//	[[badges]]
//	kind = "go"
//
// Unknown keys are rejected so typos surface as INVALID_CONFIG instead of
// silently producing a different badge.
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/badgegen/pkg/badges"
	"github.com/matzehuels/badgegen/pkg/errors"
)

// DefaultFiles are tried in order by [Load] when no path is given.
var DefaultFiles = []string{"badges.toml", ".badges.toml", "badges.yaml", "badges.yml"}

// Format is a badge set file format.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the file extension. Anything that is not
// .yml or .yaml is TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads a badge set file. If path is empty, the first existing entry of
// [DefaultFiles] in the working directory is used.
func Load(path string) (*badges.Set, error) {
	if path == "" {
		found, err := findDefault(".")
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "badge set %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	set, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return set, nil
}

// Parse decodes a badge set in the given format.
func Parse(data []byte, format Format) (*badges.Set, error) {
	var set badges.Set

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &set)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&set); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode yaml")
		}

	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported badge set format %q", format)
	}

	return &set, nil
}

func findDefault(dir string) (string, error) {
	for _, name := range DefaultFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.New(errors.ErrCodeFileNotFound, "no badge set found (looked for %s)", strings.Join(DefaultFiles, ", "))
}
