package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a mapping file from the given path. Files with
// a .toml extension are parsed as TOML, everything else as YAML.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}

	return Parse(data)
}

// Parse parses YAML data into a MappingFile.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// ParseTOML parses TOML data into a MappingFile.
func ParseTOML(data []byte) (*MappingFile, error) {
	var mf MappingFile

	md, err := toml.Decode(string(data), &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping TOML: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to parse mapping TOML: unknown key %q", undecoded[0].String())
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = DefaultVersion
	}

	if mf.Output == "" {
		mf.Output = DefaultOutput
	}

	if mf.Tag == "" {
		mf.Tag = DefaultTag
	}

	if mf.Naming.Prefix == "" {
		mf.Naming.Prefix = DefaultPrefix
	}

	if mf.Repository.Type == "" {
		mf.Repository.Type = DefaultHandle
	}

	for i := range mf.Providers {
		if mf.Providers[i].Type == "" {
			mf.Providers[i].Type = DefaultHandle
		}
	}
}
