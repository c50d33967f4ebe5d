// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Decode dispatches on name's extension (.toml, or .yaml/.yml) to
// unmarshal content into out. Any other extension is an error: the engine
// only ever calls Decode with names it has itself classified as a config
// bolt (internal/cargo/bolt), so an unrecognized extension here means a
// classifier bug, not bad user input.
func Decode(name string, content []byte, out any) error {
	switch ext := strings.ToLower(extOf(name)); ext {
	case ".toml":
		if err := toml.Unmarshal(content, out); err != nil {
			return fmt.Errorf("config: decode toml %s: %w", name, err)
		}
		return nil
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, out); err != nil {
			return fmt.Errorf("config: decode yaml %s: %w", name, err)
		}
		return nil
	default:
		return fmt.Errorf("config: unrecognized config format %q for %s", ext, name)
	}
}

func extOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i:]
}

// DecodeProjectConfig decodes a CargoCult.toml/CargoCult.yaml manifest and
// applies its defaults.
func DecodeProjectConfig(name string, content []byte) (ProjectConfig, error) {
	var p ProjectConfig
	if err := Decode(name, content, &p); err != nil {
		return ProjectConfig{}, err
	}
	return p.WithDefaults(), nil
}

// DecodeThundercloudDescriptor decodes a thundercloud.toml/thundercloud.yaml
// descriptor.
func DecodeThundercloudDescriptor(name string, content []byte) (ThundercloudDescriptor, error) {
	var d ThundercloudDescriptor
	if err := Decode(name, content, &d); err != nil {
		return ThundercloudDescriptor{}, err
	}
	return d, nil
}
