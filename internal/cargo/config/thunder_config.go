// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package config

import (
	"github.com/gizzahub/cargocult/internal/cargo/fsys"
	"github.com/gizzahub/cargocult/internal/cargo/path"
)

// ThunderConfig is the per-niche, derived configuration handed to the
// engine's ProcessNiche entry point.
type ThunderConfig struct {
	UseThundercloud          UseThundercloudConfig
	DefaultInvarConfig       InvarConfig // process-level default
	ThundercloudInvarDefaults InvarConfig // thundercloud.toml's invar-defaults
	ThundercloudDir          path.Absolute
	CumulusDir               path.Absolute
	InvarDir                 path.Absolute
	ProjectRoot              path.Absolute
	ThundercloudFileSystem   fsys.FileSystem // always read-only
	ProjectFileSystem        fsys.FileSystem
}

// NewThunderConfig derives CumulusDir from ThundercloudDir (= thundercloudDir/cumulus)
// and wraps the thundercloud filesystem read-only.
func NewThunderConfig(
	use UseThundercloudConfig,
	defaults InvarConfig,
	thundercloudDefaults InvarConfig,
	thundercloudDir path.Absolute,
	invarDir path.Absolute,
	projectRoot path.Absolute,
	thunderFS fsys.FileSystem,
	projectFS fsys.FileSystem,
) ThunderConfig {
	cumulusRel, _ := path.NewRelative("cumulus")
	return ThunderConfig{
		UseThundercloud:           use,
		DefaultInvarConfig:        defaults,
		ThundercloudInvarDefaults: thundercloudDefaults,
		ThundercloudDir:           thundercloudDir,
		CumulusDir:                thundercloudDir.Join(cumulusRel),
		InvarDir:                  invarDir,
		ProjectRoot:               projectRoot,
		ThundercloudFileSystem:    thunderFS.ReadOnly(),
		ProjectFileSystem:         projectFS,
	}
}

// ThundercloudDescriptor is the typed deserialization target for
// thundercloud.toml/thundercloud.yaml.
type ThundercloudDescriptor struct {
	Niche struct {
		Name        string `yaml:"name" toml:"name"`
		Description string `yaml:"description,omitempty" toml:"description,omitempty"`
	} `yaml:"niche" toml:"niche"`
	InvarDefaults InvarConfig `yaml:"invar-defaults,omitempty" toml:"invar-defaults,omitempty"`
}
