// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package config

// PsychotropicCue is one entry of the project's psychotropic section: a
// niche name, the names of the niches it waits for before running, and
// optionally its UseThundercloudConfig declared inline (rather than in a
// separate per-niche settings file).
type PsychotropicCue struct {
	Name            string                 `yaml:"name" toml:"name"`
	WaitFor         []string               `yaml:"wait-for,omitempty" toml:"wait-for,omitempty"`
	UseThundercloud *UseThundercloudConfig `yaml:"use-thundercloud,omitempty" toml:"use-thundercloud,omitempty"`
}

// PsychotropicFileConfig is the typed deserialization target for the
// project's psychotropic cues section.
type PsychotropicFileConfig struct {
	Cues []PsychotropicCue `yaml:"cues,omitempty" toml:"cues,omitempty"`
}

// ProjectConfig is the typed deserialization target for CargoCult.toml /
// CargoCult.yaml, the project-root manifest that names where niches live,
// how igor-settings are laid out, the psychotropic cue graph, and the
// process-wide invar defaults.
type ProjectConfig struct {
	NichesDirectory string                 `yaml:"niches-directory,omitempty" toml:"niches-directory,omitempty"`
	IgorSettings    string                 `yaml:"igor-settings,omitempty" toml:"igor-settings,omitempty"`
	Psychotropic    PsychotropicFileConfig `yaml:"psychotropic,omitempty" toml:"psychotropic,omitempty"`
	InvarDefaults   InvarConfig            `yaml:"invar-defaults,omitempty" toml:"invar-defaults,omitempty"`
}

// defaultNichesDirectory and defaultIgorSettings are applied by
// WithDefaults when the project manifest leaves them unset.
const (
	defaultNichesDirectory = "yeth-marthter"
	defaultIgorSettings    = "igor-thettingth"
)

// WithDefaults returns a copy of p with NichesDirectory/IgorSettings
// defaulted.
func (p ProjectConfig) WithDefaults() ProjectConfig {
	if p.NichesDirectory == "" {
		p.NichesDirectory = defaultNichesDirectory
	}
	if p.IgorSettings == "" {
		p.IgorSettings = defaultIgorSettings
	}
	return p
}
