// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package config

// OnIncoming controls how a niche driver reacts to an already-present
// thundercloud checkout when a git remote is configured.
type OnIncoming string

const (
	OnIncomingUpdate OnIncoming = "Update"
	OnIncomingIgnore OnIncoming = "Ignore"
	OnIncomingWarn   OnIncoming = "Warn"
	OnIncomingFail   OnIncoming = "Fail"
)

// GitRemoteConfig describes a remote thundercloud fetched via git.
type GitRemoteConfig struct {
	FetchURL string `yaml:"fetch-url" toml:"fetch-url"`
	Revision string `yaml:"revision" toml:"revision"`
	SubPath  string `yaml:"sub-path,omitempty" toml:"sub-path,omitempty"`
}

// UseThundercloudConfig names which thundercloud a niche uses and how.
type UseThundercloudConfig struct {
	Directory     string           `yaml:"directory,omitempty" toml:"directory,omitempty"`
	GitRemote     *GitRemoteConfig `yaml:"git-remote,omitempty" toml:"git-remote,omitempty"`
	OnIncoming    OnIncoming       `yaml:"on-incoming,omitempty" toml:"on-incoming,omitempty"`
	Features      []string         `yaml:"features,omitempty" toml:"features,omitempty"`
	InvarDefaults InvarConfig      `yaml:"invar-defaults,omitempty" toml:"invar-defaults,omitempty"`
}

// WithDefaults returns a copy of u with OnIncoming defaulted to Update.
func (u UseThundercloudConfig) WithDefaults() UseThundercloudConfig {
	if u.OnIncoming == "" {
		u.OnIncoming = OnIncomingUpdate
	}
	return u
}

// NicheTriggers is the per-niche entry derived from the project's
// psychotropic section: its name, what it waits for, the reverse edge
// (what it triggers, computed at index time — see internal/cargo/psychotropic),
// and how to locate its thundercloud.
type NicheTriggers struct {
	Name                 string
	WaitFor              []string
	Triggers             []string
	UseThundercloud      *UseThundercloudConfig
	UseThundercloudPath  string
}
