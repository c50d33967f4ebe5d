// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package config holds the typed configuration records consumed by the
// composition engine: InvarConfig/InvarState, UseThundercloudConfig,
// GitRemoteConfig, ThunderConfig, and the project-level file records. Merge
// operations favor a copy-on-write discriminator (an explicit changed bool)
// over in-place pointer mutation, so callers can cheaply tell whether a
// merge actually changed anything and skip redundant downstream work.
package config

import "maps"

// WriteMode controls how a rendered file is written when its target exists.
type WriteMode string

const (
	Overwrite WriteMode = "Overwrite"
	WriteNew  WriteMode = "WriteNew"
	Ignore    WriteMode = "Ignore"
)

// InvarConfig is the full per-bolt/per-directory configuration record. Every
// field is optional; nil/empty means "not set at this layer" and defaults
// are applied once, at the read boundary (NewInvarConfig), not scattered
// across call sites.
type InvarConfig struct {
	WriteMode   *WriteMode        `yaml:"write-mode,omitempty" toml:"write-mode,omitempty"`
	Executable  *bool             `yaml:"executable,omitempty" toml:"executable,omitempty"`
	Interpolate *bool             `yaml:"interpolate,omitempty" toml:"interpolate,omitempty"`
	Props       map[string]string `yaml:"props,omitempty" toml:"props,omitempty"`
	Target      *string           `yaml:"target,omitempty" toml:"target,omitempty"`
}

// NewInvarConfig returns an InvarConfig with every field defaulted:
// writeMode=Overwrite, executable=false, interpolate=true, props={},
// target=unset.
func NewInvarConfig() InvarConfig {
	wm := Overwrite
	exec := false
	interp := true
	return InvarConfig{
		WriteMode:   &wm,
		Executable:  &exec,
		Interpolate: &interp,
		Props:       map[string]string{},
	}
}

// EffectiveWriteMode returns the configured write mode, or Overwrite if unset.
func (c InvarConfig) EffectiveWriteMode() WriteMode {
	if c.WriteMode == nil {
		return Overwrite
	}
	return *c.WriteMode
}

// EffectiveExecutable returns the configured executable bit, or false if unset.
func (c InvarConfig) EffectiveExecutable() bool {
	return c.Executable != nil && *c.Executable
}

// EffectiveInterpolate returns the configured interpolate flag, defaulting
// to true when unset.
func (c InvarConfig) EffectiveInterpolate() bool {
	if c.Interpolate == nil {
		return true
	}
	return *c.Interpolate
}

// EffectiveProps returns the configured property map, or an empty map.
func (c InvarConfig) EffectiveProps() map[string]string {
	if c.Props == nil {
		return map[string]string{}
	}
	return c.Props
}

// EffectiveTarget returns the configured target override and whether it was set.
func (c InvarConfig) EffectiveTarget() (string, bool) {
	if c.Target == nil {
		return "", false
	}
	return *c.Target, true
}

// State returns the subset of c that propagates down the directory walk:
// everything except Target, which only applies at the point a config bolt
// is consumed.
func (c InvarConfig) State() InvarConfig {
	c.Target = nil
	return c
}

// Merge layers other onto c: for each scalar field, other wins if present;
// for Props, entries are unioned with other's values winning on conflict.
// The second return value is false (borrowed/unchanged) when no field of c
// actually changed, so callers can cheaply skip redundant downstream work.
func (c InvarConfig) Merge(other InvarConfig) (InvarConfig, bool) {
	changed := false
	result := c

	if other.WriteMode != nil && (c.WriteMode == nil || *c.WriteMode != *other.WriteMode) {
		wm := *other.WriteMode
		result.WriteMode = &wm
		changed = true
	}
	if other.Executable != nil && (c.Executable == nil || *c.Executable != *other.Executable) {
		e := *other.Executable
		result.Executable = &e
		changed = true
	}
	if other.Interpolate != nil && (c.Interpolate == nil || *c.Interpolate != *other.Interpolate) {
		i := *other.Interpolate
		result.Interpolate = &i
		changed = true
	}
	if other.Target != nil && (c.Target == nil || *c.Target != *other.Target) {
		t := *other.Target
		result.Target = &t
		changed = true
	}
	if len(other.Props) > 0 {
		merged := maps.Clone(c.Props)
		if merged == nil {
			merged = map[string]string{}
		}
		propsChanged := false
		for k, v := range other.Props {
			if existing, ok := merged[k]; !ok || existing != v {
				merged[k] = v
				propsChanged = true
			}
		}
		if propsChanged {
			result.Props = merged
			changed = true
		}
	}

	if !changed {
		return c, false
	}
	return result, true
}
