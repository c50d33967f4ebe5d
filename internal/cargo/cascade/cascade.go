// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package cascade implements the config cascade: a copy-on-write stack of
// InvarConfig layers applied outermost-first, using value semantics
// throughout rather than in-place pointer mutation.
package cascade

import "github.com/gizzahub/cargocult/internal/cargo/config"

// Stack carries the single "current effective" InvarConfig as layers are
// pushed onto it. Each push returns a new Stack (copy-on-write); the
// original is left untouched so sibling directories can branch from the
// same parent stack without interference.
type Stack struct {
	current config.InvarConfig
}

// NewStack seeds a Stack with the process-level default, the cascade's
// outermost layer.
func NewStack(processDefault config.InvarConfig) Stack {
	return Stack{current: processDefault}
}

// Current returns the stack's effective InvarConfig.
func (s Stack) Current() config.InvarConfig {
	return s.current
}

// Push layers other onto the stack's current config and returns the
// resulting Stack plus whether anything changed, per InvarConfig.Merge's
// copy-on-write contract.
func (s Stack) Push(other config.InvarConfig) (Stack, bool) {
	merged, changed := s.current.Merge(other)
	if !changed {
		return s, false
	}
	return Stack{current: merged}, true
}

// PushDirectoryDefaults layers the thundercloud's invar-defaults, then the
// niche's UseThundercloud invar-defaults, in order, returning the
// resulting Stack. It is applied once per niche, before directory descent
// begins.
func PushDirectoryDefaults(processDefault, thundercloudDefaults, useThundercloudDefaults config.InvarConfig) Stack {
	s := NewStack(processDefault)
	s, _ = s.Push(thundercloudDefaults)
	s, _ = s.Push(useThundercloudDefaults)
	return s
}
