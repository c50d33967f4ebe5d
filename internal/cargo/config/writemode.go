// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package config

import "github.com/gizzahub/cargocult/internal/cargo/fsys"

// ToFSWriteMode converts the serialized WriteMode (a string enum, so it
// reads cleanly from TOML/YAML) into the fsys package's int-enum WriteMode,
// which OpenTarget actually consumes. The two stay separate types because
// config needs a human-readable, serializable form while fsys needs a
// compact comparable one; this is the one place that bridges them.
func (w WriteMode) ToFSWriteMode() fsys.WriteMode {
	switch w {
	case WriteNew:
		return fsys.WriteNew
	case Ignore:
		return fsys.Ignore
	default:
		return fsys.Overwrite
	}
}
