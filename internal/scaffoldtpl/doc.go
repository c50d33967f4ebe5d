// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package scaffoldtpl provides embedded templates for the starter files
// `cargocult init` writes: the project manifest and a niche's settings
// file.
//
// # Templates
//
//   - Project manifest (CargoCult.toml)
//   - Niche settings (igor-settings.toml)
//
// # Usage
//
//	content, err := scaffoldtpl.Render(scaffoldtpl.ProjectManifest, data)
package scaffoldtpl
