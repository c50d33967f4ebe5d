// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package scaffoldtpl

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.tmpl
var fs embed.FS

// TemplateName identifies an available template.
type TemplateName string

const (
	// ProjectManifest is the starter CargoCult.toml written by `cargocult init`.
	ProjectManifest TemplateName = "project.toml.tmpl"

	// NicheSettings is a single niche's igor-settings.toml, declaring where
	// its thundercloud lives.
	NicheSettings TemplateName = "niche_settings.toml.tmpl"
)

// ProjectManifestData is the data for the ProjectManifest template.
type ProjectManifestData struct {
	NichesDirectory string
	IgorSettings    string
	FirstNiche      string
}

// NicheSettingsData is the data for the NicheSettings template.
type NicheSettingsData struct {
	ThundercloudDirectory string
}

// GetRaw returns the raw template content without processing.
func GetRaw(name TemplateName) ([]byte, error) {
	return fs.ReadFile(string(name))
}

// Render renders a template with the given data.
func Render(name TemplateName, data any) (string, error) {
	content, err := fs.ReadFile(string(name))
	if err != nil {
		return "", fmt.Errorf("scaffoldtpl: read template %s: %w", name, err)
	}

	tmpl, err := template.New(string(name)).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("scaffoldtpl: parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("scaffoldtpl: execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// List returns all available template names.
func List() []TemplateName {
	return []TemplateName{ProjectManifest, NicheSettings}
}
