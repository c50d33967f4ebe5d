// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package scaffoldtpl

import "testing"

func TestRenderProjectManifest(t *testing.T) {
	out, err := Render(ProjectManifest, ProjectManifestData{
		NichesDirectory: "yeth-marthter",
		IgorSettings:    "igor-thettingth",
		FirstNiche:      "workshop",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	const want = `niches-directory = "yeth-marthter"
igor-settings = "igor-thettingth"

[[psychotropic.cues]]
name = "workshop"
`
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestRenderNicheSettings(t *testing.T) {
	out, err := Render(NicheSettings, NicheSettingsData{ThundercloudDirectory: "/tc"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	const want = `[use-thundercloud]
directory = "/tc"
`
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestListIncludesBothTemplates(t *testing.T) {
	names := List()
	if len(names) != 2 {
		t.Fatalf("want 2 templates, got %d", len(names))
	}
}
