// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package niche

import (
	"context"
	"testing"

	"github.com/gizzahub/cargocult/internal/cargo/config"
	"github.com/gizzahub/cargocult/internal/cargo/fsys"
	cargopath "github.com/gizzahub/cargocult/internal/cargo/path"
)

func TestDriveResolvesLocalDirectoryAndProcessesNiche(t *testing.T) {
	fx := fsys.NewFixture()
	fx.PutFile(cargopath.MustAbsolute("/tc/thundercloud.yaml"), []string{
		"niche:",
		"  name: workshop-clock",
	})
	fx.PutFile(cargopath.MustAbsolute("/tc/cumulus/clock.yaml"), []string{"raising: dawn"})

	d := &Driver{
		ProjectFS:      fx,
		ProjectRoot:    cargopath.MustAbsolute("/project"),
		NichesDir:      cargopath.MustAbsolute("/niches"),
		IgorSettings:   "igor-thettingth",
		ProcessDefault: config.NewInvarConfig(),
	}

	inline := &config.UseThundercloudConfig{Directory: "/tc"}
	if err := d.Drive(context.Background(), "workshop", inline, ""); err != nil {
		t.Fatalf("Drive() error = %v", err)
	}

	content, err := fx.GetContent(context.Background(), cargopath.MustAbsolute("/project/clock.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if content != "raising: dawn\n" {
		t.Errorf("content = %q", content)
	}
}

func TestDriveReadsNicheSettingsFileWhenNoInlineConfig(t *testing.T) {
	fx := fsys.NewFixture()
	fx.PutFile(cargopath.MustAbsolute("/tc/cumulus/clock.yaml"), []string{"raising: dawn"})
	fx.PutFile(cargopath.MustAbsolute("/niches/workshop/igor-thettingth.toml"), []string{
		`[use-thundercloud]`,
		`directory = "/tc"`,
	})

	d := &Driver{
		ProjectFS:      fx,
		ProjectRoot:    cargopath.MustAbsolute("/project"),
		NichesDir:      cargopath.MustAbsolute("/niches"),
		IgorSettings:   "igor-thettingth",
		ProcessDefault: config.NewInvarConfig(),
	}

	if err := d.Drive(context.Background(), "workshop", nil, ""); err != nil {
		t.Fatalf("Drive() error = %v", err)
	}

	content, err := fx.GetContent(context.Background(), cargopath.MustAbsolute("/project/clock.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if content != "raising: dawn\n" {
		t.Errorf("content = %q", content)
	}
}

func TestDriveSkipsSilentlyWhenNoThundercloudResolves(t *testing.T) {
	fx := fsys.NewFixture()
	d := &Driver{
		ProjectFS:      fx,
		ProjectRoot:    cargopath.MustAbsolute("/project"),
		NichesDir:      cargopath.MustAbsolute("/niches"),
		IgorSettings:   "igor-thettingth",
		ProcessDefault: config.NewInvarConfig(),
	}

	inline := &config.UseThundercloudConfig{} // no Directory, no GitRemote
	if err := d.Drive(context.Background(), "workshop", inline, ""); err != nil {
		t.Fatalf("Drive() error = %v, want nil (skip is not fatal)", err)
	}

	pt, err := fx.PathType(context.Background(), cargopath.MustAbsolute("/project/clock.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if pt != fsys.Missing {
		t.Errorf("expected nothing written, got pathType=%v", pt)
	}
}

func TestDigestOfIsStableAndHex(t *testing.T) {
	a := digestOf("https://example.invalid/repo.git")
	b := digestOf("https://example.invalid/repo.git")
	if a != b {
		t.Fatalf("digestOf not stable: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("digestOf() length = %d, want 64 (hex sha256)", len(a))
	}
}
