// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gizzahub/cargocult/internal/cargocli"
	"github.com/gizzahub/cargocult/internal/scaffoldtpl"
)

var (
	initNiche string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a starter CargoCult.toml and niches directory",
	Long: cargocli.QuickStartHelp(`  # Scaffold in the current directory
  cargocult init

  # Scaffold with a different first niche name
  cargocult init --niche backend`),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initNiche, "niche", "workshop", "name of the first niche to scaffold")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cargocult: resolving current directory: %w", err)
	}

	manifestPath := filepath.Join(cwd, "CargoCult.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("cargocult: %s already exists", manifestPath)
	}

	manifest, err := scaffoldtpl.Render(scaffoldtpl.ProjectManifest, scaffoldtpl.ProjectManifestData{
		NichesDirectory: "yeth-marthter",
		IgorSettings:    "igor-thettingth",
		FirstNiche:      initNiche,
	})
	if err != nil {
		return fmt.Errorf("cargocult: rendering project manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("cargocult: writing %s: %w", manifestPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", manifestPath)

	nicheDir := filepath.Join(cwd, "yeth-marthter", initNiche)
	if err := os.MkdirAll(nicheDir, 0o755); err != nil {
		return fmt.Errorf("cargocult: creating %s: %w", nicheDir, err)
	}

	settings, err := scaffoldtpl.Render(scaffoldtpl.NicheSettings, scaffoldtpl.NicheSettingsData{
		ThundercloudDirectory: "../thundercloud",
	})
	if err != nil {
		return fmt.Errorf("cargocult: rendering niche settings: %w", err)
	}
	settingsPath := filepath.Join(nicheDir, "igor-thettingth.toml")
	if err := os.WriteFile(settingsPath, []byte(settings), 0o644); err != nil {
		return fmt.Errorf("cargocult: writing %s: %w", settingsPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", settingsPath)

	return nil
}
