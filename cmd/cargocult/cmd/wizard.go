// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/gizzahub/cargocult/internal/cargo/config"
	"github.com/gizzahub/cargocult/internal/cargo/fsys"
	"github.com/gizzahub/cargocult/internal/cargo/niche"
	cargopath "github.com/gizzahub/cargocult/internal/cargo/path"
	"github.com/gizzahub/cargocult/internal/cargocli"
	"github.com/gizzahub/cargocult/internal/wizard"
)

var wizardRunAfter bool

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactively author a niche's psychotropic cue and thundercloud source",
	Long: cargocli.QuickStartHelp(`  # Author a new niche
  cargocult wizard

  # Author a niche and run it immediately
  cargocult wizard --run`),
	RunE: runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)
	wizardCmd.Flags().BoolVar(&wizardRunAfter, "run", false, "run the new niche immediately after authoring it")
}

type nicheSettingsFile struct {
	UseThundercloud config.UseThundercloudConfig `toml:"use-thundercloud"`
}

func runWizard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	result, err := wizard.NewNicheCreateWizard().Run(ctx)
	if err != nil {
		return err
	}

	projectConfig, err := loadProjectConfig(fsys.NewReal(), mustAbsCwd())
	if err != nil {
		return fmt.Errorf("cargocult: loading project config: %w", err)
	}

	nicheDir := filepath.Join(".", projectConfig.NichesDirectory, result.Name)
	if err := os.MkdirAll(nicheDir, 0o755); err != nil {
		return fmt.Errorf("cargocult: creating %s: %w", nicheDir, err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(nicheSettingsFile{UseThundercloud: result.UseThundercloud}); err != nil {
		return fmt.Errorf("cargocult: encoding niche settings: %w", err)
	}
	settingsPath := filepath.Join(nicheDir, projectConfig.IgorSettings+".toml")
	if err := os.WriteFile(settingsPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cargocult: writing %s: %w", settingsPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", settingsPath)

	if !wizardRunAfter {
		fmt.Fprintf(cmd.OutOrStdout(), "Add \"%s\" to CargoCult.toml's [[psychotropic.cues]] to schedule it.\n", result.Name)
		return nil
	}

	return runWizardNicheNow(ctx, projectConfig, result)
}

func runWizardNicheNow(ctx context.Context, projectConfig config.ProjectConfig, result wizard.NicheResult) error {
	absRoot, err := filepath.Abs(".")
	if err != nil {
		return fmt.Errorf("cargocult: resolving project root: %w", err)
	}
	projectRoot := cargopath.MustAbsolute(absRoot)
	nichesDir := projectRoot.JoinSingle(mustSingleLocal(projectConfig.NichesDirectory))

	processDefault := config.NewInvarConfig()
	if merged, changed := processDefault.Merge(projectConfig.InvarDefaults); changed {
		processDefault = merged
	}

	driver := &niche.Driver{
		Logger:         newLogger(),
		ProjectFS:      fsys.NewReal(),
		ProjectRoot:    projectRoot,
		Workspace:      projectRoot.Parent(),
		NichesDir:      nichesDir,
		IgorSettings:   projectConfig.IgorSettings,
		ProcessDefault: processDefault,
		CacheDir:       filepath.Join(os.TempDir(), "cargocult-thunderclouds"),
	}

	use := result.UseThundercloud
	return wizard.RunWithStatus(ctx, []string{result.Name}, func(ctx context.Context, name string) error {
		return driver.Drive(ctx, name, &use, "")
	})
}

func mustAbsCwd() cargopath.Absolute {
	cwd, err := os.Getwd()
	if err != nil {
		panic(fmt.Sprintf("cargocult: getwd: %v", err))
	}
	return cargopath.MustAbsolute(cwd)
}
