// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gizzahub/cargocult/internal/cargo/config"
	"github.com/gizzahub/cargocult/internal/cargo/fsys"
	"github.com/gizzahub/cargocult/internal/cargo/niche"
	cargopath "github.com/gizzahub/cargocult/internal/cargo/path"
	"github.com/gizzahub/cargocult/internal/cargo/psychotropic"
	"github.com/gizzahub/cargocult/internal/cargo/scheduler"
	"github.com/gizzahub/cargocult/internal/cargocli"
)

var (
	runProjectRoot string
	runNiches      string
	runPermits     int64
	runFormat      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every configured niche against the project root",
	Long: cargocli.QuickStartHelp(`  # Run with defaults (current directory, ./yeth-marthter)
  cargocult run

  # Run against an explicit project root and niches directory
  cargocult run --project-root ./my-project --niches ./my-project/niches`),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runProjectRoot, "project-root", ".", "project root directory")
	runCmd.Flags().StringVar(&runNiches, "niches", "", "niches directory (default: <project-root>/<niches-directory>)")
	runCmd.Flags().Int64Var(&runPermits, "permits", 5, "maximum number of niches processed concurrently")
	runCmd.Flags().StringVar(&runFormat, "format", "default", "result summary format: default, json")
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := cargocli.ValidateFormat(runFormat, cargocli.RunFormats); err != nil {
		return err
	}

	absRoot, err := filepath.Abs(runProjectRoot)
	if err != nil {
		return fmt.Errorf("cargocult: resolving project root: %w", err)
	}
	projectRoot := cargopath.MustAbsolute(absRoot)

	realFS := fsys.NewReal()
	logger := newLogger()

	projectConfig, err := loadProjectConfig(realFS, projectRoot)
	if err != nil {
		return fmt.Errorf("cargocult: loading project config: %w", err)
	}

	nichesDir := projectRoot.JoinSingle(mustSingleLocal(projectConfig.NichesDirectory))
	if runNiches != "" {
		absNiches, err := filepath.Abs(runNiches)
		if err != nil {
			return fmt.Errorf("cargocult: resolving niches directory: %w", err)
		}
		nichesDir = cargopath.MustAbsolute(absNiches)
	}

	cues := make([]psychotropic.Cue, 0, len(projectConfig.Psychotropic.Cues))
	for _, c := range projectConfig.Psychotropic.Cues {
		cues = append(cues, psychotropic.Cue{
			Name:            c.Name,
			WaitFor:         c.WaitFor,
			UseThundercloud: c.UseThundercloud,
		})
	}

	idx, err := psychotropic.Build(cues)
	if err != nil {
		return fmt.Errorf("cargocult: psychotropic graph: %w", err)
	}

	processDefault := config.NewInvarConfig()
	if merged, changed := processDefault.Merge(projectConfig.InvarDefaults); changed {
		processDefault = merged
	}

	driver := &niche.Driver{
		Logger:         logger,
		ProjectFS:      realFS,
		ProjectRoot:    projectRoot,
		Workspace:      projectRoot.Parent(),
		NichesDir:      nichesDir,
		IgorSettings:   projectConfig.IgorSettings,
		ProcessDefault: processDefault,
		CacheDir:       filepath.Join(os.TempDir(), "cargocult-thunderclouds"),
	}

	results, err := scheduler.Run(cmd.Context(), idx, runPermits, func(ctx context.Context, name string) error {
		use, settingsPath := idx.UseThundercloud(name)
		return driver.Drive(ctx, name, use, settingsPath)
	})
	if err != nil {
		return fmt.Errorf("cargocult: orchestrator: %w", err)
	}

	return printRunResults(cmd, results)
}

// loadProjectConfig reads CargoCult.toml/CargoCult.yaml at root, applying
// its defaults. A missing manifest is not an error: the all-defaults
// ProjectConfig is used instead.
func loadProjectConfig(fs fsys.FileSystem, root cargopath.Absolute) (config.ProjectConfig, error) {
	for _, name := range []string{"CargoCult.toml", "CargoCult.yaml"} {
		abs := root.JoinSingle(mustSingleLocal(name))
		pt, err := fs.PathType(cmdContext(), abs)
		if err != nil || pt != fsys.File {
			continue
		}
		content, err := fs.GetContent(cmdContext(), abs)
		if err != nil {
			return config.ProjectConfig{}, err
		}
		return config.DecodeProjectConfig(name, []byte(content))
	}
	return config.ProjectConfig{}.WithDefaults(), nil
}

func cmdContext() context.Context { return context.Background() }

func mustSingleLocal(c string) cargopath.Single {
	s, err := cargopath.TryNewSingle(c)
	if err != nil {
		panic(fmt.Sprintf("cargocult: invalid path component %q: %v", c, err))
	}
	return s
}

func printRunResults(cmd *cobra.Command, results []scheduler.Result) error {
	if runFormat == "json" {
		return cargocli.WriteJSON(cmd.OutOrStdout(), results, verbose)
	}

	failed := 0
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = "error: " + r.Err.Error()
			failed++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", r.Niche, status)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d niche(s), %d failed\n", len(results), failed)
	return nil
}
