// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package wizard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/gizzahub/cargocult/internal/cargo/config"
)

// NicheResult is what NicheCreateWizard.Run produces: a new niche's
// name, its psychotropic predecessors, and how it locates its
// thundercloud.
type NicheResult struct {
	Name            string
	WaitFor         []string
	UseThundercloud config.UseThundercloudConfig
}

// NicheCreateWizard walks the user through authoring one niche entry.
type NicheCreateWizard struct {
	printer *Printer
	result  NicheResult
}

// NewNicheCreateWizard creates a niche-authoring wizard.
func NewNicheCreateWizard() *NicheCreateWizard {
	return &NicheCreateWizard{printer: NewPrinter()}
}

// Run executes the form, returning the authored niche or an error if the
// user cancels.
func (w *NicheCreateWizard) Run(_ context.Context) (NicheResult, error) {
	w.printer.PrintHeader(IconGear, "Niche Creation Wizard")

	if err := w.runIdentityStep(); err != nil {
		return NicheResult{}, err
	}
	if err := w.runThundercloudSourceStep(); err != nil {
		return NicheResult{}, err
	}
	if err := w.runFeaturesStep(); err != nil {
		return NicheResult{}, err
	}

	w.printSummary()

	var confirm bool
	confirmForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save niche?").
				Description("Write this niche's settings file").
				Affirmative("Yes, save").
				Negative("No, cancel").
				Value(&confirm),
		),
	).WithTheme(huh.ThemeCharm())

	if err := confirmForm.Run(); err != nil {
		return NicheResult{}, err
	}
	if !confirm {
		return NicheResult{}, fmt.Errorf("niche creation cancelled")
	}

	return w.result, nil
}

func (w *NicheCreateWizard) runIdentityStep() error {
	var name, waitFor string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Niche Name").
				Description("Directory name under the niches directory").
				Placeholder("workshop").
				Validate(ValidateNicheName).
				Value(&name),

			huh.NewInput().
				Title("Wait For").
				Description("Comma-separated predecessor niches (leave empty for none)").
				Placeholder("infra, shared-config").
				Validate(ValidateWaitFor).
				Value(&waitFor),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		return err
	}

	w.result.Name = name
	w.result.WaitFor = SplitWaitFor(waitFor)
	return nil
}

func (w *NicheCreateWizard) runThundercloudSourceStep() error {
	var source string

	sourceForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Thundercloud Source").
				Description("Where does this niche's thundercloud come from?").
				Options(
					huh.NewOption("Local directory", "directory"),
					huh.NewOption("Git remote", "git"),
				).
				Value(&source),
		),
	).WithTheme(huh.ThemeCharm())

	if err := sourceForm.Run(); err != nil {
		return err
	}

	switch source {
	case "directory":
		var dir string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Directory").
					Description("{{PROJECT}}/{{WORKSPACE}} placeholders are interpolated").
					Placeholder("{{WORKSPACE}}/thunderclouds/base").
					Validate(ValidateDirectoryOrEmpty).
					Value(&dir),
			),
		).WithTheme(huh.ThemeCharm())
		if err := form.Run(); err != nil {
			return err
		}
		w.result.UseThundercloud.Directory = dir

	case "git":
		var fetchURL, revision, onIncoming string
		revision = "main"
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Fetch URL").
					Validate(ValidateFetchURL).
					Value(&fetchURL),

				huh.NewInput().
					Title("Revision").
					Placeholder("main").
					Value(&revision),

				huh.NewSelect[string]().
					Title("On Incoming").
					Description("What to do if the checkout already exists on disk").
					Options(
						huh.NewOption("Update (fetch + checkout)", string(config.OnIncomingUpdate)),
						huh.NewOption("Ignore (reuse as-is)", string(config.OnIncomingIgnore)),
						huh.NewOption("Warn (fetch + checkout, as Update)", string(config.OnIncomingWarn)),
						huh.NewOption("Fail", string(config.OnIncomingFail)),
					).
					Value(&onIncoming),
			),
		).WithTheme(huh.ThemeCharm())
		if err := form.Run(); err != nil {
			return err
		}

		w.result.UseThundercloud.GitRemote = &config.GitRemoteConfig{
			FetchURL: fetchURL,
			Revision: revision,
		}
		w.result.UseThundercloud.OnIncoming = config.OnIncoming(onIncoming)
	}

	return nil
}

func (w *NicheCreateWizard) runFeaturesStep() error {
	var features string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Features").
				Description("Comma-separated feature flags for bolt option selection (optional)").
				Placeholder("docker, ci").
				Value(&features),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		return err
	}

	w.result.UseThundercloud.Features = SplitWaitFor(features)
	return nil
}

func (w *NicheCreateWizard) printSummary() {
	keys := []string{"Name", "Wait For", "Directory", "Fetch URL", "Revision", "On Incoming", "Features"}

	items := map[string]string{
		"Name": w.result.Name,
	}
	if len(w.result.WaitFor) > 0 {
		items["Wait For"] = fmt.Sprint(w.result.WaitFor)
	}
	if w.result.UseThundercloud.Directory != "" {
		items["Directory"] = w.result.UseThundercloud.Directory
	}
	if w.result.UseThundercloud.GitRemote != nil {
		items["Fetch URL"] = w.result.UseThundercloud.GitRemote.FetchURL
		items["Revision"] = w.result.UseThundercloud.GitRemote.Revision
		items["On Incoming"] = string(w.result.UseThundercloud.OnIncoming)
	}
	if len(w.result.UseThundercloud.Features) > 0 {
		items["Features"] = fmt.Sprint(w.result.UseThundercloud.Features)
	}

	w.printer.PrintOrderedSummary("Niche Summary", keys, items)
}
