// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package niche implements the per-niche driver: resolving a niche's
// UseThundercloudConfig, locating its thundercloud directory, and invoking
// the composition engine. It is the unit of work the orchestrator
// (internal/cargo/scheduler) schedules one instance of per niche name.
package niche

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gizzahub/cargocult/internal/cargo/config"
	"github.com/gizzahub/cargocult/internal/cargo/engine"
	"github.com/gizzahub/cargocult/internal/cargo/fsys"
	"github.com/gizzahub/cargocult/internal/cargo/interpolate"
	cargopath "github.com/gizzahub/cargocult/internal/cargo/path"
)

// settingsFile is the typed deserialization target for a niche's
// `<igor-settings>.toml`/`.yaml` file: a single `[use-thundercloud]` table.
type settingsFile struct {
	UseThundercloud config.UseThundercloudConfig `yaml:"use-thundercloud" toml:"use-thundercloud"`
}

// Driver holds the configuration shared by every niche it drives: the
// project's root and filesystem, where niches live, the process-wide
// invar default, and where git-remote thundercloud checkouts are cached on
// disk. One Driver is constructed per orchestrator run and its Drive method
// is called concurrently by the scheduler, so Driver itself must not be
// mutated after construction.
type Driver struct {
	Logger         *slog.Logger
	ProjectFS      fsys.FileSystem
	ProjectRoot    cargopath.Absolute
	Workspace      cargopath.Absolute // {{WORKSPACE}} interpolation root; defaults to ProjectRoot.Parent()
	NichesDir      cargopath.Absolute
	IgorSettings   string // base file name, e.g. "igor-thettingth"
	ProcessDefault config.InvarConfig
	CacheDir       string // real on-disk directory for git clone-or-pull checkouts
}

// logger returns d.Logger, or the default logger if unset, so every method
// can log safely regardless of whether the Driver was constructed with one.
func (d *Driver) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// Drive runs niche name to completion: resolving its settings, locating its
// thundercloud, and handing both off to engine.ProcessNiche. inline is the
// psychotropic entry's inline UseThundercloudConfig if the cue declared one
// directly; settingsPath is the referenced settings path otherwise (both as
// returned by psychotropic.Index.UseThundercloud).
func (d *Driver) Drive(ctx context.Context, name string, inline *config.UseThundercloudConfig, settingsPath string) error {
	logger := d.logger()

	use, err := d.resolveUseThundercloud(ctx, name, inline, settingsPath)
	if err != nil {
		logger.Error("skipping niche: could not resolve use-thundercloud", "niche", name, "err", err)
		return nil
	}
	use = use.WithDefaults()

	thunderFS, thunderDir, thundercloudDefaults, ok, err := d.resolveThundercloud(ctx, use)
	if err != nil {
		logger.Error("skipping niche: thundercloud resolution failed", "niche", name, "err", err)
		return nil
	}
	if !ok {
		logger.Warn("skipping niche: no thundercloud directory resolved", "niche", name)
		return nil
	}

	invarDir := d.NichesDir.JoinSingle(mustSingle(name)).Join(invarRel)

	tc := config.NewThunderConfig(
		use,
		d.ProcessDefault,
		thundercloudDefaults,
		thunderDir,
		invarDir,
		d.ProjectRoot,
		thunderFS,
		d.ProjectFS,
	)

	return engine.ProcessNiche(ctx, logger, tc)
}

var invarRel = cargopath.MustRelative("invar")

// resolveUseThundercloud returns the niche's UseThundercloudConfig: inline
// if the psychotropic cue declared one directly, else read from
// settingsPath (or, if that is empty, the default
// `<niches-directory>/<niche>/<igor-settings>.toml`).
func (d *Driver) resolveUseThundercloud(ctx context.Context, name string, inline *config.UseThundercloudConfig, settingsPath string) (config.UseThundercloudConfig, error) {
	if inline != nil {
		return *inline, nil
	}

	path := settingsPath
	if path == "" {
		path = d.NichesDir.JoinSingle(mustSingle(name)).String() + "/" + d.IgorSettings + ".toml"
	}
	abs, err := cargopath.NewAbsolute(path)
	if err != nil {
		return config.UseThundercloudConfig{}, fmt.Errorf("niche: settings path %q: %w", path, err)
	}

	content, err := d.ProjectFS.GetContent(ctx, abs)
	if err != nil {
		return config.UseThundercloudConfig{}, fmt.Errorf("niche: reading settings %s: %w", abs, err)
	}

	var sf settingsFile
	if err := config.Decode(abs.FileName(), []byte(content), &sf); err != nil {
		return config.UseThundercloudConfig{}, fmt.Errorf("niche: decoding settings %s: %w", abs, err)
	}
	return sf.UseThundercloud, nil
}

// resolveThundercloud implements the three-way resolution order: a local
// directory, a git remote fetched by digest, or skip.
func (d *Driver) resolveThundercloud(ctx context.Context, use config.UseThundercloudConfig) (fs fsys.FileSystem, dir cargopath.Absolute, thundercloudDefaults config.InvarConfig, ok bool, err error) {
	if use.Directory != "" {
		workspace := d.Workspace
		if workspace.String() == "" {
			workspace = d.ProjectRoot.Parent()
		}
		props := map[string]string{"PROJECT": d.ProjectRoot.String(), "WORKSPACE": workspace.String()}
		interpolated := interpolate.Line(use.Directory, props)
		abs, parseErr := cargopath.NewAbsolute(interpolated)
		if parseErr == nil {
			pt, statErr := d.ProjectFS.PathType(ctx, abs)
			if statErr == nil && pt == fsys.Directory {
				defaults, descErr := d.readThundercloudDefaults(ctx, d.ProjectFS, abs)
				if descErr != nil {
					d.logger().Warn("thundercloud descriptor unreadable, using empty invar-defaults", "dir", abs.String(), "err", descErr)
				}
				return d.ProjectFS, abs, defaults, true, nil
			}
		}
	}

	if use.GitRemote != nil {
		fetcher := newGitFetcher(d.CacheDir)
		checkout, fetchErr := fetcher.fetch(ctx, *use.GitRemote, use.OnIncoming)
		if fetchErr != nil {
			return nil, cargopath.Absolute{}, config.InvarConfig{}, false, fetchErr
		}
		abs, parseErr := cargopath.NewAbsolute(checkout)
		if parseErr != nil {
			return nil, cargopath.Absolute{}, config.InvarConfig{}, false, parseErr
		}
		if use.GitRemote.SubPath != "" {
			subRel, relErr := cargopath.NewRelative(use.GitRemote.SubPath)
			if relErr == nil {
				abs = abs.Join(subRel)
			}
		}
		real := fsys.NewReal()
		defaults, descErr := d.readThundercloudDefaults(ctx, real, abs)
		if descErr != nil {
			d.logger().Warn("thundercloud descriptor unreadable, using empty invar-defaults", "dir", abs.String(), "err", descErr)
		}
		return real, abs, defaults, true, nil
	}

	return nil, cargopath.Absolute{}, config.InvarConfig{}, false, nil
}

// readThundercloudDefaults decodes thundercloud.toml/thundercloud.yaml at
// the root of dir, returning its invar-defaults. A missing descriptor is
// not an error: an empty InvarConfig contributes nothing to the cascade.
func (d *Driver) readThundercloudDefaults(ctx context.Context, fs fsys.FileSystem, dir cargopath.Absolute) (config.InvarConfig, error) {
	for _, name := range []string{"thundercloud.toml", "thundercloud.yaml"} {
		single := mustSingle(name)
		abs := dir.JoinSingle(single)
		pt, err := fs.PathType(ctx, abs)
		if err != nil || pt != fsys.File {
			continue
		}
		content, err := fs.GetContent(ctx, abs)
		if err != nil {
			return config.InvarConfig{}, err
		}
		desc, err := config.DecodeThundercloudDescriptor(name, []byte(content))
		if err != nil {
			return config.InvarConfig{}, err
		}
		return desc.InvarDefaults, nil
	}
	return config.InvarConfig{}, nil
}

func mustSingle(c string) cargopath.Single {
	s, err := cargopath.TryNewSingle(c)
	if err != nil {
		panic(err)
	}
	return s
}
