// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package engine wires the directory-pair walker, bolt merger, config
// cascade, and option renderer into ProcessNiche, the single per-niche
// entry point the niche driver (internal/cargo/niche) calls: take a fully
// resolved configuration and drive the whole pipeline to completion for
// one unit of work.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gizzahub/cargocult/internal/cargo/bolt"
	"github.com/gizzahub/cargocult/internal/cargo/cascade"
	"github.com/gizzahub/cargocult/internal/cargo/config"
	"github.com/gizzahub/cargocult/internal/cargo/interpolate"
	"github.com/gizzahub/cargocult/internal/cargo/merge"
	cargopath "github.com/gizzahub/cargocult/internal/cargo/path"
	"github.com/gizzahub/cargocult/internal/cargo/render"
	"github.com/gizzahub/cargocult/internal/cargo/walk"
)

// ProcessNiche runs the full pipeline for one niche's ThunderConfig:
// walking cumulus and invar together, merging each target bucket,
// cascading config layers, and rendering every surviving option. Errors
// for individual files are logged and do not abort the niche; the
// returned error is reserved for walk-level failures (directory read
// failures, illegal bootstrap state).
func ProcessNiche(ctx context.Context, logger *slog.Logger, tc config.ThunderConfig) error {
	if logger == nil {
		logger = slog.Default()
	}

	root := cascade.NewStack(tc.DefaultInvarConfig)
	if s, changed := root.Push(tc.ThundercloudInvarDefaults); changed {
		root = s
	}
	if s, changed := root.Push(tc.UseThundercloud.InvarDefaults); changed {
		root = s
	}

	v := &nicheVisitor{
		ctx:     ctx,
		logger:  logger,
		tc:      tc,
		root:    root,
		targets: map[string]cascade.Stack{},
	}

	return walk.Walk(ctx, tc.ThundercloudFileSystem, tc.ProjectFileSystem, tc.CumulusDir, tc.InvarDir, v)
}

// nicheVisitor implements walk.Visitor, applying the config cascade and
// dispatching to render.File per target bucket.
type nicheVisitor struct {
	ctx    context.Context
	logger *slog.Logger
	tc     config.ThunderConfig

	root cascade.Stack
	// targets remembers the effective cascade stack at each directory
	// (keyed by its relative path string) so VisitFile can look it up
	// after VisitDirectory has applied any "." config bolt.
	targets map[string]cascade.Stack
}

func (v *nicheVisitor) VisitDirectory(ctx context.Context, rel, targetDir cargopath.Relative, buckets *bolt.Buckets) (cargopath.Relative, error) {
	stack := v.stackForParent(rel)

	dotBucket := buckets.Get(".")
	effectiveTarget := targetDir
	if dotBucket != nil {
		// Only the Config bolts in a "." bucket matter; any Option/Fragment/
		// Unknown bolts literally named "." are inert.
		for _, cfgBolt := range configBolts(dotBucket.Bolts) {
			invarCfg, err := v.loadConfigBolt(ctx, cfgBolt)
			if err != nil {
				v.logger.Warn("skipping unreadable directory config", "path", cfgBolt.Source.String(), "err", err)
				continue
			}
			next, changed := stack.Push(invarCfg)
			if changed {
				stack = next
			}
		}

		if target, ok := stack.Current().EffectiveTarget(); ok {
			props := stack.Current().EffectiveProps()
			interpolated := interpolate.Line(target, props)
			single, err := cargopath.TryNewSingle(interpolated)
			if err != nil {
				v.logger.Warn("retarget value is not a single path component, ignoring", "value", interpolated)
			} else {
				parentRel, err := cargopath.NewRelative(parentOf(targetDir))
				if err != nil {
					v.logger.Warn("could not compute parent of target directory, ignoring retarget", "target", targetDir.String())
				} else {
					effectiveTarget = parentRel.JoinSingle(single)
				}
			}
		}
	}

	// Target never propagates past the directory that consumed it: clear it
	// before this state reaches descendants and sibling files.
	v.targets[rel.String()] = cascade.NewStack(stack.Current().State())
	return effectiveTarget, nil
}

func (v *nicheVisitor) VisitFile(ctx context.Context, rel, targetDir cargopath.Relative, bucket *bolt.Bucket) error {
	stack := v.targets[rel.String()]

	cumulusBolts := cumulusOnly(bucket.Bolts)
	invarBolts := invarOnly(bucket.Bolts)

	for _, cfgBolt := range configBolts(bucket.Bolts) {
		invarCfg, err := v.loadConfigBolt(ctx, cfgBolt)
		if err != nil {
			v.logger.Warn("skipping unreadable file config", "path", cfgBolt.Source.String(), "err", err)
			continue
		}
		if next, changed := stack.Push(invarCfg); changed {
			stack = next
		}
	}

	partitioned := merge.Resolve(invarBolts, cumulusBolts, v.tc.UseThundercloud.Features)
	if partitioned.Option == nil {
		return nil // only fragments or config/unknown bolts survived: nothing to emit
	}

	fileName := bucket.TargetName
	if target, ok := stack.Current().EffectiveTarget(); ok {
		fileName = interpolate.Line(target, stack.Current().EffectiveProps())
	}
	single, err := cargopath.TryNewSingle(fileName)
	if err != nil {
		v.logger.Warn("illegal per-file target name, skipping", "value", fileName)
		return nil
	}
	target := v.tc.ProjectRoot.Join(targetDir).JoinSingle(single)

	req := render.Request{
		Option:     *partitioned.Option,
		Fragments:  partitioned.Fragments,
		Props:      stack.Current().EffectiveProps(),
		Target:     target,
		WriteMode:  stack.Current().EffectiveWriteMode().ToFSWriteMode(),
		Executable: stack.Current().EffectiveExecutable(),
	}

	if err := render.File(ctx, v.tc.ProjectFileSystem, v.openBoltSource, req); err != nil {
		v.logger.Error("rendering file failed", "target", target.String(), "err", err)
	}
	return nil
}

// stackForParent returns the cascade stack that applied to rel's parent
// directory, or the niche's root stack for the top-level directory.
func (v *nicheVisitor) stackForParent(rel cargopath.Relative) cascade.Stack {
	parentRel := parentOf(rel)
	if s, ok := v.targets[parentRel]; ok {
		return s
	}
	return v.root
}

// openBoltSource is the render.SourceOpener: it reads a bolt's lines from
// whichever filesystem matches its Origin.
func (v *nicheVisitor) openBoltSource(ctx context.Context, b bolt.Bolt) ([]string, error) {
	fs := v.tc.ProjectFileSystem
	if b.Origin == bolt.FromCumulus {
		fs = v.tc.ThundercloudFileSystem
	}
	src, err := fs.OpenSource(ctx, b.Source)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var lines []string
	for {
		line, ok, err := src.NextLine(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (v *nicheVisitor) loadConfigBolt(ctx context.Context, b bolt.Bolt) (config.InvarConfig, error) {
	fs := v.tc.ProjectFileSystem
	if b.Origin == bolt.FromCumulus {
		fs = v.tc.ThundercloudFileSystem
	}
	content, err := fs.GetContent(ctx, b.Source)
	if err != nil {
		return config.InvarConfig{}, err
	}
	var cfg config.InvarConfig
	if err := config.Decode(b.Source.FileName(), []byte(content), &cfg); err != nil {
		return config.InvarConfig{}, fmt.Errorf("engine: decode config bolt %s: %w", b.Source.String(), err)
	}
	return cfg, nil
}

func invarOnly(bolts []bolt.Bolt) []bolt.Bolt    { return filterOrigin(bolts, bolt.FromInvar) }
func cumulusOnly(bolts []bolt.Bolt) []bolt.Bolt  { return filterOrigin(bolts, bolt.FromCumulus) }
func configBolts(bolts []bolt.Bolt) []bolt.Bolt {
	var out []bolt.Bolt
	// Invar-side config bolts are applied after cumulus-side ones: cumulus
	// configs merge first, then invar configs layer on top.
	for _, b := range bolts {
		if b.Kind == bolt.KindConfig && b.Origin == bolt.FromCumulus {
			out = append(out, b)
		}
	}
	for _, b := range bolts {
		if b.Kind == bolt.KindConfig && b.Origin == bolt.FromInvar {
			out = append(out, b)
		}
	}
	return out
}

func filterOrigin(bolts []bolt.Bolt, origin bolt.Origin) []bolt.Bolt {
	var out []bolt.Bolt
	for _, b := range bolts {
		if b.Origin == origin {
			out = append(out, b)
		}
	}
	return out
}

func parentOf(rel cargopath.Relative) string {
	s := rel.String()
	if s == "." {
		return "."
	}
	i := lastSlash(s)
	if i < 0 {
		return "."
	}
	return s[:i]
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}
