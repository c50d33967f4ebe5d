// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package walk implements the directory-pair walker: a recursive traversal
// over a cumulus subtree and an invar subtree in lock step, classifying
// files into bolt.Buckets and invoking a Visitor once per directory and
// once per target file. Two directory trees are read side by side and
// merged level by level: one holds the thundercloud's reusable content
// (cumulus), the other a niche's project-specific overlay (invar).
package walk

import (
	"context"
	"sort"

	"github.com/gizzahub/cargocult/internal/cargo/bolt"
	"github.com/gizzahub/cargocult/internal/cargo/fsys"
	cargopath "github.com/gizzahub/cargocult/internal/cargo/path"
)

// ChildOrigin tags which side(s) of the directory pair a child subdirectory
// was discovered on, determining what the recursive visit will find there.
type ChildOrigin int

const (
	FromCumulus ChildOrigin = iota
	FromInvar
	FromBothCumulusAndInvar
)

// Visitor receives the two callbacks the walker makes per directory level.
type Visitor interface {
	// VisitDirectory is called once per directory, after its buckets are
	// built but before its file buckets are dispatched or its children are
	// recursed into. rel is the directory's path relative to both cumulus
	// and invar roots. targetDir is the directory's current (possibly
	// already-retargeted-by-an-ancestor) target path relative to the
	// project root. Implementations apply the directory-scoped "."
	// bucket (config cascade) and return the resulting target directory,
	// which may differ from targetDir when a "." config bolt retargets.
	VisitDirectory(ctx context.Context, rel cargopath.Relative, targetDir cargopath.Relative, buckets *bolt.Buckets) (cargopath.Relative, error)

	// VisitFile is called once per non-"." target bucket discovered at a
	// directory level, after VisitDirectory has returned the directory's
	// effective target.
	VisitFile(ctx context.Context, rel cargopath.Relative, targetDir cargopath.Relative, bucket *bolt.Bucket) error
}

// Walk traverses cumulusRoot and invarRoot together, starting at
// cargopath.RelativeRoot, invoking v per directory and per file. Traversal
// is not parallelized across subdirectories — deterministic lexicographic
// ordering of overlay-config application matters more than walk throughput,
// and concurrency instead lives at the niche level.
func Walk(ctx context.Context, cumulusFS, invarFS fsys.FileSystem, cumulusRoot, invarRoot cargopath.Absolute, v Visitor) error {
	return walkDir(ctx, cumulusFS, invarFS, cumulusRoot, invarRoot, cargopath.RelativeRoot, cargopath.RelativeRoot, v)
}

func walkDir(ctx context.Context, cumulusFS, invarFS fsys.FileSystem, cumulusRoot, invarRoot cargopath.Absolute, rel cargopath.Relative, targetDir cargopath.Relative, v Visitor) error {
	cumulusDir := cumulusRoot.Join(rel)
	invarDir := invarRoot.Join(rel)

	cumulusEntries, err := cumulusFS.ReadDir(ctx, cumulusDir)
	if err != nil {
		return err
	}
	invarEntries, err := invarFS.ReadDir(ctx, invarDir)
	if err != nil {
		return err
	}

	buckets := bolt.NewBuckets()
	cumulusSubdirs := make(map[string]bool)
	invarSubdirs := make(map[string]bool)

	for _, e := range cumulusEntries {
		if e.IsDir() {
			cumulusSubdirs[e.FileName()] = true
			continue
		}
		classifyInto(buckets, e.FileName(), bolt.FromCumulus, e.Path())
	}
	// Invar entries are added after cumulus ones; invar-before-cumulus
	// ordering within a bucket is the caller's merge step's job (it
	// re-orders by Origin), not this walker's.
	for _, e := range invarEntries {
		if e.IsDir() {
			invarSubdirs[e.FileName()] = true
			continue
		}
		classifyInto(buckets, e.FileName(), bolt.FromInvar, e.Path())
	}

	effectiveTarget, err := v.VisitDirectory(ctx, rel, targetDir, buckets)
	if err != nil {
		return err
	}

	for _, name := range buckets.Order {
		if name == "." {
			continue
		}
		bucket := buckets.Get(name)
		if err := v.VisitFile(ctx, rel, effectiveTarget, bucket); err != nil {
			return err
		}
	}

	children := make(map[string]ChildOrigin)
	for name := range cumulusSubdirs {
		children[name] = FromCumulus
	}
	for name := range invarSubdirs {
		if _, ok := children[name]; ok {
			children[name] = FromBothCumulusAndInvar
		} else {
			children[name] = FromInvar
		}
	}

	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		childRel := rel.JoinSingle(mustSingle(name))
		childTarget := effectiveTarget.JoinSingle(mustSingle(name))
		if err := walkDir(ctx, cumulusFS, invarFS, cumulusRoot, invarRoot, childRel, childTarget, v); err != nil {
			return err
		}
	}
	return nil
}

func classifyInto(buckets *bolt.Buckets, name string, origin bolt.Origin, source cargopath.Absolute) {
	b, err := bolt.Classify(name, origin, source)
	if err != nil {
		// Illegal target name ("." / ".."): skipped silently. The walker
		// has no logger threaded through it, and the Visitor is never
		// called for the skipped name, so no warning is emitted.
		return
	}
	buckets.Add(b)
}

func mustSingle(name string) cargopath.Single {
	s, err := cargopath.TryNewSingle(name)
	if err != nil {
		panic(err) // path segment came from ReadDir; cannot contain "/"
	}
	return s
}
