// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package render implements the option renderer: it reads an option
// bolt's source line by line, splices in fragment bolts at marker lines,
// interpolates every emitted line, and writes the result through the
// project FileSystem honoring writeMode and the executable bit.
package render

import (
	"context"
	"fmt"

	"github.com/gizzahub/cargocult/internal/cargo/bolt"
	"github.com/gizzahub/cargocult/internal/cargo/fsys"
	"github.com/gizzahub/cargocult/internal/cargo/interpolate"
	cargopath "github.com/gizzahub/cargocult/internal/cargo/path"
)

// SourceOpener returns the lines of b's content, chosen from whichever
// FileSystem matches b.Origin (thundercloud for FromCumulus, project for
// FromInvar). The engine supplies this so render never has to know about
// ThunderConfig's two-filesystem split directly.
type SourceOpener func(ctx context.Context, b bolt.Bolt) ([]string, error)

// Request bundles everything File needs to render one target.
type Request struct {
	Option     bolt.Bolt
	Fragments  []bolt.Bolt
	Props      map[string]string
	Target     cargopath.Absolute
	WriteMode  fsys.WriteMode
	Executable bool
}

// File renders req.Option into req.Target through targetFS, splicing
// req.Fragments at marker lines and interpolating req.Props into every
// emitted line. If targetFS.OpenTarget returns (nil, nil) — WriteNew on an
// existing file, or Ignore — File is a no-op.
func File(ctx context.Context, targetFS fsys.FileSystem, open SourceOpener, req Request) error {
	optLines, err := open(ctx, req.Option)
	if err != nil {
		return fmt.Errorf("render: open option %s: %w", req.Option.TargetName(), err)
	}

	target, err := targetFS.OpenTarget(ctx, req.Target, req.WriteMode, req.Executable)
	if err != nil {
		return fmt.Errorf("render: open target %s: %w", req.Target.String(), err)
	}
	if target == nil {
		return nil
	}

	emit := func(line string) error { return target.WriteLine(line) }
	opener := func(b bolt.Bolt) ([]string, error) { return open(ctx, b) }

	_, renderErr := renderSequence(optLines, nil, 0, req.Fragments, opener, req.Props, emit)
	closeErr := target.Close()
	if renderErr != nil {
		return fmt.Errorf("render: %s: %w", req.Target.String(), renderErr)
	}
	return closeErr
}

// findFragment returns the first bolt in fragments whose (feature,
// qualifier) matches id — first-match-wins when more than one candidate
// is present.
func findFragment(fragments []bolt.Bolt, id marker) (bolt.Bolt, bool) {
	for _, f := range fragments {
		if f.Kind == bolt.KindFragment && f.FeatureName == id.feature && f.Qualifier == id.qualifier {
			return f, true
		}
	}
	return bolt.Bolt{}, false
}

// indexOfMatchingBegin scans lines for a BEGIN FRAGMENT marker matching id,
// returning its index or -1.
func indexOfMatchingBegin(lines []string, id marker) int {
	for i, l := range lines {
		if m, ok := parseMarker(l); ok && m.kind == markerBegin && m.sameIdentity(id) {
			return i
		}
	}
	return -1
}

// skipToMatchingEnd scans forward from just after lines[start] (a BEGIN
// marker matching id) to the matching END marker, discarding everything in
// between, and returns the index just past it.
func skipToMatchingEnd(lines []string, start int, id marker) (int, error) {
	for i := start + 1; i < len(lines); i++ {
		if m, ok := parseMarker(lines[i]); ok && m.kind == markerEnd && m.sameIdentity(id) {
			return i + 1, nil
		}
	}
	return len(lines), fmt.Errorf("render: unterminated default body for fragment %s-%s", id.feature, id.qualifier)
}

// includeFragment finds the first fragment bolt matching id, locates its
// own BEGIN…END region, and emits that region (interpolated), recursing
// into any nested markers inside it. If no matching fragment bolt exists,
// or the fragment has no matching placeholder, nothing is emitted.
func includeFragment(id marker, fragments []bolt.Bolt, opener func(bolt.Bolt) ([]string, error), props map[string]string, emit func(string) error) error {
	b, ok := findFragment(fragments, id)
	if !ok {
		return nil
	}
	flines, err := opener(b)
	if err != nil {
		return err
	}
	start := indexOfMatchingBegin(flines, id)
	if start < 0 {
		return nil
	}
	if err := emit(interpolate.Line(flines[start], props)); err != nil {
		return err
	}
	_, err = renderSequence(flines, &id, start+1, fragments, opener, props, emit)
	return err
}

// renderSequence walks lines[start:], interpolating and emitting plain
// lines, skipping-then-splicing BEGIN…END default bodies, and splicing
// bare placeholder markers — the shared algorithm used both for an
// option's top-level body (stop == nil) and for copying a fragment's own
// BEGIN…END region (stop naming that region's identity). It returns the
// index just past the point it stopped at.
func renderSequence(lines []string, stop *marker, start int, fragments []bolt.Bolt, opener func(bolt.Bolt) ([]string, error), props map[string]string, emit func(string) error) (int, error) {
	i := start
	for {
		if i >= len(lines) {
			if stop != nil {
				return i, fmt.Errorf("render: unterminated fragment %s-%s", stop.feature, stop.qualifier)
			}
			return i, nil
		}

		m, ok := parseMarker(lines[i])
		switch {
		case ok && stop != nil && m.kind == markerEnd && m.sameIdentity(*stop):
			if err := emit(interpolate.Line(lines[i], props)); err != nil {
				return i, err
			}
			return i + 1, nil

		case ok && m.kind == markerBegin:
			next, err := skipToMatchingEnd(lines, i, m)
			if err != nil {
				return i, err
			}
			if err := includeFragment(m, fragments, opener, props, emit); err != nil {
				return i, err
			}
			i = next

		case ok && m.kind == markerBare:
			if err := includeFragment(m, fragments, opener, props, emit); err != nil {
				return i, err
			}
			i++

		default:
			if err := emit(interpolate.Line(lines[i], props)); err != nil {
				return i, err
			}
			i++
		}
	}
}
