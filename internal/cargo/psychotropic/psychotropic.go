// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package psychotropic builds the niche dependency graph from a project's
// declared cues: forward waitFor edges, derived reverse triggers edges,
// and the independent() set the orchestrator (internal/cargo/scheduler)
// seeds its work queue from.
package psychotropic

import (
	"fmt"

	"github.com/gizzahub/cargocult/internal/cargo/config"
)

// Cue is one declared entry of a project's psychotropic section.
type Cue struct {
	Name                string
	WaitFor             []string
	UseThundercloud     *config.UseThundercloudConfig
	UseThundercloudPath string
}

// Index is the built, immutable psychotropic graph: every declared and
// synthetic niche, its forward/reverse edges, and the independent() set.
// Once built it is shared read-only across the orchestrator's concurrent
// niche drivers and must not be mutated after construction.
type Index struct {
	nodes map[string]*node
	order []string
}

type node struct {
	name            string
	synthetic       bool
	waitFor         []string
	triggers        []string
	useThundercloud *config.UseThundercloudConfig
	useThunderPath  string
}

// ErrDuplicateCue is returned by Build when two cues declare the same name.
type ErrDuplicateCue struct{ Name string }

func (e ErrDuplicateCue) Error() string {
	return fmt.Sprintf("psychotropic: duplicate niche name %q", e.Name)
}

// ErrPrecursorRedeclared is returned by Build when a name first inserted as
// a synthetic precursor (referenced by some cue's waitFor but never itself
// declared) is later declared explicitly. This is an error, not a silent
// merge.
type ErrPrecursorRedeclared struct{ Name string }

func (e ErrPrecursorRedeclared) Error() string {
	return fmt.Sprintf("psychotropic: %q was assumed as an undeclared precursor and then declared explicitly", e.Name)
}

// Build constructs an Index from cues, materializing a synthetic trivial
// cue for every name referenced in a waitFor list that is not itself
// declared among cues.
func Build(cues []Cue) (*Index, error) {
	idx := &Index{nodes: make(map[string]*node)}

	declared := make(map[string]bool, len(cues))
	for _, c := range cues {
		if declared[c.Name] {
			return nil, ErrDuplicateCue{Name: c.Name}
		}
		declared[c.Name] = true
	}

	for _, c := range cues {
		if existing, ok := idx.nodes[c.Name]; ok && existing.synthetic {
			return nil, ErrPrecursorRedeclared{Name: c.Name}
		}
		idx.nodes[c.Name] = &node{
			name:            c.Name,
			waitFor:         append([]string(nil), c.WaitFor...),
			useThundercloud: c.UseThundercloud,
			useThunderPath:  c.UseThundercloudPath,
		}
		idx.order = append(idx.order, c.Name)

		for _, dep := range c.WaitFor {
			if _, ok := idx.nodes[dep]; !ok {
				idx.nodes[dep] = &node{name: dep, synthetic: true}
				idx.order = append(idx.order, dep)
			}
		}
	}

	for _, name := range idx.order {
		n := idx.nodes[name]
		for _, dep := range n.waitFor {
			idx.nodes[dep].triggers = append(idx.nodes[dep].triggers, name)
		}
	}

	return idx, nil
}

// Names returns every niche name in the index, in first-seen order: each
// declared cue, followed by any synthetic precursors its waitFor introduced.
func (idx *Index) Names() []string {
	return append([]string(nil), idx.order...)
}

// WaitFor returns the names name waits for.
func (idx *Index) WaitFor(name string) []string {
	n, ok := idx.nodes[name]
	if !ok {
		return nil
	}
	return append([]string(nil), n.waitFor...)
}

// Triggers returns the names that wait for name — the derived reverse edge.
func (idx *Index) Triggers(name string) []string {
	n, ok := idx.nodes[name]
	if !ok {
		return nil
	}
	return append([]string(nil), n.triggers...)
}

// UseThundercloud returns name's inline UseThundercloudConfig (if any) and
// its referenced settings path (if any).
func (idx *Index) UseThundercloud(name string) (*config.UseThundercloudConfig, string) {
	n, ok := idx.nodes[name]
	if !ok {
		return nil, ""
	}
	return n.useThundercloud, n.useThunderPath
}

// hasWaits reports whether name's own waitFor is non-empty.
func (idx *Index) hasWaits(name string) bool {
	return len(idx.nodes[name].waitFor) > 0
}

// Independent returns the set of names with an empty waitFor — the roots
// the orchestrator seeds its work queue from. A transitive rule (also
// disqualifying a name if it is only waited on by otherwise-independent
// cues) was considered and rejected: see DESIGN.md for the reasoning.
func (idx *Index) Independent() []string {
	var out []string
	for _, name := range idx.order {
		if !idx.hasWaits(name) {
			out = append(out, name)
		}
	}
	return out
}
