// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package merge implements the bolt merger: combining a target bucket's
// invar and cumulus bolts, filtering by enabled feature, and partitioning
// the survivors into an option plus its fragments.
package merge

import "github.com/gizzahub/cargocult/internal/cargo/bolt"

// fragmentKey identifies a fragment bolt's masking identity: same feature
// and qualifier from invar supersedes the cumulus equivalent.
type fragmentKey struct {
	feature   string
	qualifier string
}

// Combine starts from invarBolts and appends each cumulus bolt, except a
// cumulus fragment whose (feature, qualifier) pair already has an invar
// fragment present — invar fragments mask cumulus fragments with the same
// identity.
func Combine(invarBolts, cumulusBolts []bolt.Bolt) []bolt.Bolt {
	masked := make(map[fragmentKey]bool)
	for _, b := range invarBolts {
		if b.Kind == bolt.KindFragment {
			masked[fragmentKey{b.FeatureName, b.Qualifier}] = true
		}
	}

	combined := make([]bolt.Bolt, 0, len(invarBolts)+len(cumulusBolts))
	combined = append(combined, invarBolts...)
	for _, b := range cumulusBolts {
		if b.Kind == bolt.KindFragment && masked[fragmentKey{b.FeatureName, b.Qualifier}] {
			continue
		}
		combined = append(combined, b)
	}
	return combined
}

// FilterByFeatures keeps bolts whose FeatureName is "@" or present in
// enabledFeatures.
func FilterByFeatures(bolts []bolt.Bolt, enabledFeatures []string) []bolt.Bolt {
	enabled := make(map[string]bool, len(enabledFeatures))
	for _, f := range enabledFeatures {
		enabled[f] = true
	}
	out := make([]bolt.Bolt, 0, len(bolts))
	for _, b := range bolts {
		if b.FeatureName == bolt.AnyFeature || enabled[b.FeatureName] {
			out = append(out, b)
		}
	}
	return out
}

// Partitioned is the result of splitting a filtered bolt list into the
// option selected for rendering and the fragments available for splicing.
// Unknown and Config bolts never contribute to either.
type Partitioned struct {
	Option    *bolt.Bolt
	Fragments []bolt.Bolt
}

// Partition extracts the first surviving Option bolt (if any) and every
// surviving Fragment bolt from bolts, in order.
func Partition(bolts []bolt.Bolt) Partitioned {
	var p Partitioned
	for i, b := range bolts {
		switch b.Kind {
		case bolt.KindOption:
			if p.Option == nil {
				opt := bolts[i]
				p.Option = &opt
			}
		case bolt.KindFragment:
			p.Fragments = append(p.Fragments, b)
		}
	}
	return p
}

// Resolve runs Combine, FilterByFeatures and Partition in sequence for one
// target bucket — the composition the walker invokes per bucket.
func Resolve(invarBolts, cumulusBolts []bolt.Bolt, enabledFeatures []string) Partitioned {
	combined := Combine(invarBolts, cumulusBolts)
	filtered := FilterByFeatures(combined, enabledFeatures)
	return Partition(filtered)
}
