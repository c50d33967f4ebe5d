// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package bolt classifies thundercloud/invar file names into Bolts: the
// tagged-union record the rest of the engine merges, filters, and renders.
// Classification is five precedence rules applied in order, compiled once
// as package-level regexes (pkg/config/validator.go's convention in the
// teacher repo).
package bolt

import (
	"fmt"
	"regexp"
	"strings"

	cargopath "github.com/gizzahub/cargocult/internal/cargo/path"
)

// Origin marks whether a Bolt was read from the thundercloud's cumulus
// subtree or from a niche's invar overlay.
type Origin int

const (
	FromCumulus Origin = iota
	FromInvar
)

// Kind is the tagged-union discriminator for a Bolt's classification.
type Kind int

const (
	KindOption Kind = iota
	KindFragment
	KindConfig
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindOption:
		return "Option"
	case KindFragment:
		return "Fragment"
	case KindConfig:
		return "Config"
	default:
		return "Unknown"
	}
}

// ConfigFormat names the serialization format of a Config bolt.
type ConfigFormat int

const (
	FormatNone ConfigFormat = iota
	FormatTOML
	FormatYAML
)

// AnyFeature is the feature name meaning "always applies".
const AnyFeature = "@"

// Bolt is one classified file from a cumulus or invar subtree. Kind, Format
// and Qualifier are only meaningful for their corresponding Kind; they are
// kept on the shared struct (rather than modeled via Go interfaces/embedding)
// per the "Bolt as tagged sum" design note: a single flat record with a
// discriminator, not an inheritance hierarchy.
type Bolt struct {
	BaseName    string
	Extension   string // includes leading "." when present, else ""
	FeatureName string // AnyFeature ("@") when unconditional
	Qualifier   string // fragment qualifier; empty when not applicable
	Kind        Kind
	Format      ConfigFormat
	Origin      Origin
	Source      cargopath.Absolute
}

// TargetName is baseName+extension: the key buckets share across cumulus
// and invar.
func (b Bolt) TargetName() string {
	return b.BaseName + b.Extension
}

var (
	// Rule 1: config regex, with mandatory toml/yaml suffix.
	configRe = regexp.MustCompile(`^(?P<base>.+?)\+config(?:-(?P<feature>[A-Za-z0-9]+))?(?P<ext>\.[A-Za-z0-9]+)?\.(?P<fmt>toml|yaml)$`)
	// Rule 2: bolt regex with a dot extension. The boltType token itself is
	// matched generically (any word); kindOf maps unrecognized tokens to
	// KindUnknown rather than rejecting the match — only option, fragment,
	// and config (rule 1) are recognized kinds.
	boltWithExtRe = regexp.MustCompile(`^(?P<base>.+?)\+(?P<kind>[A-Za-z][A-Za-z0-9]*)(?:-(?P<feature>[A-Za-z0-9]+)(?:-(?P<qualifier>[A-Za-z0-9]+))?)?(?P<ext>\.[A-Za-z0-9]+)$`)
	// Rule 3: bolt regex with no extension; base must contain no ".".
	boltNoExtRe = regexp.MustCompile(`^(?P<base>[^.]+?)\+(?P<kind>[A-Za-z][A-Za-z0-9]*)(?:-(?P<feature>[A-Za-z0-9]+)(?:-(?P<qualifier>[A-Za-z0-9]+))?)?$`)
	// Rule 4: plain name with extension.
	plainWithExtRe = regexp.MustCompile(`^(?P<base>.+)(?P<ext>\.[A-Za-z0-9]+)$`)

	illegalTargetRe = regexp.MustCompile(`^(\.\.?)?$`)
)

// ErrIllegalTarget is returned by Classify for a file name whose computed
// target name is "." or "..".
type ErrIllegalTarget struct {
	Name string
}

func (e ErrIllegalTarget) Error() string {
	return fmt.Sprintf("bolt: illegal target name %q", e.Name)
}

// Classify turns a bare file name (no directory component) into a Bolt,
// applying the five-rule precedence of the file-name grammar. origin and
// source are carried through unchanged for downstream merge/render use.
func Classify(name string, origin Origin, source cargopath.Absolute) (Bolt, error) {
	var b Bolt

	switch {
	case configRe.MatchString(name):
		m := configRe.FindStringSubmatch(name)
		g := groups(configRe, m)
		b = Bolt{
			BaseName:    normalizeBase(g["base"]),
			Extension:   g["ext"],
			FeatureName: featureOr(g["feature"]),
			Kind:        KindConfig,
			Format:      formatOf(g["fmt"]),
		}

	case boltWithExtRe.MatchString(name):
		m := boltWithExtRe.FindStringSubmatch(name)
		g := groups(boltWithExtRe, m)
		b = Bolt{
			BaseName:    normalizeBase(g["base"]),
			Extension:   g["ext"],
			FeatureName: featureOr(g["feature"]),
			Qualifier:   g["qualifier"],
			Kind:        kindOf(g["kind"]),
		}

	case boltNoExtRe.MatchString(name):
		m := boltNoExtRe.FindStringSubmatch(name)
		g := groups(boltNoExtRe, m)
		b = Bolt{
			BaseName:    normalizeBase(g["base"]),
			FeatureName: featureOr(g["feature"]),
			Qualifier:   g["qualifier"],
			Kind:        kindOf(g["kind"]),
		}

	case plainWithExtRe.MatchString(name):
		m := plainWithExtRe.FindStringSubmatch(name)
		g := groups(plainWithExtRe, m)
		b = Bolt{
			BaseName:    normalizeBase(g["base"]),
			Extension:   g["ext"],
			FeatureName: AnyFeature,
			Kind:        KindOption,
		}

	default:
		b = Bolt{
			BaseName:    normalizeBase(name),
			FeatureName: AnyFeature,
			Kind:        KindOption,
		}
	}

	b.Origin = origin
	b.Source = source

	// "." is the designated directory-scoped config bucket key (GLOSSARY);
	// only a non-Config bolt resolving to "." or ".." is actually illegal.
	if b.Kind != KindConfig && illegalTargetRe.MatchString(b.TargetName()) {
		return Bolt{}, ErrIllegalTarget{Name: b.TargetName()}
	}
	return b, nil
}

// normalizeBase applies the two base-name prefix rewrites, in order:
// dot_xxx -> .xxx, then x_xxx -> xxx.
func normalizeBase(base string) string {
	if rest, ok := strings.CutPrefix(base, "dot_"); ok {
		base = "." + rest
	}
	if rest, ok := strings.CutPrefix(base, "x_"); ok {
		base = rest
	}
	return base
}

func featureOr(f string) string {
	if f == "" {
		return AnyFeature
	}
	return f
}

func kindOf(k string) Kind {
	switch k {
	case "option":
		return KindOption
	case "fragment":
		return KindFragment
	default:
		return KindUnknown
	}
}

func formatOf(f string) ConfigFormat {
	switch f {
	case "toml":
		return FormatTOML
	case "yaml":
		return FormatYAML
	default:
		return FormatNone
	}
}

// groups maps named capture groups of re to their matched text (empty
// string when unmatched), given the Submatch slice m.
func groups(re *regexp.Regexp, m []string) map[string]string {
	out := make(map[string]string, len(re.SubexpNames()))
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		if i < len(m) {
			out[name] = m[i]
		}
	}
	return out
}
