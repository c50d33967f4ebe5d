package render

import (
	"context"
	"testing"

	"github.com/gizzahub/cargocult/internal/cargo/bolt"
	"github.com/gizzahub/cargocult/internal/cargo/fsys"
	cargopath "github.com/gizzahub/cargocult/internal/cargo/path"
)

func linesOpener(store map[string][]string) SourceOpener {
	return func(_ context.Context, b bolt.Bolt) ([]string, error) {
		return store[b.Source.String()], nil
	}
}

// TestFileSplicesOverlayFragment is spec scenario 1 ("glass clock"): an
// option with an inline default fragment body, overridden by an invar
// fragment, with ${sweeper} interpolated.
func TestFileSplicesOverlayFragment(t *testing.T) {
	ctx := context.Background()
	optionSrc := cargopath.MustAbsolute("/tc/cumulus/workshop/clock+option-glass.yaml")
	fragmentSrc := cargopath.MustAbsolute("/niche/invar/workshop/clock+fragment-glass-spring.yaml")

	store := map[string][]string{
		optionSrc.String(): {
			"raising: dawn",
			"==== BEGIN FRAGMENT glass-spring ====",
			"  default: coil",
			"==== END FRAGMENT glass-spring ====",
			"sweeper: ${sweeper}",
		},
		fragmentSrc.String(): {
			"==== BEGIN FRAGMENT glass-spring ====",
			"  spring: tension",
			"  keeper: ${sweeper}",
			"==== END FRAGMENT glass-spring ====",
		},
	}

	option := bolt.Bolt{BaseName: "clock", Extension: ".yaml", FeatureName: "glass", Kind: bolt.KindOption, Origin: bolt.FromCumulus, Source: optionSrc}
	fragment := bolt.Bolt{BaseName: "clock", Extension: ".yaml", FeatureName: "glass", Qualifier: "spring", Kind: bolt.KindFragment, Origin: bolt.FromInvar, Source: fragmentSrc}

	target := cargopath.MustAbsolute("/project/workshop/clock.yaml")
	projectFS := fsys.NewFixture()

	req := Request{
		Option:    option,
		Fragments: []bolt.Bolt{fragment},
		Props:     map[string]string{"sweeper": "Lu Tse"},
		Target:    target,
	}
	if err := File(ctx, projectFS, linesOpener(store), req); err != nil {
		t.Fatal(err)
	}

	content, err := projectFS.GetContent(ctx, target)
	if err != nil {
		t.Fatal(err)
	}
	want := "raising: dawn\n" +
		"==== BEGIN FRAGMENT glass-spring ====\n" +
		"  spring: tension\n" +
		"  keeper: Lu Tse\n" +
		"==== END FRAGMENT glass-spring ====\n" +
		"sweeper: Lu Tse\n"
	if content != want {
		t.Errorf("content = %q, want %q", content, want)
	}
}

func TestFileOmitsBareMarkerLineWhenNoFragmentMatches(t *testing.T) {
	ctx := context.Background()
	optionSrc := cargopath.MustAbsolute("/tc/cumulus/notes.md")
	store := map[string][]string{
		optionSrc.String(): {
			"before",
			"==== FRAGMENT ice ====",
			"after",
		},
	}
	option := bolt.Bolt{BaseName: "notes", Extension: ".md", FeatureName: bolt.AnyFeature, Kind: bolt.KindOption, Source: optionSrc}
	target := cargopath.MustAbsolute("/project/notes.md")
	projectFS := fsys.NewFixture()

	req := Request{Option: option, Target: target}
	if err := File(ctx, projectFS, linesOpener(store), req); err != nil {
		t.Fatal(err)
	}
	content, err := projectFS.GetContent(ctx, target)
	if err != nil {
		t.Fatal(err)
	}
	if content != "before\nafter\n" {
		t.Errorf("content = %q, expected marker line omitted when no fragment matches", content)
	}
}

func TestFileHonorsWriteNewProtection(t *testing.T) {
	ctx := context.Background()
	optionSrc := cargopath.MustAbsolute("/tc/cumulus/once.txt")
	store := map[string][]string{optionSrc.String(): {"first"}}
	option := bolt.Bolt{BaseName: "once", Extension: ".txt", FeatureName: bolt.AnyFeature, Kind: bolt.KindOption, Source: optionSrc}
	target := cargopath.MustAbsolute("/project/once.txt")
	projectFS := fsys.NewFixture()

	req := Request{Option: option, Target: target, WriteMode: fsys.WriteNew}
	if err := File(ctx, projectFS, linesOpener(store), req); err != nil {
		t.Fatal(err)
	}
	// Second invocation must leave the first write intact and error nothing.
	store[optionSrc.String()] = []string{"second"}
	if err := File(ctx, projectFS, linesOpener(store), req); err != nil {
		t.Fatal(err)
	}
	content, err := projectFS.GetContent(ctx, target)
	if err != nil {
		t.Fatal(err)
	}
	if content != "first\n" {
		t.Errorf("content = %q, want first write preserved", content)
	}
}

func TestFileSplicesNestedFragmentMarkers(t *testing.T) {
	ctx := context.Background()
	optionSrc := cargopath.MustAbsolute("/tc/cumulus/deep.yaml")
	outerFragSrc := cargopath.MustAbsolute("/niche/invar/deep+fragment-outer.yaml")

	store := map[string][]string{
		optionSrc.String(): {
			"top",
			"==== FRAGMENT outer ====",
			"bottom",
		},
		outerFragSrc.String(): {
			"==== BEGIN FRAGMENT outer ====",
			"outer-body",
			"==== FRAGMENT inner ====",
			"==== END FRAGMENT outer ====",
		},
	}
	option := bolt.Bolt{BaseName: "deep", Extension: ".yaml", FeatureName: bolt.AnyFeature, Kind: bolt.KindOption, Source: optionSrc}
	outerFrag := bolt.Bolt{BaseName: "deep", Extension: ".yaml", FeatureName: "outer", Kind: bolt.KindFragment, Source: outerFragSrc}
	target := cargopath.MustAbsolute("/project/deep.yaml")
	projectFS := fsys.NewFixture()

	req := Request{Option: option, Fragments: []bolt.Bolt{outerFrag}, Target: target}
	if err := File(ctx, projectFS, linesOpener(store), req); err != nil {
		t.Fatal(err)
	}
	content, err := projectFS.GetContent(ctx, target)
	if err != nil {
		t.Fatal(err)
	}
	want := "top\n==== BEGIN FRAGMENT outer ====\nouter-body\n==== END FRAGMENT outer ====\nbottom\n"
	if content != want {
		t.Errorf("content = %q, want %q", content, want)
	}
}
