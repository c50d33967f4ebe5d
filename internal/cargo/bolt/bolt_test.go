package bolt

import (
	"testing"

	cargopath "github.com/gizzahub/cargocult/internal/cargo/path"
)

var noSource = cargopath.MustAbsolute("/thundercloud/cumulus/clock.yaml")

func classify(t *testing.T, name string) Bolt {
	t.Helper()
	b, err := Classify(name, FromCumulus, noSource)
	if err != nil {
		t.Fatalf("Classify(%q) error: %v", name, err)
	}
	return b
}

func TestClassifyPlainOptionWithExtension(t *testing.T) {
	b := classify(t, "clock.yaml")
	if b.Kind != KindOption || b.BaseName != "clock" || b.Extension != ".yaml" || b.FeatureName != AnyFeature {
		t.Errorf("unexpected bolt: %+v", b)
	}
}

func TestClassifyPlainOptionNoExtension(t *testing.T) {
	b := classify(t, "README")
	if b.Kind != KindOption || b.BaseName != "README" || b.Extension != "" || b.FeatureName != AnyFeature {
		t.Errorf("unexpected bolt: %+v", b)
	}
}

func TestClassifyOptionWithFeatureAndExtension(t *testing.T) {
	b := classify(t, "clock+option-glass.yaml")
	if b.Kind != KindOption || b.BaseName != "clock" || b.FeatureName != "glass" || b.Extension != ".yaml" {
		t.Errorf("unexpected bolt: %+v", b)
	}
}

func TestClassifyFragmentWithFeatureAndQualifier(t *testing.T) {
	b := classify(t, "clock+fragment-glass-spring.yaml")
	if b.Kind != KindFragment || b.FeatureName != "glass" || b.Qualifier != "spring" {
		t.Errorf("unexpected bolt: %+v", b)
	}
}

func TestClassifyConfigBolt(t *testing.T) {
	b := classify(t, "clock+config.toml")
	if b.Kind != KindConfig || b.Format != FormatTOML || b.BaseName != "clock" {
		t.Errorf("unexpected bolt: %+v", b)
	}
}

func TestClassifyConfigBoltWithFeature(t *testing.T) {
	b := classify(t, ".+config-glass.yaml")
	if b.Kind != KindConfig || b.Format != FormatYAML || b.FeatureName != "glass" {
		t.Errorf("unexpected bolt: %+v", b)
	}
}

func TestClassifyDotPrefixNormalizesToLeadingDot(t *testing.T) {
	b := classify(t, "dot_profile")
	if b.BaseName != ".profile" {
		t.Errorf("BaseName = %q, want %q", b.BaseName, ".profile")
	}
}

func TestClassifyXPrefixStripped(t *testing.T) {
	b := classify(t, "x_x+option-kermie")
	if b.BaseName != "x" || b.FeatureName != "kermie" {
		t.Errorf("unexpected bolt: %+v", b)
	}
}

func TestClassifyIllegalTargetNameDot(t *testing.T) {
	if _, err := Classify(".", FromCumulus, noSource); err == nil {
		t.Fatal("expected ErrIllegalTarget for \".\"")
	}
}

func TestClassifyIllegalTargetNameDotDot(t *testing.T) {
	if _, err := Classify("..", FromCumulus, noSource); err == nil {
		t.Fatal("expected ErrIllegalTarget for \"..\"")
	}
}

func TestClassifyUnknownBoltType(t *testing.T) {
	b := classify(t, "clock+weird-glass.yaml")
	if b.Kind != KindUnknown {
		t.Errorf("expected Unknown kind, got %v", b.Kind)
	}
}

func TestTargetNameCombinesBaseAndExtension(t *testing.T) {
	b := classify(t, "clock+option-glass.yaml")
	if b.TargetName() != "clock.yaml" {
		t.Errorf("TargetName() = %q", b.TargetName())
	}
}

// Classification idempotence: classifying a bolt's own target name again
// yields the same base/extension (feature information is necessarily lost
// once collapsed to a target name, per the merge bucket key contract).
func TestClassificationIdempotentOnTargetName(t *testing.T) {
	b := classify(t, "clock+option-glass.yaml")
	again, err := Classify(b.TargetName(), FromCumulus, noSource)
	if err != nil {
		t.Fatal(err)
	}
	if again.BaseName != b.BaseName || again.Extension != b.Extension {
		t.Errorf("round-trip mismatch: %+v vs %+v", b, again)
	}
}
