package merge

import (
	"testing"

	"github.com/gizzahub/cargocult/internal/cargo/bolt"
)

func opt(feature string) bolt.Bolt {
	return bolt.Bolt{BaseName: "clock", Extension: ".yaml", FeatureName: feature, Kind: bolt.KindOption}
}

func frag(feature, qualifier string) bolt.Bolt {
	return bolt.Bolt{BaseName: "clock", Extension: ".yaml", FeatureName: feature, Qualifier: qualifier, Kind: bolt.KindFragment}
}

func TestCombineAppendsCumulusAfterInvar(t *testing.T) {
	invar := []bolt.Bolt{opt(bolt.AnyFeature)}
	cumulus := []bolt.Bolt{frag("glass", "spring")}
	got := Combine(invar, cumulus)
	if len(got) != 2 || got[0].Kind != bolt.KindOption || got[1].Kind != bolt.KindFragment {
		t.Fatalf("unexpected combine result: %+v", got)
	}
}

func TestCombineInvarFragmentMasksCumulusFragmentWithSameIdentity(t *testing.T) {
	invarFrag := frag("glass", "spring")
	invar := []bolt.Bolt{invarFrag}
	cumulus := []bolt.Bolt{frag("glass", "spring"), frag("glass", "other")}
	got := Combine(invar, cumulus)
	if len(got) != 2 {
		t.Fatalf("expected masked cumulus fragment to be dropped, got %+v", got)
	}
	if got[0].Qualifier != "spring" || got[1].Qualifier != "other" {
		t.Errorf("unexpected surviving fragments: %+v", got)
	}
}

func TestFilterByFeaturesKeepsAlwaysAndEnabled(t *testing.T) {
	bolts := []bolt.Bolt{opt(bolt.AnyFeature), opt("glass"), opt("ice")}
	got := FilterByFeatures(bolts, []string{"glass"})
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving bolts, got %+v", got)
	}
}

func TestFilterByFeaturesDropsDisabled(t *testing.T) {
	bolts := []bolt.Bolt{opt("glass")}
	got := FilterByFeatures(bolts, nil)
	if len(got) != 0 {
		t.Errorf("expected disabled-feature bolt to be dropped, got %+v", got)
	}
}

func TestPartitionPicksFirstOption(t *testing.T) {
	first := opt(bolt.AnyFeature)
	second := opt(bolt.AnyFeature)
	p := Partition([]bolt.Bolt{first, second, frag("glass", "spring")})
	if p.Option == nil {
		t.Fatal("expected an option")
	}
	if len(p.Fragments) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(p.Fragments))
	}
}

func TestPartitionIgnoresUnknownAndConfigBolts(t *testing.T) {
	unknown := bolt.Bolt{BaseName: "clock", Kind: bolt.KindUnknown, FeatureName: bolt.AnyFeature}
	cfg := bolt.Bolt{BaseName: "clock", Kind: bolt.KindConfig, FeatureName: bolt.AnyFeature}
	p := Partition([]bolt.Bolt{unknown, cfg})
	if p.Option != nil || len(p.Fragments) != 0 {
		t.Errorf("expected nothing to survive partition, got %+v", p)
	}
}

func TestResolveComposesAllThreeSteps(t *testing.T) {
	invar := []bolt.Bolt{frag("glass", "spring")}
	cumulus := []bolt.Bolt{opt(bolt.AnyFeature), frag("glass", "spring"), opt("ice")}
	p := Resolve(invar, cumulus, []string{"glass"})
	if p.Option == nil {
		t.Fatal("expected an option to survive")
	}
	if len(p.Fragments) != 1 {
		t.Fatalf("unexpected fragments: %+v", p.Fragments)
	}
}
