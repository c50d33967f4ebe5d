package psychotropic

import (
	"reflect"
	"sort"
	"testing"
)

func TestBuildRejectsDuplicateNames(t *testing.T) {
	_, err := Build([]Cue{{Name: "a"}, {Name: "a"}})
	if _, ok := err.(ErrDuplicateCue); !ok {
		t.Fatalf("expected ErrDuplicateCue, got %v", err)
	}
}

func TestBuildRejectsPrecursorRedeclaredAfterReference(t *testing.T) {
	_, err := Build([]Cue{{Name: "b", WaitFor: []string{"a"}}, {Name: "a"}})
	if _, ok := err.(ErrPrecursorRedeclared); !ok {
		t.Fatalf("expected ErrPrecursorRedeclared, got %v", err)
	}
}

// TestDependencyOrderScenario is spec scenario 5: cues [{a}, {b, wait-for:[a]}].
func TestDependencyOrderScenario(t *testing.T) {
	idx, err := Build([]Cue{{Name: "a"}, {Name: "b", WaitFor: []string{"a"}}})
	if err != nil {
		t.Fatal(err)
	}
	indep := idx.Independent()
	if !reflect.DeepEqual(indep, []string{"a"}) {
		t.Errorf("Independent() = %v, want [a]", indep)
	}
	if got := idx.Triggers("a"); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Triggers(a) = %v, want [b]", got)
	}
	if got := idx.WaitFor("b"); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("WaitFor(b) = %v, want [a]", got)
	}
}

// TestSyntheticPrecursorScenario is spec scenario 6: cues [{b, wait-for:[a]}];
// building succeeds, independent() contains "a", triggers(a)=[b].
func TestSyntheticPrecursorScenario(t *testing.T) {
	idx, err := Build([]Cue{{Name: "b", WaitFor: []string{"a"}}})
	if err != nil {
		t.Fatal(err)
	}
	indep := idx.Independent()
	sort.Strings(indep)
	if !reflect.DeepEqual(indep, []string{"a"}) {
		t.Errorf("Independent() = %v, want [a]", indep)
	}
	if got := idx.Triggers("a"); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Triggers(a) = %v, want [b]", got)
	}
}

func TestIndependentExcludesEveryNameWithWaits(t *testing.T) {
	idx, err := Build([]Cue{{Name: "a"}, {Name: "b"}, {Name: "c", WaitFor: []string{"a", "b"}}})
	if err != nil {
		t.Fatal(err)
	}
	indep := idx.Independent()
	sort.Strings(indep)
	if !reflect.DeepEqual(indep, []string{"a", "b"}) {
		t.Errorf("Independent() = %v, want [a b]", indep)
	}
}

func TestNamesIncludesSyntheticPrecursors(t *testing.T) {
	idx, err := Build([]Cue{{Name: "b", WaitFor: []string{"a"}}})
	if err != nil {
		t.Fatal(err)
	}
	names := idx.Names()
	sort.Strings(names)
	if !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Errorf("Names() = %v, want [a b]", names)
	}
}
