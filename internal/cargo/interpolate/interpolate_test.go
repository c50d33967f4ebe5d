package interpolate

import "testing"

func TestLineReturnsInputUnchangedWhenPropsEmpty(t *testing.T) {
	in := "workspace={{WORKSPACE}} name=${name}"
	if got := Line(in, nil); got != in {
		t.Errorf("Line() = %q, want unchanged %q", got, in)
	}
}

func TestLineSubstitutesBracePlaceholder(t *testing.T) {
	got := Line("root={{WORKSPACE}}", map[string]string{"WORKSPACE": "/srv/cargo"})
	if got != "root=/srv/cargo" {
		t.Errorf("Line() = %q", got)
	}
}

func TestLineSubstitutesDollarPlaceholder(t *testing.T) {
	got := Line("hello ${name}!", map[string]string{"name": "niche"})
	if got != "hello niche!" {
		t.Errorf("Line() = %q", got)
	}
}

func TestLineLeavesUnresolvedPlaceholdersLiteral(t *testing.T) {
	got := Line("x={{UNKNOWN}} y=${also_unknown}", map[string]string{"name": "niche"})
	if got != "x={{UNKNOWN}} y=${also_unknown}" {
		t.Errorf("Line() = %q", got)
	}
}

func TestLineDoesNotRescanSubstitutedValues(t *testing.T) {
	got := Line("v=${a}", map[string]string{"a": "${b}", "b": "leaked"})
	if got != "v=${b}" {
		t.Errorf("Line() = %q, expected single-pass substitution", got)
	}
}

func TestLineHandlesBothPlaceholderKindsInOneLine(t *testing.T) {
	got := Line("{{WORKSPACE}}/${name}", map[string]string{"WORKSPACE": "/root", "name": "niche"})
	if got != "/root/niche" {
		t.Errorf("Line() = %q", got)
	}
}
