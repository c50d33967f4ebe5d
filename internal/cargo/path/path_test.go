package path

import "testing"

func TestNewAbsoluteRejectsRelative(t *testing.T) {
	if _, err := NewAbsolute("relative/thing"); err == nil {
		t.Fatal("expected error for relative input")
	}
}

func TestNewRelativeRejectsAbsolute(t *testing.T) {
	if _, err := NewRelative("/abs/thing"); err == nil {
		t.Fatal("expected error for absolute input")
	}
}

func TestTryNewSingleRejectsMultiComponent(t *testing.T) {
	cases := []string{"a/b", "", ".", ".."}
	for _, c := range cases {
		if _, err := TryNewSingle(c); err == nil {
			t.Errorf("TryNewSingle(%q) should have failed", c)
		}
	}
}

func TestJoinRelativeOntoAbsoluteYieldsAbsolute(t *testing.T) {
	a := MustAbsolute("/project")
	r, err := NewRelative("workshop/clock.yaml")
	if err != nil {
		t.Fatal(err)
	}
	got := a.Join(r)
	if got.String() != "/project/workshop/clock.yaml" {
		t.Errorf("got %q", got.String())
	}
}

func TestJoinRelativeOntoRelativeYieldsRelative(t *testing.T) {
	r1, _ := NewRelative("workshop")
	r2, _ := NewRelative("clock.yaml")
	got := r1.Join(r2)
	if got.String() != "workshop/clock.yaml" {
		t.Errorf("got %q", got.String())
	}
}

func TestParentAndFileName(t *testing.T) {
	a := MustAbsolute("/project/workshop/clock.yaml")
	if got := a.FileName(); got != "clock.yaml" {
		t.Errorf("FileName() = %q", got)
	}
	if got := a.Parent().String(); got != "/project/workshop" {
		t.Errorf("Parent() = %q", got)
	}
}
