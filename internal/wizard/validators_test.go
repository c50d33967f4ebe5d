// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package wizard

import "testing"

func TestValidateNicheName(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"empty", "", true},
		{"simple", "workshop", false},
		{"dash", "my-niche", false},
		{"underscore", "my_niche", false},
		{"space", "my niche", true},
		{"slash", "my/niche", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateNicheName(c.in)
			if (err != nil) != c.wantErr {
				t.Errorf("ValidateNicheName(%q) err=%v, wantErr=%v", c.in, err, c.wantErr)
			}
		})
	}
}

func TestValidateWaitFor(t *testing.T) {
	if err := ValidateWaitFor(""); err != nil {
		t.Errorf("empty wait-for should be valid, got %v", err)
	}
	if err := ValidateWaitFor("infra, shared"); err != nil {
		t.Errorf("valid list should pass, got %v", err)
	}
	if err := ValidateWaitFor("infra, bad name"); err == nil {
		t.Error("invalid member should fail")
	}
}

func TestValidateFetchURL(t *testing.T) {
	if err := ValidateFetchURL(""); err == nil {
		t.Error("empty fetch URL should fail")
	}
	if err := ValidateFetchURL("https://example.com/repo.git"); err != nil {
		t.Errorf("https URL should pass, got %v", err)
	}
	if err := ValidateFetchURL("git@example.com:org/repo.git"); err != nil {
		t.Errorf("scp-like URL should pass, got %v", err)
	}
	if err := ValidateFetchURL("not a url"); err == nil {
		t.Error("garbage input should fail")
	}
}

func TestSplitWaitFor(t *testing.T) {
	got := SplitWaitFor(" infra ,  shared-config ,")
	want := []string{"infra", "shared-config"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
	if SplitWaitFor("") != nil {
		t.Error("empty input should yield nil")
	}
}
