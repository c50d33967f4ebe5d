package config

import (
	"testing"

	"github.com/gizzahub/cargocult/internal/cargo/fsys"
)

func TestToFSWriteModeMapsAllThreeValues(t *testing.T) {
	cases := map[WriteMode]fsys.WriteMode{
		Overwrite: fsys.Overwrite,
		WriteNew:  fsys.WriteNew,
		Ignore:    fsys.Ignore,
	}
	for in, want := range cases {
		if got := in.ToFSWriteMode(); got != want {
			t.Errorf("%v.ToFSWriteMode() = %v, want %v", in, got, want)
		}
	}
}
