package cascade

import (
	"testing"

	"github.com/gizzahub/cargocult/internal/cargo/config"
)

func TestPushReturnsUnchangedOnEmptyLayer(t *testing.T) {
	base := config.NewInvarConfig()
	s := NewStack(base)
	next, changed := s.Push(config.InvarConfig{})
	if changed {
		t.Error("expected no change pushing an empty layer")
	}
	if next.Current().EffectiveWriteMode() != s.Current().EffectiveWriteMode() {
		t.Error("expected unchanged stack to preserve current config")
	}
}

func TestPushLaterLayerWinsScalar(t *testing.T) {
	s := NewStack(config.NewInvarConfig())
	ignore := config.Ignore
	next, changed := s.Push(config.InvarConfig{WriteMode: &ignore})
	if !changed {
		t.Fatal("expected change pushing a differing write mode")
	}
	if next.Current().EffectiveWriteMode() != config.Ignore {
		t.Errorf("EffectiveWriteMode() = %v, want Ignore", next.Current().EffectiveWriteMode())
	}
}

func TestPushDirectoryDefaultsLayersInOrder(t *testing.T) {
	processDefault := config.NewInvarConfig()
	exec := true
	thunderDefaults := config.InvarConfig{Props: map[string]string{"a": "1"}}
	useDefaults := config.InvarConfig{Executable: &exec, Props: map[string]string{"b": "2"}}

	s := PushDirectoryDefaults(processDefault, thunderDefaults, useDefaults)
	if !s.Current().EffectiveExecutable() {
		t.Error("expected UseThundercloud defaults executable=true to win")
	}
	props := s.Current().EffectiveProps()
	if props["a"] != "1" || props["b"] != "2" {
		t.Errorf("expected union of props across layers, got %+v", props)
	}
}

func TestStackPushDoesNotMutateOriginal(t *testing.T) {
	base := NewStack(config.NewInvarConfig())
	ignore := config.Ignore
	_, changed := base.Push(config.InvarConfig{WriteMode: &ignore})
	if !changed {
		t.Fatal("expected change")
	}
	if base.Current().EffectiveWriteMode() != config.Overwrite {
		t.Error("expected original stack to remain at its prior value")
	}
}
