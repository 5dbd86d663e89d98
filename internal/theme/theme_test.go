package theme

import (
	"testing"

	"kalemci/internal/prefs"
)

func testPrefs(t *testing.T) *prefs.Store {
	t.Helper()
	p, err := prefs.OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("prefs.OpenAt: %v", err)
	}
	return p
}

func TestCurrentDefaultsToLight(t *testing.T) {
	p := testPrefs(t)
	if got := Current(p).Name; got != Light {
		t.Errorf("Current with no preference = %q, want %q", got, Light)
	}
}

func TestSetPersists(t *testing.T) {
	p := testPrefs(t)

	th, err := Set(p, Dark)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if th.Name != Dark {
		t.Errorf("Set returned theme %q, want %q", th.Name, Dark)
	}

	// A fresh read sees the persisted value.
	if got := Current(p).Name; got != Dark {
		t.Errorf("Current after Set = %q, want %q", got, Dark)
	}
}

func TestSetRejectsUnknownName(t *testing.T) {
	p := testPrefs(t)
	if _, err := Set(p, "sepia"); err == nil {
		t.Error("Set with unknown theme name: expected error, got nil")
	}
}

func TestToggle(t *testing.T) {
	p := testPrefs(t)

	// Default is light, so the first toggle goes dark.
	th, err := Toggle(p)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if th.Name != Dark {
		t.Errorf("first Toggle = %q, want %q", th.Name, Dark)
	}

	th, err = Toggle(p)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if th.Name != Light {
		t.Errorf("second Toggle = %q, want %q", th.Name, Light)
	}
}

func TestUnrecognizedPreferenceFallsBack(t *testing.T) {
	p := testPrefs(t)
	if err := p.Set("theme", "garbage"); err != nil {
		t.Fatalf("prefs.Set: %v", err)
	}
	if got := Current(p).Name; got != Light {
		t.Errorf("Current with garbage preference = %q, want %q", got, Light)
	}
}
