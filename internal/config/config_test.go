package config

import "testing"

func TestSetClampsToRegisteredRange(t *testing.T) {
	r := New()
	r.Register(Param{Name: "tt.mb", Default: 64, Min: 1, Max: 1024})
	if err := r.Set("tt.mb", 5000); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _ := r.Get("tt.mb"); v != 1024 {
		t.Errorf("got %d, want clamped to 1024", v)
	}
}

func TestSetUnknownKeyIsError(t *testing.T) {
	r := New()
	if err := r.Set("nonexistent", 1); err == nil {
		t.Errorf("expected an error for an unregistered key")
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic on duplicate registration")
		}
	}()
	r := New()
	r.Register(Param{Name: "x", Default: 0, Min: 0, Max: 1})
	r.Register(Param{Name: "x", Default: 0, Min: 0, Max: 1})
}

func TestDefaultRegistryHasSearchKnobs(t *testing.T) {
	r := Default()
	if _, ok := r.Get("tt.mb"); !ok {
		t.Errorf("expected tt.mb to be registered by default")
	}
	if _, ok := r.Get("search.multipv"); !ok {
		t.Errorf("expected search.multipv to be registered by default")
	}
}
