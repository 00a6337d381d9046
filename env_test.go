package serd

import "testing"

func TestEnvExpandRelative(t *testing.T) {
	env := NewEnv(NewIRIUnsafe("http://example.org/a/b"))
	tests := []struct{ ref, want string }{
		{"c", "http://example.org/a/c"},
		{"/x", "http://example.org/x"},
		{"#frag", "http://example.org/a/b#frag"},
		{"http://other.org/z", "http://other.org/z"},
		{"../y", "http://example.org/y"},
	}
	for _, tt := range tests {
		got, err := env.Expand(tt.ref)
		if err != nil {
			t.Errorf("Expand(%q) unexpected error: %v", tt.ref, err)
			continue
		}
		if got.Value() != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.ref, got.Value(), tt.want)
		}
	}
}

func TestEnvExpandRequiresBaseForRelative(t *testing.T) {
	env := NewEnv(Node{})
	if _, err := env.Expand("foo"); err == nil {
		t.Error("expected an error expanding a relative reference with no base")
	}
}

func TestEnvAbbreviate(t *testing.T) {
	env := NewEnv(Node{})
	if err := env.SetPrefix("ex", NewIRIUnsafe("http://example.org/")); err != nil {
		t.Fatal(err)
	}
	got, ok := env.Abbreviate(NewIRIUnsafe("http://example.org/Thing"))
	if !ok || got != "ex:Thing" {
		t.Errorf("Abbreviate = %q, %v, want ex:Thing, true", got, ok)
	}
	if _, ok := env.Abbreviate(NewIRIUnsafe("http://other.org/Thing")); ok {
		t.Error("expected no abbreviation for an unbound namespace")
	}
}
