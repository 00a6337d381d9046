package serd

import "testing"

func TestCanonicalDecimal(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1", "1.0"},
		{"1.0", "1.0"},
		{"01.500", "1.5"},
		{"-0.0", "0.0"},
		{"+3.14", "3.14"},
		{".5", "0.5"},
		{"5.", "5.0"},
	}
	for _, tt := range tests {
		got, err := canonicalDecimal(tt.in)
		if err != nil {
			t.Errorf("canonicalDecimal(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("canonicalDecimal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanonicalDecimalRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "1e10"} {
		if _, err := canonicalDecimal(in); err == nil {
			t.Errorf("canonicalDecimal(%q): expected error", in)
		}
	}
}

func TestNewDouble(t *testing.T) {
	n := NewDouble(100)
	if got, want := n.Value(), "1.0E+02"; got != want {
		t.Errorf("NewDouble(100).Value() = %q, want %q", got, want)
	}
	dt, ok := n.Datatype()
	if !ok || dt.Value() != XSDDouble.Value() {
		t.Errorf("NewDouble datatype = %v, want xsd:double", dt)
	}
}

func TestNewBoolean(t *testing.T) {
	if got := NewBoolean(true).Value(); got != "true" {
		t.Errorf("NewBoolean(true).Value() = %q, want true", got)
	}
	if got := NewBoolean(false).Value(); got != "false" {
		t.Errorf("NewBoolean(false).Value() = %q, want false", got)
	}
}

func TestNewBase64AndHexBinary(t *testing.T) {
	data := []byte("hello")
	b64 := NewBase64Binary(data)
	if got, want := b64.Value(), "aGVsbG8="; got != want {
		t.Errorf("NewBase64Binary.Value() = %q, want %q", got, want)
	}
	hx := NewHexBinary(data)
	if got, want := hx.Value(), "68656C6C6F"; got != want {
		t.Errorf("NewHexBinary.Value() = %q, want %q", got, want)
	}
}
