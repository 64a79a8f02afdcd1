package fontface_test

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/textinput/fontface"
)

func TestFaceCachedPerSize(t *testing.T) {
	r := fontface.NewRegistry()

	a := r.Face("Go", 15)
	b := r.Face("go", 15)
	if a != b {
		t.Error("family lookup should be case-insensitive and cached")
	}
	if c := r.Face("Go", 20); c == a {
		t.Error("different sizes must produce different faces")
	}
}

func TestAliasesAndFallback(t *testing.T) {
	r := fontface.NewRegistry()

	if r.Face("Arial", 15) != r.Face(fontface.FamilyGo, 15) {
		t.Error("Arial should alias the Go font")
	}
	if r.Face("No Such Font", 15) != r.Face(fontface.FamilyGo, 15) {
		t.Error("unknown families should fall back to the Go font")
	}
	if r.Face("monospace", 12) != r.Face(fontface.FamilyGoMono, 12) {
		t.Error("monospace should alias Go Mono")
	}
}

func TestMeasure(t *testing.T) {
	r := fontface.NewRegistry()
	face := r.Face("Go", 15)

	if got := fontface.Measure(face, ""); got != 0 {
		t.Errorf("Measure(\"\") = %v, want 0", got)
	}
	short := fontface.Measure(face, "Hello")
	long := fontface.Measure(face, "Hello, world")
	if short <= 0 || long <= short {
		t.Errorf("Measure: short=%v long=%v", short, long)
	}

	mono := r.Face("Go Mono", 15)
	if i, m := fontface.Measure(mono, "iiii"), fontface.Measure(mono, "mmmm"); i != m {
		t.Errorf("Go Mono advances differ: iiii=%v mmmm=%v", i, m)
	}

	// Larger sizes measure wider.
	if big := fontface.Measure(r.Face("Go", 30), "Hello"); big <= short {
		t.Errorf("30px width %v not wider than 15px width %v", big, short)
	}
}

func TestRegisterCustomFamily(t *testing.T) {
	r := fontface.NewRegistry()
	if err := r.Register("Corporate", goregular.TTF); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if fontface.Measure(r.Face("Corporate", 15), "x") <= 0 {
		t.Error("registered family should measure text")
	}
	if err := r.Register("Broken", []byte("not a font")); err == nil {
		t.Error("Register should reject invalid font data")
	}
}
