package script_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/textinput"
	"github.com/go-theft-auto/textinput/internal/script"
	"github.com/go-theft-auto/textinput/surfacetest"
)

const helloScript = `
[[event]]
kind = "move"
x = 10.0
y = 10.0

[[event]]
kind = "click"
x = 10.0
y = 10.0

[[event]]
kind = "type"
text = "hello"

[[event]]
kind = "key"
key = "Backspace"

[[event]]
kind = "key"
key = "Enter"
`

func TestDecode(t *testing.T) {
	s, err := script.Decode(strings.NewReader(helloScript))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []script.Event{
		{Kind: script.KindMove, X: 10, Y: 10},
		{Kind: script.KindClick, X: 10, Y: 10},
		{Kind: script.KindType, Text: "hello"},
		{Kind: script.KindKey, Key: textinput.KeyBackspace},
		{Kind: script.KindKey, Key: textinput.KeyEnter},
	}
	if diff := cmp.Diff(want, s.Events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"unknown kind", "[[event]]\nkind = \"scroll\"\n", true},
		{"key without name", "[[event]]\nkind = \"key\"\n", true},
		{"unknown field", "[[event]]\nkind = \"move\"\nz = 1.0\n", true},
		{"syntax", "[[event]\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := script.Decode(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, script.ErrInvalidScript); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidScript) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestReplay(t *testing.T) {
	var submitted []string
	rec := surfacetest.NewRecorder()
	w, err := textinput.New(rec, textinput.WithSubmit(func(text string) {
		submitted = append(submitted, text)
	}))
	if err != nil {
		t.Fatal(err)
	}

	s, err := script.Decode(strings.NewReader(helloScript))
	if err != nil {
		t.Fatal(err)
	}
	s.Replay(w)

	if diff := cmp.Diff([]string{"hell"}, submitted); diff != "" {
		t.Errorf("submissions mismatch (-want +got):\n%s", diff)
	}
	if w.Text() != "" || !w.Selected() {
		t.Errorf("after submit: text %q selected %v", w.Text(), w.Selected())
	}
	if got := rec.CursorChanges(); len(got) != 1 || got[0] != textinput.CursorText {
		t.Errorf("cursor changes = %v, want one switch to text", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.toml")
	if err := os.WriteFile(path, []byte(helloScript), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := script.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Events) != 5 {
		t.Errorf("events = %d, want 5", len(s.Events))
	}

	if _, err := script.Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
}
