package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	opts := Default()
	if opts.Prompt != "> " {
		t.Errorf("default prompt = %q", opts.Prompt)
	}
	if opts.Plain || opts.NoColor {
		t.Error("display toggles default off")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fablecore.yaml")
	content := "plain: true\nno_color: true\nprompt: \">> \"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !opts.Plain || !opts.NoColor || opts.Prompt != ">> " {
		t.Errorf("Load = %+v", opts)
	}
}

func TestLoadFillsMissingPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fablecore.yaml")
	if err := os.WriteFile(path, []byte("plain: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.Prompt != "> " {
		t.Errorf("prompt = %q, want the default", opts.Prompt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("a missing file should fail")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("plain: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml should fail")
	}
}
