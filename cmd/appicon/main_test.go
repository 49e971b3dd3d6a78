package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/arkadasbulma/appicon/logo"
)

func TestRun(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout bytes.Buffer
	if err := run(&stdout); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "başarıyla") {
		t.Errorf("output %q lacks the confirmation", out)
	}
	if !strings.Contains(out, logo.FileName) {
		t.Errorf("output %q does not name the file", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("output %q should be a single line", out)
	}

	f, err := os.Open(logo.FileName)
	if err != nil {
		t.Fatalf("icon not written: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("icon is not a PNG: %v", err)
	}
	if cfg.Width != 512 || cfg.Height != 512 {
		t.Errorf("icon is %dx%d, want 512x512", cfg.Width, cfg.Height)
	}
}

func TestRunOverwrites(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile(logo.FileName, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(&bytes.Buffer{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(logo.FileName)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("existing file was not replaced with a PNG")
	}
}

func TestRunUnwritableTarget(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.Mkdir(filepath.Join(dir, logo.FileName), 0o755); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := run(&stdout); err == nil {
		t.Fatal("run should fail when the target is a directory")
	}
	if stdout.Len() != 0 {
		t.Errorf("nothing should be printed on failure, got %q", stdout.String())
	}
}

func TestRunReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })
	t.Chdir(dir)

	var stdout bytes.Buffer
	if err := run(&stdout); err == nil {
		t.Fatal("run should fail in a read-only directory")
	}
	if stdout.Len() != 0 {
		t.Errorf("nothing should be printed on failure, got %q", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(dir, logo.FileName)); !os.IsNotExist(err) {
		t.Errorf("no icon should exist, stat = %v", err)
	}
}

func TestConfirmFromCatalog(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		want string
	}{
		{language.Turkish, "Icon başarıyla oluşturuldu: app_icon.png\n"},
		{language.English, "Icon created successfully: app_icon.png\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := confirm(&buf, tt.tag, logo.FileName); err != nil {
			t.Fatalf("confirm(%v) failed: %v", tt.tag, err)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("confirm(%v) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestCatalogHasTurkishConfirmation(t *testing.T) {
	// The key is English; Turkish output only appears through the catalog.
	if strings.Contains(msgIconWritten, "başarıyla") {
		t.Fatal("catalog key should not already be the Turkish text")
	}

	tags := messages.Languages()
	found := false
	for _, tag := range tags {
		if tag == language.Turkish {
			found = true
		}
	}
	if !found {
		t.Errorf("catalog languages = %v, want Turkish among them", tags)
	}
}
