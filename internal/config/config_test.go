package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")
	content := `[match]
ai_threshold = 0.6
voice_threshold = 0.3

[voice]
collapse_duplicates = false

[server]
addr = :9000
requests_per_second = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.AIThreshold != 0.6 || c.VoiceThreshold != 0.3 {
		t.Errorf("thresholds = %v, %v", c.AIThreshold, c.VoiceThreshold)
	}
	if !c.KeepDuplicateSets {
		t.Error("collapse_duplicates=false should keep duplicates")
	}
	if c.Addr != ":9000" || c.RequestsPerSecond != 5 {
		t.Errorf("server = %q, %d", c.Addr, c.RequestsPerSecond)
	}
}

func TestLoadDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")
	if err := os.WriteFile(path, []byte("[match]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d := Default()
	if c != d {
		t.Errorf("got %+v, want defaults %+v", c, d)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.ini"); err == nil {
		t.Error("expected error")
	}
}
