package config

import (
	"log/slog"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.RandomTickSpeed != 3 {
		t.Fatalf("expected default RandomTickSpeed 3, got %d", c.RandomTickSpeed)
	}
	if c.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", c.LogLevel)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	want := Config{
		PendingSetCapacity: 2048,
		RandomTickSpeed:    5,
		LogLevel:           "debug",
		SchematicDir:       "schematics",
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLevelFallsBackToInfoForUnknownString(t *testing.T) {
	c := Config{LogLevel: "verbose"}
	if c.Level() != slog.LevelInfo {
		t.Fatalf("expected unrecognised log level to fall back to Info")
	}
	if (Config{LogLevel: "WARN"}).Level() != slog.LevelWarn {
		t.Fatalf("expected log level matching to be case-insensitive")
	}
}
