package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abelbrown/pressdeck/internal/feeds"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want default", cfg.Addr)
	}
	if cfg.CacheTTL() != 10*time.Minute {
		t.Errorf("CacheTTL = %v, want 10m", cfg.CacheTTL())
	}
	if cfg.FetchTimeout() != 18*time.Second {
		t.Errorf("FetchTimeout = %v, want 18s", cfg.FetchTimeout())
	}
	if cfg.PostLimit != 150 {
		t.Errorf("PostLimit = %d, want 150", cfg.PostLimit)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"addr": ":9999"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", cfg.Addr)
	}
	if cfg.CacheTTLMinutes != 10 {
		t.Errorf("CacheTTLMinutes = %d, want default 10", cfg.CacheTTLMinutes)
	}
}

func TestLoadInvalidJSONFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want default after bad JSON", cfg.Addr)
	}
}

func TestSourceList(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.SourceList(); len(got) != len(feeds.DefaultSources) {
		t.Errorf("SourceList len = %d, want built-in %d", len(got), len(feeds.DefaultSources))
	}

	cfg.Sources = []feeds.Source{{Company: "Only", FeedURL: "https://only.test/feed", Homepage: "https://only.test"}}
	if got := cfg.SourceList(); len(got) != 1 || got[0].Company != "Only" {
		t.Errorf("SourceList = %v, want configured override", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	cfg := DefaultConfig()
	cfg.Addr = ":7070"
	cfg.PostLimit = 42

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Addr != ":7070" || loaded.PostLimit != 42 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
