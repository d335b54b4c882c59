package config

import (
	"os"
	"path/filepath"
	"testing"
)

// setTestConfigHome points XDG_CONFIG_HOME at a temp dir and resets the
// config cache around the test.
func setTestConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvOpenFDAAPIKey, "")
	ResetCache()
	t.Cleanup(ResetCache)
	return dir
}

func TestPath(t *testing.T) {
	dir := setTestConfigHome(t)

	want := filepath.Join(dir, ConfigDir, ConfigFile)
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := setTestConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIURL != "" {
		t.Errorf("APIURL = %q, want empty", cfg.APIURL)
	}
	want := filepath.Join(dir, ConfigDir, SnapshotFile)
	if cfg.SnapshotPath != want {
		t.Errorf("SnapshotPath = %q, want %q", cfg.SnapshotPath, want)
	}
}

func TestSaveAndLoad(t *testing.T) {
	setTestConfigHome(t)

	cfg := &Config{
		APIURL:         "https://staging.dgidb.org/api/graphql",
		OpenFDAAPIKey:  "secret",
		TrialsPageSize: 50,
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.APIURL != cfg.APIURL {
		t.Errorf("APIURL = %q, want %q", loaded.APIURL, cfg.APIURL)
	}
	if loaded.OpenFDAAPIKey != "secret" {
		t.Errorf("OpenFDAAPIKey = %q, want secret", loaded.OpenFDAAPIKey)
	}
	if loaded.TrialsPageSize != 50 {
		t.Errorf("TrialsPageSize = %d, want 50", loaded.TrialsPageSize)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	setTestConfigHome(t)

	cfg := &Config{APIURL: "https://from-file"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	t.Setenv(EnvAPIURL, "https://from-env")
	t.Setenv(EnvOpenFDAAPIKey, "env-key")

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.APIURL != "https://from-env" {
		t.Errorf("APIURL = %q, want env value", loaded.APIURL)
	}
	if loaded.OpenFDAAPIKey != "env-key" {
		t.Errorf("OpenFDAAPIKey = %q, want env value", loaded.OpenFDAAPIKey)
	}
}

func TestLoadCaches(t *testing.T) {
	setTestConfigHome(t)

	first, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	second, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if first != second {
		t.Error("Load() did not return the cached config")
	}
}

func TestLoadBadYAML(t *testing.T) {
	dir := setTestConfigHome(t)

	path := filepath.Join(dir, ConfigDir, ConfigFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("api_url: [not: valid"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config, got nil")
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{"api_url", "https://example.org", false},
		{"openfda_api_key", "key", false},
		{"snapshot_path", "/tmp/snaps.db", false},
		{"bogus", "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := &Config{}
			err := cfg.Set(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Set(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}
