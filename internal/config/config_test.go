// Copyright (c) 2025 Legend Score Team
// lscli - terminal client for the Legend Score administration API
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		// An explicit path that does not exist must fail loudly; only the
		// search locations tolerate absence.
		t.Fatalf("expected an error for a missing explicit config file")
	}

	cfg, err = Load(nil, "")
	if err != nil {
		t.Fatalf("load with defaults failed: %v", err)
	}
	if cfg.Language != "en" {
		t.Errorf("expected default language en, got %q", cfg.Language)
	}
	if cfg.Debug {
		t.Errorf("debug must default to off")
	}
	if cfg.API.BaseURL != "" {
		t.Errorf("the base URL default is resolved by the API client, not here; got %q", cfg.API.BaseURL)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lscli.yaml")
	content := "api:\n  base_url: https://ls.example.com\nlanguage: ja\ndebug: true\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.API.BaseURL != "https://ls.example.com" {
		t.Errorf("expected the file base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.Language != "ja" || !cfg.Debug {
		t.Errorf("expected language ja and debug on, got %+v", cfg)
	}
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	// Redirect the user config dir so the test never touches a real config.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	in := &Config{
		API:      APIConfig{BaseURL: "https://ls.example.com"},
		Language: "ja",
		Debug:    true,
	}
	if err := WriteConfigFile(in); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	path, err := getConfigPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat written config: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected owner-only file mode, got %v", info.Mode().Perm())
	}

	// The written file must load back with the same values.
	out, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if out.API.BaseURL != in.API.BaseURL || out.Language != in.Language || !out.Debug {
		t.Errorf("round trip mismatch: wrote %+v, read %+v", in, out)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lscli.yaml")
	if err := os.WriteFile(path, []byte("language: en\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LSCLI_LANGUAGE", "ja")
	t.Setenv("LSCLI_API_BASE_URL", "http://env.example.com")

	cfg, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Language != "ja" {
		t.Errorf("environment must override the file, got %q", cfg.Language)
	}
	if cfg.API.BaseURL != "http://env.example.com" {
		t.Errorf("expected the env base URL, got %q", cfg.API.BaseURL)
	}
}
