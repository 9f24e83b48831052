package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/commonui/internal/errors"
	"github.com/vango-dev/commonui/pkg/styles"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.Platform != DefaultPlatform {
		t.Errorf("Platform = %q, want %q", cfg.Platform, DefaultPlatform)
	}
	if !cfg.MetricsEnabled() {
		t.Error("metrics should be enabled by default")
	}
	if cfg.Export.Prefix != DefaultExportPrefix {
		t.Errorf("Export.Prefix = %q, want %q", cfg.Export.Prefix, DefaultExportPrefix)
	}
	if cfg.Tracing.Enabled || cfg.Tracing.Exporter != DefaultTraceExporter {
		t.Errorf("Tracing = %+v, want disabled stdout", cfg.Tracing)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Missing config yields defaults.
	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load(missing) error: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want default", cfg.Server.Port)
	}

	configJSON := `{
  "platform": "mobile",
  "server": {
    "host": "0.0.0.0",
    "port": 8080,
    "metrics": false
  },
  "export": {
    "bucket": "ui-gallery",
    "region": "eu-west-1"
  }
}
`
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.PlatformValue() != styles.Mobile {
		t.Errorf("Platform = %q, want mobile", cfg.Platform)
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if cfg.MetricsEnabled() {
		t.Error("metrics should be disabled")
	}
	if cfg.Export.Bucket != "ui-gallery" || cfg.Export.Region != "eu-west-1" {
		t.Errorf("Export = %+v", cfg.Export)
	}
	if cfg.Export.Prefix != DefaultExportPrefix {
		t.Errorf("Export.Prefix = %q, want default", cfg.Export.Prefix)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q, want %q", cfg.Path(), configPath)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := LoadFile(filepath.Join(tmpDir, "nope.json"))
	if !stderrors.Is(err, errors.New(errors.CodeConfigRead)) {
		t.Errorf("LoadFile(missing) error = %v, want E111", err)
	}

	bad := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(tmpDir)
	if !stderrors.Is(err, errors.New(errors.CodeInvalidConfig)) {
		t.Errorf("Load(invalid) error = %v, want E110", err)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := New()
	cfg.Export.Bucket = "b"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if loaded.Export.Bucket != "b" || loaded.Server.Port != DefaultPort {
		t.Errorf("round trip = %+v", loaded)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvPlatform: "mobile",
		EnvPort:     "9999",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := New()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}
	if cfg.Platform != "mobile" || cfg.Server.Port != 9999 {
		t.Errorf("after ApplyEnv: platform=%q port=%d", cfg.Platform, cfg.Server.Port)
	}

	env[EnvPort] = "abc"
	if err := cfg.ApplyEnv(lookup); err == nil {
		t.Error("ApplyEnv() should reject a non-numeric port")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"mobile", func(c *Config) { c.Platform = "mobile" }, false},
		{"bad platform", func(c *Config) { c.Platform = "tv" }, true},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"no span export", func(c *Config) { c.Tracing.Exporter = "none" }, false},
		{"bad exporter", func(c *Config) { c.Tracing.Exporter = "zipkin" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateExport(t *testing.T) {
	cfg := New()
	if err := cfg.ValidateExport(); err == nil {
		t.Error("ValidateExport() should require a bucket")
	}
	cfg.Export.Bucket = "gallery"
	if err := cfg.ValidateExport(); err != nil {
		t.Errorf("ValidateExport() error: %v", err)
	}
}
