package config

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vango-dev/commonui/internal/errors"
	"github.com/vango-dev/commonui/pkg/styles"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "commonui.json"

	// DefaultPort is the default gallery server port.
	DefaultPort = 3100

	// DefaultHost is the default gallery server host.
	DefaultHost = "localhost"

	// DefaultPlatform is the default style platform.
	DefaultPlatform = "electron"

	// DefaultExportPrefix is the default S3 key prefix for exports.
	DefaultExportPrefix = "commonui/"

	// DefaultTraceExporter is the default span exporter.
	DefaultTraceExporter = "stdout"
)

// Environment overrides.
const (
	EnvPlatform = "COMMONUI_PLATFORM"
	EnvPort     = "COMMONUI_PORT"
)

// Config represents the commonui.json configuration.
type Config struct {
	// Platform is the default style platform ("electron" or "mobile").
	Platform string `json:"platform,omitempty"`

	// Server contains gallery server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Export contains gallery export configuration.
	Export ExportConfig `json:"export,omitempty"`

	// Tracing contains span export configuration.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains gallery server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Metrics exposes /metrics when true. Defaults to true.
	Metrics *bool `json:"metrics,omitempty"`
}

// ExportConfig contains S3 export settings.
type ExportConfig struct {
	// Bucket is the destination bucket. Required for export.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`
}

// TracingConfig contains OpenTelemetry settings for the gallery server.
type TracingConfig struct {
	// Enabled records button.render spans.
	Enabled bool `json:"enabled,omitempty"`

	// Exporter is "stdout" or "none".
	Exporter string `json:"exporter,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads commonui.json from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, ConfigFileName))
	if stderrors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigRead).
				WithDetail("No " + ConfigFileName + " found at " + path).
				Wrap(err)
		}
		return nil, errors.New(errors.CodeConfigRead).Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeInvalidConfig).
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeInvalidConfig).Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigRead).Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Platform == "" {
		c.Platform = DefaultPlatform
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Metrics == nil {
		on := true
		c.Server.Metrics = &on
	}
	if c.Export.Prefix == "" {
		c.Export.Prefix = DefaultExportPrefix
	}
	if c.Tracing.Exporter == "" {
		c.Tracing.Exporter = DefaultTraceExporter
	}
}

// ApplyEnv overrides fields from the environment. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPlatform); ok && v != "" {
		c.Platform = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.New(errors.CodeInvalidConfig).
				WithDetailf("%s=%q is not a port number", EnvPort, v)
		}
		c.Server.Port = port
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := styles.ParsePlatform(c.Platform); err != nil {
		return errors.New(errors.CodeInvalidConfig).
			WithDetailf("platform %q must be electron or mobile", c.Platform)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New(errors.CodeInvalidConfig).
			WithDetail("Port must be between 0 and 65535")
	}
	switch c.Tracing.Exporter {
	case "stdout", "none":
	default:
		return errors.New(errors.CodeInvalidConfig).
			WithDetailf("tracing.exporter %q must be stdout or none", c.Tracing.Exporter)
	}
	return nil
}

// ValidateExport checks the fields export needs.
func (c *Config) ValidateExport() error {
	if strings.TrimSpace(c.Export.Bucket) == "" {
		return errors.New(errors.CodeInvalidConfig).
			WithDetail("export.bucket is required").
			WithSuggestion("Set export.bucket in " + ConfigFileName + " or pass --bucket")
	}
	return nil
}

// PlatformValue returns the parsed platform. Call Validate first.
func (c *Config) PlatformValue() styles.Platform {
	p, _ := styles.ParsePlatform(c.Platform)
	return p
}

// MetricsEnabled reports whether /metrics is served.
func (c *Config) MetricsEnabled() bool {
	return c.Server.Metrics == nil || *c.Server.Metrics
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
