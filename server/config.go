package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the HTTP server settings. All fields have working defaults so
// the server runs without a config file.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`

	// VerifyBin is the verifier binary invoked for /verify requests.
	VerifyBin string `yaml:"verify_bin"`

	// BundleDir is where failing runs are archived.
	BundleDir string `yaml:"bundle_dir"`

	// StaticDir, when set, is served at the root path for the UI.
	StaticDir string `yaml:"static_dir"`
}

// DefaultConfig returns the settings used when no config file is given.
// The loopback bind keeps the server local-only.
func DefaultConfig() Config {
	return Config{
		Addr:      "127.0.0.1:8000",
		VerifyBin: "bin/qverify",
		BundleDir: "run_bundles",
	}
}

// LoadConfig reads a YAML config file, filling unset fields from
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("server: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("server: parse config %s: %w", path, err)
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	if cfg.VerifyBin == "" {
		cfg.VerifyBin = DefaultConfig().VerifyBin
	}
	if cfg.BundleDir == "" {
		cfg.BundleDir = DefaultConfig().BundleDir
	}
	return cfg, nil
}
