package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the finder CLI's top-level configuration: which tokenizer and
// normalizer pipeline to build, and how verbosely to log while doing it.
type Config struct {
	Tokenizer   string   `yaml:"tokenizer" json:"tokenizer"`     // character, bigram, subword, jamo
	Normalizers []string `yaml:"normalizers" json:"normalizers"` // e.g. ["unicode", "lowercase", "number"]
	MaxDistance int      `yaml:"maxDistance" json:"maxDistance"`
	LogLevel    string   `yaml:"logLevel" json:"logLevel"`
	SubwordPath string   `yaml:"subwordModelPath,omitempty" json:"subwordModelPath,omitempty"`
}

// DefaultConfig returns the finder's baseline configuration: character
// tokenization with Unicode normalization and lowercasing, matching within
// edit distance 2.
func DefaultConfig() *Config {
	return &Config{
		Tokenizer:   "character",
		Normalizers: []string{"unicode", "lowercase"},
		MaxDistance: 2,
		LogLevel:    "INFO",
	}
}

// LoadConfig reads a Config from path if it exists, returning defaults
// otherwise. The file is parsed as YAML whatever its extension; JSON files
// load too, since YAML accepts JSON syntax.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied via CLI flag
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetAppConfigPaths returns config search paths for a given app name.
// Searches in order:
//  1. XDG config dir (e.g., ~/.config/appName/config.yaml)
//  2. Dot-directory in home (e.g., ~/.appName/config.yaml)
//  3. Dot-file in home (e.g., ~/.appName.yaml)
//  4. Current directory (e.g., ./appName.yaml)
func GetAppConfigPaths(appName string) []string {
	xdg := GetXDGBaseDirs()
	home := os.Getenv("HOME")

	var paths []string

	paths = append(paths,
		filepath.Join(xdg.ConfigHome, appName, "config.yaml"),
		filepath.Join(xdg.ConfigHome, appName, "config.json"),
	)

	if home != "" {
		paths = append(paths,
			filepath.Join(home, "."+appName, "config.yaml"),
			filepath.Join(home, "."+appName, "config.json"),
			filepath.Join(home, "."+appName+".yaml"),
			filepath.Join(home, "."+appName+".json"),
		)
	}

	paths = append(paths,
		"./"+appName+".yaml",
		"./"+appName+".json",
		"./."+appName+".yaml",
		"./."+appName+".json",
	)

	return paths
}

// SaveConfig writes the configuration to path as YAML, creating parent
// directories as needed.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	// #nosec G301 -- config directories use 0755 for multi-user access compatibility
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	// #nosec G304 -- intentional user-controlled file creation for saving configuration to user-specified path
	return os.WriteFile(path, data, 0o600)
}
