package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/wayfarer.yaml
var defaultYAML []byte

const fileName = "wayfarer.yaml"

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.wayfarer/wayfarer.yaml -> ./configs/wayfarer.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parse(data, userCfgPath)
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		return parse(data, filepath.Join("configs", fileName))
	}

	return parse(defaultYAML, "embedded default")
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	return parse(data, "input")
}

func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wayfarer", fileName)
}
