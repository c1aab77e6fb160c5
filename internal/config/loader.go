package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the demo configuration.
// Search order: customPath -> ~/.fpsdemo/config.yaml -> ./configs/demo.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "demo.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultConfig()
	}

	if err := yaml.Unmarshal(defaultDemoYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a configuration document over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Overrides are command line values that take precedence over the file.
type Overrides struct {
	CapFrameRate *bool
	TargetFPS    int
	FontPath     string
	Physics      string
}

// Apply copies the set overrides into cfg.
func (o Overrides) Apply(cfg *Config) {
	if o.CapFrameRate != nil {
		cfg.Loop.CapFrameRate = *o.CapFrameRate
	}
	if o.TargetFPS > 0 {
		cfg.Loop.TargetFPS = o.TargetFPS
	}
	if o.FontPath != "" {
		cfg.Font.Path = o.FontPath
	}
	if o.Physics != "" {
		cfg.Square.Physics = o.Physics
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fpsdemo", filename)
}
