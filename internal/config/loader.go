package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a config by name with the standard search order:
// customPath -> ~/.miniarcade/configs/<name>.yaml -> ./configs/<name>.yaml
// -> embedded default. Only an explicitly requested path reports read
// or parse failures; the fallbacks are best-effort.
func load(name, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(name + ".yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name+".yaml")); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("config: embedded default for %s: %w", name, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".miniarcade", "configs", filename)
}

// LoadEngine loads the engine configuration.
func LoadEngine(customPath string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	if err := load("engine", customPath, defaultEngineYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadPong loads the Pong demo configuration.
func LoadPong(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := load("pong", customPath, defaultPongYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadBounce loads the bouncing-balls demo configuration.
func LoadBounce(customPath string) (BounceConfig, error) {
	cfg := DefaultBounceConfig()
	if err := load("bounce", customPath, defaultBounceYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
