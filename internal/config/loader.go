package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the world configuration.
// Search order: customPath -> ~/.critters/configs/world.yaml -> ./configs/world.yaml -> embedded default
//
// Only an explicit customPath is required to exist and parse; a broken file
// on the search path is skipped.
func Load(customPath string) (WorldConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WorldConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return WorldConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths("world.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultWorldYAML)
	if err != nil {
		return DefaultWorldConfig(), nil
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// the keys it changes. A file that lists populations replaces the default
// populations entirely.
func Parse(data []byte) (WorldConfig, error) {
	cfg := DefaultWorldConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WorldConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".critters", "configs", filename)
}
