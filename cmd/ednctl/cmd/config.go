package cmd

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is ednctl's own settings file, ~/.ednctl.yaml, holding the CLI's
// output preferences.
type Config struct {
	// DefaultFormat selects parse's default rendering: "display" (canonical
	// EDN text) or "debug" (a repr.String structural dump).
	DefaultFormat string `yaml:"defaultformat"`
}

func defaultConfig() Config {
	return Config{DefaultFormat: "display"}
}

// LoadConfig reads ~/.ednctl.yaml if present, falling back to defaults when
// the file is absent - a missing file is not an error, since ednctl is
// usable with no configuration at all.
func LoadConfig() (Config, error) {
	result := defaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return result, nil
	}
	configFilename := filepath.Join(home, ".ednctl.yaml")
	raw, err := os.ReadFile(configFilename)
	if os.IsNotExist(err) {
		return result, nil
	}
	if err != nil {
		return result, err
	}
	if err := yaml.Unmarshal(raw, &result); err != nil {
		return result, err
	}
	return result, nil
}
