package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// ConfigEnv names the environment variable holding an optional config file path.
const ConfigEnv = "I18NSCAN_CONFIG"

type Config struct {
	Logger Logger `yaml:"logger"`
	Scan   Scan   `yaml:"scan"`
}

type Logger struct {
	Level           string `yaml:"level"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

// Scan holds the scan inputs and output preferences.
type Scan struct {
	Roots          []string `yaml:"roots"`
	Extensions     []string `yaml:"extensions"`
	Exclusions     []string `yaml:"exclusions"`
	Threads        int      `yaml:"threads"`
	Format         string   `yaml:"format"`
	Output         string   `yaml:"output"`
	FailOnFindings bool     `yaml:"fail_on_findings"`
	ChangedOnly    bool     `yaml:"changed_only"`
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig returns the built-in defaults overlaid with the YAML file at
// configPath. An empty configPath falls back to I18NSCAN_CONFIG, and when that
// is unset too the defaults are returned as is.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv(ConfigEnv)
	}

	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	if err := LoadYAML(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", configPath, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}
