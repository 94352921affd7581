package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// SiteConfig represents the structure of the site.yaml file: the static
// youth-center data served to the mobile app (map screen locations and the
// allowed spark categories). Easier to maintain in YAML than env vars.
type SiteConfig struct {
	Centers    []CenterConfig `yaml:"centers"`
	Categories []string       `yaml:"categories"`
}

// CenterConfig defines one youth-center location.
type CenterConfig struct {
	Slug      string  `yaml:"slug"`
	Name      string  `yaml:"name"`
	Address   string  `yaml:"address"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Phone     string  `yaml:"phone,omitempty"`
}

// HasCategory reports whether the category is one of the configured spark
// categories. An empty category list accepts anything.
func (s *SiteConfig) HasCategory(category string) bool {
	if s == nil || len(s.Categories) == 0 {
		return true
	}
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// LoadSiteConfig loads the YAML site configuration file.
// Path is determined by SITE_CONFIG_FILE env var, defaulting to "site.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadSiteConfig() (*SiteConfig, error) {
	path := getEnv("SITE_CONFIG_FILE", "site.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
