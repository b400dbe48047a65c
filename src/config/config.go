// Package config loads application settings: a YAML file merged over
// defaults, with the Firebase API key sourced from the environment (a local
// .env file is honored) so it stays out of checked-in files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// APIKeyEnv is the environment variable holding the Firebase web API key.
const APIKeyEnv = "CARBONIVORE_FIREBASE_API_KEY"

// Config holds all Carbonivore configuration.
type Config struct {
	Data     DataConfig    `yaml:"data"`
	Contact  ContactConfig `yaml:"contact"`
	Splash   SplashConfig  `yaml:"splash"`
	Logging  LoggingConfig `yaml:"logging"`
	Firebase AuthConfig    `yaml:"firebase"`
	Charts   ChartsConfig  `yaml:"charts"`
}

type DataConfig struct {
	// CleanedPath feeds the visualization page; RawPath the pre-processing one.
	CleanedPath string `yaml:"cleaned_path"`
	RawPath     string `yaml:"raw_path"`
}

type ContactConfig struct {
	DBPath string `yaml:"db_path"`
}

type SplashConfig struct {
	DurationMillis int `yaml:"duration_millis"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type AuthConfig struct {
	// APIKey set here overrides the environment.
	APIKey string `yaml:"api_key"`
}

type ChartsConfig struct {
	TopFireAreas       int `yaml:"top_fire_areas"`
	TopPopulationAreas int `yaml:"top_population_areas"`
	TopPopulationRows  int `yaml:"top_population_rows"`
	ScatterRows        int `yaml:"scatter_rows"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			CleanedPath: "cleaned_data.csv",
			RawPath:     "the_Carbonivore.csv",
		},
		Contact: ContactConfig{DBPath: "contacts.db"},
		Splash:  SplashConfig{DurationMillis: 2500},
		Logging: LoggingConfig{Level: "info"},
		Charts: ChartsConfig{
			TopFireAreas:       50,
			TopPopulationAreas: 50,
			TopPopulationRows:  500,
			ScatterRows:        3000,
		},
	}
}

// Load reads the YAML file at path and merges it over defaults. A missing
// file is not an error: the defaults apply. Invalid YAML is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.resolveAPIKey()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.resolveAPIKey()
	return cfg, nil
}

// resolveAPIKey fills Firebase.APIKey from the environment when the config
// file left it empty. godotenv never overrides variables already set.
func (c *Config) resolveAPIKey() {
	if c.Firebase.APIKey != "" {
		return
	}
	_ = godotenv.Load()
	c.Firebase.APIKey = os.Getenv(APIKeyEnv)
}
