package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Grid     GridConfig     `yaml:"grid"`
	Refresh  RefreshConfig  `yaml:"refresh"`
	Calendar CalendarConfig `yaml:"calendar"`
	Football FootballConfig `yaml:"football"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig holds the SQLite location
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// GridConfig holds the placement grid dimensions
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// RefreshConfig holds the provider cache refresh schedule
type RefreshConfig struct {
	// Schedule is a cron expression; empty disables background refresh
	Schedule string `yaml:"schedule"`
}

// CalendarConfig holds Google Calendar API settings. With no API key the
// calendar service serves deterministic mock events.
type CalendarConfig struct {
	APIKey     string `yaml:"api_key"`
	CalendarID string `yaml:"calendar_id"`
}

// FootballConfig holds football data API settings. With no API key the
// football service serves mock data.
type FootballConfig struct {
	APIKey   string `yaml:"api_key"`
	TeamID   int    `yaml:"team_id"`
	LeagueID int    `yaml:"league_id"`
	PlayerID int    `yaml:"player_id"`
	Season   int    `yaml:"season"`
}

// ThemeConfig holds the terminal client's colors
type ThemeConfig struct {
	Accent       string `yaml:"accent"`
	Border       string `yaml:"border"`
	ActiveBorder string `yaml:"active_border"`
	Muted        string `yaml:"muted"`
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path, falling back to defaults when
// the file does not exist
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "dashgrid", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "dashgrid", "config.yaml"), nil
}

func defaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":3000"
	}
	if c.Grid.Rows == 0 {
		c.Grid.Rows = 8
	}
	if c.Grid.Cols == 0 {
		c.Grid.Cols = 6
	}
	if c.Refresh.Schedule == "" {
		c.Refresh.Schedule = "*/5 * * * *"
	}
	if c.Football.TeamID == 0 {
		c.Football.TeamID = 529
	}
	if c.Football.LeagueID == 0 {
		c.Football.LeagueID = 140
	}
	if c.Football.PlayerID == 0 {
		c.Football.PlayerID = 276158
	}
	if c.Football.Season == 0 {
		c.Football.Season = 2023
	}
	if c.Theme.Accent == "" {
		c.Theme.Accent = "#00d563"
	}
	if c.Theme.Border == "" {
		c.Theme.Border = "#444444"
	}
	if c.Theme.ActiveBorder == "" {
		c.Theme.ActiveBorder = "#00d563"
	}
	if c.Theme.Muted == "" {
		c.Theme.Muted = "#888888"
	}
}
