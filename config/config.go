package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Owner         string   `yaml:"owner,omitempty"`
	DefaultFormat string   `yaml:"default_format,omitempty"`
	PerPage       int      `yaml:"per_page,omitempty"`
	FeaturedRepos []string `yaml:"featured_repos,omitempty"`
	ExcludeRepos  []string `yaml:"exclude_repos,omitempty"`

	// Top-level config sections
	Cache    *CacheOverrides    `yaml:"cache,omitempty"`
	WakaTime *WakaTimeOverrides `yaml:"wakatime,omitempty"`
}

// CacheOverrides allows customizing the cache backend and freshness window
type CacheOverrides struct {
	Backend    string `yaml:"backend,omitempty"` // memory or sqlite
	Path       string `yaml:"path,omitempty"`
	TTLMinutes *int   `yaml:"ttl_minutes,omitempty"`
}

// WakaTimeOverrides - coding-stats provider settings
type WakaTimeOverrides struct {
	Username string `yaml:"username,omitempty"`
	ShareID  string `yaml:"share_id,omitempty"`
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".portfolio"
	}
	return filepath.Join(configDir, "portfolio")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".portfolio.yaml"
}

// DefaultCachePath returns the default location of the SQLite cache database
func DefaultCachePath() string {
	return filepath.Join(DefaultConfigDir(), "cache.db")
}

// DefaultConfig returns a fully populated config with all default values
func DefaultConfig() *Config {
	ttl := 60
	return &Config{
		Owner:         "muhammad-fiaz",
		DefaultFormat: "table",
		PerPage:       12,
		FeaturedRepos: []string{"logly", "fetchrr", "gradly", "pyreqwest"},
		ExcludeRepos:  []string{"muhammad-fiaz"},
		Cache: &CacheOverrides{
			Backend:    "memory",
			Path:       DefaultCachePath(),
			TTLMinutes: &ttl,
		},
		WakaTime: &WakaTimeOverrides{
			Username: "muhammadfiaz",
		},
	}
}

// Load loads the configuration from disk.
// It first loads the global config from XDG config directory, then merges
// any local .portfolio.yaml config on top (local values take precedence).
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Load global config if it exists
	globalPath := ConfigPath()
	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}

		var globalCfg Config
		if err := yaml.Unmarshal(data, &globalCfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}

		cfg = mergeConfig(cfg, &globalCfg)
	}

	// Load local config if it exists and merge on top
	localPath := LocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}

		var localCfg Config
		if err := yaml.Unmarshal(data, &localCfg); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}

		cfg = mergeConfig(cfg, &localCfg)
	}

	return cfg, nil
}

// mergeConfig merges an override config on top of a base config.
// Override values take precedence; unset override values preserve base values.
func mergeConfig(base, override *Config) *Config {
	result := &Config{}

	if override.Owner != "" {
		result.Owner = override.Owner
	} else {
		result.Owner = base.Owner
	}

	if override.DefaultFormat != "" {
		result.DefaultFormat = override.DefaultFormat
	} else {
		result.DefaultFormat = base.DefaultFormat
	}

	if override.PerPage > 0 {
		result.PerPage = override.PerPage
	} else {
		result.PerPage = base.PerPage
	}

	// Merge arrays (override replaces if non-empty)
	if len(override.FeaturedRepos) > 0 {
		result.FeaturedRepos = override.FeaturedRepos
	} else {
		result.FeaturedRepos = base.FeaturedRepos
	}

	if len(override.ExcludeRepos) > 0 {
		result.ExcludeRepos = override.ExcludeRepos
	} else {
		result.ExcludeRepos = base.ExcludeRepos
	}

	result.Cache = mergeCacheOverrides(base.Cache, override.Cache)
	result.WakaTime = mergeWakaTimeOverrides(base.WakaTime, override.WakaTime)

	return result
}

func mergeCacheOverrides(base, override *CacheOverrides) *CacheOverrides {
	if base == nil && override == nil {
		return nil
	}
	result := &CacheOverrides{}

	if base != nil {
		result.Backend = base.Backend
		result.Path = base.Path
		result.TTLMinutes = base.TTLMinutes
	}

	if override != nil {
		if override.Backend != "" {
			result.Backend = override.Backend
		}
		if override.Path != "" {
			result.Path = override.Path
		}
		if override.TTLMinutes != nil {
			result.TTLMinutes = override.TTLMinutes
		}
	}

	return result
}

func mergeWakaTimeOverrides(base, override *WakaTimeOverrides) *WakaTimeOverrides {
	if base == nil && override == nil {
		return nil
	}
	result := &WakaTimeOverrides{}

	if base != nil {
		result.Username = base.Username
		result.ShareID = base.ShareID
	}

	if override != nil {
		if override.Username != "" {
			result.Username = override.Username
		}
		if override.ShareID != "" {
			result.ShareID = override.ShareID
		}
	}

	return result
}

// CacheBackend returns the configured cache backend, defaulting to memory
func (c *Config) CacheBackend() string {
	if c.Cache != nil && c.Cache.Backend != "" {
		return c.Cache.Backend
	}
	return "memory"
}

// CachePath returns the configured SQLite cache path
func (c *Config) CachePath() string {
	if c.Cache != nil && c.Cache.Path != "" {
		return c.Cache.Path
	}
	return DefaultCachePath()
}

// CacheTTL returns the configured freshness window, defaulting to one hour
func (c *Config) CacheTTL() time.Duration {
	if c.Cache != nil && c.Cache.TTLMinutes != nil && *c.Cache.TTLMinutes > 0 {
		return time.Duration(*c.Cache.TTLMinutes) * time.Minute
	}
	return time.Hour
}

// WakaTimeUsername returns the configured WakaTime username
func (c *Config) WakaTimeUsername() string {
	if c.WakaTime != nil {
		return c.WakaTime.Username
	}
	return ""
}

// WakaTimeShareID returns the share token for the public stats embed.
// The WAKATIME_SHARE_ID environment variable takes precedence over the config file.
func (c *Config) WakaTimeShareID() string {
	if id := os.Getenv("WAKATIME_SHARE_ID"); id != "" {
		return id
	}
	if c.WakaTime != nil {
		return c.WakaTime.ShareID
	}
	return ""
}

// GetGitHubToken returns the GitHub token from the GITHUB_TOKEN environment variable.
// Following 12-factor app best practices, tokens are only read from the environment.
func (c *Config) GetGitHubToken() string {
	return os.Getenv("GITHUB_TOKEN")
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configDir := DefaultConfigDir()

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}
