// Package config provides configuration management for daylog.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xvierd/daylog/internal/domain"
)

// Config holds all configuration for the daylog application.
type Config struct {
	Catalog       CatalogConfig      `mapstructure:"catalog" toml:"catalog"`
	Reel          ReelConfig         `mapstructure:"reel" toml:"reel"`
	Notifications NotificationConfig `mapstructure:"notifications" toml:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging" toml:"logging"`
	Theme         ThemeConfig        `mapstructure:"theme" toml:"theme"`
}

// CatalogConfig lists the selectable activities and the sleep sentinels.
type CatalogConfig struct {
	Activities []string `mapstructure:"activities" toml:"activities"`
	SleepStart string   `mapstructure:"sleep_start" toml:"sleep_start"`
	SleepEnd   string   `mapstructure:"sleep_end" toml:"sleep_end"`
}

// ReelConfig sizes the activity reel.
type ReelConfig struct {
	VisibleRows int `mapstructure:"visible_rows" toml:"visible_rows"`
	RowHeight   int `mapstructure:"row_height" toml:"row_height"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level"`
	// Format is json or text.
	Format string `mapstructure:"format" toml:"format"`
	// Output is stdout, stderr, discard or a file path.
	Output string `mapstructure:"output" toml:"output"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorTitle    string `mapstructure:"color_title" toml:"color_title"`
	ColorActive   string `mapstructure:"color_active" toml:"color_active"`
	ColorReel     string `mapstructure:"color_reel" toml:"color_reel"`
	ColorSelected string `mapstructure:"color_selected" toml:"color_selected"`
	ColorSleep    string `mapstructure:"color_sleep" toml:"color_sleep"`
	ColorLog      string `mapstructure:"color_log" toml:"color_log"`
	ColorHelp     string `mapstructure:"color_help" toml:"color_help"`
	ColorError    string `mapstructure:"color_error" toml:"color_error"`
	IconApp       string `mapstructure:"icon_app" toml:"icon_app"`
	IconSleep     string `mapstructure:"icon_sleep" toml:"icon_sleep"`
	IconPointer   string `mapstructure:"icon_pointer" toml:"icon_pointer"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorTitle:    "#6B7280",
		ColorActive:   "#7C6FE0",
		ColorReel:     "#95A5A6",
		ColorSelected: "#A78BFA",
		ColorSleep:    "#4ECDC4",
		ColorLog:      "#A0AEC0",
		ColorHelp:     "#95A5A6",
		ColorError:    "#E06C75",
		IconApp:       "🕑",
		IconSleep:     "🌙",
		IconPointer:   "▸",
	}
}

// DefaultActivities is the catalog shipped with daylog.
var DefaultActivities = []string{
	"Работа",
	"Почивка",
	"Хранене",
	"Разходка",
	"Спорт",
	"Четене",
	"Лягане",
	"Ставане",
}

const (
	defaultSleepStart = "Лягане"
	defaultSleepEnd   = "Ставане"
	defaultDataDir    = "~/.daylog"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Activities: append([]string(nil), DefaultActivities...),
			SleepStart: defaultSleepStart,
			SleepEnd:   defaultSleepEnd,
		},
		Reel: ReelConfig{
			VisibleRows: 7,
			RowHeight:   1,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: defaultDataDir + "/daylog.log",
		},
		Theme: DefaultThemeConfig(),
	}
}

// DomainCatalog converts the catalog section to the domain type.
func (c *Config) DomainCatalog() domain.Catalog {
	return domain.NewCatalog(c.Catalog.Activities, c.Catalog.SleepStart, c.Catalog.SleepEnd)
}

// Validate checks the values the application cannot run without.
func (c *Config) Validate() error {
	var errs []error
	if err := c.DomainCatalog().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Reel.VisibleRows < 1 {
		errs = append(errs, fmt.Errorf("reel.visible_rows must be at least 1, got %d", c.Reel.VisibleRows))
	}
	if c.Reel.RowHeight < 1 {
		errs = append(errs, fmt.Errorf("reel.row_height must be at least 1, got %d", c.Reel.RowHeight))
	}
	return errors.Join(errs...)
}

// Load loads the configuration from path, or from the default location when
// path is empty. A missing file is created with the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	output, err := expandPath(cfg.Logging.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log output: %w", err)
	}
	cfg.Logging.Output = output

	return &cfg, nil
}

// Save writes cfg to path as TOML.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.Set("catalog.activities", cfg.Catalog.Activities)
	v.Set("catalog.sleep_start", cfg.Catalog.SleepStart)
	v.Set("catalog.sleep_end", cfg.Catalog.SleepEnd)
	v.Set("reel.visible_rows", cfg.Reel.VisibleRows)
	v.Set("reel.row_height", cfg.Reel.RowHeight)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.format", cfg.Logging.Format)
	v.Set("logging.output", cfg.Logging.Output)
	v.Set("theme", themeMap(cfg.Theme))

	return v.WriteConfig()
}

// GetConfigPath returns the path to the default config file.
func GetConfigPath() (string, error) {
	dir, err := expandPath(defaultDataDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("catalog.activities", d.Catalog.Activities)
	v.SetDefault("catalog.sleep_start", d.Catalog.SleepStart)
	v.SetDefault("catalog.sleep_end", d.Catalog.SleepEnd)
	v.SetDefault("reel.visible_rows", d.Reel.VisibleRows)
	v.SetDefault("reel.row_height", d.Reel.RowHeight)
	v.SetDefault("notifications.enabled", d.Notifications.Enabled)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)

	for k, val := range themeMap(d.Theme) {
		v.SetDefault("theme."+k, val)
	}
}

func themeMap(t ThemeConfig) map[string]string {
	return map[string]string{
		"color_title":    t.ColorTitle,
		"color_active":   t.ColorActive,
		"color_reel":     t.ColorReel,
		"color_selected": t.ColorSelected,
		"color_sleep":    t.ColorSleep,
		"color_log":      t.ColorLog,
		"color_help":     t.ColorHelp,
		"color_error":    t.ColorError,
		"icon_app":       t.IconApp,
		"icon_sleep":     t.IconSleep,
		"icon_pointer":   t.IconPointer,
	}
}

// expandPath resolves a leading ~ against the home directory. The special
// log outputs are returned unchanged.
func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	switch trimmed {
	case "", "stdout", "stderr", "discard":
		return trimmed, nil
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return trimmed, nil
}
