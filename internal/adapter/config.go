package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ViewMode selects how the product list is rendered
type ViewMode string

const (
	ViewTable ViewMode = "table"
	ViewGrid  ViewMode = "grid"
)

// ParseViewMode accepts "table" or "grid" (case-insensitive)
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ViewTable:
		return ViewTable, nil
	case ViewGrid:
		return ViewGrid, nil
	default:
		return "", fmt.Errorf("unknown view mode %q (want table or grid)", s)
	}
}

// Config holds all application configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	Viewer  ViewerConfig  `mapstructure:"viewer"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourceConfig holds the remote catalog endpoint
type SourceConfig struct {
	URL       string        `mapstructure:"url"`
	Timeout   time.Duration `mapstructure:"timeout"` // 0 = no timeout
	UserAgent string        `mapstructure:"user_agent"`
}

// ViewerConfig holds the external image viewer. Empty command uses the system default.
type ViewerConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultView      string `mapstructure:"default_view"`
	GridColumns      int    `mapstructure:"grid_columns"`
	DescriptionWidth int    `mapstructure:"description_width"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			URL:       "https://fakestoreapi.com",
			UserAgent: "Nador/1.0",
		},
		UI: UIConfig{
			DefaultView:      string(ViewTable),
			GridColumns:      3,
			DescriptionWidth: 100,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "nador", "nador.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "nador", "nador.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "nador")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "nador")
	}
}

// LoadConfig loads configuration from file, .env and environment.
// An explicit configFile must exist; otherwise the default locations are
// searched and a missing file is not an error.
func LoadConfig(configFile string) (*Config, error) {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides: NADOR_SOURCE_URL, NADOR_LOGGING_LEVEL, ...
	v.SetEnvPrefix("NADOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys absent from the file
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("source.url", cfg.Source.URL)
	v.SetDefault("source.timeout", cfg.Source.Timeout)
	v.SetDefault("source.user_agent", cfg.Source.UserAgent)

	v.SetDefault("viewer.command", cfg.Viewer.Command)
	v.SetDefault("viewer.args", cfg.Viewer.Args)

	v.SetDefault("ui.default_view", cfg.UI.DefaultView)
	v.SetDefault("ui.grid_columns", cfg.UI.GridColumns)
	v.SetDefault("ui.description_width", cfg.UI.DescriptionWidth)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// Validate checks values that would otherwise fail later in confusing ways
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source.URL) == "" {
		return fmt.Errorf("source.url is required")
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("source.timeout must not be negative")
	}
	if _, err := ParseViewMode(c.UI.DefaultView); err != nil {
		return fmt.Errorf("ui.default_view: %w", err)
	}
	if c.UI.GridColumns < 1 {
		return fmt.Errorf("ui.grid_columns must be at least 1")
	}
	return nil
}

// View returns the configured default view mode
func (c *Config) View() ViewMode {
	mode, err := ParseViewMode(c.UI.DefaultView)
	if err != nil {
		return ViewTable
	}
	return mode
}
