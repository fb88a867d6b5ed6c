package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	dir            string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerInDir(configDir)
}

// NewManagerInDir creates a configuration manager that reads and writes config.toml in dir.
func NewManagerInDir(dir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// TILER_LAYOUT_GAP, TILER_DEBUG_VALIDATE_TREE, ...
	v.SetEnvPrefix("TILER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TILER_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TILER_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TILER_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TILER_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		dir:       dir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written when none exists.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", m.dir, err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile = m.GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.dir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Level {
	case "":
		config.Logging.Level = defaultLogLevel
	case "warning":
		config.Logging.Level = "warn"
	}

	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	config.Tiles.DefaultTitle = strings.TrimSpace(config.Tiles.DefaultTitle)

	defaults := DefaultPalette()
	p := &config.Appearance.Palette
	fill := func(dst *string, def string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = def
		}
	}
	fill(&p.Background, defaults.Background)
	fill(&p.Surface, defaults.Surface)
	fill(&p.SurfaceVariant, defaults.SurfaceVariant)
	fill(&p.Text, defaults.Text)
	fill(&p.Muted, defaults.Muted)
	fill(&p.Accent, defaults.Accent)
	fill(&p.Border, defaults.Border)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	cfg := *m.config
	return &cfg
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := WriteConfig(cfg, m.GetConfigFile()); err != nil {
		return err
	}
	saved := *cfg
	m.config = &saved
	if m.watching {
		m.skipNextReload = true
	}
	return nil
}

// GetConfigFile returns the path of the config file this manager uses.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, configFileName)
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return WriteConfig(DefaultConfig(), filepath.Join(m.dir, configFileName))
}

// setDefaults sets default values for all configuration options.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("layout.gap", defaults.Layout.Gap)
	m.viper.SetDefault("tiles.default_title", defaults.Tiles.DefaultTitle)
	m.setLoggingDefaults(defaults)
	m.viper.SetDefault("debug.validate_tree", defaults.Debug.ValidateTree)
	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
func GetManager() *Manager {
	return globalManager
}
