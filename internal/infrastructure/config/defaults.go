package config

// Default configuration constants
const (
	defaultGap          = 0.5 // canvas percent
	maxGap              = 5.0
	defaultTileTitle    = "New Tile"
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultValidateTree = false
)

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Gap: defaultGap,
		},
		Tiles: TilesConfig{
			DefaultTitle: defaultTileTitle,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Debug: DebugConfig{
			ValidateTree: defaultValidateTree,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
	}
}
