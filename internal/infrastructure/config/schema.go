package config

// Config represents the complete configuration for tiler.
type Config struct {
	// Layout controls the geometry produced by the layout pass.
	Layout LayoutConfig `mapstructure:"layout" toml:"layout" json:"layout"`
	// Tiles controls defaults for tiles created by the engine.
	Tiles TilesConfig `mapstructure:"tiles" toml:"tiles" json:"tiles"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	Debug   DebugConfig   `mapstructure:"debug" toml:"debug" json:"debug"`
	// Appearance holds the colours of the terminal preview.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// LayoutConfig holds layout geometry settings.
type LayoutConfig struct {
	// Gap is reserved around the canvas edge and on every split boundary, in canvas percent.
	Gap float64 `mapstructure:"gap" toml:"gap" json:"gap" jsonschema:"minimum=0,maximum=5,default=0.5"`
}

// TilesConfig holds tile defaults.
type TilesConfig struct {
	// DefaultTitle is given to tiles created by a split.
	DefaultTitle string `mapstructure:"default_title" toml:"default_title" json:"default_title" jsonschema:"minLength=1,default=New Tile"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// DebugConfig holds developer switches.
type DebugConfig struct {
	// ValidateTree runs the structural validator after every engine mutation.
	ValidateTree bool `mapstructure:"validate_tree" toml:"validate_tree" json:"validate_tree"`
}

// AppearanceConfig holds preview styling.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds hex colours used by the preview.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" toml:"border" json:"border"`
}
