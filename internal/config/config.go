// Package config loads runtime settings for hello-world from defaults,
// an optional YAML file and HELLO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	AppID         = "org.example.HelloWorld"
	WindowTitle   = "Hello World App"
	WindowWidth   = 300
	WindowHeight  = 200
	BorderWidth   = 10
	BoxSpacing    = 10
	ButtonCaption = "Click Me!"
	Greeting      = "Hello, World!"
	IconPath      = "resources/icon.png"

	EnvPrefix = "HELLO"
)

// Config holds all configuration for the application
type Config struct {
	AppID   string        `mapstructure:"app_id" yaml:"app_id"`
	Window  Window        `mapstructure:"window" yaml:"window"`
	Icon    IconConfig    `mapstructure:"icon" yaml:"icon"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// Window holds the main window literals.
type Window struct {
	Title       string  `mapstructure:"title" yaml:"title"`
	Width       float32 `mapstructure:"width" yaml:"width"`
	Height      float32 `mapstructure:"height" yaml:"height"`
	BorderWidth float32 `mapstructure:"border_width" yaml:"border_width"`
	Spacing     float32 `mapstructure:"spacing" yaml:"spacing"`
	Button      string  `mapstructure:"button" yaml:"button"`
	Greeting    string  `mapstructure:"greeting" yaml:"greeting"`
}

type IconConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	JSON  bool   `mapstructure:"json" yaml:"json"`
}

// Default returns the configuration the program uses when nothing overrides it.
func Default() Config {
	return Config{
		AppID: AppID,
		Window: Window{
			Title:       WindowTitle,
			Width:       WindowWidth,
			Height:      WindowHeight,
			BorderWidth: BorderWidth,
			Spacing:     BoxSpacing,
			Button:      ButtonCaption,
			Greeting:    Greeting,
		},
		Icon:    IconConfig{Path: IconPath},
		Logging: LoggingConfig{Level: "info"},
	}
}

// NewViper returns an isolated viper instance with defaults and env binding applied.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// HELLO_ICON_PATH -> icon.path
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile (if non-empty) into v and unmarshals the result.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the window builder cannot honour.
func (c *Config) Validate() error {
	if c.AppID == "" {
		return errors.New("app_id must not be empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	if c.Window.BorderWidth < 0 || c.Window.Spacing < 0 {
		return errors.New("border_width and spacing must not be negative")
	}
	return nil
}

// Dump renders the effective configuration as YAML.
func Dump(c *Config) ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("app_id", d.AppID)

	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.border_width", d.Window.BorderWidth)
	v.SetDefault("window.spacing", d.Window.Spacing)
	v.SetDefault("window.button", d.Window.Button)
	v.SetDefault("window.greeting", d.Window.Greeting)

	v.SetDefault("icon.path", d.Icon.Path)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.json", d.Logging.JSON)
}
