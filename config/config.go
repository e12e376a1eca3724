package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultWindowWidth     = 800
	defaultWindowHeight    = 600
	defaultWindowTitle     = "Projection and Rejection"
	defaultReferenceLength = 50.0
	defaultStrokeWidth     = 3.0
	defaultLogLevel        = "info"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", defaultWindowWidth)
	v.SetDefault("window.height", defaultWindowHeight)
	v.SetDefault("window.title", defaultWindowTitle)
	v.SetDefault("scene.reference_length", defaultReferenceLength)
	v.SetDefault("scene.stroke_width", defaultStrokeWidth)
	v.SetDefault("scene.show_readout", true)
	v.SetDefault("log.level", defaultLogLevel)
}

func (c *Config) validate() error {
	if c.GetWindowWidth() <= 0 || c.GetWindowHeight() <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.GetWindowWidth(), c.GetWindowHeight())
	}
	if c.GetStrokeWidth() <= 0 {
		return fmt.Errorf("stroke width must be positive, got %v", c.GetStrokeWidth())
	}
	return nil
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

// GetReferenceLength is the on-screen length of the reference vector in pixels
func (c *Config) GetReferenceLength() float64 {
	referenceLength := c.config.GetFloat64("REFERENCE_LENGTH")
	if referenceLength == 0 {
		referenceLength = c.config.GetFloat64("scene.reference_length")
	}

	return referenceLength
}

func (c *Config) GetStrokeWidth() float64 {
	strokeWidth := c.config.GetFloat64("STROKE_WIDTH")
	if strokeWidth == 0 {
		strokeWidth = c.config.GetFloat64("scene.stroke_width")
	}

	return strokeWidth
}

func (c *Config) GetShowReadout() bool {
	if c.config.IsSet("SHOW_READOUT") {
		return c.config.GetBool("SHOW_READOUT")
	}

	return c.config.GetBool("scene.show_readout")
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
