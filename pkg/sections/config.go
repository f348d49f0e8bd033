package sections

import (
	"os"
	"strconv"
	"sync"
)

// Config contains the configuration options for the sections library
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// StrictMode makes a missing relationships part an error instead of an
	// empty relationship list
	StrictMode bool
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		StrictMode: false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// SECTIONS_LOG_LEVEL
	if val := os.Getenv("SECTIONS_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// SECTIONS_STRICT_MODE
	if val := os.Getenv("SECTIONS_STRICT_MODE"); val != "" {
		if strict, err := strconv.ParseBool(val); err == nil {
			config.StrictMode = strict
		}
	}

	return config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()
	if globalConfig == nil {
		return DefaultConfig()
	}
	cfg := *globalConfig
	return &cfg
}

// SetGlobalConfig replaces the global configuration
func SetGlobalConfig(config *Config) {
	if config == nil {
		config = DefaultConfig()
	}
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()
	UpdateLoggerFromConfig()
}
