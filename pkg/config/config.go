// Package config provides configuration loading and management for qa
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MetricsConfig defines the metrics endpoint configuration
type MetricsConfig struct {
	Port string `yaml:"port"`
}

// AppConfig contains the complete application configuration
type AppConfig struct {
	Metrics      MetricsConfig `yaml:"metrics"`
	OutputFormat string        `yaml:"outputFormat"`
	Debug        bool          `yaml:"debug"`
}

// CFG is the global configuration object
var CFG AppConfig

// LoadConfiguration loads configuration from environment variables only
func LoadConfiguration() {
	log.Println("Loading configuration from environment variables...")
	loadFromEnvironment()
}

// loadFromEnvironment loads configuration from environment variables
func loadFromEnvironment() {
	CFG.Debug = parseEnvBool("DEBUG", false)
	CFG.Metrics.Port = getEnvOrDefault("METRICS_PORT", "8080")
	CFG.OutputFormat = strings.ToLower(getEnvOrDefault("OUTPUT_FORMAT", FormatText))
}

// ValidateConfig checks the settings every invocation needs
func ValidateConfig() error {
	switch CFG.OutputFormat {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Errorf("unsupported output format %q (want %s, %s or %s)",
			CFG.OutputFormat, FormatText, FormatJSON, FormatYAML)
	}

	return nil
}

// ValidateMetricsConfig checks the settings used only when serving metrics
func ValidateMetricsConfig() error {
	if CFG.Metrics.Port == "" {
		return errors.New("metrics port is required")
	}
	port, err := strconv.Atoi(CFG.Metrics.Port)
	if err != nil {
		return errors.Wrapf(err, "invalid metrics port %q", CFG.Metrics.Port)
	}
	if port < 1 || port > 65535 {
		return errors.Errorf("metrics port %d out of range", port)
	}

	return nil
}

// DisplayConfiguration outputs the current configuration
func DisplayConfiguration() {
	log.Println("========== qa Configuration ==========")
	log.Printf("Debug Mode: %t", CFG.Debug)
	log.Printf("Metrics Port: %s", CFG.Metrics.Port)
	log.Printf("Output Format: %s", CFG.OutputFormat)
	log.Println("======================================")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if defaultValue != "" && os.Getenv("DEBUG") == "true" {
		log.Printf("Environment variable %s not set. Using default: %s", key, defaultValue)
	}
	return defaultValue
}

func parseEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		if os.Getenv("DEBUG") == "true" {
			log.Printf("Environment variable %s not set. Using default: %t", key, defaultValue)
		}
		return defaultValue
	}
	value = strings.ToLower(value)

	switch value {
	case "1", "t", "true", "yes", "on", "enabled":
		return true
	case "0", "f", "false", "no", "off", "disabled":
		return false
	default:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			log.Printf("Error parsing %s as bool: %v. Using default value: %t", key, err, defaultValue)
			return defaultValue
		}
		return boolValue
	}
}
