package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all tool configuration
type Config struct {
	// Server
	Port int
	Env  string

	// Extraction
	ClassFilter     string
	Operation       string
	MethodBlacklist []string
	FieldBlacklist  []string

	// Annotation marker overrides. Empty selects the built-in Mixin
	// defaults.
	ShadowAnnotation string
	FinalAnnotation  string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnvInt("PORT", 8080),
		Env:             getEnv("ENV", "development"),
		ClassFilter:     getEnv("CLASS_FILTER", ""),
		Operation:       getEnv("OPERATION", ""),
		MethodBlacklist: splitList(getEnv("METHOD_BLACKLIST", "")),
		FieldBlacklist:  splitList(getEnv("FIELD_BLACKLIST", "")),

		ShadowAnnotation: getEnv("SHADOW_ANNOTATION", ""),
		FinalAnnotation:  getEnv("FINAL_ANNOTATION", ""),
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Operation == "" {
		return fmt.Errorf("OPERATION must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

// splitList parses a comma-separated name list, dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
