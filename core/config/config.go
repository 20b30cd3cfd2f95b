// File: config.go
// Title: Core Configuration Implementation
// Description: Implements the Config type with TOML/YAML parsing, dotted
//              key lookup, typed accessors with defaults, and environment
//              variable overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mpaserr "github.com/msto63/mPAS/core/error"
)

// Format represents a configuration file format
type Format int

const (
	// FormatTOML is the preferred configuration format
	FormatTOML Format = iota

	// FormatYAML is supported for compatibility
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "MPAS"

// Config holds parsed configuration data with typed access
type Config struct {
	data     map[string]interface{}
	filePath string
	format   Format
	mutex    sync.RWMutex
}

// Load reads and parses a configuration file, detecting the format from
// the file extension
func Load(filePath string) (*Config, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, mpaserr.Wrap(err, "cannot read configuration file").
			WithCode(mpaserr.CodeMissingConfig).
			WithDetail("path", filePath)
	}

	format := detectFormat(filePath)
	data, err := parseContent(content, format)
	if err != nil {
		return nil, mpaserr.Wrap(err, "cannot parse configuration file").
			WithCode(mpaserr.CodeInvalidConfig).
			WithDetail("path", filePath).
			WithDetail("format", format.String())
	}

	return &Config{
		data:     data,
		filePath: filePath,
		format:   format,
	}, nil
}

// LoadFromString parses configuration content in the given format
func LoadFromString(content string, format Format) (*Config, error) {
	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mpaserr.Wrap(err, "cannot parse configuration content").
			WithCode(mpaserr.CodeInvalidConfig).
			WithDetail("format", format.String())
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// Empty returns an empty configuration (all getters yield their defaults)
func Empty() *Config {
	return &Config{data: make(map[string]interface{})}
}

// detectFormat determines the configuration format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses raw content in the given format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported configuration format: %v", format)
	}

	return data, nil
}

// GetString returns a string value for the given dotted key
func (c *Config) GetString(key string, defaultValue ...string) string {
	def := ""
	if len(defaultValue) > 0 {
		def = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		return env
	}

	value := c.getValue(key)
	if value == nil {
		return def
	}

	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an int value for the given dotted key
func (c *Config) GetInt(key string, defaultValue ...int) int {
	def := 0
	if len(defaultValue) > 0 {
		def = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		if i, err := strconv.Atoi(env); err == nil {
			return i
		}
		return def
	}

	value := c.getValue(key)
	if value == nil {
		return def
	}

	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// GetBool returns a bool value for the given dotted key
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	def := false
	if len(defaultValue) > 0 {
		def = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		if b, err := strconv.ParseBool(env); err == nil {
			return b
		}
		return def
	}

	value := c.getValue(key)
	if value == nil {
		return def
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// GetFloat returns a float64 value for the given dotted key
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	def := 0.0
	if len(defaultValue) > 0 {
		def = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		if f, err := strconv.ParseFloat(env, 64); err == nil {
			return f
		}
		return def
	}

	value := c.getValue(key)
	if value == nil {
		return def
	}

	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// GetDuration returns a duration value for the given dotted key
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	def := time.Duration(0)
	if len(defaultValue) > 0 {
		def = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		if d, err := time.ParseDuration(env); err == nil {
			return d
		}
		return def
	}

	value := c.getValue(key)
	if value == nil {
		return def
	}

	switch v := value.(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	}
	return def
}

// getValue resolves a dotted key against the nested configuration data
func (c *Config) getValue(key string) interface{} {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	parts := strings.Split(key, ".")
	var current interface{} = c.data

	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current, ok = m[part]
		if !ok {
			return nil
		}
	}

	return current
}

// getEnvValue looks up the environment variable override for a key
func (c *Config) getEnvValue(key string) string {
	envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.Getenv(envKey)
}

// Has returns true if the key exists in the configuration file
func (c *Config) Has(key string) bool {
	return c.getValue(key) != nil
}

// Set sets a configuration value for a dotted key
func (c *Config) Set(key string, value interface{}) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	parts := strings.Split(key, ".")
	current := c.data
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value
			return
		}
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the detected configuration format
func (c *Config) Format() Format {
	return c.format
}
