package common

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to a config key (converted to upper snake case) to form the name of the environment variable
// which overrides it: "endpointURL" can be overridden with WHISKERS_ENDPOINT_URL.
const EnvPrefix = "WHISKERS_"

type Config struct {
	values map[string]any
}

// LoadConfig allows to customize parameters instead of hard-coding them. Always use this function instead of
// hard-coding constants.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	values := make(map[string]any)
	err = yaml.Unmarshal(data, &values)
	if err != nil {
		return nil, err
	}
	return NewConfig(values), nil
}

// LoadConfigOrEmpty is like LoadConfig, except a missing file results in an empty config (so that only defaults and
// environment overrides apply). A file which exists but can't be parsed is still an error.
func LoadConfigOrEmpty(path string) (*Config, error) {
	config, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewConfig(nil), nil
	}
	return config, err
}

// NewConfig creates a config from in-memory values.
func NewConfig(values map[string]any) *Config {
	if values == nil {
		values = make(map[string]any)
	}
	return &Config{values: values}
}

// GetString returns a string-typed parameter. If nothing is found, or if the value cannot be parsed as a string,
// returns an empty value.
func (c *Config) GetString(key string) string {
	if envValue, ok := lookupEnv(key); ok {
		return envValue
	}
	value, ok := c.values[key]
	if !ok {
		return ""
	}
	str, ok := value.(string)
	if !ok {
		return ""
	}
	return str
}

// GetStringOrDefault returns a string-typed parameter. If nothing is found, or if the value cannot be parsed as a string,
// returns `defaultValue`.
func (c *Config) GetStringOrDefault(key, defaultValue string) string {
	value := c.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetIntOrDefault returns an integer-typed parameter. If nothing is found, or if the value cannot be parsed as an integer,
// returns `defaultValue`.
func (c *Config) GetIntOrDefault(key string, defaultValue int) int {
	if envValue, ok := lookupEnv(key); ok {
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			return defaultValue
		}
		return intValue
	}
	value, ok := c.values[key]
	if !ok {
		return defaultValue
	}
	intValue, ok := value.(int)
	if !ok {
		return defaultValue
	}
	return intValue
}

// GetBoolOrDefault returns a boolean parameter. If nothing is found, or if the value cannot be parsed as a boolean,
// returns `defaultValue`.
func (c *Config) GetBoolOrDefault(key string, defaultValue bool) bool {
	if envValue, ok := lookupEnv(key); ok {
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return defaultValue
		}
		return boolValue
	}
	value, ok := c.values[key]
	if !ok {
		return defaultValue
	}
	boolValue, ok := value.(bool)
	if !ok {
		return defaultValue
	}
	return boolValue
}

// GetDurationOrDefault returns a duration-typed parameter. If nothing is found, or if the value cannot be parsed as a duration
// (i.e. an integer which specifies milliseconds), returns `defaultValue`.
func (c *Config) GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	intValue := c.GetIntOrDefault(key, -1)
	if intValue < 0 {
		return defaultValue
	}
	return time.Duration(intValue) * time.Millisecond
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(EnvName(key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// EnvName converts a config key to the name of the environment variable which overrides it.
func EnvName(key string) string {
	var builder strings.Builder
	builder.WriteString(EnvPrefix)
	runes := []rune(key)
	for i, r := range runes {
		// "endpointURL" => ENDPOINT_URL, "ircServer" => IRC_SERVER
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) {
			builder.WriteRune('_')
		}
		builder.WriteRune(unicode.ToUpper(r))
	}
	return builder.String()
}
