package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile selects one of the two launcher output shapes.
type Profile string

const (
	// ProfileClipboardAction emits a fixed sub tag, a clipboard exec command
	// and matching=AlwaysTop, and rejects queries shorter than three characters.
	ProfileClipboardAction Profile = "clipboard-action"

	// ProfileSearchablePassthrough uses the tool's first line as sub and
	// passes the query through as searchable. No admission filter.
	ProfileSearchablePassthrough Profile = "searchable-passthrough"
)

// IsValid reports whether p names a known profile.
func (p Profile) IsValid() bool {
	return p == ProfileClipboardAction || p == ProfileSearchablePassthrough
}

// DefaultMinQueryLength is the admission threshold of the profile.
func (p Profile) DefaultMinQueryLength() int {
	if p == ProfileClipboardAction {
		return 3
	}
	return 0
}

// UseProfileMinLength as MinQueryLength defers to the profile default.
const UseProfileMinLength = -1

// Config represents rinkadapter configuration options
type Config struct {
	// Profile selects the output shape (clipboard-action, searchable-passthrough)
	Profile Profile `yaml:"profile"`

	// ToolPath is the calculator binary
	ToolPath string `yaml:"tool_path"`

	// MinQueryLength is the admission filter threshold in characters.
	// UseProfileMinLength (-1) selects the profile default; 0 disables the filter.
	MinQueryLength int `yaml:"min_query_length"`

	// Timeout bounds one tool run (0 = wait for the tool indefinitely)
	Timeout time.Duration `yaml:"timeout"`

	// ClipboardCommand receives the label on stdin when the record is selected
	ClipboardCommand string `yaml:"clipboard_command"`

	// Class is the launcher category tag of emitted records
	Class string `yaml:"class"`

	// SubTag is the literal sub of clipboard-action records
	SubTag string `yaml:"sub_tag"`

	// Prefix is a launcher trigger prefix stripped from the query
	Prefix string `yaml:"prefix"`

	// LineSeparator splits tool stdout into lines
	LineSeparator string `yaml:"line_separator"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error, off)
	LogLevel string `yaml:"log_level"`
}

// DefaultLineSeparator returns the platform's native line terminator.
func DefaultLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Profile:          ProfileClipboardAction,
		ToolPath:         "rink",
		MinQueryLength:   UseProfileMinLength,
		Timeout:          5 * time.Second,
		ClipboardCommand: "wl-copy",
		Class:            "calc",
		SubTag:           "rink",
		Prefix:           "",
		LineSeparator:    DefaultLineSeparator(),
		LogLevel:         "off",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Use a temporary struct to handle duration parsing
	type yamlConfig struct {
		Profile          string `yaml:"profile"`
		ToolPath         string `yaml:"tool_path"`
		MinQueryLength   int    `yaml:"min_query_length"`
		Timeout          string `yaml:"timeout"`
		ClipboardCommand string `yaml:"clipboard_command"`
		Class            string `yaml:"class"`
		SubTag           string `yaml:"sub_tag"`
		Prefix           string `yaml:"prefix"`
		LineSeparator    string `yaml:"line_separator"`
		LogLevel         string `yaml:"log_level"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if yamlCfg.Profile != "" {
		cfg.Profile = Profile(yamlCfg.Profile)
	}
	if yamlCfg.ToolPath != "" {
		cfg.ToolPath = os.ExpandEnv(yamlCfg.ToolPath)
	}
	if yamlCfg.Timeout != "" {
		timeout, err := time.ParseDuration(yamlCfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout format %q: %w", yamlCfg.Timeout, err)
		}
		cfg.Timeout = timeout
	}
	if yamlCfg.ClipboardCommand != "" {
		cfg.ClipboardCommand = yamlCfg.ClipboardCommand
	}
	if yamlCfg.Class != "" {
		cfg.Class = yamlCfg.Class
	}
	if yamlCfg.SubTag != "" {
		cfg.SubTag = yamlCfg.SubTag
	}
	if yamlCfg.LineSeparator != "" {
		cfg.LineSeparator = yamlCfg.LineSeparator
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	// Zero is a meaningful min_query_length and an empty prefix is the default,
	// so presence in the document decides whether they were set.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["min_query_length"]; exists {
			cfg.MinQueryLength = yamlCfg.MinQueryLength
		}
		if _, exists := rawMap["prefix"]; exists {
			cfg.Prefix = yamlCfg.Prefix
		}
	}

	return cfg, nil
}

// MergeOverrides merges environment overrides into the configuration
// Non-nil values override configuration values
func (c *Config) MergeOverrides(profile *string, toolPath *string, timeout *time.Duration, minLength *int, clipboardCmd *string, logLevel *string) {
	if profile != nil {
		c.Profile = Profile(*profile)
	}
	if toolPath != nil {
		c.ToolPath = *toolPath
	}
	if timeout != nil {
		c.Timeout = *timeout
	}
	if minLength != nil {
		c.MinQueryLength = *minLength
	}
	if clipboardCmd != nil {
		c.ClipboardCommand = *clipboardCmd
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
}

// EffectiveMinQueryLength resolves UseProfileMinLength against the profile.
func (c *Config) EffectiveMinQueryLength() int {
	if c.MinQueryLength == UseProfileMinLength {
		return c.Profile.DefaultMinQueryLength()
	}
	return c.MinQueryLength
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !c.Profile.IsValid() {
		return fmt.Errorf("invalid profile %q, must be one of: %s, %s", c.Profile, ProfileClipboardAction, ProfileSearchablePassthrough)
	}

	if c.ToolPath == "" {
		return fmt.Errorf("tool_path cannot be empty")
	}

	if c.MinQueryLength < UseProfileMinLength {
		return fmt.Errorf("min_query_length must be >= %d, got %d", UseProfileMinLength, c.MinQueryLength)
	}

	// Timeout can be 0 (no timeout) or positive, negative is invalid
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", c.Timeout)
	}

	if c.Profile == ProfileClipboardAction && c.ClipboardCommand == "" {
		return fmt.Errorf("clipboard_command cannot be empty for profile %s", ProfileClipboardAction)
	}

	if c.LineSeparator == "" {
		return fmt.Errorf("line_separator cannot be empty")
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error, off", c.LogLevel)
	}

	return nil
}
