package config

import (
	"fmt"
	"strconv"
	"time"
)

// Environment overrides. Arguments are reserved for the query, so these are
// the only per-invocation knobs besides the config file.
const (
	EnvProfile      = "RINKADAPTER_PROFILE"
	EnvToolPath     = "RINKADAPTER_TOOL"
	EnvTimeout      = "RINKADAPTER_TIMEOUT"
	EnvMinLength    = "RINKADAPTER_MIN_LENGTH"
	EnvClipboardCmd = "RINKADAPTER_CLIPBOARD_CMD"
	EnvLogLevel     = "RINKADAPTER_LOG_LEVEL"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv merges the RINKADAPTER_* overrides found through lookup.
// Unset or empty variables leave the configuration untouched.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	get := func(key string) *string {
		if v, ok := lookup(key); ok && v != "" {
			return &v
		}
		return nil
	}

	var timeoutPtr *time.Duration
	if v := get(EnvTimeout); v != nil {
		timeout, err := time.ParseDuration(*v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTimeout, *v, err)
		}
		timeoutPtr = &timeout
	}

	var minLengthPtr *int
	if v := get(EnvMinLength); v != nil {
		minLength, err := strconv.Atoi(*v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMinLength, *v, err)
		}
		minLengthPtr = &minLength
	}

	c.MergeOverrides(get(EnvProfile), get(EnvToolPath), timeoutPtr, minLengthPtr, get(EnvClipboardCmd), get(EnvLogLevel))
	return nil
}

// Load resolves the config file, applies environment overrides and validates
// the result.
func Load(lookup LookupFunc) (*Config, error) {
	cfg, err := LoadConfig(DefaultConfigPath())
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
