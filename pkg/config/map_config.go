package config

import (
	"sync"
)

// MapConfig is an in-memory Configer, used by tests and by callers that build
// configuration programmatically.
type MapConfig struct {
	accessor
	configValues sync.Map
}

func NewMapConfig(entries map[string]string) *MapConfig {
	c := &MapConfig{}
	c.accessor = accessor{lookup: c.lookup}

	for key, entry := range entries {
		c.configValues.Store(key, entry)
	}

	return c
}

func (c *MapConfig) Load() error {
	return nil
}

func (c *MapConfig) Set(key, value string) {
	c.configValues.Store(key, value)
}

func (c *MapConfig) lookup(key string) string {
	v, ok := c.configValues.Load(key)
	if !ok || v == nil {
		return ""
	}

	return v.(string)
}
