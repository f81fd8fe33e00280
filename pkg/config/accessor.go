package config

import "strconv"

// accessor implements the typed getters on top of a single lookup function so
// each Configer only has to say where values come from.
type accessor struct {
	lookup func(key string) string
}

func (a accessor) GetKey(key string) string {
	if a.lookup == nil {
		return ""
	}

	return a.lookup(key)
}

func (a accessor) GetKeyWithDefault(key, defaultValue string) string {
	if val := a.GetKey(key); val != "" {
		return val
	}

	return defaultValue
}

func (a accessor) GetIntKey(key string) int {
	return a.GetIntKeyWithDefault(key, 0)
}

func (a accessor) GetIntKeyWithDefault(key string, defaultValue int) int {
	intVal, err := strconv.Atoi(a.GetKey(key))
	if err != nil {
		return defaultValue
	}

	return intVal
}
