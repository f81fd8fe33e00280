package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ViperConfig layers command line flags over the environment (and the dotenv
// file loaded into it). Precedence is flag, then environment, then flag default.
type ViperConfig struct {
	accessor
	v      *viper.Viper
	dotenv *DotenvConfig
}

func NewViperConfig(dotenvPath string) *ViperConfig {
	v := viper.New()
	v.AutomaticEnv()

	c := &ViperConfig{
		v:      v,
		dotenv: NewDotenvConfig(dotenvPath),
	}
	c.accessor = accessor{lookup: c.v.GetString}

	return c
}

// BindFlag binds key to the named flag in flags.
func (c *ViperConfig) BindFlag(key string, flags *pflag.FlagSet, name string) error {
	flag := flags.Lookup(name)
	if flag == nil {
		return errors.Errorf("no such flag '%s' for config key '%s'", name, key)
	}

	if err := c.v.BindPFlag(key, flag); err != nil {
		return errors.Wrapf(err, "unable to bind flag '%s'", name)
	}

	return nil
}

func (c *ViperConfig) Load() error {
	return c.dotenv.Load()
}
