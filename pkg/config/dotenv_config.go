package config

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/subosito/gotenv"
)

const defaultDotenvPath = "~/.citadel.env"

// DotenvConfig reads keys from the process environment after loading an
// optional dotenv file into it. Values already in the environment win over
// the file.
type DotenvConfig struct {
	accessor
	DotenvPath string
}

func NewDotenvConfig(path string) *DotenvConfig {
	return &DotenvConfig{
		accessor:   accessor{lookup: os.Getenv},
		DotenvPath: path,
	}
}

// DefaultDotenvPath returns $CITADEL_DOTENV_PATH, or ~/.citadel.env when unset.
func DefaultDotenvPath() string {
	path := os.Getenv(KeyDotenvPath)
	if path == "" {
		path = defaultDotenvPath
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}

	return expanded
}

// Load loads DotenvPath into the environment. A missing file is not an error,
// citadel runs fine on defaults.
func (c *DotenvConfig) Load() error {
	if c.DotenvPath == "" {
		return nil
	}

	path, err := homedir.Expand(c.DotenvPath)
	if err != nil {
		return errors.Wrapf(err, "unable to expand dotenv path '%s'", c.DotenvPath)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := gotenv.Load(path); err != nil {
		return errors.Wrapf(err, "failed loading dotenv file '%s'", path)
	}

	return nil
}
