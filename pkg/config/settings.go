package config

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

const (
	DefaultAPIURL      = "https://anapioficeandfire.com/api"
	DefaultPort        = 4200
	DefaultHTTPTimeout = 10
	DefaultPageSize    = 50

	// MaxPageSize is the largest page the upstream API will serve.
	MaxPageSize = 50
)

// Settings is the typed configuration shared by every citadel command.
type Settings struct {
	APIURL         string
	Port           int
	HTTPTimeout    time.Duration
	PageSize       int
	MaxConcurrency int
	LogLevel       log.Level
	LogFile        string
}

// LoadSettings reads and validates Settings from c, applying defaults for
// missing keys.
func LoadSettings(c Configer) (Settings, error) {
	s := Settings{
		APIURL:         c.GetKeyWithDefault(KeyAPIURL, DefaultAPIURL),
		Port:           c.GetIntKeyWithDefault(KeyPort, DefaultPort),
		PageSize:       c.GetIntKeyWithDefault(KeyPageSize, DefaultPageSize),
		MaxConcurrency: c.GetIntKeyWithDefault(KeyMaxConcurrency, 0),
		LogFile:        c.GetKeyWithDefault(KeyLogFile, filepath.Join(os.TempDir(), "citadel.log")),
	}

	timeoutSecs := c.GetIntKeyWithDefault(KeyHTTPTimeout, DefaultHTTPTimeout)
	if timeoutSecs <= 0 {
		return s, errors.Errorf("%s must be a positive number of seconds, got %d", KeyHTTPTimeout, timeoutSecs)
	}
	s.HTTPTimeout = time.Duration(timeoutSecs) * time.Second

	u, err := url.Parse(s.APIURL)
	if err != nil {
		return s, errors.Wrapf(err, "invalid %s '%s'", KeyAPIURL, s.APIURL)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return s, errors.Errorf("%s must be an absolute http(s) url, got '%s'", KeyAPIURL, s.APIURL)
	}

	if s.Port < 1 || s.Port > 65535 {
		return s, errors.Errorf("%s out of range: %d", KeyPort, s.Port)
	}

	if s.PageSize < 1 || s.PageSize > MaxPageSize {
		return s, errors.Errorf("%s must be between 1 and %d, got %d", KeyPageSize, MaxPageSize, s.PageSize)
	}

	if s.MaxConcurrency < 0 {
		return s, errors.Errorf("%s must be >= 0, got %d", KeyMaxConcurrency, s.MaxConcurrency)
	}

	s.LogLevel, err = log.ParseLevel(c.GetKeyWithDefault(KeyLogLevel, "info"))
	if err != nil {
		return s, errors.Wrapf(err, "invalid %s", KeyLogLevel)
	}

	return s, nil
}
