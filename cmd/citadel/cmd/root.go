/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/dizitask/citadel/pkg/aggregate"
	"github.com/dizitask/citadel/pkg/clog"
	"github.com/dizitask/citadel/pkg/config"
	"github.com/dizitask/citadel/pkg/iceandfire"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X .../cmd.version=..."
var version = "dev"

var settings config.Settings

// newClient is swapped out by tests.
var newClient = func(s config.Settings) (iceandfire.Client, error) {
	return iceandfire.NewRestClient(s.APIURL, s.HTTPTimeout)
}

// flagKeys maps config keys to the flags that can override them.
var flagKeys = map[string]string{
	config.KeyAPIURL:         "api-url",
	config.KeyHTTPTimeout:    "http-timeout",
	config.KeyPageSize:       "page-size",
	config.KeyMaxConcurrency: "max-concurrency",
	config.KeyLogLevel:       "log-level",
	config.KeyLogFile:        "log-file",
	config.KeyPort:           "port",
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "citadel",
	Short:   "Browse the great houses of Westeros",
	Long:    `Browse the houses and characters of An API of Ice and Fire in a browser or a terminal.`,
	Version: version,
	// Errors are reported by the commands themselves.
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	clog.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("dotenv", "", "dotenv file to load (default is $CITADEL_DOTENV_PATH or ~/.citadel.env)")
	flags.String("api-url", config.DefaultAPIURL, "base url of the Ice and Fire API")
	flags.Int("http-timeout", config.DefaultHTTPTimeout, "timeout in seconds for each API request")
	flags.Int("page-size", config.DefaultPageSize, "number of houses to list (at most 50)")
	flags.Int("max-concurrency", 0, "sworn member requests in flight per house (0 is unlimited)")
	flags.String("log-level", "info", "log level (debug, info, warn, error, fatal)")
	flags.String("log-file", "", "log file used while the terminal browser is running")

	rootCmd.AddCommand(serveCmd, browseCmd, housesCmd, houseCmd, characterCmd, versionCmd)
}

// setup loads configuration, flags over environment over dotenv file, and
// applies the log level.
func setup(cmd *cobra.Command, _ []string) error {
	dotenvPath, _ := cmd.Flags().GetString("dotenv")
	if dotenvPath == "" {
		dotenvPath = config.DefaultDotenvPath()
	}

	c := config.NewViperConfig(dotenvPath)
	for key, name := range flagKeys {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}

		if err := c.BindFlag(key, cmd.Flags(), name); err != nil {
			return err
		}
	}

	if err := c.Load(); err != nil {
		return err
	}

	s, err := config.LoadSettings(c)
	if err != nil {
		return err
	}

	clog.SetLevel(s.LogLevel)
	settings = s

	return nil
}

func newAggregator(client iceandfire.Client) *aggregate.Aggregator {
	return aggregate.NewAggregator(client, settings.MaxConcurrency)
}
