package cmd

import (
	"fmt"
	"os"

	"github.com/dizitask/citadel/pkg/clog"
	"github.com/dizitask/citadel/pkg/tui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse houses and characters in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdout) {
			return errors.New("browse needs an interactive terminal, try 'citadel houses' instead")
		}

		client, err := newClient(settings)
		if err != nil {
			return err
		}

		// The browser owns the terminal, so logs go to a file.
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return errors.Wrapf(err, "unable to open log file '%s'", settings.LogFile)
		}
		clog.SetOutput(f)
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Logging to %s\n", settings.LogFile)

		return tui.Run(cmd.Context(), tui.Options{
			Client:     client,
			Aggregator: newAggregator(client),
			PageSize:   settings.PageSize,
		})
	},
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
