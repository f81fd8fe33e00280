package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dizitask/citadel/pkg/clog"
	"github.com/dizitask/citadel/pkg/display"
	"github.com/dizitask/citadel/pkg/tui"
	"github.com/dizitask/citadel/pkg/view"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var housesCmd = &cobra.Command{
	Use:   "houses",
	Short: "List houses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(settings)
		if err != nil {
			return err
		}

		houses, err := client.ListHouses(cmd.Context(), 1, settings.PageSize)
		if err != nil {
			return failed(cmd, view.HouseListFailedMessage, err)
		}

		rows := make([]display.HouseRow, len(houses))
		for i := range houses {
			rows[i] = display.Row(&houses[i])
		}

		return write(cmd.OutOrStdout(), tui.TitleStyle.Render("Houses")+"\n"+tui.RenderHouseRows(rows, -1))
	},
}

var houseCmd = &cobra.Command{
	Use:   "house <id>",
	Short: "Show a house and its sworn members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateID(args[0]); err != nil {
			return err
		}

		client, err := newClient(settings)
		if err != nil {
			return err
		}

		detail, err := newAggregator(client).House(cmd.Context(), args[0])
		if err != nil {
			return failed(cmd, view.HouseFailedMessage, err)
		}

		members := make([]display.MemberSummary, len(detail.Members))
		for i := range detail.Members {
			members[i] = display.Member(&detail.Members[i])
		}

		name := display.Value(detail.House.Name, display.Unknown)

		return write(cmd.OutOrStdout(), tui.RenderHouse(name, display.HouseFields(detail.House), members, -1))
	},
}

var characterCmd = &cobra.Command{
	Use:   "character <id>",
	Short: "Show a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateID(args[0]); err != nil {
			return err
		}

		client, err := newClient(settings)
		if err != nil {
			return err
		}

		character, err := client.GetCharacter(cmd.Context(), args[0])
		if err != nil {
			return failed(cmd, view.CharacterFailedMessage, err)
		}

		return write(cmd.OutOrStdout(),
			tui.RenderCharacter(display.CharacterName(character), display.CharacterFields(character)))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the citadel version",
	Args:  cobra.NoArgs,
	// No configuration needed.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		return write(cmd.OutOrStdout(), "citadel "+version+"\n")
	},
}

func validateID(id string) error {
	if n, err := strconv.Atoi(id); err != nil || n < 1 {
		return errors.Errorf("invalid id '%s', ids are positive integers", id)
	}

	return nil
}

// failed logs the cause and returns the user facing message as the error.
func failed(cmd *cobra.Command, message string, cause error) error {
	clog.Global().WithError(cause).Warnf("%s failed", cmd.Name())
	return errors.New(message)
}

func write(w io.Writer, s string) error {
	_, err := fmt.Fprint(w, s)
	return err
}
