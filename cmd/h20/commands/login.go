package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Derive the session salt from a passphrase and cache it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := appCtx.Sessions.Login()
			// The tag is shown as soon as derivation settles it, before the
			// cache outcome, so it can be compared across sessions even when
			// the write fails.
			if tag != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Confirmation tag: %s\n", tag)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session salt cached.")
			return nil
		},
	}
}
