package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// logoutCmd clears the session secret. It always exits zero: a missing
// secret and storage-layer hiccups are reported, not failed on.
func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate and remove the cached session salt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			res, err := appCtx.Sessions.Logout()
			if err != nil {
				fmt.Fprintf(out, "Could not clear session secret: %v\n", err)
				return nil
			}
			if !res.Existed {
				fmt.Fprintln(out, "No session secret found.")
				return nil
			}
			for _, note := range res.Notes {
				fmt.Fprintf(cmd.ErrOrStderr(), "note: %s\n", note)
			}
			fmt.Fprintln(out, "Session secret cleared.")
			return nil
		},
	}
}
