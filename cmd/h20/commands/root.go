package commands

import (
	"os"

	"github.com/spf13/cobra"

	"h20/internal/app"
)

var appCtx *app.App

func Execute() error {
	root := &cobra.Command{
		Use:   "h20",
		Short: "Deterministic session-scoped password deriver",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			appCtx = app.NewWire(app.Config{
				In:  os.Stdin,
				Out: cmd.OutOrStdout(),
			})
		},
	}

	root.AddCommand(loginCmd(), passCmd(), logoutCmd())
	return root.Execute()
}
