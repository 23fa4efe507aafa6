package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"h20/internal/domain"
)

func passCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass",
		Short: "Derive a service credential and copy it to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			receipt, err := appCtx.Credentials.Generate()
			if err != nil {
				if errors.Is(err, domain.ErrNoSessionSecret) {
					return fmt.Errorf("%w (run \"h20 login\" first)", err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Copied to clipboard (%s). Confirmation tag: %s\n",
				receipt.Mode, receipt.Tag)
			return nil
		},
	}
}
