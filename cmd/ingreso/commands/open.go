package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func openCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the admission portal in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := e.cfg.Link.URL
			if err := e.open(cmd.Context(), target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Abriendo %s\n", target)
			return nil
		},
	}
}
