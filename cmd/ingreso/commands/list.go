package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/umss/ingreso/internal/catalog"
)

func listCmd(e *env) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the admission modalities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.catalog.Encode(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: "+strings.Join(catalog.Formats, ", "))
	return cmd
}
