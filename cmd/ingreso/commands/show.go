package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/umss/ingreso/internal/expansion"
	"github.com/umss/ingreso/internal/page"
)

func showCmd(e *env) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "show [modalidad]",
		Short: "Print the page with one modality expanded",
		Long: "Print the page with one modality expanded. The modality may be given\n" +
			"by position (1-5) or by title; small typos are tolerated.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := expansion.Collapsed
			if query := strings.Join(args, " "); query != "" {
				i, err := e.catalog.Find(query)
				if err != nil {
					return fmt.Errorf("%w (modalidades: %s)", err, strings.Join(e.catalog.Titles(), ", "))
				}
				state = state.Toggle(i, e.catalog.Len())
			}
			out := page.RenderStatic(e.catalog, nil, state, e.link(), 1, width)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 80, "output width in columns")
	return cmd
}
