package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/umss/ingreso/core"
	"github.com/umss/ingreso/internal/browser"
	"github.com/umss/ingreso/internal/catalog"
	"github.com/umss/ingreso/internal/config"
	"github.com/umss/ingreso/internal/logging"
	"github.com/umss/ingreso/internal/page"
)

// env is shared by every command of one invocation.
type env struct {
	cfgPath string
	debug   bool
	cfg     config.Config
	catalog catalog.Catalog
	open    browser.Opener
}

func (e *env) link() page.Link {
	return page.Link{URL: e.cfg.Link.URL, Label: e.cfg.Link.Label}
}

func Execute() error {
	return newRootCmd(&env{catalog: catalog.Default(), open: browser.Open}).Execute()
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:          "ingreso",
		Short:        "Modalidades de ingreso a la UMSS",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(e.cfgPath)
		if err != nil {
			return err
		}
		if e.debug {
			cfg.Log.Debug = true
		}
		e.cfg = cfg
		return nil
	}
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runPage(cmd, e)
	}

	root.PersistentFlags().StringVar(&e.cfgPath, "config", "", "config file (default ~/.config/ingreso/config.toml)")
	root.PersistentFlags().BoolVar(&e.debug, "debug", false, "log every page event")

	root.AddCommand(listCmd(e), showCmd(e), openCmd(e))
	return root
}

func runPage(cmd *cobra.Command, e *env) error {
	log, closeLog, err := logging.New(e.cfg.Log.Path, e.cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), e.cfg.Keys))
	m := page.New(cmd.Context(), page.Options{
		Catalog: e.catalog,
		Columns: e.cfg.UI.Columns,
		Link:    e.link(),
		Keys:    keys,
		Open:    e.open,
		Logger:  log,
	})

	opts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if e.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if e.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		log.Errorw("program exited", logging.FieldError, err)
		return fmt.Errorf("run page: %w", err)
	}
	return nil
}
