package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/zetalab/internal/experiment"
	"github.com/san-kum/zetalab/internal/logging"
	"github.com/san-kum/zetalab/internal/storage"
	"github.com/san-kum/zetalab/internal/viz"
)

var (
	dataDir string
	debug   bool
	theme   string

	closeLog func() error
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zetalab",
		Short: "riemann zeta and prime distribution lab",
		RunE:  runExplorer,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !validTheme(theme) {
				return fmt.Errorf("unknown theme: %s (available: %v)", theme, viz.ThemeNames())
			}
			viz.SetTheme(theme)

			cleanup, err := logging.Setup(logging.Config{DataDir: dataDir, Debug: debug})
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
				return nil
			}
			closeLog = cleanup
			logging.L().Debug("command.start", "cmd", cmd.CommandPath(), "args", args)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLog == nil {
				return nil
			}
			err := closeLog()
			closeLog = nil
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".zetalab", "data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", viz.ThemeCritical.Name, "color theme")

	rootCmd.AddCommand(viewCommands()...)
	rootCmd.AddCommand(runCommands()...)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive explorer",
		RunE:  runExplorer,
	}
	rootCmd.AddCommand(tuiCmd)

	return rootCmd
}

func runExplorer(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	return viz.RunExplorer(experiment.NewRegistry(), st)
}

func validTheme(name string) bool {
	for _, n := range viz.ThemeNames() {
		if n == name {
			return true
		}
	}
	return false
}
