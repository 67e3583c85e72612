package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/portfolio-rain/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the saved theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := themeManager()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), m.Current())
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark|hacker>",
	Short:     "Save the theme used on next start",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(theme.Light), string(theme.Dark), string(theme.Hacker)},
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := themeManager()
		if err != nil {
			return err
		}
		if err := m.Set(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", m.Current())
		return nil
	},
}

func themeManager() (*theme.Manager, error) {
	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	m := theme.NewManager(store, logger.Named("theme"))
	if n, err := theme.Parse(cfg.Theme.Default); err == nil {
		m.SetFallback(n)
	}
	m.Init()
	return m, nil
}

func init() {
	themeCmd.AddCommand(themeSetCmd)
	rootCmd.AddCommand(themeCmd)
}
