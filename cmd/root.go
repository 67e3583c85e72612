package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/portfolio-rain/internal/config"
	"github.com/iburimskiy/portfolio-rain/internal/theme"
)

// WindowFunc opens the page window and blocks until it is closed.
type WindowFunc func(cfg *config.Config, store theme.Store, log *zap.Logger) error

var (
	cfgFile       string
	verbose       bool
	reducedMotion bool
	noPersist     bool

	logger     *zap.Logger
	cfg        *config.Config
	openWindow WindowFunc
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Pasindu Kumarasinghe's portfolio page as a desktop window",
	Long: `portfolio opens the personal portfolio page in a window. Switch between
light, dark and hacker themes; the hacker theme draws a falling-glyph
background. The contact form posts to the configured form endpoint.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("reduced-motion") {
			cfg.Rain.ReducedMotion = reducedMotion
		}
		if cmd.Flags().Changed("no-persist") {
			cfg.NoPersist = noPersist
		}
		return cfg.Validate()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		if openWindow == nil {
			return errors.New("no window backend")
		}
		return openWindow(cfg, store, logger)
	},
}

// Execute runs the command line. open is used by the root command to show
// the page.
func Execute(open WindowFunc) error {
	openWindow = open
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noPersist, "no-persist", false, "do not save the theme preference")
	rootCmd.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "never animate the hacker background")
}
