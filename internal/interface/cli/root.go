package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/neilberkman/portfolio/internal/core/config"
)

// ErrInvalidAssets is returned when validation finds errors. It maps to
// exit code 1.
var ErrInvalidAssets = errors.New("assets directory has validation errors")

var (
	assetsDir   string
	verbose     bool
	versionInfo string

	cfg    *config.Config
	logger = zap.NewNop()
)

// SetVersion sets the version information from build-time ldflags
func SetVersion(version, commit, date string) {
	versionInfo = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.Version = versionInfo
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Photo portfolio asset catalog",
	Long: `portfolio - discover and validate the photo assets behind the site

The assets directory is laid out as <Page>/<Event>/<Image>. Event
directories may end in _MM-DD-YYYY; dated events sort newest first.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to validate if no subcommand specified
		return validateCmd.RunE(cmd, args)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&assetsDir, "assets", "", "Assets directory (default: ./assets or config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setup loads configuration and builds the logger before any command runs
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if assetsDir != "" {
		loaded.AssetsDir = assetsDir
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	l, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger = l
	logger.Debug("configuration loaded",
		zap.String("assets_dir", cfg.AssetsDir),
		zap.String("path_prefix", cfg.PathPrefix))
	return nil
}

// newLogger builds a console logger on stderr. Warnings and above are shown
// unless debug is set.
func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return zc.Build()
}
