package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neilberkman/portfolio/internal/core/daemon"
	"github.com/neilberkman/portfolio/internal/core/models"
	"github.com/neilberkman/portfolio/internal/core/validator"
)

var (
	validateJSON    bool
	validateInspect bool
	validateWatch   bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the assets directory",
	Long: `Walk the assets directory and report structural problems.

Errors (bad event names, unsafe filenames, unreadable directories) make the
command exit with status 1. Warnings (empty pages or events, stray files,
malformed credits) are reported but do not fail validation.

Examples:
  portfolio validate
  portfolio validate --json
  portfolio validate --inspect
  portfolio validate --watch`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Print the result as JSON")
	validateCmd.Flags().BoolVar(&validateInspect, "inspect", false, "Decode image headers and warn about unreadable images")
	validateCmd.Flags().BoolVar(&validateWatch, "watch", false, "Revalidate whenever the assets directory changes")

	// Bare `portfolio` runs validate and accepts the same flags
	rootCmd.Flags().AddFlagSet(validateCmd.Flags())
}

func runValidate(cmd *cobra.Command, args []string) error {
	v := validator.New(
		validator.WithLogger(logger),
		validator.WithInspectImages(validateInspect),
	)

	if validateWatch {
		return watchAssets(cmd.Context(), cmd.OutOrStdout(), v)
	}

	result := v.Validate(cfg.AssetsDir)
	if err := printValidation(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if !result.IsValid {
		return ErrInvalidAssets
	}
	return nil
}

func printValidation(w io.Writer, result models.ValidationResult) error {
	if validateJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	_, err := fmt.Fprint(w, validator.Summary(result))
	return err
}

// watchAssets runs the validation daemon until interrupted
func watchAssets(ctx context.Context, w io.Writer, v *validator.Validator) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := daemon.NewValidationDaemon(cfg.AssetsDir, v, func(result models.ValidationResult) {
		status := validStyle.Render("valid")
		if !result.IsValid {
			status = invalidStyle.Render(fmt.Sprintf("%d errors", len(result.Errors)))
		}
		fmt.Fprintf(w, "%s %s\n", metaStyle.Render(time.Now().Format("15:04:05")), status)
		if err := printValidation(w, result); err != nil {
			logger.Warn("failed to print result", zap.Error(err))
		}
	}, daemon.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	fmt.Fprintf(w, "Watching %s (Ctrl+C to stop)\n", cfg.AssetsDir)
	return d.Start(ctx)
}
