package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neilberkman/portfolio/internal/core/validator"
)

var checkPathCmd = &cobra.Command{
	Use:   "check-path <file>",
	Short: "Check that a file sits at <assets>/<Page>/<Event>/<Image>",
	Long: `Check one file path against the assets layout without reading it.

The path must be inside the assets directory and exactly three levels below
it. Useful in pre-commit hooks for newly added images.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckPath,
}

func init() {
	rootCmd.AddCommand(checkPathCmd)
}

func runCheckPath(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(cfg.AssetsDir)
	if err != nil {
		return fmt.Errorf("failed to resolve assets directory: %w", err)
	}
	target, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	w := cmd.OutOrStdout()
	result := validator.ValidateAssetPath(root, target)
	if !result.IsValid {
		for _, e := range result.Errors {
			fmt.Fprintln(w, invalidStyle.Render("✗ "+e))
		}
		return ErrInvalidAssets
	}

	fmt.Fprintln(w, validStyle.Render("✓ "+args[0]))
	return nil
}
