// Command validate-assets checks ./assets (or $PORTFOLIO_ASSETS_DIR) and
// exits 1 when it has errors. It takes no arguments, for use in build hooks.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/neilberkman/portfolio/internal/core/config"
	"github.com/neilberkman/portfolio/internal/core/validator"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	result := validator.New(validator.WithLogger(logger)).Validate(cfg.AssetsDir)
	fmt.Print(validator.Summary(result))
	if !result.IsValid {
		return 1
	}
	return 0
}
