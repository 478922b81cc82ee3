package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/neilberkman/portfolio/internal/core/models"
	"github.com/neilberkman/portfolio/internal/core/scanner"
)

var scanFormat string

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Print the asset catalog",
	Long: `Scan the assets directory and print every page with its events in
display order. Empty events and pages are omitted.

Examples:
  portfolio scan
  portfolio scan --format json
  portfolio scan --format yaml`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanFormat, "format", "text", "Output format: text, json, yaml")
}

func runScan(cmd *cobra.Command, args []string) error {
	s := scanner.New(
		scanner.WithLogger(logger),
		scanner.WithPathPrefix(cfg.PathPrefix),
	)
	catalog := s.Scan(cfg.AssetsDir)
	return writeCatalog(cmd.OutOrStdout(), catalog, scanFormat)
}

func writeCatalog(w io.Writer, catalog *models.Catalog, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(catalog); err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		return nil

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(catalog); err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		return enc.Close()

	case "text":
		if catalog.Len() == 0 {
			fmt.Fprintln(w, "No pages found.")
			return nil
		}
		for _, page := range catalog.Pages {
			fmt.Fprintf(w, "%s %s\n", titleStyle.Render(page.Name), metaStyle.Render("/"+page.Slug))
			for _, e := range page.Events {
				line := e.DisplayName()
				if d, ok := e.Date(); ok {
					line += "  " + d.String()
				}
				line += "  " + metaStyle.Render(english.Plural(e.Count, "image", ""))
				fmt.Fprintln(w, itemStyle.Render(line))
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
