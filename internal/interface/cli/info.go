package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/neilberkman/portfolio/internal/core/models"
	"github.com/neilberkman/portfolio/pkg/assetnames"
)

var infoCmd = &cobra.Command{
	Use:   "info <slug> <event>",
	Short: "Show one event's images",
	Long: `Show an event's images in display order with their site paths and
photographer credits.

Examples:
  portfolio info maidcafe Opening_01-01-2024
  portfolio info fashion Backstage --export backstage.md`,
	Args: cobra.ExactArgs(2),
	RunE: runInfo,
}

var infoExport string

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoExport, "export", "e", "", "Export report to file")
}

func runInfo(cmd *cobra.Command, args []string) error {
	slug, eventName := args[0], args[1]

	page, ok := newService().PageBySlug(slug)
	if !ok {
		return fmt.Errorf("no page found for slug %q", slug)
	}
	event, ok := page.Event(eventName)
	if !ok {
		return fmt.Errorf("page %q has no event %q", page.Name, eventName)
	}

	report := generateReport(page, event)
	fmt.Fprint(cmd.OutOrStdout(), report)

	if infoExport != "" {
		return exportReport(infoExport, report)
	}
	return nil
}

// generateReport renders an event as markdown
func generateReport(page *models.Page, event *models.Event) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", event.DisplayName()))
	sb.WriteString(fmt.Sprintf("- Page: %s (/%s)\n", page.Name, page.Slug))
	if formatted, ok := assetnames.FormatDate(event.Name); ok {
		d, _ := event.Date()
		sb.WriteString(fmt.Sprintf("- Date: %s (%s)\n", formatted, humanize.Time(d.Time())))
	}
	sb.WriteString(fmt.Sprintf("- Images: %s\n", english.Plural(event.Count, "image", "")))
	sb.WriteString(fmt.Sprintf("- Cover: %s\n\n", event.CoverImage.Path))

	for i, img := range event.Images {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, img.Path))
		if credit, ok := img.Credit(); ok && credit != "" {
			sb.WriteString(fmt.Sprintf(" (credit: %s)", credit))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func exportReport(path, report string) error {
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Report exported to %s\n", path)
	return nil
}
