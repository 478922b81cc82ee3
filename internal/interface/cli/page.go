package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cbroglie/mustache"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neilberkman/portfolio/internal/core/catalog"
	"github.com/neilberkman/portfolio/internal/core/models"
	"github.com/neilberkman/portfolio/pkg/assetnames"
)

var (
	pageAfter  string
	pageBefore string
	pageCopy   bool
)

var pageCmd = &cobra.Command{
	Use:   "page <slug>",
	Short: "Show one page's events",
	Long: `Resolve a page slug and list its events in display order.

Each event line is rendered with a mustache template. The default can be
replaced with event_template in portfolio.toml or with
~/.config/portfolio/event_template.mustache. Available fields:
  {{title}} {{date}} {{ago}} {{count}} {{noun}} {{credits}} {{cover}} {{name}}

Examples:
  portfolio page maidcafe
  portfolio page fashion --after "last year"
  portfolio page fashion --after 2024-01-01 --before 2024-06-30
  portfolio page maidcafe --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runPage,
}

func init() {
	rootCmd.AddCommand(pageCmd)
	pageCmd.Flags().StringVar(&pageAfter, "after", "", "Only events on or after this date (e.g. \"last month\", 2024-01-01)")
	pageCmd.Flags().StringVar(&pageBefore, "before", "", "Only events on or before this date")
	pageCmd.Flags().BoolVar(&pageCopy, "copy", false, "Copy the resolved page name to the clipboard")
}

func runPage(cmd *cobra.Command, args []string) error {
	slug := args[0]

	filter, err := catalog.ParseEventFilter(pageAfter, pageBefore, time.Now())
	if err != nil {
		return err
	}

	page, ok := newService().PageBySlug(slug)
	if !ok {
		return fmt.Errorf("no page found for slug %q", slug)
	}

	tmpl, err := mustache.ParseString(cfg.EventTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse event template: %w", err)
	}

	w := cmd.OutOrStdout()
	events := catalog.FilterEvents(page, filter)
	if err := renderPage(w, page, events, tmpl); err != nil {
		return err
	}

	if pageCopy {
		// Copy page name to clipboard - with fallback message
		if err := clipboard.WriteAll(page.Name); err != nil {
			logger.Debug("clipboard unavailable", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Could not copy to clipboard. Page name: %s\n", page.Name)
		} else {
			fmt.Fprintln(w, metaStyle.Render("Copied page name to clipboard"))
		}
	}
	return nil
}

func renderPage(w io.Writer, page *models.Page, events []models.Event, tmpl *mustache.Template) error {
	fmt.Fprintln(w, titleStyle.Render(page.Name))
	fmt.Fprintln(w, metaStyle.Render(fmt.Sprintf("%s · %s",
		english.Plural(page.EventCount, "event", ""),
		english.Plural(page.ImageCount(), "image", ""))))
	fmt.Fprintln(w)

	if len(events) == 0 {
		fmt.Fprintln(w, itemStyle.Render("No events match."))
		return nil
	}

	for _, e := range events {
		line, err := tmpl.Render(eventData(e))
		if err != nil {
			return fmt.Errorf("failed to render template: %w", err)
		}
		fmt.Fprintln(w, itemStyle.Render(line))
	}
	return nil
}

// eventData is the mustache context for one event line
func eventData(e models.Event) map[string]string {
	data := map[string]string{
		"name":    e.Name,
		"title":   e.DisplayName(),
		"count":   humanize.Comma(int64(e.Count)),
		"noun":    english.PluralWord(e.Count, "image", ""),
		"cover":   e.CoverImage.Path,
		"credits": strings.Join(eventCredits(e), ", "),
		"date":    "",
		"ago":     "",
	}
	if formatted, ok := assetnames.FormatDate(e.Name); ok {
		data["date"] = formatted
		if d, ok := e.Date(); ok {
			data["ago"] = humanize.Time(d.Time())
		}
	}
	return data
}

// eventCredits lists distinct photographer credits in image order
func eventCredits(e models.Event) []string {
	seen := make(map[string]bool)
	var credits []string
	for _, img := range e.Images {
		credit, ok := img.Credit()
		if !ok || credit == "" || seen[credit] {
			continue
		}
		seen[credit] = true
		credits = append(credits, credit)
	}
	return credits
}
