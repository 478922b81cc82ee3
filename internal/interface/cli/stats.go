package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/neilberkman/portfolio/internal/core/models"
	"github.com/neilberkman/portfolio/internal/core/scanner"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long: `Display statistics about the scanned catalog.

Shows page, event and image counts, the dated event range, and the largest
pages.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// catalogStats summarizes a scanned catalog
type catalogStats struct {
	Pages   int
	Events  int
	Images  int
	Dated   int
	Oldest  time.Time
	Newest  time.Time
	Largest *models.Page
}

func collectStats(c *models.Catalog) catalogStats {
	var st catalogStats
	st.Pages = c.Len()
	for _, page := range c.Pages {
		st.Events += page.EventCount
		st.Images += page.ImageCount()
		if st.Largest == nil || page.ImageCount() > st.Largest.ImageCount() {
			st.Largest = page
		}
		for _, e := range page.Events {
			d, ok := e.Date()
			if !ok {
				continue
			}
			t := d.Time()
			st.Dated++
			if st.Oldest.IsZero() || t.Before(st.Oldest) {
				st.Oldest = t
			}
			if t.After(st.Newest) {
				st.Newest = t
			}
		}
	}
	return st
}

func runStats(cmd *cobra.Command, args []string) error {
	s := scanner.New(
		scanner.WithLogger(logger),
		scanner.WithPathPrefix(cfg.PathPrefix),
	)
	st := collectStats(s.Scan(cfg.AssetsDir))
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, titleStyle.Render("Catalog Statistics"))
	fmt.Fprintln(w, "==================")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Pages:           %s\n", humanize.Comma(int64(st.Pages)))
	fmt.Fprintf(w, "Events:          %s\n", humanize.Comma(int64(st.Events)))
	fmt.Fprintf(w, "Images:          %s\n", humanize.Comma(int64(st.Images)))
	fmt.Fprintf(w, "Dated Events:    %s\n", humanize.Comma(int64(st.Dated)))

	if st.Dated > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Oldest Event:    %s (%s)\n", st.Oldest.Format("Jan 2, 2006"), humanize.Time(st.Oldest))
		fmt.Fprintf(w, "Newest Event:    %s (%s)\n", st.Newest.Format("Jan 2, 2006"), humanize.Time(st.Newest))
	}

	if st.Largest != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Largest Page:    %s (%s images)\n", st.Largest.Name, humanize.Comma(int64(st.Largest.ImageCount())))
	}
	return nil
}
