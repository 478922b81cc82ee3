package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neilberkman/portfolio/internal/core/catalog"
	"github.com/neilberkman/portfolio/internal/core/scanner"
)

var slugsCmd = &cobra.Command{
	Use:   "slugs",
	Short: "List page slugs",
	Long: `List the URL slug of every page, in directory-listing order.

Slugs keep only a-z and 0-9 from the lower-cased page name, so different
names can share a slug. Such collisions are reported; the first page in
listing order wins.`,
	Args: cobra.NoArgs,
	RunE: runSlugs,
}

func init() {
	rootCmd.AddCommand(slugsCmd)
}

func newService() *catalog.Service {
	return catalog.New(cfg.AssetsDir,
		scanner.WithLogger(logger),
		scanner.WithPathPrefix(cfg.PathPrefix),
	)
}

func runSlugs(cmd *cobra.Command, args []string) error {
	svc := newService()
	w := cmd.OutOrStdout()

	cat := svc.Catalog()
	if cat.Len() == 0 {
		fmt.Fprintln(w, "No pages found.")
		return nil
	}
	for _, page := range cat.Pages {
		fmt.Fprintf(w, "%-24s %s\n", page.Slug, metaStyle.Render(page.Name))
	}

	collisions := svc.SlugCollisions()
	for _, slug := range catalog.SortedSlugs(collisions) {
		names := collisions[slug]
		quoted := make([]string, len(names))
		for i, n := range names {
			quoted[i] = fmt.Sprintf("%q", n)
		}
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("warning: slug %q is shared by %s; %s is served",
			slug, strings.Join(quoted, ", "), quoted[0])))
	}
	return nil
}
