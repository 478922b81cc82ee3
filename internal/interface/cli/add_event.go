package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neilberkman/portfolio/internal/core/importer"
)

var (
	addPage   string
	addTitle  string
	addDate   string
	addTags   string
	addMirror string
	addMove   bool
	addDryRun bool
)

var addEventCmd = &cobra.Command{
	Use:   "add-event [files...]",
	Short: "Create an event directory and place photos in it",
	Long: `Create <assets>/<page>/<title>_<date> and copy the given photos into it
as 0.jpg, 1.jpg, ... Tags are appended to every filename as " (tag)", which
is where photographer credits come from.

Examples:
  portfolio add-event --page "Maid Cafe" --title Opening --date 01-15-2024 ~/shots/*.jpg
  portfolio add-event --page Fashion --title Show --date 03-03-2024 --tags "Jane Doe" --dry-run a.jpg b.jpg
  portfolio add-event --page Cosplays --title Con --date 05-05-2024 --mirror public/assets --move *.png`,
	RunE: runAddEvent,
}

func init() {
	rootCmd.AddCommand(addEventCmd)
	addEventCmd.Flags().StringVarP(&addPage, "page", "p", "", "Page directory (e.g. \"Maid Cafe\")")
	addEventCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Event title")
	addEventCmd.Flags().StringVarP(&addDate, "date", "d", "", "Event date in MM-DD-YYYY format")
	addEventCmd.Flags().StringVar(&addTags, "tags", "", "Comma-separated tags")
	addEventCmd.Flags().StringVar(&addMirror, "mirror", "", "Also copy files into this directory with the same layout")
	addEventCmd.Flags().BoolVar(&addMove, "move", false, "Move files instead of copying them")
	addEventCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Show what would be created without doing it")
	_ = addEventCmd.MarkFlagRequired("page")
	_ = addEventCmd.MarkFlagRequired("title")
}

func runAddEvent(cmd *cobra.Command, args []string) error {
	var tags []string
	for _, tag := range strings.Split(addTags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	plan := importer.EventPlan{
		Page:  addPage,
		Title: addTitle,
		Date:  addDate,
		Tags:  tags,
		Files: args,
	}

	w := cmd.OutOrStdout()
	opts := []importer.Option{
		importer.WithLogger(logger),
		importer.WithMirror(addMirror),
		importer.WithMove(addMove),
	}
	if !addDryRun && len(args) > 0 {
		opts = append(opts, importer.WithProgress(importer.NewProgressReporter(cmd.ErrOrStderr(), len(args))))
	}
	imp := importer.New(cfg.AssetsDir, opts...)

	placements, err := imp.Plan(plan)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, titleStyle.Render("Event Details"))
	fmt.Fprintf(w, "  Page:   %s\n", plan.Page)
	fmt.Fprintf(w, "  Folder: %s\n", imp.EventDir(plan))
	if len(tags) > 0 {
		fmt.Fprintf(w, "  Tags:   %s\n", strings.Join(tags, ", "))
	}
	for _, pl := range placements {
		fmt.Fprintln(w, itemStyle.Render(fmt.Sprintf("%s -> %s", pl.Source, metaStyle.Render(pl.Target))))
	}

	if addDryRun {
		fmt.Fprintln(w, "\n[DRY RUN] No folders or files were created.")
		return nil
	}

	if _, err := imp.Import(plan); err != nil {
		return fmt.Errorf("failed to add event: %w", err)
	}
	fmt.Fprintln(w, validStyle.Render("✓ Event created: "+imp.EventDir(plan)))
	return nil
}
