package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"artquest/internal/config"
	"artquest/internal/store"
	"artquest/internal/ui"
)

func newResourcesCmd() *cobra.Command {
	var refresh bool
	var category string

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Show recommended learning resources",
		Long: `Show AI-recommended learning resources matched to your assessment.
Recommendations are cached; --refresh asks the AI again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if category != "" && !config.Category(category).IsValid() {
				return fmt.Errorf("invalid category %q", category)
			}

			out := cmd.OutOrStdout()
			cachedList, err := st.CustomResources(ctx)
			if err != nil {
				return err
			}

			if refresh || len(cachedList) == 0 {
				assessment, err := st.Assessment(ctx)
				if err != nil {
					return err
				}
				if assessment == nil {
					return errors.New("no assessment yet, run `aq assess` first")
				}
				client := openClient(ctx, st)
				res := client.RecommendResources(ctx, assessment.Levels)
				if res.UsedFallback {
					fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" AI unavailable, showing the starter list."))
				}
				cachedList = cachedList[:0]
				for _, r := range res.Data.Resources {
					cachedList = append(cachedList, store.Resource{
						Title:       r.Title,
						Type:        r.Type,
						Category:    r.Category,
						Description: r.Description,
						URL:         r.URL,
						Difficulty:  r.Difficulty,
					})
				}
				if err := st.SetCustomResources(ctx, cachedList); err != nil {
					return err
				}
			}

			fmt.Fprintln(out, ui.Heading(ui.IconBook, "Learning resources"))
			shown := 0
			for _, r := range cachedList {
				if category != "" && r.Category != category {
					continue
				}
				shown++
				printResource(out, r)
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Ask the AI for fresh recommendations")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	return cmd
}

func printResource(out io.Writer, r store.Resource) {
	icon := map[string]string{
		"video":    "🎬",
		"article":  "📄",
		"tutorial": "🧑‍🏫",
		"book":     "📖",
	}[r.Type]
	if icon == "" {
		icon = "🔗"
	}
	fmt.Fprintf(out, "%s %s %s\n", icon, r.Title, ui.Muted.Render(fmt.Sprintf("(%s, %s)", r.Category, r.Difficulty)))
	if r.Description != "" {
		fmt.Fprintf(out, "   %s\n", ui.Dim.Render(r.Description))
	}
	if r.URL != "" {
		fmt.Fprintf(out, "   %s\n", ui.Key.Render(r.URL))
	}
}
