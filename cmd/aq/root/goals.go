package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"artquest/internal/config"
	"artquest/internal/tasks"
	"artquest/internal/ui"
)

func newGoalsCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show this week's goals",
		Long: `Show the weekly goal set, generating one if this week has none yet.
--refresh replaces the whole set, progress included.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			mgr, _, cleanup, err := openManager(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := mgr.RefreshWeeklyGoals(ctx, refresh)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Weekly goals"))
			if res.UsedFallback {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" AI unavailable, using the offline goal set."))
			}
			if len(res.Goals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, g := range res.Goals {
				info := config.Category(g.Category).Info()
				pct := tasks.ProgressPercent(g)
				fmt.Fprintf(out, "%s %s %s %d/%d %s\n", info.Icon, g.Title, ui.Bar(pct, 100, 12), g.Progress, g.TargetCount, ui.Muted.Render(fmt.Sprintf("%d%%", pct)))
				if g.Description != "" {
					fmt.Fprintf(out, "   %s\n", ui.Dim.Render(g.Description))
				}
				for _, sub := range g.Tasks {
					fmt.Fprintf(out, "   - %s\n", ui.Muted.Render(sub))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Replace the current week's goal set")
	return cmd
}
