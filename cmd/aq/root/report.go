package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"artquest/internal/config"
	"artquest/internal/engine"
	"artquest/internal/gemini"
	"artquest/internal/ui"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the weekly retrospective",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			analytics, err := st.Analytics(ctx)
			if err != nil {
				return err
			}
			ts, err := st.Tasks(ctx)
			if err != nil {
				return err
			}
			week := engine.WeekRollup(analytics, ts, time.Now())

			categoryActivity := make(map[string]int, len(week.CategoryActivity))
			for c, n := range week.CategoryActivity {
				categoryActivity[c.Info().Name] = n
			}

			client := openClient(ctx, st)
			res := client.WeeklyReport(ctx, gemini.WeekInput{
				CompletedTasks:   week.CompletedTasks,
				TotalTime:        week.TotalTime,
				TotalPoints:      week.TotalPoints,
				ActiveDays:       week.ActiveDays,
				CategoryActivity: categoryActivity,
			})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Weekly report"))
			fmt.Fprintln(out, ui.LabelValue("Tasks", week.CompletedTasks))
			fmt.Fprintln(out, ui.LabelValue("Study time", fmt.Sprintf("%dm", week.TotalTime)))
			fmt.Fprintln(out, ui.LabelValue("Points", week.TotalPoints))
			fmt.Fprintln(out, ui.LabelValue("Active days", fmt.Sprintf("%d/7", week.ActiveDays)))
			for _, c := range config.Categories {
				if n := week.CategoryActivity[c]; n > 0 {
					fmt.Fprintf(out, "- %s %s: %d\n", c.Info().Icon, c.Info().Name, n)
				}
			}
			fmt.Fprintln(out, "")

			if res.UsedFallback {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" AI unavailable, showing the generic review."))
			}
			r := res.Data
			fmt.Fprintln(out, ui.H2.Render("📝 Summary"))
			fmt.Fprintln(out, r.Summary)
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render("🏆 Achievements"))
			for _, a := range r.Achievements {
				fmt.Fprintf(out, "- %s\n", a)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render("🎯 To improve"))
			for _, i := range r.Improvements {
				fmt.Fprintf(out, "- %s\n", i)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Next week", r.NextWeekFocus))
			fmt.Fprintln(out, ui.Gold.Render(r.MotivationalMessage))
			return nil
		},
	}

	return cmd
}
