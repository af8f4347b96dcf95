package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"artquest/internal/engine"
	"artquest/internal/gemini"
	"artquest/internal/ui"
)

func newCoachCmd() *cobra.Command {
	var cached bool

	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Get a short AI coaching message",
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
			out := cmd.OutOrStdout()
			if cached {
				if analytics.CoachingMessage == "" {
					fmt.Fprintln(out, ui.Muted.Render("(no cached message yet)"))
					return nil
				}
				fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Coach"))
				fmt.Fprintln(out, analytics.CoachingMessage)
				return nil
			}

			profile, err := st.UserData(ctx)
			if err != nil {
				return err
			}
			ts, err := st.Tasks(ctx)
			if err != nil {
				return err
			}
			week := engine.WeekRollup(analytics, ts, time.Now())

			client := openClient(ctx, st)
			res := client.CoachingMessage(ctx, gemini.CoachInput{
				Level:           profile.Level,
				Points:          profile.Points,
				Streak:          profile.Streak,
				TasksThisWeek:   week.CompletedTasks,
				WeakestCategory: engine.WeakestCategory(analytics).Info().Name,
			})

			analytics.CoachingMessage = res.Data
			if err := st.SetAnalytics(ctx, analytics); err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Coach"))
			if res.UsedFallback {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" AI unavailable, generic encouragement follows."))
			}
			fmt.Fprintln(out, res.Data)
			return nil
		},
	}

	cmd.Flags().BoolVar(&cached, "cached", false, "Show the last message without calling the AI")
	return cmd
}
