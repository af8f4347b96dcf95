package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"artquest/internal/config"
	"artquest/internal/engine"
	"artquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progression, skills and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			profile, err := st.UserData(ctx)
			if err != nil {
				return err
			}
			analytics, err := st.Analytics(ctx)
			if err != nil {
				return err
			}
			gallery, err := st.Gallery(ctx)
			if err != nil {
				return err
			}
			stats := engine.Overall(profile, analytics, len(gallery))

			out := cmd.OutOrStdout()
			within := profile.Points % config.PointsPerLevel
			fmt.Fprintln(out, ui.Heading(ui.IconPalette, "ArtQuest status"))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d %s %d/%d to next", stats.CurrentLevel, ui.Bar(within, config.PointsPerLevel, 20), within, config.PointsPerLevel)))
			fmt.Fprintln(out, ui.LabelValue("Points", stats.TotalPoints))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFire, stats.CurrentStreak)))
			fmt.Fprintln(out, ui.LabelValue("Completed", fmt.Sprintf("%d tasks over %d study days", stats.TotalTasksCompleted, stats.StudyDays)))
			fmt.Fprintln(out, ui.LabelValue("Study time", fmt.Sprintf("%dh %dm", stats.TotalStudyTime/60, stats.TotalStudyTime%60)))
			fmt.Fprintln(out, ui.LabelValue("Focus sessions", analytics.FocusSessions))
			fmt.Fprintln(out, ui.LabelValue("Artworks", stats.TotalArtworks))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconChart+" Skills"))
			for _, standing := range engine.CategoryStandings(analytics) {
				info := standing.Category.Info()
				fmt.Fprintf(out, "- %s %s L%d %s %s\n", info.Icon, info.Name, standing.Level, ui.Bar(standing.Percent, 100, 14), ui.Muted.Render(fmt.Sprintf("%d pts", standing.Points)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("🗓 Last 30 days"))
			var heat strings.Builder
			for _, d := range engine.RecentActivity(analytics, time.Now(), 30) {
				heat.WriteString(ui.HeatGlyph(d.HeatLevel))
			}
			fmt.Fprintln(out, heat.String())
			fmt.Fprintln(out, ui.Dim.Render("· none  ░ 1  ▒ 2-3  ▓ 4-5  █ 6+ tasks"))
			return nil
		},
	}

	return cmd
}
