package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"artquest/internal/config"
	"artquest/internal/ui"
)

func newCheckinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Start the day: generate today's practice tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			mgr, _, cleanup, err := openManager(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := mgr.CheckIn(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.AlreadyCheckedIn {
				fmt.Fprintln(out, ui.Heading(ui.IconDone, "Already checked in today"))
			} else {
				fmt.Fprintln(out, ui.Heading(ui.IconBrush, "Today's practice"))
				if res.UsedFallback {
					fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" AI unavailable, using the offline plan."))
				}
				if res.AttendanceAwarded {
					fmt.Fprintf(out, "%s +%d pts attendance bonus\n", ui.Gold.Render(ui.IconStar), config.AttendancePoints)
				}
				if res.LevelUp != nil {
					fmt.Fprintf(out, "%s → level %d\n", ui.BadgeLevelUp, res.LevelUp.NewLevel)
				}
			}
			fmt.Fprintln(out, "")
			for _, t := range res.Tasks {
				info := config.Category(t.Category).Info()
				fmt.Fprintf(out, "%s %s %s %s\n", ui.Checkbox(t.Completed), info.Icon, t.Title, ui.Muted.Render(fmt.Sprintf("(%dm, %s, %s)", t.Duration, t.Category, shortID(t.ID))))
				if t.Tips != "" {
					fmt.Fprintf(out, "    %s\n", ui.Dim.Render("💡 "+t.Tips))
				}
			}
			return nil
		},
	}

	return cmd
}
