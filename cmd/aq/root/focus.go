package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"artquest/internal/config"
	"artquest/internal/timer"
	"artquest/internal/tui"
	"artquest/internal/ui"
)

func newFocusCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run a focus session countdown",
		Long: `Run a focus countdown. Finishing the full session awards points and
counts toward your study time; an aborted session awards nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if minutes <= 0 {
				settings, err := st.Settings(ctx)
				if err != nil {
					return err
				}
				minutes = settings.Timer.FocusDuration
			}

			completed, err := tui.RunFocus(minutes, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !completed {
				fmt.Fprintln(out, ui.Muted.Render("Session aborted, nothing recorded."))
				return nil
			}

			profile, err := st.UserData(ctx)
			if err != nil {
				return err
			}
			analytics, err := st.Analytics(ctx)
			if err != nil {
				return err
			}
			up := timer.Award(&profile, &analytics, minutes, time.Now())
			if err := st.SetUserData(ctx, profile); err != nil {
				return err
			}
			if err := st.SetAnalytics(ctx, analytics); err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %d minute session done %s\n", ui.Good.Render(ui.IconTimer+" Focus:"), minutes, ui.Gold.Render(fmt.Sprintf("+%d pts", config.FocusPoints)))
			if up != nil {
				fmt.Fprintf(out, "%s → level %d\n", ui.BadgeLevelUp, up.NewLevel)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Session length (default from settings)")
	return cmd
}
