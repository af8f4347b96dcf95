package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"artquest/internal/config"
	"artquest/internal/store"
	"artquest/internal/ui"
)

func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List today's tasks and custom tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			mgr, st, cleanup, err := openManager(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			today, err := mgr.Today(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Heading(ui.IconBrush, "Today"))
			if len(today) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no tasks — run `aq checkin`)"))
			}
			for _, t := range today {
				printTaskLine(out, t)
			}

			ts, err := st.Tasks(ctx)
			if err != nil {
				return err
			}
			if len(ts.Custom) > 0 || all {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconPlus+" Custom"))
				if len(ts.Custom) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(none)"))
				}
				for _, t := range ts.Custom {
					printTaskLine(out, t)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show the custom section even when empty")
	return cmd
}

func printTaskLine(out io.Writer, t store.Task) {
	info := config.Category(t.Category).Info()
	fmt.Fprintf(out, "%s %s %s %s\n",
		ui.Checkbox(t.Completed), info.Icon, t.Title,
		ui.Muted.Render(fmt.Sprintf("(%dm, %s, %s)", t.Duration, t.Category, shortID(t.ID))))
}
