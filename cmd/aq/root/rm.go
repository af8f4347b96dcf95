package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"artquest/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a custom task",
		Args:  requireIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			mgr, st, cleanup, err := openManager(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ts, err := st.Tasks(ctx)
			if err != nil {
				return err
			}
			// Prefix resolution over the custom collection only; daily
			// tasks are managed by check-in, not deleted by hand.
			var id, title string
			for _, t := range ts.Custom {
				if strings.HasPrefix(t.ID, args[0]) {
					if id != "" {
						return fmt.Errorf("id %q is ambiguous, use more characters", args[0])
					}
					id, title = t.ID, t.Title
				}
			}
			if id == "" {
				return fmt.Errorf("no custom task matches id %q", args[0])
			}

			if err := mgr.DeleteCustom(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render("Deleted"), title)
			return nil
		},
	}

	return cmd
}
