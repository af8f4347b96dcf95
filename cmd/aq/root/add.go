package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"artquest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var category string
	var duration int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a custom practice task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			mgr, _, cleanup, err := openManager(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := mgr.AddCustom(ctx, args[0], category, duration)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), task.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, %dm, %s)", task.Category, task.Duration, shortID(task.ID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (basic|anatomy|perspective|shading|color|composition)")
	cmd.Flags().IntVarP(&duration, "duration", "d", 15, "Duration in minutes")
	return cmd
}
