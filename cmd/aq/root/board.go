package root

import (
	"context"

	"github.com/spf13/cobra"

	"artquest/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive daily board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			mgr, st, cleanup, err := openManager(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, st, mgr, cmd.OutOrStdout())
		},
	}

	return cmd
}
