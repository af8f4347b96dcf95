package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"artquest/internal/gemini"
	"artquest/internal/store"
	"artquest/internal/ui"
)

func newKeyCmd() *cobra.Command {
	var clear bool
	var test bool

	cmd := &cobra.Command{
		Use:   "key [value]",
		Short: "Set or inspect the Gemini API key",
		Long: `Set the stored Gemini API key, or show its redacted form when called
without arguments. The full key is never printed or exported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			switch {
			case clear:
				if err := st.Erase(ctx, store.KeyAPIKey); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Warn.Render("API key cleared."))
				return nil
			case len(args) == 1:
				if err := st.SetAPIKey(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone+" API key saved:"), gemini.RedactKey(args[0]))
			default:
				key, err := st.APIKey(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.LabelValue("API key", gemini.RedactKey(key)))
			}

			if test {
				client := openClient(ctx, st)
				if !client.HasKey() {
					return fmt.Errorf("no API key configured")
				}
				if err := client.TestConnection(ctx); err != nil {
					return fmt.Errorf("connection test failed: %w", err)
				}
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Connection OK."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Remove the stored key")
	cmd.Flags().BoolVar(&test, "test", false, "Test the connection after setting/showing")
	return cmd
}
