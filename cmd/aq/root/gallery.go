package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"artquest/internal/config"
	"artquest/internal/gallery"
	"artquest/internal/store"
	"artquest/internal/ui"
)

func newGalleryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Log and browse your practice pieces",
	}

	cmd.AddCommand(
		newGalleryAddCmd(),
		newGalleryListCmd(),
		newGalleryEditCmd(),
		newGalleryRmCmd(),
	)
	return cmd
}

// resolveArtworkID matches a full id or unique prefix against the log.
func resolveArtworkID(items []store.Artwork, ref string) (string, string, error) {
	var id, title string
	for _, a := range items {
		if strings.HasPrefix(a.ID, ref) {
			if id != "" {
				return "", "", fmt.Errorf("id %q is ambiguous, use more characters", ref)
			}
			id, title = a.ID, a.Title
		}
	}
	if id == "" {
		return "", "", fmt.Errorf("no artwork matches id %q", ref)
	}
	return id, title, nil
}

func newGalleryAddCmd() *cobra.Command {
	var category string
	var tags []string
	var path string
	var memo string
	var practiceTime int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Log a practice piece",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			art, err := gallery.NewManager(st).Add(ctx, gallery.Entry{
				Title:        args[0],
				Category:     category,
				Tags:         tags,
				Path:         path,
				Memo:         memo,
				PracticeTime: practiceTime,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconFrame+" Logged"), art.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, %s)", art.Category, shortID(art.ID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tags (repeatable)")
	cmd.Flags().StringVar(&path, "path", "", "Path to the image file")
	cmd.Flags().StringVar(&memo, "memo", "", "Notes about the piece")
	cmd.Flags().IntVar(&practiceTime, "time", 0, "Practice time in minutes")
	return cmd
}

func newGalleryListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged pieces, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := gallery.NewManager(st).List(ctx, category)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconFrame, "Gallery"))
			if len(items) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
				return nil
			}
			for _, a := range items {
				info := config.Category(a.Category).Info()
				fmt.Fprintf(out, "%s %s %s %s\n", info.Icon, a.Title,
					ui.Muted.Render(a.CreatedAt.Format("2006-01-02")),
					ui.Dim.Render(shortID(a.ID)))
				if a.Memo != "" {
					fmt.Fprintf(out, "   %s\n", ui.Dim.Render(a.Memo))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	return cmd
}

func newGalleryEditCmd() *cobra.Command {
	var title string
	var category string
	var tags []string
	var path string
	var memo string
	var practiceTime int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a logged piece",
		Args:  requireIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			mgr := gallery.NewManager(st)
			items, err := mgr.List(ctx, "")
			if err != nil {
				return err
			}
			id, _, err := resolveArtworkID(items, args[0])
			if err != nil {
				return err
			}

			// Only flags the user passed become part of the patch, so
			// --memo "" clears the memo while an omitted flag keeps it.
			var patch gallery.Patch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}
			if cmd.Flags().Changed("tag") {
				patch.Tags = &tags
			}
			if cmd.Flags().Changed("path") {
				patch.Path = &path
			}
			if cmd.Flags().Changed("memo") {
				patch.Memo = &memo
			}
			if cmd.Flags().Changed("time") {
				patch.PracticeTime = &practiceTime
			}

			art, err := mgr.Update(ctx, id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Updated"), art.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Replace tags (repeatable)")
	cmd.Flags().StringVar(&path, "path", "", "New path to the image file")
	cmd.Flags().StringVar(&memo, "memo", "", "New memo")
	cmd.Flags().IntVar(&practiceTime, "time", 0, "New practice time in minutes")
	return cmd
}

func newGalleryRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a logged piece",
		Args:  requireIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			mgr := gallery.NewManager(st)
			items, err := mgr.List(ctx, "")
			if err != nil {
				return err
			}
			id, title, err := resolveArtworkID(items, args[0])
			if err != nil {
				return err
			}
			if err := mgr.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render("Removed"), title)
			return nil
		},
	}

	return cmd
}
