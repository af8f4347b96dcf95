package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"artquest/internal/store"
	"artquest/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task",
		Long:  "Mark a daily or custom task as completed. The id may be any unique prefix.",
		Args:  requireIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggleTask(cmd, args[0], true)
		},
	}

	return cmd
}

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Undo a task completion",
		Long: `Return a completed task to pending and reverse the points it awarded.
The streak is not reversed; it only ever moves forward.`,
		Args: requireIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggleTask(cmd, args[0], false)
		},
	}

	return cmd
}

func toggleTask(cmd *cobra.Command, ref string, complete bool) error {
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
	collection, task, err := resolveTask(ts, ref)
	if err != nil {
		return err
	}
	if complete && task.Completed {
		return fmt.Errorf("task %q is already completed (use `aq undo %s`)", task.Title, shortID(task.ID))
	}
	if !complete && !task.Completed {
		return fmt.Errorf("task %q is not completed", task.Title)
	}

	res, err := mgr.Toggle(ctx, collection, task.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.Completed {
		fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Done:"), res.Task.Title, ui.Gold.Render(fmt.Sprintf("+%d pts", res.PointsDelta)))
		fmt.Fprintf(out, "%s %d day streak\n", ui.IconFire, res.Streak)
		if res.LevelUp != nil {
			fmt.Fprintf(out, "%s %s → level %d\n", ui.IconTrophy, ui.BadgeLevelUp, res.LevelUp.NewLevel)
		}
	} else {
		fmt.Fprintf(out, "%s %s %s\n", ui.Warn.Render("Undone:"), res.Task.Title, ui.Muted.Render(fmt.Sprintf("%d pts", res.PointsDelta)))
	}
	return nil
}

func requireIDArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("id is required")
	}
	return nil
}

// resolveTask finds a task across the daily and custom collections by full
// id or unique prefix.
func resolveTask(ts store.TaskSet, ref string) (string, *store.Task, error) {
	type hit struct {
		collection string
		task       *store.Task
	}
	var hits []hit
	for i := range ts.Daily {
		if strings.HasPrefix(ts.Daily[i].ID, ref) {
			hits = append(hits, hit{"daily", &ts.Daily[i]})
		}
	}
	for i := range ts.Custom {
		if strings.HasPrefix(ts.Custom[i].ID, ref) {
			hits = append(hits, hit{"custom", &ts.Custom[i]})
		}
	}
	switch len(hits) {
	case 0:
		return "", nil, fmt.Errorf("no task matches id %q", ref)
	case 1:
		return hits[0].collection, hits[0].task, nil
	default:
		return "", nil, fmt.Errorf("id %q is ambiguous (%d matches), use more characters", ref, len(hits))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
