package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"artquest/internal/config"
	"artquest/internal/store"
	"artquest/internal/ui"
)

func newAssessCmd() *cobra.Command {
	levels := map[config.Category]*string{}

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Record your skill self-assessment",
		Long: `Record a per-category self-assessment (beginner, intermediate or advanced)
and run the AI analysis on it. Re-running replaces the previous assessment
wholesale.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			assessment := store.Assessment{
				Levels:     map[string]string{},
				AnalyzedAt: time.Now().UTC(),
			}
			for c, v := range levels {
				if !config.SkillLevel(*v).IsValid() {
					return fmt.Errorf("invalid level %q for %s (beginner|intermediate|advanced)", *v, c)
				}
				assessment.Levels[string(c)] = *v
			}

			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := st.SetAssessment(ctx, assessment); err != nil {
				return err
			}

			client := openClient(ctx, st)
			res := client.AnalyzeAssessment(ctx, assessment.Levels)
			analysis := store.Analysis{
				Strengths:       res.Data.Strengths,
				Weaknesses:      res.Data.Weaknesses,
				OverallLevel:    res.Data.OverallLevel,
				Recommendations: res.Data.Recommendations,
				LearningTips:    res.Data.LearningTips,
			}
			if err := st.SetAnalysis(ctx, analysis); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPalette, "Assessment saved"))
			for _, c := range config.Categories {
				info := c.Info()
				fmt.Fprintf(out, "- %s %s: %s\n", info.Icon, info.Name, assessment.Levels[string(c)])
			}
			fmt.Fprintln(out, "")
			if res.UsedFallback {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" AI unavailable, showing the generic analysis."))
			}
			printAnalysis(out, analysis)
			return nil
		},
	}

	for _, c := range config.Categories {
		v := string(config.SkillBeginner)
		levels[c] = &v
		cmd.Flags().StringVar(levels[c], string(c), v, fmt.Sprintf("Skill level for %s", c.Info().Name))
	}
	return cmd
}
