package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"artquest/internal/store"
	"artquest/internal/ui"
)

func newAnalyzeCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Show the AI analysis of your assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			assessment, err := st.Assessment(ctx)
			if err != nil {
				return err
			}
			if assessment == nil {
				return errors.New("no assessment yet, run `aq assess` first")
			}

			out := cmd.OutOrStdout()
			if !refresh {
				analysis, err := st.Analysis(ctx)
				if err != nil {
					return err
				}
				if analysis != nil {
					printAnalysis(out, *analysis)
					return nil
				}
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
			if res.UsedFallback {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" AI unavailable, showing the generic analysis."))
			}
			printAnalysis(out, analysis)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Re-run the analysis instead of showing the stored one")
	return cmd
}

func printAnalysis(out io.Writer, a store.Analysis) {
	fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Skill analysis"))
	fmt.Fprintln(out, ui.LabelValue("Overall level", a.OverallLevel))
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render("💪 Strengths"))
	for _, s := range a.Strengths {
		fmt.Fprintf(out, "- %s\n", s)
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render("🎯 Areas to improve"))
	for _, w := range a.Weaknesses {
		fmt.Fprintf(out, "- %s\n", w)
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render("🧭 Recommendations"))
	for _, r := range a.Recommendations {
		fmt.Fprintf(out, "- %s\n", r)
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render("💡 Learning tips"))
	for _, tip := range a.LearningTips {
		fmt.Fprintf(out, "- %s\n", tip)
	}
}
