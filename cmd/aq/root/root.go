package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"artquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "aq",
	Short:         "ArtQuest — gamified drawing practice companion",
	Long:          "ArtQuest is a local-first CLI/TUI drawing practice companion with AI-generated daily tasks and RPG-style progression.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAssessCmd(),
		newAnalyzeCmd(),
		newCheckinCmd(),
		newListCmd(),
		newDoCmd(),
		newUndoCmd(),
		newAddCmd(),
		newRmCmd(),
		newGoalsCmd(),
		newStatusCmd(),
		newCoachCmd(),
		newReportCmd(),
		newResourcesCmd(),
		newFocusCmd(),
		newGalleryCmd(),
		newKeyCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
