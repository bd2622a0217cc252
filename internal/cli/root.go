package cli

import (
	"github.com/spf13/cobra"

	"github.com/cubelab/twophase/internal/cube"
)

var rootCmd = &cobra.Command{
	Use:   "twophase",
	Short: "A two-phase Rubik's cube solver",
	Long: `Twophase solves the 3x3x3 Rubik's cube with Kociemba's two-phase
algorithm, finding maneuvers of at most 20 moves within a time budget.`,
	Version: "1.0.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("tables")
		cube.SetTablesDir(dir)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("tables", "tables", "Directory holding the precomputed table cache")
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(historyCmd)
}
