package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubelab/twophase/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		db, err := storage.OpenDefault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		solves, err := storage.NewSolveRepository(db).List(limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing solves: %v\n", err)
			os.Exit(1)
		}
		if len(solves) == 0 {
			fmt.Println("No solves recorded yet.")
			return
		}
		for _, s := range solves {
			fmt.Printf("%s  %2d moves  %6dms  %s\n",
				s.CreatedAt.Format("2006-01-02 15:04:05"), s.MoveCount, s.DurationMs, s.Solution)
		}
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of solves to list")
}
