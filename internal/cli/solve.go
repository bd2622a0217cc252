package cli

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubelab/twophase/internal/cube"
	"github.com/cubelab/twophase/internal/storage"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a scrambled cube with the two-phase algorithm",
	Long: `Solve a scrambled cube given either as a 54-character facelet string
or as a scramble applied to the solved cube.

Use --headless for programmatic output (space-separated moves only).`,
	Run: func(cmd *cobra.Command, args []string) {
		facelets, _ := cmd.Flags().GetString("facelet")
		scramble, _ := cmd.Flags().GetString("scramble")
		goal, _ := cmd.Flags().GetString("goal")
		maxLength, _ := cmd.Flags().GetInt("max")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		preview, _ := cmd.Flags().GetBool("preview")
		headless, _ := cmd.Flags().GetBool("headless")
		noHistory, _ := cmd.Flags().GetBool("no-history")

		if (facelets == "") == (scramble == "") {
			fmt.Fprintln(os.Stderr, "Error: exactly one of --facelet and --scramble is required")
			os.Exit(1)
		}
		if scramble != "" {
			moves, err := cube.ParseScramble(scramble)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing scramble: %v\n", err)
				os.Exit(1)
			}
			cc := cube.FromMoves(moves)
			fc, err := cube.FaceletsFromCubie(&cc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			facelets = fc.String()
		}

		if preview && !headless {
			fc, err := cube.ParseFacelets(facelets)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(renderFacelets(fc, true))
		}

		result, err := cube.Solver(facelets, goal, maxLength, timeout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error solving cube: %v\n", err)
			os.Exit(1)
		}

		solution := cube.FormatScramble(result.Solution)
		if headless {
			fmt.Print(solution)
		} else {
			fmt.Printf("Solution: %s\n", solution)
			fmt.Printf("Moves: %d\n", len(result.Solution))
			fmt.Printf("Time: %v\n", result.SolveTime)
		}

		if !noHistory {
			recordSolve(facelets, solution, len(result.Solution), result.SolveTime)
		}
	},
}

// recordSolve stores the solve in the history database; failures only warn.
func recordSolve(facelets, solution string, moves int, took time.Duration) {
	db, err := storage.OpenDefault()
	if err != nil {
		log.Printf("history disabled: %v", err)
		return
	}
	defer db.Close()
	repo := storage.NewSolveRepository(db)
	if _, err := repo.Create(facelets, solution, moves, took); err != nil {
		log.Printf("recording solve: %v", err)
	}
}

func init() {
	solveCmd.Flags().StringP("facelet", "f", "", "Cube state as a 54-character definition string")
	solveCmd.Flags().StringP("scramble", "s", "", "Cube state as a scramble from solved")
	solveCmd.Flags().String("goal", cube.SolvedFacelets, "Goal state as a 54-character definition string")
	solveCmd.Flags().IntP("max", "m", 20, "Return once a maneuver of at most this length is found")
	solveCmd.Flags().DurationP("timeout", "t", 3*time.Second, "Soft search deadline")
	solveCmd.Flags().BoolP("preview", "p", false, "Render the scrambled cube before solving")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("no-history", false, "Do not record the solve in the history database")
}
