package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubelab/twophase/internal/cube"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Run: func(cmd *cobra.Command, args []string) {
		length, _ := cmd.Flags().GetInt("number")
		preview, _ := cmd.Flags().GetBool("preview")

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		moves := cube.GenScramble(length, rng)
		fmt.Println(cube.FormatScramble(moves))

		if preview {
			cc := cube.FromMoves(moves)
			fc, err := cube.FaceletsFromCubie(&cc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(renderFacelets(fc, true))
		}
	},
}

func init() {
	scrambleCmd.Flags().IntP("number", "n", 25, "Number of moves in the scramble")
	scrambleCmd.Flags().BoolP("preview", "p", false, "Render the scrambled cube")
}
