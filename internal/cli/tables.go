package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubelab/twophase/internal/cube"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build the precomputed table cache",
	Long: `Build every move, symmetry and pruning table and write them to the
table directory. The first build takes a few minutes and a few hundred
megabytes of memory; later runs load the cache instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		if _, err := cube.Tables(); err != nil {
			fmt.Fprintf(os.Stderr, "Error building tables: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Tables ready in %v\n", time.Since(start).Round(time.Millisecond))
	},
}
