package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubelab/twophase/internal/cube"
	"github.com/cubelab/twophase/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP solving service",
	Long: `Start the HTTP server exposing the solver and scramble generator.
The tables are built or loaded before the server accepts requests.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")

		if _, err := cube.Tables(); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading tables: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Starting server at http://%s:%s\n", host, port)
		server := web.NewServer()
		if err := server.Start(host + ":" + port); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting server: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
}
