package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubelab/twophase/internal/cube"
)

var faceletStyles = map[cube.Color]lipgloss.Style{
	cube.ColorU: lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	cube.ColorR: lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")),
	cube.ColorF: lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("255")),
	cube.ColorD: lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),
	cube.ColorL: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	cube.ColorB: lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
}

// renderFacelets draws the unfolded cube as a coloured net with U on top,
// the L F R B band in the middle and D at the bottom.
func renderFacelets(fc *cube.FaceCube, useColor bool) string {
	sticker := func(i int) string {
		c := fc.F[i]
		if !useColor {
			return c.String() + " "
		}
		return faceletStyles[c].Render(" " + c.String()) + " "
	}
	face := func(base, row int) string {
		var sb strings.Builder
		for col := 0; col < 3; col++ {
			sb.WriteString(sticker(base + 3*row + col))
		}
		return sb.String()
	}

	var sb strings.Builder
	pad := strings.Repeat(" ", 7)
	if useColor {
		pad = strings.Repeat(" ", 10)
	}
	for row := 0; row < 3; row++ {
		sb.WriteString(pad + face(0, row) + "\n") // U
	}
	for row := 0; row < 3; row++ {
		sb.WriteString(face(36, row) + " ") // L
		sb.WriteString(face(18, row) + " ") // F
		sb.WriteString(face(9, row) + " ")  // R
		sb.WriteString(face(45, row))       // B
		sb.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		sb.WriteString(pad + face(27, row) + "\n") // D
	}
	return sb.String()
}

var showCmd = &cobra.Command{
	Use:   "show [facelets]",
	Short: "Render a cube definition string as a coloured net",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		letters, _ := cmd.Flags().GetBool("letters")
		fc, err := cube.ParseFacelets(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(renderFacelets(fc, !letters))
	},
}

func init() {
	showCmd.Flags().Bool("letters", false, "Use plain letters instead of coloured blocks")
}
