package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show key bindings and board symbols",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printControls(cmd.OutOrStdout())
	},
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	keyStyle     = lipgloss.NewStyle().Width(12)
)

func printControls(w io.Writer) {
	fmt.Fprintln(w, headingStyle.Render("Controls"))
	for _, b := range tui.NewKeyMapper().Bindings() {
		fmt.Fprintf(w, "  %s %s\n", keyStyle.Render(b.Keys), b.Action)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headingStyle.Render("Board"))
	for _, c := range []core.Cell{core.CellSnakeHead, core.CellSnakeBody, core.CellFood, core.CellWall} {
		fmt.Fprintf(w, "  %s %s\n", keyStyle.Render(string(c.Rune())), c)
	}
}
