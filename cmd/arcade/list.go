package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with the id to pass to 'arcade play'.`,
	Run:   runList,
}

var (
	listHeader = lipgloss.NewStyle().Bold(true).Underline(true)
	listID     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

func runList(cmd *cobra.Command, _ []string) {
	fmt.Fprint(cmd.OutOrStdout(), formatGameList(registry.List()))
}

// formatGameList lays out games as an aligned two-column table.
func formatGameList(games []registry.GameInfo) string {
	if len(games) == 0 {
		return "No games available.\n"
	}

	width := len("ID")
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	var b strings.Builder
	b.WriteString("Available games:\n\n")
	fmt.Fprintf(&b, "  %s%s  %s\n", listHeader.Render("ID"), strings.Repeat(" ", width-len("ID")), listHeader.Render("Title"))
	for _, g := range games {
		fmt.Fprintf(&b, "  %s%s  %s\n", listID.Render(g.ID), strings.Repeat(" ", width-len(g.ID)), g.Title)
	}
	b.WriteString("\nRun 'arcade play <id>' to play a game.\n")
	return b.String()
}
