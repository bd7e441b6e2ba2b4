package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// printSignInGreeting is shown when the TUI is launched without a valid
// session. Expired sessions land here too, the store clears them on read.
func printSignInGreeting() {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5aa2e8")).
		Bold(true).
		Render("D E C K H A N D")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	key := lipgloss.NewStyle().Foreground(lipgloss.Color("#5aa2e8"))

	fmt.Println()
	fmt.Println("  " + title)
	fmt.Println()
	fmt.Println("  " + dim.Render("All your projects, in one dashboard."))
	fmt.Println()
	fmt.Println("  " + dim.Render("You are not signed in."))
	fmt.Println("  " + key.Render("deckhand login") + dim.Render("   sign in to an existing account"))
	fmt.Println("  " + key.Render("deckhand signup") + dim.Render("  create a new account"))
	fmt.Println()
}
