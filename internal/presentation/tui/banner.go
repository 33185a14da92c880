package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the startup banner with the running version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	s1 := termenv.String("            _      _   ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String("  _ __ ___ (_) ___| |_ ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" | '_ ` _ \\| |/ _ \\ __|").Foreground(p.Color("#c084fc"))
	s4 := termenv.String(" | | | | | | |  __/ |_ ").Foreground(p.Color("#e879f9"))
	s5 := termenv.String(" |_| |_| |_|_|\\___|\\__|").Foreground(p.Color("#f472b6"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(termenv.String(" v" + strings.TrimSpace(version)).Faint())
	fmt.Println()
}

// FormatChoices renders a choice set as a dim bracketed list.
func FormatChoices(choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	return termenv.String("[" + strings.Join(choices, " | ") + "]").Faint().String()
}
