package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Adaptive Color definitions
	colorHeader = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#00af00", ANSI256: "34", ANSI: "2"},
		Light: lipgloss.CompleteColor{TrueColor: "#008700", ANSI256: "28", ANSI: "2"},
	}
	colorCommand = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5fffff", ANSI256: "86", ANSI: "6"},
		Light: lipgloss.CompleteColor{TrueColor: "#008787", ANSI256: "30", ANSI: "6"},
	}
	colorPath = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5f5fff", ANSI256: "63", ANSI: "4"},
		Light: lipgloss.CompleteColor{TrueColor: "#0000af", ANSI256: "19", ANSI: "4"},
	}
	colorWarn = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#d7ff87", ANSI256: "192", ANSI: "11"},
		Light: lipgloss.CompleteColor{TrueColor: "#5f8700", ANSI256: "64", ANSI: "10"},
	}
	colorDim = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#9e9e9e", ANSI256: "247", ANSI: "8"},
		Light: lipgloss.CompleteColor{TrueColor: "#444444", ANSI256: "238", ANSI: "0"},
	}
	colorFlag = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#ff5faf", ANSI256: "204", ANSI: "13"},
		Light: lipgloss.CompleteColor{TrueColor: "#af005f", ANSI256: "125", ANSI: "5"},
	}

	// Exported Styles for CLI and TUI
	StyleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	StyleCommand = lipgloss.NewStyle().Bold(true).Foreground(colorCommand)
	StylePath    = lipgloss.NewStyle().Foreground(colorPath)
	StyleWarn    = lipgloss.NewStyle().Foreground(colorWarn)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleFlag    = lipgloss.NewStyle().Italic(true).Foreground(colorFlag)

	// StyleBanner is the review title banner
	StyleBanner = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCommand).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorHeader).
			Padding(0, 4).
			Align(lipgloss.Center)
)

// Theme returns the huh theme used by every form.
func Theme() *huh.Theme {
	return huh.ThemeCatppuccin()
}

// KeyMap maps esc and ctrl+c to quit; the filter below tells them apart.
func KeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	km.Quit.SetKeys("esc", "ctrl+c")
	km.Quit.SetHelp("ctrl+c", "cancel review")

	km.Select.Submit.SetHelp("enter", "choose • esc: skip • ctrl+c: cancel")
	km.Note.Next.SetHelp("enter", "next • esc: skip • ctrl+c: cancel")

	return km
}

// interceptedKey tracks the last key that triggered an abort (esc vs ctrl+c).
var interceptedKey string

// keyFilter is a Bubble Tea filter that records esc and ctrl+c before huh sees them.
func keyFilter(m tea.Model, msg tea.Msg) tea.Msg {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc:
			interceptedKey = "esc"
		case tea.KeyCtrlC:
			interceptedKey = "ctrl+c"
		}
	}
	return msg
}

// RunForm runs a huh form with the key filter installed.
func RunForm(ctx context.Context, f *huh.Form) error {
	interceptedKey = ""
	return f.WithProgramOptions(tea.WithFilter(keyFilter)).RunWithContext(ctx)
}

// PrintBanner prints the gamedesc header.
func PrintBanner(dryRun bool) {
	fmt.Println()
	fmt.Println(StyleBanner.Render("gamedesc review"))
	fmt.Println()
	if dryRun {
		fmt.Println(StyleFlag.Render("  [DRY RUN]"))
		fmt.Println()
	}
}

// Colorize styles "Label: value" messages for terminal output.
func Colorize(msg string) string {
	if parts := strings.SplitN(msg, " → ", 2); len(parts) == 2 {
		return fmt.Sprintf("%s %s %s", StyleDim.Render(parts[0]), StyleDim.Render("→"), StyleCommand.Render(parts[1]))
	}
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return fmt.Sprintf("%s %s", StyleHeader.Render(msg[:idx+1]), StylePath.Render(msg[idx+2:]))
	}
	return msg
}
