package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var logger *log.Logger

// NewLogger builds the application logger. Debug output is enabled by verbose.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{ReportTimestamp: false})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// SetLogger injects the application logger into the UI package.
func SetLogger(l *log.Logger) {
	logger = l
}

// ConfigureLoggerStyles applies the lipgloss level badges to the injected logger.
func ConfigureLoggerStyles() {
	if logger == nil {
		return
	}
	styles := log.DefaultStyles()

	badge := func(label, color string) lipgloss.Style {
		return lipgloss.NewStyle().SetString(label).Bold(true).Foreground(lipgloss.Color(color))
	}
	styles.Levels[log.DebugLevel] = badge("DEBUG", "63")
	styles.Levels[log.InfoLevel] = badge("INFO ", "86")
	styles.Levels[log.WarnLevel] = badge("WARN ", "192")
	styles.Levels[log.ErrorLevel] = badge("ERROR", "204")
	styles.Keys["path"] = StylePath
	styles.Values["path"] = StylePath

	logger.SetStyles(styles)
}
