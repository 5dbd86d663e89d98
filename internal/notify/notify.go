// Package notify prints toast-style feedback for the user: operation
// results, errors, and informational messages, styled per the active theme.
package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"kalemci/internal/theme"
)

// Notifier writes leveled, themed feedback messages.
type Notifier struct {
	out     io.Writer
	theme   theme.Theme
	enabled bool
}

// New creates a Notifier writing to out with the given theme.
func New(out io.Writer, th theme.Theme) *Notifier {
	return &Notifier{out: out, theme: th, enabled: true}
}

// SetEnabled turns output on or off. Disabled notifiers swallow all messages.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// Success reports a completed operation.
func (n *Notifier) Success(format string, args ...any) {
	n.emit(n.theme.Success, "✓", format, args...)
}

// Error reports a failed operation. Write failures surface here with the
// error message returned by the repository.
func (n *Notifier) Error(format string, args ...any) {
	n.emit(n.theme.Error, "✗", format, args...)
}

// Info reports neutral information.
func (n *Notifier) Info(format string, args ...any) {
	n.emit(n.theme.Info, "•", format, args...)
}

func (n *Notifier) emit(style lipgloss.Style, mark, format string, args ...any) {
	if !n.enabled {
		return
	}
	fmt.Fprintln(n.out, style.Render(mark+" "+fmt.Sprintf(format, args...)))
}
