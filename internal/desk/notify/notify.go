package notify

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Severity classifies a notice.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier shows a modal notice. Notify returns once the notice is dismissed.
type Notifier interface {
	Notify(ctx context.Context, severity Severity, title, message string) error
}

// Func adapts a function to a Notifier.
type Func func(ctx context.Context, severity Severity, title, message string) error

func (f Func) Notify(ctx context.Context, severity Severity, title, message string) error {
	return f(ctx, severity, title, message)
}

var severityColor = map[Severity]lipgloss.Color{
	SeverityInfo:    lipgloss.Color("75"),  // blue
	SeveritySuccess: lipgloss.Color("114"), // green
	SeverityWarning: lipgloss.Color("220"), // amber
	SeverityError:   lipgloss.Color("196"), // red
}

var severityIcon = map[Severity]string{
	SeverityInfo:    "i",
	SeveritySuccess: "✓",
	SeverityWarning: "!",
	SeverityError:   "✗",
}

// Terminal renders notices as bordered boxes and waits for Enter on In.
// In is shared with the console so that a pending line is not lost.
type Terminal struct {
	Out io.Writer
	In  *bufio.Reader

	// NoWait dismisses notices immediately after rendering.
	NoWait bool

	mu sync.Mutex
}

// Render returns the boxed notice without writing it.
func Render(severity Severity, title, message string) string {
	color, ok := severityColor[severity]
	if !ok {
		color = lipgloss.Color("245")
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Render(severityIcon[severity] + " " + title)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Render(header + "\n" + message)
}

func (t *Terminal) Notify(ctx context.Context, severity Severity, title, message string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(t.Out, Render(severity, title, message)); err != nil {
		return fmt.Errorf("write notice: %w", err)
	}

	if t.NoWait || t.In == nil {
		return nil
	}

	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("press Enter to continue")
	fmt.Fprintln(t.Out, hint)

	if _, err := t.In.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("await dismissal: %w", err)
	}
	return nil
}

// String implements fmt.Stringer.
func (s Severity) String() string { return strings.ToUpper(string(s)) }
