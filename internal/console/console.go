// Package console renders the human-readable progress output of a setup
// run: step lines closed with a check mark, colored errors and hints, and
// an in-place progress indicator around long-running work.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	checkMark = "✓"
	crossMark = "✗"
	// clearEOL clears from the cursor to the end of the line.
	clearEOL = "\033[K"
)

// Console writes progress lines to w. Cursor control is only used when w
// is a terminal.
type Console struct {
	mu  sync.Mutex
	w   io.Writer
	tty bool

	ok   lipgloss.Style
	bad  lipgloss.Style
	info lipgloss.Style
}

// New returns a Console for w, detecting whether w is a terminal.
func New(w io.Writer) *Console {
	tty := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return newConsole(w, tty)
}

// NewTTY returns a Console that repaints in place regardless of what w is.
func NewTTY(w io.Writer) *Console {
	return newConsole(w, true)
}

func newConsole(w io.Writer, tty bool) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:    w,
		tty:  tty,
		ok:   r.NewStyle().Foreground(lipgloss.Color("10")),
		bad:  r.NewStyle().Foreground(lipgloss.Color("9")),
		info: r.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

func (c *Console) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	io.WriteString(c.w, s)
}

// Title prints a highlighted heading line.
func (c *Console) Title(msg string) {
	c.write(c.info.Render(msg) + "\n")
}

// Success prints a green line.
func (c *Console) Success(msg string) {
	c.write(c.ok.Render(msg) + "\n")
}

// Println prints a plain line.
func (c *Console) Println(a ...any) {
	c.write(fmt.Sprintln(a...))
}

// Errorf prints a line prefixed with a red "Error:".
func (c *Console) Errorf(format string, args ...any) {
	c.write(c.bad.Render("Error:") + " " + fmt.Sprintf(format, args...) + "\n")
}

// Step is a progress line that is still open.
type Step struct {
	c     *Console
	label string
	once  sync.Once
}

// Step prints label without a line break; close it with Done or Fail.
func (c *Console) Step(label string) *Step {
	c.write(label)
	return &Step{c: c, label: label}
}

// Done closes the line with a green check mark.
func (s *Step) Done() {
	s.finish(s.c.ok.Render(checkMark))
}

// Fail closes the line with a red cross.
func (s *Step) Fail() {
	s.finish(s.c.bad.Render(crossMark))
}

func (s *Step) finish(mark string) {
	s.once.Do(func() {
		if s.c.tty {
			s.c.write("\r" + s.label + " " + mark + clearEOL + "\n")
			return
		}
		s.c.write(" " + mark + "\n")
	})
}
