package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noColor keeps lipgloss from emitting escape codes into test buffers.
func noColor(t *testing.T) {
	t.Helper()
	t.Setenv("CLICOLOR_FORCE", "0")
}

// TestNewBufferIsNotTTY verifies that a plain writer never gets cursor control.
func TestNewBufferIsNotTTY(t *testing.T) {
	c := New(&bytes.Buffer{})
	assert.False(t, c.tty)
}

// TestStepDonePlain verifies a step line off a terminal.
func TestStepDonePlain(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	c := New(&buf)

	s := c.Step("Loading 'package.json'...")
	s.Done()
	s.Done()

	assert.Equal(t, "Loading 'package.json'... ✓\n", buf.String())
}

// TestStepFailPlain verifies the failure mark.
func TestStepFailPlain(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	New(&buf).Step("Copying config...").Fail()

	assert.Equal(t, "Copying config... ✗\n", buf.String())
}

// TestStepDoneTTY verifies that a terminal step is repainted from column 0.
func TestStepDoneTTY(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	NewTTY(&buf).Step("Loading...").Done()

	assert.Equal(t, "Loading...\rLoading... ✓"+clearEOL+"\n", buf.String())
}

// TestErrorf verifies the error prefix.
func TestErrorf(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	New(&buf).Errorf("could not load %s", "package.json")

	assert.Equal(t, "Error: could not load package.json\n", buf.String())
}

// TestTitleSuccessPrintln verifies the plain line helpers.
func TestTitleSuccessPrintln(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	c := New(&buf)

	c.Title("Configuring ESLint...")
	c.Success("Installation complete.")
	c.Println("hint")

	assert.Equal(t, "Configuring ESLint...\nInstallation complete.\nhint\n", buf.String())
}

// ── Spin ─────────────────────────────────────────────────────────────────────

// TestSpinPlain verifies that off a terminal only the label and final line
// are printed.
func TestSpinPlain(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	s := New(&buf).Spin("Installing dev dependencies", spinner.Spinner{Frames: Dots.Frames, FPS: time.Millisecond})
	time.Sleep(10 * time.Millisecond)
	s.Stop(nil)

	assert.Equal(t, "Installing dev dependencies... ✓\n", buf.String())
}

// TestSpinTTYRepaints verifies that frames are painted in place and the
// final line follows them.
func TestSpinTTYRepaints(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	s := NewTTY(&buf).Spin("Installing", spinner.Spinner{Frames: Dots.Frames, FPS: time.Millisecond})
	time.Sleep(30 * time.Millisecond)
	s.Stop(nil)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Installing"))
	assert.Contains(t, out, "\rInstalling."+clearEOL)
	assert.True(t, strings.HasSuffix(out, "\rInstalling... ✓"+clearEOL+"\n"), "got %q", out)
	assert.NotContains(t, out, "\n\r", "no repaint after the final line")
}

// TestSpinFramesCycle verifies the dot count wraps from three back to zero.
func TestSpinFramesCycle(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	s := NewTTY(&buf).Spin("x", spinner.Spinner{Frames: Dots.Frames, FPS: time.Millisecond})
	time.Sleep(40 * time.Millisecond)
	s.Stop(nil)

	frames := strings.Split(buf.String(), "\r")
	require.Greater(t, len(frames), 5, "expected several repaints")
	assert.Equal(t, "x", frames[0])
	assert.Equal(t, "x."+clearEOL, frames[1])
	assert.Equal(t, "x.."+clearEOL, frames[2])
	assert.Equal(t, "x..."+clearEOL, frames[3])
	assert.Equal(t, "x"+clearEOL, frames[4])
}

// TestSpinStopWaitsForLoop verifies that nothing is written after Stop returns.
func TestSpinStopWaitsForLoop(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	c := NewTTY(&buf)
	s := c.Spin("x", spinner.Spinner{Frames: Dots.Frames, FPS: time.Millisecond})
	time.Sleep(5 * time.Millisecond)
	s.Stop(nil)

	c.mu.Lock()
	n := buf.Len()
	c.mu.Unlock()
	time.Sleep(10 * time.Millisecond)
	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, n, buf.Len())
}

// TestSpinStopError verifies the failure mark and that Stop is idempotent.
func TestSpinStopError(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	s := New(&buf).Spin("Installing", Dots)
	s.Stop(errors.New("exit status 1"))
	s.Stop(nil)

	assert.Equal(t, "Installing... ✗\n", buf.String())
}

// TestDotsFrames verifies the default indicator.
func TestDotsFrames(t *testing.T) {
	assert.Equal(t, []string{"", ".", "..", "..."}, Dots.Frames)
	assert.Equal(t, 250*time.Millisecond, Dots.FPS)
}
