package console

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Dots cycles zero to three dots four times a second.
var Dots = spinner.Spinner{
	Frames: spinner.Ellipsis.Frames,
	FPS:    250 * time.Millisecond,
}

// Spin is a running progress indicator.
type Spin struct {
	c       *Console
	label   string
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// Spin prints label and, on a terminal, repaints label+frame in place on
// every tick of frames.FPS until Stop. Off a terminal only the final line
// is printed.
func (c *Console) Spin(label string, frames spinner.Spinner) *Spin {
	s := &Spin{
		c:       c,
		label:   label,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	c.write(label)

	if !c.tty || len(frames.Frames) == 0 || frames.FPS <= 0 {
		close(s.stopped)
		return s
	}
	go s.loop(frames)
	return s
}

func (s *Spin) loop(frames spinner.Spinner) {
	defer close(s.stopped)

	ticker := time.NewTicker(frames.FPS)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			i = (i + 1) % len(frames.Frames)
			s.c.write("\r" + s.label + frames.Frames[i] + clearEOL)
		}
	}
}

// Stop cancels the repaint loop, waits for it to exit and closes the line
// with a check mark, or a cross when err is non-nil. Only the first call
// has an effect.
func (s *Spin) Stop(err error) {
	s.once.Do(func() {
		close(s.done)
		<-s.stopped

		mark := s.c.ok.Render(checkMark)
		if err != nil {
			mark = s.c.bad.Render(crossMark)
		}
		if s.c.tty {
			s.c.write("\r" + s.label + "... " + mark + clearEOL + "\n")
			return
		}
		s.c.write("... " + mark + "\n")
	})
}
