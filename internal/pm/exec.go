package pm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// stderrTail is how many trailing stderr lines a CommandError keeps.
const stderrTail = 20

// CommandError reports a package manager run that failed to start or
// exited unsuccessfully.
type CommandError struct {
	Args   []string
	Err    error
	Stderr []string // last lines of stderr, oldest first
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s: %v", strings.Join(e.Args, " "), e.Err)
	if len(e.Stderr) > 0 {
		msg += "\n" + strings.Join(e.Stderr, "\n")
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExitCode returns the child's exit status, or -1 if it never ran to completion.
func (e *CommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// run executes argv in dir with no stdin, streaming both output pipes as
// progress lines and keeping the stderr tail for error reports.
func run(ctx context.Context, dir string, argv []string, progress chan<- Progress) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return &CommandError{Args: argv, Err: err}
	}

	var tail []string
	done := make(chan struct{}, 2)
	pipe := func(r io.Reader, keep bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			if keep {
				tail = append(tail, line)
				if len(tail) > stderrTail {
					tail = tail[1:]
				}
			}
			if progress != nil {
				progress <- Progress{Line: line}
			}
		}
		// keep the child from blocking on a full pipe after an overlong line
		_, _ = io.Copy(io.Discard, r)
		done <- struct{}{}
	}
	go pipe(stdout, false)
	go pipe(stderr, true)
	<-done
	<-done

	if err := cmd.Wait(); err != nil {
		return &CommandError{Args: argv, Err: err, Stderr: tail}
	}
	return nil
}
