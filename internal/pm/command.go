package pm

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/shlex"
)

// CommandManager runs a user-supplied install command with the package
// names appended, e.g. "bun add -d".
type CommandManager struct {
	Argv []string
}

// FromCommand splits a shell-style command line into a CommandManager.
func FromCommand(line string) (*CommandManager, error) {
	argv, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("parse install command %q: %w", line, err)
	}
	if len(argv) == 0 {
		return nil, errors.New("install command is empty")
	}
	return &CommandManager{Argv: argv}, nil
}

func (c *CommandManager) Name() string { return filepath.Base(c.Argv[0]) }

func (c *CommandManager) Command(pkgs []string) []string {
	argv := make([]string, 0, len(c.Argv)+len(pkgs))
	argv = append(argv, c.Argv...)
	return append(argv, pkgs...)
}

func (c *CommandManager) InstallDev(ctx context.Context, dir string, pkgs []string, progress chan<- Progress) error {
	return run(ctx, dir, c.Command(pkgs), progress)
}

func (c *CommandManager) RunScript(script string) string { return c.Name() + " run " + script }
