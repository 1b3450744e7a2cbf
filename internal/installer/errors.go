package installer

import (
	"errors"
	"fmt"
)

// Kind classifies a failed run.
type Kind string

const (
	// KindStartup: the manifest is missing or unparsable. Nothing was written.
	KindStartup Kind = "startup"
	// KindStepIO: copying the config or writing the manifest failed. Steps
	// that already ran stay applied.
	KindStepIO Kind = "io"
	// KindInstall: the dependency install failed under FailOnInstallFailure.
	KindInstall Kind = "install"
)

// Error is a classified run failure.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of a classified error, or "" for anything else.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ExitCode maps a run result to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
