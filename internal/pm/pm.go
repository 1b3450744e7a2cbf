// Package pm abstracts node package manager operations behind a common interface.
// Use ByName or Detect to obtain the manager for a project.
package pm

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Progress carries one raw output line of a running package manager.
// Lines are for logging only and are never parsed.
type Progress struct {
	Line string
}

// PackageManager abstracts npm/pnpm/yarn dev-dependency installs.
type PackageManager interface {
	// Name returns the executable name, e.g. "npm".
	Name() string
	// Command returns the argv that installs pkgs as dev dependencies.
	Command(pkgs []string) []string
	// InstallDev runs Command(pkgs) in dir and waits for it to exit.
	// Output lines are sent to progress when it is non-nil.
	InstallDev(ctx context.Context, dir string, pkgs []string, progress chan<- Progress) error
	// RunScript returns the shell command that runs a package.json script.
	RunScript(script string) string
}

// Auto selects the manager from the project's lockfile.
const Auto = "auto"

// ByName returns the manager called name. "" selects npm; Auto runs Detect on dir.
func ByName(name, dir string) (PackageManager, error) {
	switch name {
	case "", "npm":
		return &NpmManager{}, nil
	case "pnpm":
		return &PnpmManager{}, nil
	case "yarn":
		return &YarnManager{}, nil
	case Auto:
		return Detect(dir), nil
	}
	return nil, fmt.Errorf("unknown package manager %q (want npm, pnpm, yarn or auto)", name)
}

// Detect returns pnpm or yarn when dir holds their lockfile and the binary
// is on PATH, otherwise npm.
func Detect(dir string) PackageManager {
	candidates := []struct {
		lockfile string
		mgr      PackageManager
	}{
		{"pnpm-lock.yaml", &PnpmManager{}},
		{"yarn.lock", &YarnManager{}},
	}
	for _, c := range candidates {
		if _, err := os.Stat(filepath.Join(dir, c.lockfile)); err != nil {
			continue
		}
		if _, err := exec.LookPath(c.mgr.Name()); err == nil {
			return c.mgr
		}
	}
	return &NpmManager{}
}
