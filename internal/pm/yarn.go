package pm

import "context"

// YarnManager implements PackageManager using yarn.
type YarnManager struct{}

func (y *YarnManager) Name() string { return "yarn" }

func (y *YarnManager) Command(pkgs []string) []string {
	return append([]string{"yarn", "add", "-D"}, pkgs...)
}

func (y *YarnManager) InstallDev(ctx context.Context, dir string, pkgs []string, progress chan<- Progress) error {
	return run(ctx, dir, y.Command(pkgs), progress)
}

// yarn runs scripts without the "run" verb.
func (y *YarnManager) RunScript(script string) string { return "yarn " + script }
