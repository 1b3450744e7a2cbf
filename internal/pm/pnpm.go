package pm

import "context"

// PnpmManager implements PackageManager using pnpm.
type PnpmManager struct{}

func (p *PnpmManager) Name() string { return "pnpm" }

func (p *PnpmManager) Command(pkgs []string) []string {
	return append([]string{"pnpm", "add", "-D"}, pkgs...)
}

func (p *PnpmManager) InstallDev(ctx context.Context, dir string, pkgs []string, progress chan<- Progress) error {
	return run(ctx, dir, p.Command(pkgs), progress)
}

func (p *PnpmManager) RunScript(script string) string { return "pnpm run " + script }
