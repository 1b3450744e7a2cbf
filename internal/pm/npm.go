package pm

import "context"

// NpmManager implements PackageManager using npm.
type NpmManager struct{}

func (n *NpmManager) Name() string { return "npm" }

func (n *NpmManager) Command(pkgs []string) []string {
	return append([]string{"npm", "install", "-D"}, pkgs...)
}

func (n *NpmManager) InstallDev(ctx context.Context, dir string, pkgs []string, progress chan<- Progress) error {
	return run(ctx, dir, n.Command(pkgs), progress)
}

func (n *NpmManager) RunScript(script string) string { return "npm run " + script }
