// Package installer runs the ESLint setup: it loads the project manifest,
// copies the config template, registers the lint script and installs the
// dev dependencies through a pm.PackageManager.
package installer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/kb-labs/eslint-setup/internal/config"
	"github.com/kb-labs/eslint-setup/internal/console"
	"github.com/kb-labs/eslint-setup/internal/lintconfig"
	"github.com/kb-labs/eslint-setup/internal/logger"
	"github.com/kb-labs/eslint-setup/internal/manifest"
	"github.com/kb-labs/eslint-setup/internal/pm"
)

// InstallFailurePolicy decides what a failed dependency install does to the run.
type InstallFailurePolicy int

const (
	// WarnOnInstallFailure reports the failure and still completes the run.
	WarnOnInstallFailure InstallFailurePolicy = iota
	// FailOnInstallFailure returns a KindInstall error after the summary.
	FailOnInstallFailure
)

// PolicyFor returns the policy selected by cfg.
func PolicyFor(cfg *config.Config) InstallFailurePolicy {
	if cfg.FailOnInstallError {
		return FailOnInstallFailure
	}
	return WarnOnInstallFailure
}

// Result describes a completed run.
type Result struct {
	ManifestPath string
	ConfigPath   string
	Packages     []string
	// InstallErr is the dependency install failure, if any. It is only
	// reported here under WarnOnInstallFailure.
	InstallErr error
	Duration   time.Duration
}

// Installer orchestrates one setup run.
type Installer struct {
	Config   *config.Config
	PM       pm.PackageManager
	Template *lintconfig.Template
	Log      *logger.Logger
	Console  *console.Console
	Policy   InstallFailurePolicy
	// Spinner sets the install progress frames; zero value means console.Dots.
	Spinner spinner.Spinner
	OnStep  func(step, total int, label string) // called at each named stage
}

const totalSteps = 4

// Run executes load → copy → update → install in order. Steps 1–3 are
// synchronous; a failure in any of them aborts the run without undoing
// earlier steps.
func (ins *Installer) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	cfg := ins.Config
	ins.Console.Title("Configuring ESLint...")

	ins.step(1, "Load manifest")
	m, err := ins.loadManifest()
	if err != nil {
		return nil, err
	}

	ins.step(2, "Copy config template")
	configPath, err := ins.copyConfig()
	if err != nil {
		return nil, err
	}

	ins.step(3, "Register lint script")
	if err := ins.updateManifest(m); err != nil {
		return nil, err
	}

	ins.step(4, fmt.Sprintf("Install %d dev dependencies via %s", len(cfg.Dependencies), ins.PM.Name()))
	installErr := ins.installDependencies(ctx)
	fatal := installErr != nil && ins.Policy == FailOnInstallFailure
	ins.printSummary(!fatal)

	res := &Result{
		ManifestPath: m.Path,
		ConfigPath:   configPath,
		Packages:     append([]string(nil), cfg.Dependencies...),
		InstallErr:   installErr,
		Duration:     time.Since(start),
	}
	if fatal {
		return res, &Error{Kind: KindInstall, Op: "install dependencies", Err: installErr}
	}
	return res, nil
}

func (ins *Installer) loadManifest() (*manifest.Manifest, error) {
	cfg := ins.Config
	s := ins.Console.Step(fmt.Sprintf("Loading '%s'...", cfg.ManifestFile))

	m, err := manifest.Load(cfg.Dir, cfg.ManifestFile)
	if err != nil {
		s.Fail()
		return nil, &Error{Kind: KindStartup, Op: "load manifest", Path: manifestPath(cfg), Err: err}
	}
	ins.Log.Printf("loaded %s (indent %q)", m.Path, m.Indent)
	s.Done()
	return m, nil
}

func (ins *Installer) copyConfig() (string, error) {
	cfg := ins.Config
	s := ins.Console.Step(fmt.Sprintf("Copying config to '%s'...", cfg.ConfigFile))

	dst, err := ins.Template.CopyTo(cfg.Dir, cfg.ConfigFile)
	if err != nil {
		s.Fail()
		return "", &Error{Kind: KindStepIO, Op: "copy config", Err: err}
	}
	ins.Log.Printf("copied %s to %s", ins.Template.Path, dst)
	s.Done()
	return dst, nil
}

func (ins *Installer) updateManifest(m *manifest.Manifest) error {
	cfg := ins.Config
	s := ins.Console.Step(fmt.Sprintf("Adding '%s' script to '%s'...", cfg.ScriptName, cfg.ManifestFile))

	if prev, ok := m.Script(cfg.ScriptName); ok && prev != cfg.LintCommand {
		ins.Log.Printf("overwriting script %q: %q", cfg.ScriptName, prev)
	}
	if err := m.SetScript(cfg.ScriptName, cfg.LintCommand); err != nil {
		s.Fail()
		return &Error{Kind: KindStepIO, Op: "update manifest", Path: m.Path, Err: err}
	}
	if err := m.Save(); err != nil {
		s.Fail()
		return &Error{Kind: KindStepIO, Op: "update manifest", Path: m.Path, Err: err}
	}
	s.Done()
	return nil
}

// installDependencies runs the package manager while the progress indicator
// repaints. The returned error is never fatal by itself; Run applies the policy.
func (ins *Installer) installDependencies(ctx context.Context) error {
	pkgs := ins.Config.Dependencies
	ins.Log.Printf("running %s", strings.Join(ins.PM.Command(pkgs), " "))

	frames := ins.Spinner
	if len(frames.Frames) == 0 {
		frames = console.Dots
	}
	sp := ins.Console.Spin("Installing dev dependencies", frames)
	err := ins.runInstall(ctx, pkgs)
	sp.Stop(err)

	if err != nil {
		ins.Log.Printf("install failed: %v", err)
		ins.Console.Errorf("installing dependencies: %v", err)
	}
	return err
}

// runInstall drains progress lines to the log. It waits for the drain
// goroutine so no output is lost when the channel is buffered.
func (ins *Installer) runInstall(ctx context.Context, pkgs []string) error {
	ch := make(chan pm.Progress, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range ch {
			ins.Log.Printf("  %s", p.Line)
		}
	}()
	err := ins.PM.InstallDev(ctx, ins.Config.Dir, pkgs, ch)
	close(ch)
	<-done
	return err
}

// printSummary prints the usage hints, preceded by the completion line
// unless the run is about to fail.
func (ins *Installer) printSummary(complete bool) {
	cfg := ins.Config
	ins.Console.Println(" ")
	if complete {
		ins.Console.Success("Installation complete.")
	}
	ins.Console.Println(fmt.Sprintf("To lint your project run '%s'", ins.PM.RunScript(cfg.ScriptName)))
	ins.Console.Println(fmt.Sprintf("To attempt to auto fix any issues run 'npx %s --fix'", cfg.LintCommand))
}

func (ins *Installer) step(n int, label string) {
	ins.Log.Printf("[%d/%d] %s", n, totalSteps, label)
	if ins.OnStep != nil {
		ins.OnStep(n, totalSteps, label)
	}
}

func manifestPath(cfg *config.Config) string {
	name := cfg.ManifestFile
	if name == "" {
		name = manifest.DefaultFileName
	}
	return filepath.Join(cfg.Dir, name)
}
