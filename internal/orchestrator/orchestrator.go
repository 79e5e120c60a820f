// Package orchestrator invokes the external compose binary that actually
// starts and stops the cluster containers. It resolves the binary on PATH,
// runs it as a blocking subprocess with captured output, and reports
// non-zero exits as typed errors. The package never inspects or manages the
// containers itself.
package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"mcluster/pkg/logging"
)

const orchestratorSubsystem = "Orchestrator"

// composeCandidates are the supported compose binaries, probed in order.
var composeCandidates = []string{"podman-compose", "docker-compose"}

// Test seams, replaced in tests to avoid spawning real compose binaries.
var (
	execCommandContext = exec.CommandContext
	lookPath           = exec.LookPath
)

// BinaryNotFoundError indicates that no supported compose binary is on PATH.
type BinaryNotFoundError struct {
	Candidates []string
}

// Error implements the error interface
func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("none of %s found in PATH", strings.Join(e.Candidates, ", "))
}

// RunError indicates that the compose binary exited with a non-zero status.
type RunError struct {
	Binary   string
	ExitCode int
	Stderr   string
}

// Error implements the error interface
func (e *RunError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Binary, e.ExitCode)
}

// Runner executes compose subcommands against a generated cluster
// definition, from the project root so relative volume paths resolve.
type Runner struct {
	workDir string
}

// NewRunner creates a runner that executes from workDir.
func NewRunner(workDir string) *Runner {
	return &Runner{workDir: workDir}
}

// Up applies the cluster definition and starts the containers detached.
func (r *Runner) Up(ctx context.Context, composeFile string) error {
	return r.run(ctx, composeFile, "up", "-d")
}

// Down stops and removes the cluster's containers and network.
func (r *Runner) Down(ctx context.Context, composeFile string) error {
	return r.run(ctx, composeFile, "down")
}

func (r *Runner) run(ctx context.Context, composeFile string, args ...string) error {
	binary, err := FindComposeBinary()
	if err != nil {
		return err
	}

	cmdArgs := append([]string{"-f", composeFile}, args...)
	logging.Info(orchestratorSubsystem, "Running %s %s", binary, strings.Join(cmdArgs, " "))

	cmd := execCommandContext(ctx, binary, cmdArgs...)
	cmd.Dir = r.workDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	// Output is captured and relayed after completion, not streamed.
	if out := strings.TrimSpace(stdout.String()); out != "" {
		logging.Info(orchestratorSubsystem, "%s", out)
	}
	if errOut := strings.TrimSpace(stderr.String()); errOut != "" {
		logging.Warn(orchestratorSubsystem, "%s", errOut)
	}

	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s interrupted: %w", binary, ctxErr)
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return &RunError{Binary: binary, ExitCode: exitCode, Stderr: stderr.String()}
	}
	return nil
}

// FindComposeBinary returns the first supported compose binary found on
// PATH, preferring podman-compose over docker-compose.
func FindComposeBinary() (string, error) {
	for _, candidate := range composeCandidates {
		if _, err := lookPath(candidate); err == nil {
			logging.Debug(orchestratorSubsystem, "Found compose binary: %s", candidate)
			return candidate, nil
		}
	}
	return "", &BinaryNotFoundError{Candidates: composeCandidates}
}
