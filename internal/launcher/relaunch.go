package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Relauncher starts the application again through the launcher and
// returns the exit code of the new process
type Relauncher interface {
	Relaunch(ctx context.Context) (int, error)
}

// ExecRelauncher re-executes a binary with the launcher marker set
type ExecRelauncher struct {
	Path   string
	Args   []string
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRelauncher prepares a re-exec of the current binary with the same
// arguments, environment and standard streams
func NewExecRelauncher() (*ExecRelauncher, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable: %w", err)
	}
	return &ExecRelauncher{
		Path:   exe,
		Args:   os.Args[1:],
		Env:    os.Environ(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}, nil
}

// Relaunch runs the binary and waits for it to exit
func (r *ExecRelauncher) Relaunch(ctx context.Context) (int, error) {
	cmd := exec.CommandContext(ctx, r.Path, r.Args...)
	cmd.Env = append(withoutMarker(r.Env), EnvMarker+"="+strconv.Itoa(os.Getpid()))
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 1, fmt.Errorf("relaunch %s: %w", r.Path, err)
	}
	return 0, nil
}

func withoutMarker(env []string) []string {
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if strings.HasPrefix(kv, EnvMarker+"=") {
			continue
		}
		out = append(out, kv)
	}
	return out
}
