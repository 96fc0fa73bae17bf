package launcher

import (
	"context"
	"fmt"

	"github.com/ytget/bitfiles/internal/logging"
)

// Result is the outcome of a startup check
type Result struct {
	// Relaunched is true when the application ran in a child process and
	// the caller should exit with ExitCode
	Relaunched bool
	ExitCode   int
}

// Checker performs the startup identity check
type Checker struct {
	current    func() Context
	relauncher Relauncher
	logger     *logging.Logger
}

// NewChecker creates a checker for the current process
func NewChecker(relauncher Relauncher, logger *logging.Logger) *Checker {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Checker{
		current:    Current,
		relauncher: relauncher,
		logger:     logger.Component("launcher"),
	}
}

// Check does nothing when the process was started by the launcher.
// Otherwise it relaunches the application once and reports the exit code.
func (c *Checker) Check(ctx context.Context) (Result, error) {
	active := c.current()
	c.logger.Debug().
		Str("active", describe(active)).
		Str("expected", "launcher peering context").
		Msg("launch context")

	if _, ok := active.(Peering); ok {
		return Result{}, nil
	}
	if c.relauncher == nil {
		return Result{}, fmt.Errorf("not started by the launcher and no relauncher configured")
	}

	c.logger.Info().Msg("relaunching through the launcher")
	code, err := c.relauncher.Relaunch(ctx)
	return Result{Relaunched: true, ExitCode: code}, err
}

func describe(c Context) string {
	if c == nil {
		return "none"
	}
	return c.Describe()
}
