package launcher

import (
	"fmt"
	"os"
	"sync"
)

// EnvMarker is set in the environment of a process started by the launcher.
// Its value is the pid of the launching process.
const EnvMarker = "BITFILES_LAUNCHER"

// Context identifies how the running process was started
type Context interface {
	Describe() string
}

// Peering is implemented by contexts prepared by the launcher
type Peering interface {
	Context
	Launcher() string
}

type plainContext struct {
	pid int
}

func (c plainContext) Describe() string {
	return fmt.Sprintf("plain process %d", c.pid)
}

type peeringContext struct {
	pid      int
	launcher string
}

func (c peeringContext) Describe() string {
	return fmt.Sprintf("process %d started by launcher %s", c.pid, c.launcher)
}

func (c peeringContext) Launcher() string {
	return c.launcher
}

var current = sync.OnceValue(func() Context {
	return contextFromEnv(os.Getenv, os.Getpid())
})

// Current returns the launch context of this process. It is read once.
func Current() Context {
	return current()
}

func contextFromEnv(getenv func(string) string, pid int) Context {
	if v := getenv(EnvMarker); v != "" {
		return peeringContext{pid: pid, launcher: v}
	}
	return plainContext{pid: pid}
}
