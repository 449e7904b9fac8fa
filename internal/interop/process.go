package interop

import (
	"github.com/djtokey/plugins/internal/interfaces"
)

const ProcessName = "Process"

// verbLauncher is implemented by launchers that support shell verbs
type verbLauncher interface {
	OpenWith(verb, path string) error
}

// Process is the object scripts see as Process
type Process struct {
	launcher interfaces.ProcessLauncher
}

func NewProcess(launcher interfaces.ProcessLauncher) *Process {
	return &Process{launcher: launcher}
}

// Start opens path through the shell. Documents open in their associated
// application; executables are started. It does not wait for the process.
func (p *Process) Start(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	return p.launcher.Open(path)
}

// StartVerb runs a shell verb such as "edit" or "print" on path. Launchers
// without verb support only accept "open".
func (p *Process) StartVerb(verb, path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if vl, ok := p.launcher.(verbLauncher); ok {
		return vl.OpenWith(verb, path)
	}

	if verb != "open" {
		return ErrUnsupportedVerb
	}

	return p.launcher.Open(path)
}
