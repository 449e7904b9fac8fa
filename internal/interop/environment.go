package interop

import (
	"os"

	"github.com/djtokey/plugins/internal/interfaces"
)

const EnvironmentName = "Environment"

type osEnvironment struct{}

func (osEnvironment) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// NewOSEnvironment reads the current process environment.
func NewOSEnvironment() interfaces.EnvironmentReader {
	return osEnvironment{}
}

// Environment is the object scripts see as Environment
type Environment struct {
	env interfaces.EnvironmentReader
}

func NewEnvironment(env interfaces.EnvironmentReader) *Environment {
	return &Environment{env: env}
}

// GetVariable returns the value of name, or "" when it is not set.
func (e *Environment) GetVariable(name string) string {
	v, _ := e.env.LookupEnv(name)
	return v
}

// LookupVariable is GetVariable that also reports whether name is set.
func (e *Environment) LookupVariable(name string) (string, bool) {
	return e.env.LookupEnv(name)
}
