// Package actions reads and writes the GitHub Actions runtime: step inputs
// (INPUT_*), step outputs (GITHUB_OUTPUT) and the state handed from a main
// step to its post step (GITHUB_STATE / STATE_*).
package actions

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sethvargo/go-githubactions"
)

const statePrefix = "STATE_"

var (
	errInvalidBooleanInput = errors.New("input does not meet YAML 1.2 \"Core Schema\" specification")

	// ErrInvalidBooleanInput is returned by GetBooleanInput for non-boolean values.
	ErrInvalidBooleanInput = errInvalidBooleanInput
)

// Runtime gives access to the Actions runtime through injected process state.
type Runtime struct {
	action *githubactions.Action
}

// NewRuntime creates a Runtime bound to the process environment and stdout.
func NewRuntime() *Runtime {
	return NewRuntimeWith(os.Getenv, os.Stdout)
}

// NewRuntimeWith creates a Runtime reading variables through getenv.
// Workflow commands of local runs (no runner files) are written to stdout.
func NewRuntimeWith(getenv func(string) string, stdout io.Writer) *Runtime {
	return &Runtime{
		action: githubactions.New(
			githubactions.WithGetenv(getenv),
			githubactions.WithWriter(stdout),
		),
	}
}

// GetInput returns the trimmed value of an action input.
func (r *Runtime) GetInput(name string) string {
	return r.action.GetInput(name)
}

// GetBooleanInput parses a boolean action input. The second return value
// reports whether the input was set at all.
func (r *Runtime) GetBooleanInput(name string) (bool, bool, error) {
	switch r.GetInput(name) {
	case "":
		return false, false, nil
	case "true", "True", "TRUE":
		return true, true, nil
	case "false", "False", "FALSE":
		return false, true, nil
	default:
		return false, true, fmt.Errorf("%w: %s", errInvalidBooleanInput, name)
	}
}

// SetOutput records a step output.
func (r *Runtime) SetOutput(name, value string) {
	r.action.SetOutput(name, value)
}

// SaveState records a value for the post step of this action.
func (r *Runtime) SaveState(name, value string) {
	r.action.SaveState(name, value)
}

// GetState returns a value saved by the main step with SaveState.
func (r *Runtime) GetState(name string) string {
	return r.action.Getenv(statePrefix + name)
}
