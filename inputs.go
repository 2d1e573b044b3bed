package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sgaunet/create-release/internal/actions"
	"github.com/spf13/cobra"
)

const tagRefPrefix = "refs/tags/"

var (
	errNotATag = errors.New("is not a tag")

	// ErrNotATag is returned when the workflow ref does not name a tag.
	ErrNotATag = errNotATag
)

// inputResolver reads one value per input with the precedence
// flag > action input (INPUT_*) > configured default.
type inputResolver struct {
	cmd     *cobra.Command
	runtime *actions.Runtime
}

func newInputResolver(cmd *cobra.Command, runtime *actions.Runtime) *inputResolver {
	return &inputResolver{cmd: cmd, runtime: runtime}
}

func (r *inputResolver) stringInput(flagName, inputName, fallback string) (string, error) {
	if r.cmd.Flags().Changed(flagName) {
		value, err := r.cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf("failed to read --%s: %w", flagName, err)
		}
		return value, nil
	}
	if value := r.runtime.GetInput(inputName); value != "" {
		return value, nil
	}
	return fallback, nil
}

func (r *inputResolver) boolInput(flagName, inputName string, fallback bool) (bool, error) {
	if r.cmd.Flags().Changed(flagName) {
		value, err := r.cmd.Flags().GetBool(flagName)
		if err != nil {
			return false, fmt.Errorf("failed to read --%s: %w", flagName, err)
		}
		return value, nil
	}
	value, set, err := r.runtime.GetBooleanInput(inputName)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", inputName, err)
	}
	if set {
		return value, nil
	}
	return fallback, nil
}

// resolveTagName returns tag when set, else the tag named by ref, else the
// single tag at HEAD of the local repository.
func resolveTagName(tag, ref string, headTag func() (string, error)) (string, error) {
	if tag != "" {
		return tag, nil
	}
	if ref != "" {
		name, ok := strings.CutPrefix(ref, tagRefPrefix)
		if !ok || name == "" {
			return "", fmt.Errorf("%s %w", ref, errNotATag)
		}
		return name, nil
	}

	name, err := headTag()
	if err != nil {
		return "", fmt.Errorf("failed to find a tag at HEAD: %w", err)
	}
	return name, nil
}

// ambientRepository returns the OWNER/REPO slug the workflows fall back to.
// The origin remote is only inspected when neither the explicit inputs nor
// the environment name the repository.
func ambientRepository(owner, repo, envRepository string, originSlug func() (string, error)) (string, error) {
	if envRepository != "" || (owner != "" && repo != "") {
		return envRepository, nil
	}
	slug, err := originSlug()
	if err != nil {
		return "", fmt.Errorf("failed to read repository from origin remote: %w", err)
	}
	return slug, nil
}
