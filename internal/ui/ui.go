// Package ui holds the interactive prompts of create-release.
package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// ExistingRelease describes the release an overwrite would delete.
type ExistingRelease struct {
	ID        int64
	TagName   string
	DeleteTag bool
}

// askFunc matches survey.AskOne so tests can answer prompts.
type askFunc func(p survey.Prompt, response any, opts ...survey.AskOpt) error

// OverwriteConfirmer asks the user before an existing release is deleted.
type OverwriteConfirmer struct {
	ask askFunc
}

// NewOverwriteConfirmer creates a confirmer backed by the terminal.
func NewOverwriteConfirmer() *OverwriteConfirmer {
	return &OverwriteConfirmer{ask: survey.AskOne}
}

// Confirm returns true when the user accepts deleting rel.
func (c *OverwriteConfirmer) Confirm(rel ExistingRelease) (bool, error) {
	message := fmt.Sprintf("Release %s (id %d) already exists. Delete it", rel.TagName, rel.ID)
	if rel.DeleteTag {
		message += " and its tag"
	}
	message += "?"

	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}

	if err := c.ask(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("failed to get overwrite confirmation: %w", err)
	}
	return confirmed, nil
}
