package release

import (
	"fmt"
	"strings"
)

// notesMode selects how release notes are composed.
type notesMode int

const (
	// notesNone leaves the body as resolved from the inputs.
	notesNone notesMode = iota
	// notesFromStartTag calls the generate-notes endpoint with a previous tag.
	notesFromStartTag
	// notesServerSide lets the create call generate notes.
	notesServerSide
)

// resolveRepository picks owner and repo: each explicit value wins over
// its half of the ambient OWNER/REPO slug. A slug that is not exactly
// OWNER/REPO supplies nothing.
func resolveRepository(owner, repo, ambient string) (string, string, error) {
	var ambientOwner, ambientRepo string
	if parts := strings.Split(ambient, "/"); len(parts) == 2 {
		ambientOwner, ambientRepo = parts[0], parts[1]
	}
	if owner == "" {
		owner = ambientOwner
	}
	if repo == "" {
		repo = ambientRepo
	}
	if owner == "" || repo == "" {
		return "", "", errRepositoryRequired
	}
	return owner, repo, nil
}

// resolveBody returns the release body: the file at bodyPath when given,
// else the inline text when non-empty, else nil.
func resolveBody(body, bodyPath string, readFile func(string) ([]byte, error)) (*string, error) {
	if bodyPath != "" {
		data, err := readFile(bodyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}
		s := string(data)
		return &s, nil
	}
	if body != "" {
		return &body, nil
	}
	return nil, nil
}

// resolveNotesMode gives the start tag precedence over plain generation.
func resolveNotesMode(generate bool, startTag string) notesMode {
	switch {
	case startTag != "":
		return notesFromStartTag
	case generate:
		return notesServerSide
	default:
		return notesNone
	}
}

// optionalString returns nil for an empty string.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
