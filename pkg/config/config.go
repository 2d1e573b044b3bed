// Package config handles the ambient configuration of create-release:
// the GitHub Actions environment and an optional YAML defaults file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variable names read by [LoadEnvironment].
const (
	EnvToken      = "GITHUB_TOKEN"
	EnvAPIURL     = "GITHUB_API_URL"
	EnvRepository = "GITHUB_REPOSITORY"
	EnvRef        = "GITHUB_REF"

	defaultAPIURL = "https://api.github.com"
)

var (
	errConfigNotFound = errors.New("config file not found")

	// ErrConfigNotFound is returned when an explicitly given config file does not exist.
	ErrConfigNotFound = errConfigNotFound
)

// Environment is the ambient context supplied by the runner.
// It is passed explicitly to the workflows instead of being read from globals.
type Environment struct {
	Token      string
	APIURL     string
	Repository string
	Ref        string
}

// LoadEnvironment reads the ambient context through getenv.
func LoadEnvironment(getenv func(string) string) Environment {
	env := Environment{
		Token:      getenv(EnvToken),
		APIURL:     getenv(EnvAPIURL),
		Repository: getenv(EnvRepository),
		Ref:        getenv(EnvRef),
	}
	if env.APIURL == "" {
		env.APIURL = defaultAPIURL
	}
	return env
}

// Config holds the defaults read from the YAML file.
type Config struct {
	Create  CreateDefaults  `yaml:"create"`
	Publish PublishDefaults `yaml:"publish"`
}

// CreateDefaults are the defaults of the create command.
type CreateDefaults struct {
	Draft                bool   `yaml:"draft"`
	Prerelease           bool   `yaml:"prerelease"`
	Overwrite            bool   `yaml:"overwrite"`
	GenerateReleaseNotes bool   `yaml:"generate_release_notes"`
	NotesStartTag        string `yaml:"notes_start_tag"`
	Commitish            string `yaml:"commitish"`
}

// PublishDefaults are the defaults of the publish command.
type PublishDefaults struct {
	DiscussionCategoryName string `yaml:"discussion_category_name"`
	MakeLatest             string `yaml:"make_latest"`
}

// Load reads the YAML defaults file at path.
// An empty path returns an empty configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	// #nosec G304 - The path is chosen by the user on the command line.
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}
