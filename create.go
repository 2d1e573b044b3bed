package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/sgaunet/create-release/internal/actions"
	"github.com/sgaunet/create-release/internal/security"
	"github.com/sgaunet/create-release/internal/ui"
	"github.com/sgaunet/create-release/pkg/config"
	"github.com/sgaunet/create-release/pkg/git"
	"github.com/sgaunet/create-release/pkg/github"
	"github.com/sgaunet/create-release/pkg/release"
	"github.com/spf13/cobra"
)

// Output and state names shared with the action metadata.
const (
	outputID        = "id"
	outputHTMLURL   = "html_url"
	outputUploadURL = "upload_url"
	stateID         = "id"
)

// createRequest is the resolved input of the create command.
type createRequest struct {
	opts        release.CreateOptions
	draft       bool
	interactive bool
}

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a draft release for a tag",
		Long: `Create a release as a draft. Unless --draft is set, the release id is
saved to the action state so that "publish" can publish it later.

Each flag falls back to the matching action input (INPUT_<NAME>) and then
to the "create" section of the --config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCreate(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String("tag-name", "", "Tag of the release (default: tag of GITHUB_REF or of HEAD)")
	flags.String("release-name", "", "Display name of the release")
	flags.String("body", "", "Release body")
	flags.String("body-path", "", "File holding the release body, takes precedence over --body")
	flags.String("commitish", "", "Commit, branch or SHA the tag is created from")
	flags.String("owner", "", "Repository owner (default: from GITHUB_REPOSITORY)")
	flags.String("repo", "", "Repository name (default: from GITHUB_REPOSITORY)")
	flags.Bool("draft", false, "Keep the release as a draft")
	flags.Bool("prerelease", false, "Mark the release as a prerelease")
	flags.Bool("generate-release-notes", false, "Let GitHub generate the release notes")
	flags.String("notes-start-tag", "", "Generate release notes since this tag")
	flags.Bool("overwrite", false, "Delete an existing release with the same tag first")
	flags.Bool("interactive", false, "Ask before deleting an existing release")
	flags.String("github-token", "", "GitHub token (default: INPUT_GITHUB_TOKEN or GITHUB_TOKEN)")

	return cmd
}

func runCreate(cmd *cobra.Command) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log.Debug("Configuration loaded successfully")

	env := config.LoadEnvironment(os.Getenv)
	runtime := actions.NewRuntime()
	in := newInputResolver(cmd, runtime)
	localRepo := sync.OnceValues(openLocalRepository)

	req, err := readCreateRequest(in, cfg.Create, env.Ref, func() (string, error) {
		repo, err := localRepo()
		if err != nil {
			return "", err
		}
		return repo.HeadTag()
	})
	if err != nil {
		return err
	}

	releaser, err := newReleaser(in, env, req.opts.Owner, req.opts.Repo, localRepo)
	if err != nil {
		return err
	}
	if req.interactive {
		releaser.SetConfirm(confirmOverwrite(ui.NewOverwriteConfirmer()))
	}

	log.Infof("Creating release for tag %s", req.opts.TagName)
	res, err := releaser.Create(cmd.Context(), req.opts)
	if err != nil {
		return fmt.Errorf("failed to create release: %w", err)
	}

	writeCreateResult(runtime, res, req.draft)
	return nil
}

// writeCreateResult sets the step outputs and, unless the user asked for a
// draft, saves the release id for the publish step.
func writeCreateResult(runtime *actions.Runtime, res *release.CreateResult, draft bool) {
	runtime.SetOutput(outputID, res.ID)
	runtime.SetOutput(outputHTMLURL, res.HTMLURL)
	runtime.SetOutput(outputUploadURL, res.UploadURL)

	if draft {
		log.Debug("Draft requested, release " + res.ID + " stays unpublished")
		return
	}
	runtime.SaveState(stateID, res.ID)
	log.Debug("Release id saved for publishing: " + res.ID)
}

// readCreateRequest resolves the create inputs. The release is always
// created as a draft without a discussion category; the user's draft
// choice only decides whether it gets published later.
func readCreateRequest(
	in *inputResolver,
	defaults config.CreateDefaults,
	ref string,
	headTag func() (string, error),
) (*createRequest, error) {
	var (
		req  createRequest
		opts = &req.opts
		err  error
	)

	strs := []struct {
		flag, input, fallback string
		dst                   *string
	}{
		{"tag-name", "tag_name", "", &opts.TagName},
		{"release-name", "release_name", "", &opts.ReleaseName},
		{"body", "body", "", &opts.Body},
		{"body-path", "body_path", "", &opts.BodyPath},
		{"commitish", "commitish", defaults.Commitish, &opts.Commitish},
		{"owner", "owner", "", &opts.Owner},
		{"repo", "repo", "", &opts.Repo},
		{"notes-start-tag", "notes_start_tag", defaults.NotesStartTag, &opts.NotesStartTag},
	}
	for _, s := range strs {
		if *s.dst, err = in.stringInput(s.flag, s.input, s.fallback); err != nil {
			return nil, err
		}
	}

	bools := []struct {
		flag, input string
		fallback    bool
		dst         *bool
	}{
		{"draft", "draft", defaults.Draft, &req.draft},
		{"prerelease", "prerelease", defaults.Prerelease, &opts.Prerelease},
		{"generate-release-notes", "generate_release_notes", defaults.GenerateReleaseNotes, &opts.GenerateReleaseNotes},
		{"overwrite", "overwrite", defaults.Overwrite, &opts.Overwrite},
	}
	for _, b := range bools {
		if *b.dst, err = in.boolInput(b.flag, b.input, b.fallback); err != nil {
			return nil, err
		}
	}

	if req.interactive, err = in.cmd.Flags().GetBool("interactive"); err != nil {
		return nil, fmt.Errorf("failed to read --interactive: %w", err)
	}

	if opts.TagName, err = resolveTagName(opts.TagName, ref, headTag); err != nil {
		return nil, err
	}

	opts.Draft = true
	opts.DiscussionCategoryName = ""

	return &req, nil
}

// newReleaser builds the API client and a Releaser bound to the ambient repository.
func newReleaser(
	in *inputResolver,
	env config.Environment,
	owner, repo string,
	localRepo func() (*git.Repository, error),
) (*release.Releaser, error) {
	flagToken, err := in.stringInput("github-token", "github_token", "")
	if err != nil {
		return nil, err
	}
	token := security.FirstToken(flagToken, env.Token)

	client, err := github.NewClient(token, env.APIURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	client.SetLogger(log)
	security.DebugAuth(log, env.APIURL, token)

	repository, err := ambientRepository(owner, repo, env.Repository, func() (string, error) {
		r, err := localRepo()
		if err != nil {
			return "", err
		}
		return r.RepositorySlug()
	})
	if err != nil {
		log.Debug(err.Error())
	}

	releaser := release.NewReleaser(client, repository)
	releaser.SetLogger(log)
	return releaser, nil
}

func openLocalRepository() (*git.Repository, error) {
	repo, err := git.OpenRepository(".")
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	repo.SetLogger(log)
	return repo, nil
}

// confirmOverwrite adapts the terminal prompt to the workflow hook.
func confirmOverwrite(confirmer *ui.OverwriteConfirmer) release.ConfirmFunc {
	return func(existing *github.Release, deleteTag bool) (bool, error) {
		return confirmer.Confirm(ui.ExistingRelease{
			ID:        existing.ID,
			TagName:   existing.TagName,
			DeleteTag: deleteTag,
		})
	}
}
