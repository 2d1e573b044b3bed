package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/sgaunet/create-release/internal/actions"
	"github.com/sgaunet/create-release/pkg/config"
	"github.com/sgaunet/create-release/pkg/release"
	"github.com/spf13/cobra"
)

func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the draft release saved by create",
		Long: `Publish the draft release whose id is given by --id or, inside GitHub
Actions, by the state saved by "create". Without an id there is nothing to
publish and the command succeeds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPublish(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String("id", "", "Id of the release to publish (default: STATE_id)")
	flags.String("owner", "", "Repository owner (default: from GITHUB_REPOSITORY)")
	flags.String("repo", "", "Repository name (default: from GITHUB_REPOSITORY)")
	flags.String("discussion-category-name", "", "Create a discussion in this category")
	flags.String("make-latest", "", "Mark the release as latest: true, false or legacy")
	flags.String("github-token", "", "GitHub token (default: INPUT_GITHUB_TOKEN or GITHUB_TOKEN)")

	return cmd
}

func runPublish(cmd *cobra.Command) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	env := config.LoadEnvironment(os.Getenv)
	runtime := actions.NewRuntime()
	in := newInputResolver(cmd, runtime)

	opts, err := readPublishOptions(in, cfg.Publish)
	if err != nil {
		return err
	}
	if opts.ID == "" {
		log.Info("No release id to publish")
		return nil
	}

	releaser, err := newReleaser(in, env, opts.Owner, opts.Repo, sync.OnceValues(openLocalRepository))
	if err != nil {
		return err
	}

	if err := releaser.Publish(cmd.Context(), *opts); err != nil {
		return fmt.Errorf("failed to publish release: %w", err)
	}
	return nil
}

// readPublishOptions resolves the publish inputs; the id comes from the
// --id flag or from the state saved by the create step.
func readPublishOptions(in *inputResolver, defaults config.PublishDefaults) (*release.PublishOptions, error) {
	var (
		opts release.PublishOptions
		err  error
	)

	strs := []struct {
		flag, input, fallback string
		dst                   *string
	}{
		{"owner", "owner", "", &opts.Owner},
		{"repo", "repo", "", &opts.Repo},
		{"discussion-category-name", "discussion_category_name", defaults.DiscussionCategoryName,
			&opts.DiscussionCategoryName},
		{"make-latest", "make_latest", defaults.MakeLatest, &opts.MakeLatest},
	}
	for _, s := range strs {
		if *s.dst, err = in.stringInput(s.flag, s.input, s.fallback); err != nil {
			return nil, err
		}
	}

	opts.ID = in.runtime.GetState(stateID)
	if in.cmd.Flags().Changed("id") {
		if opts.ID, err = in.cmd.Flags().GetString("id"); err != nil {
			return nil, fmt.Errorf("failed to read --id: %w", err)
		}
	}

	return &opts, nil
}
