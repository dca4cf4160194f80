package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github-workflow-automation/config"
	"github-workflow-automation/pkg/github"
)

// ClientFactory builds the repository client once a command needs it.
type ClientFactory func(cfg config.GitHubConfig) (github.IGitHub, error)

// Options are the injectable parts of the CLI.
type Options struct {
	Out       io.Writer
	NewClient ClientFactory
	Prompter  Prompter
}

type CLI struct {
	cfg       *config.Config
	out       io.Writer
	newClient ClientFactory
	prompter  Prompter
}

func New(cfg *config.Config, opts Options) *CLI {
	c := &CLI{
		cfg:       cfg,
		out:       opts.Out,
		newClient: opts.NewClient,
		prompter:  opts.Prompter,
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.newClient == nil {
		c.newClient = DefaultClient
	}
	if c.prompter == nil {
		c.prompter = PromptUI{}
	}
	return c
}

// RootCommand assembles the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gh-workflow",
		Short:         "Manage issues and pull requests of the configured repository",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(c.out)

	root.AddCommand(
		c.createIssueCmd(),
		c.listIssuesCmd(),
		c.listPRsCmd(),
		c.assignReviewersCmd(),
		c.setupCmd(),
	)
	return root
}

// client resolves owner, repo and token before building the repository client.
func (c *CLI) client() (github.IGitHub, error) {
	return c.newClient(ResolveGitHub(c.cfg.GitHub))
}

// DefaultClient builds the go-github backed client.
func DefaultClient(cfg config.GitHubConfig) (github.IGitHub, error) {
	return github.New(github.Config{
		Owner:          cfg.Owner,
		Repo:           cfg.Repo,
		Token:          cfg.Token,
		AppID:          cfg.AppID,
		InstallationID: cfg.InstallationID,
		PrivateKeyPath: cfg.PrivateKeyPath,
		BaseURL:        cfg.BaseURL,
	})
}
