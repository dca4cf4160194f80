package cli

import (
	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/cli/go-gh/v2/pkg/repository"

	"github-workflow-automation/config"
)

const defaultHost = "github.com"

// Overridable in tests.
var (
	currentRepo = func() (repository.Repository, error) {
		return repository.Current()
	}
	tokenForHost = func(host string) string {
		token, _ := auth.TokenForHost(host)
		return token
	}
)

// ResolveGitHub fills owner and repo from the git remote of the working
// directory and the token from the gh CLI credentials, when not configured.
func ResolveGitHub(cfg config.GitHubConfig) config.GitHubConfig {
	host := defaultHost

	if cfg.Owner == "" || cfg.Repo == "" {
		if repo, err := currentRepo(); err == nil {
			if cfg.Owner == "" {
				cfg.Owner = repo.Owner
			}
			if cfg.Repo == "" {
				cfg.Repo = repo.Name
			}
			if repo.Host != "" {
				host = repo.Host
			}
		}
	}

	if cfg.Token == "" && !cfg.UsesApp() {
		cfg.Token = tokenForHost(host)
	}
	return cfg
}
