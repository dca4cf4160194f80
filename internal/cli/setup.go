package cli

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultConfigFile = "config.yaml"

func (c *CLI) setupCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Interactively write a config.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSetup(path)
		},
	}

	cmd.Flags().StringVarP(&path, "output", "o", defaultConfigFile, "file to write")
	return cmd
}

func (c *CLI) runSetup(path string) error {
	if _, err := os.Stat(path); err == nil {
		ok, err := c.prompter.Confirm(fmt.Sprintf("%s exists, overwrite", path))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(c.out, "Setup cancelled")
			return nil
		}
	}

	defaults := ResolveGitHub(c.cfg.GitHub)

	secret := c.cfg.Webhook.Secret
	if secret == "" {
		var err error
		if secret, err = generateSecret(); err != nil {
			return err
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")

	type step struct {
		key string
		q   Question
	}
	steps := []step{
		{"github.token", Question{Label: "GitHub token", Secret: true, Default: defaults.Token, Validate: required}},
		{"github.owner", Question{Label: "Repository owner", Default: defaults.Owner, Validate: required}},
		{"github.repo", Question{Label: "Repository name", Default: defaults.Repo, Validate: required}},
		{"webhook.secret", Question{Label: "Webhook secret", Secret: true, Default: secret, Validate: required}},
		{"http_server.port", Question{Label: "Webhook port", Default: strconv.Itoa(c.cfg.HTTPServer.Port), Validate: port}},
		{"reviewers", Question{Label: "Reviewers (comma-separated)", Default: strings.Join(c.cfg.Automation.Reviewers, ","), Validate: required}},
		{"slack.webhook_url", Question{Label: "Slack webhook URL (optional)", Default: c.cfg.Slack.WebhookURL}},
		{"gemini_api_key", Question{Label: "Gemini API key (optional)", Secret: true}},
	}

	for _, s := range steps {
		answer, err := c.prompter.Ask(s.q)
		if err != nil {
			return err
		}
		answer = strings.TrimSpace(answer)

		switch s.key {
		case "http_server.port":
			n, _ := strconv.Atoi(answer)
			v.Set(s.key, n)
		case "reviewers":
			v.Set(s.key, cleanList(strings.Split(answer, ",")))
		default:
			if answer != "" {
				v.Set(s.key, answer)
			}
		}
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Fprintf(c.out, "Configuration written to %s\n", path)
	return nil
}

// generateSecret returns 32 random bytes, hex encoded.
func generateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate webhook secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

func port(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 || n > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
