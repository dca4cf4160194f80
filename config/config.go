package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Repository automation
	GitHub     GitHubConfig
	Webhook    WebhookConfig
	Automation AutomationConfig
	Issues     IssuesConfig

	// Merge notifications
	Slack    SlackConfig
	Telegram TelegramConfig
	Notify   NotifyConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GitHubConfig selects the target repository and how to authenticate.
// A token takes precedence over GitHub App credentials.
type GitHubConfig struct {
	Token          string
	Owner          string
	Repo           string
	BaseURL        string
	AppID          int64
	InstallationID int64
	PrivateKeyPath string
}

// UsesApp reports whether GitHub App installation auth is configured.
func (c GitHubConfig) UsesApp() bool {
	return c.Token == "" && c.AppID != 0 && c.InstallationID != 0 && c.PrivateKeyPath != ""
}

type WebhookConfig struct {
	Path            string
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// AutomationConfig drives the event handlers.
type AutomationConfig struct {
	Reviewers     []string
	ReviewLabel   string
	AssignCommand string
}

type IssuesConfig struct {
	StaleAfterDays int
}

// StaleAfter returns the stale threshold as a duration.
func (c IssuesConfig) StaleAfter() time.Duration {
	return time.Duration(c.StaleAfterDays) * 24 * time.Hour
}

type SlackConfig struct {
	WebhookURL string
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type NotifyConfig struct {
	Timeout time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	if port := viper.GetInt("webhook_port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// GitHub
	cfg.GitHub.Token = viper.GetString("github.token")
	cfg.GitHub.Owner = viper.GetString("github.owner")
	cfg.GitHub.Repo = viper.GetString("github.repo")
	cfg.GitHub.BaseURL = viper.GetString("github.base_url")
	cfg.GitHub.AppID = viper.GetInt64("github.app_id")
	cfg.GitHub.InstallationID = viper.GetInt64("github.installation_id")
	cfg.GitHub.PrivateKeyPath = viper.GetString("github.private_key_path")

	// Webhook
	cfg.Webhook.Path = viper.GetString("webhook.path")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = splitList(viper.Get("webhook.allowed_ips"))

	// Automation
	cfg.Automation.Reviewers = splitList(viper.Get("reviewers"))
	cfg.Automation.ReviewLabel = viper.GetString("automation.review_label")
	cfg.Automation.AssignCommand = viper.GetString("automation.assign_command")
	cfg.Issues.StaleAfterDays = viper.GetInt("issues.stale_after_days")

	// Notifications
	cfg.Slack.WebhookURL = viper.GetString("slack.webhook_url")
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	cfg.Notify.Timeout = viper.GetDuration("notify.timeout")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders()

	// A bare GEMINI_API_KEY is enough to enable summaries.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("gemini_api_key"); key != "" {
			cfg.LLM.Providers = []ProviderConfig{{
				Name:     "gemini",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("gemini_model"),
			}}
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 3000)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("webhook.path", "/webhook")
	viper.SetDefault("webhook.rate_limit_per_min", 0)
	viper.SetDefault("automation.review_label", "needs-review")
	viper.SetDefault("automation.assign_command", "/assign me")
	viper.SetDefault("issues.stale_after_days", 30)
	viper.SetDefault("notify.timeout", "2m")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "30s")
	viper.SetDefault("gemini_model", "gemini-2.5-flash")
}

// ValidateGitHub checks what every GitHub caller needs.
func (c *Config) ValidateGitHub() error {
	if c.GitHub.Token == "" && !c.GitHub.UsesApp() {
		return fmt.Errorf("GITHUB_TOKEN (or github.app_id, github.installation_id and github.private_key_path) is required")
	}
	if c.GitHub.Owner == "" || c.GitHub.Repo == "" {
		return fmt.Errorf("GITHUB_OWNER and GITHUB_REPO are required")
	}
	return nil
}

// ValidateServer checks what the webhook server needs before it may start.
func (c *Config) ValidateServer() error {
	if err := c.ValidateGitHub(); err != nil {
		return err
	}
	if c.Webhook.Secret == "" {
		return fmt.Errorf("WEBHOOK_SECRET is required")
	}
	if len(c.Automation.Reviewers) == 0 {
		return fmt.Errorf("REVIEWERS must list at least one username")
	}
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("invalid port %d", c.HTTPServer.Port)
	}
	if len(c.LLM.Providers) > 0 {
		if err := validateLLMConfig(&c.LLM); err != nil {
			return err
		}
	}
	return nil
}

func loadProviders() []ProviderConfig {
	if !viper.IsSet("llm.providers") {
		return nil
	}

	var providers []ProviderConfig
	providersList, ok := viper.Get("llm.providers").([]interface{})
	if !ok {
		return nil
	}
	for _, p := range providersList {
		providerMap, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(providerMap, "name"),
			Enabled:  getBoolFromMap(providerMap, "enabled"),
			Priority: getIntFromMap(providerMap, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
			BaseURL:  getStringFromMap(providerMap, "base_url"),
			Model:    getStringFromMap(providerMap, "model"),
			Timeout:  getStringFromMap(providerMap, "timeout"),
		})
	}
	return providers
}

// splitList accepts either a YAML list or a comma separated string (the env form).
func splitList(raw interface{}) []string {
	var items []string
	switch v := raw.(type) {
	case string:
		items = strings.Split(v, ",")
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	case []string:
		items = v
	}

	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
