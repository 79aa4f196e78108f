package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// matches the "<bot id>:<secret>" format of telegram bot tokens
var botTokenRegex = regexp.MustCompile(`^\d+:[A-Za-z0-9_-]+$`)

type Config struct {
	Environment string `toml:"environment"`

	// ops server (health + prometheus metrics)
	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled bool `toml:"sentry_enabled"`

	// coach backend API
	BackendAPIURL            string `toml:"backend_api_url"`
	BackendAPIVersion        string `toml:"backend_api_version"`
	EndpointTrainings        string `toml:"endpoint_trainings"`
	EndpointCurrentTrainings string `toml:"endpoint_current_trainings"`
	EndpointReports          string `toml:"endpoint_reports"`
	EndpointAllowed          string `toml:"endpoint_allowed"`

	// completions service
	OpenAIModel   string `toml:"openai_model"`
	OpenAIBaseURL string `toml:"openai_base_url"`

	// telegram
	MaxMessageLength int     `toml:"max_message_length"`
	AdminChatID      int64   `toml:"admin_chat_id"`
	ClientChatIDs    []int64 `toml:"client_chat_ids"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s not present in %s", env, path)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BackendAPIVersion == "" {
		c.BackendAPIVersion = "v1"
	}
	if c.MaxMessageLength == 0 {
		// telegram caps messages at 4096 chars, keep a small margin
		c.MaxMessageLength = 4090
	}
	if c.LogLevel == "" {
		c.LogLevel = "trace"
	}
}

// ValidBotToken reports whether the token looks like a telegram bot token.
// Catches swapped env vars before the bot api mysteriously 401s.
func ValidBotToken(token string) bool {
	return botTokenRegex.MatchString(token)
}
