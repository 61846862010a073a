package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProviderConfig holds connection details for one remote generative backend.
type ProviderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	MaxRetries  int    `yaml:"max_retries"`
}

// RemoteConfig selects whether and how the remote backend is attempted.
type RemoteConfig struct {
	Enabled  bool            `yaml:"enabled"`
	Provider string          `yaml:"provider"`
	Gemini   *ProviderConfig `yaml:"gemini,omitempty"`
	OpenAI   *ProviderConfig `yaml:"openai,omitempty"`
}

// LimitsConfig bounds request sizes.
type LimitsConfig struct {
	MaxChars          int `yaml:"max_chars"`
	MinSummarizeChars int `yaml:"min_summarize_chars"`
	MinRewriteChars   int `yaml:"min_rewrite_chars"`
}

// SummarizerConfig sets summarizer defaults.
type SummarizerConfig struct {
	Type   string `yaml:"type"`
	Length string `yaml:"length"`
}

// RewriterConfig sets rewrite defaults.
type RewriterConfig struct {
	Style        string `yaml:"style"`
	ReadingLevel string `yaml:"reading_level"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host               string   `yaml:"host"`
	Port               int      `yaml:"port"`
	AllowedOrigins     []string `yaml:"allowed_origins"`
	MaxRequestBytes    int64    `yaml:"max_request_bytes"`
	RequestTimeoutSecs int      `yaml:"request_timeout_secs"`
}

// AnalyticsConfig configures the usage tracker.
type AnalyticsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Remote     RemoteConfig     `yaml:"remote"`
	Limits     LimitsConfig     `yaml:"limits"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Rewriter   RewriterConfig   `yaml:"rewriter"`
	Server     ServerConfig     `yaml:"server"`
	Analytics  AnalyticsConfig  `yaml:"analytics"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault tries ./writeassist.yaml first, then ~/.config/writeassist/config.yaml.
// If neither exists, it writes defaults to ~/.config/writeassist/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "writeassist.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects enumerated options outside their allowed values.
func (c *AppConfig) Validate() error {
	if c.Remote.Enabled {
		switch c.Remote.Provider {
		case "gemini", "openai":
		default:
			return fmt.Errorf("unknown remote provider: %q", c.Remote.Provider)
		}
	}
	switch c.Summarizer.Type {
	case "frequency":
	default:
		return fmt.Errorf("unknown summarizer: %q", c.Summarizer.Type)
	}
	switch c.Summarizer.Length {
	case "short", "medium", "long":
	default:
		return fmt.Errorf("unknown summary length: %q", c.Summarizer.Length)
	}
	switch c.Rewriter.Style {
	case "formal", "casual", "concise", "friendly", "neutral":
	default:
		return fmt.Errorf("unknown rewrite style: %q", c.Rewriter.Style)
	}
	switch c.Rewriter.ReadingLevel {
	case "basic", "intermediate", "advanced":
	default:
		return fmt.Errorf("unknown reading level: %q", c.Rewriter.ReadingLevel)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.Log.Format)
	}
	if c.Limits.MaxChars <= 0 {
		return errors.New("limits.max_chars must be positive")
	}
	return nil
}

// ProviderSettings returns the active provider's settings, with defaults applied.
func (c *AppConfig) ProviderSettings() ProviderConfig {
	var out ProviderConfig
	switch c.Remote.Provider {
	case "openai":
		if c.Remote.OpenAI != nil {
			out = *c.Remote.OpenAI
		}
		applyProviderDefaults(&out, "https://api.openai.com/v1", "OPENAI_API_KEY", "gpt-4o-mini")
	default:
		if c.Remote.Gemini != nil {
			out = *c.Remote.Gemini
		}
		applyProviderDefaults(&out, "https://generativelanguage.googleapis.com", "GOOGLE_API_KEY", "gemini-1.5-flash")
	}
	return out
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "writeassist", "config.yaml"), nil
}

// Default returns the built-in configuration: heuristics only, no remote backend.
func Default() *AppConfig {
	cfg := &AppConfig{
		Remote: RemoteConfig{
			Enabled:  false,
			Provider: "gemini",
			Gemini:   &ProviderConfig{},
		},
		Summarizer: SummarizerConfig{Type: "frequency", Length: "medium"},
		Rewriter:   RewriterConfig{Style: "formal", ReadingLevel: "intermediate"},
		Server:     ServerConfig{Host: "127.0.0.1", Port: 5000, AllowedOrigins: []string{"*"}},
		Analytics:  AnalyticsConfig{Enabled: false, Path: "writeassist.db"},
	}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	cfg.Remote.Provider = strings.ToLower(strings.TrimSpace(cfg.Remote.Provider))
	if cfg.Remote.Provider == "" {
		cfg.Remote.Provider = "gemini"
	}
	if cfg.Remote.Gemini != nil {
		applyProviderDefaults(cfg.Remote.Gemini, "https://generativelanguage.googleapis.com", "GOOGLE_API_KEY", "gemini-1.5-flash")
	}
	if cfg.Remote.OpenAI != nil {
		applyProviderDefaults(cfg.Remote.OpenAI, "https://api.openai.com/v1", "OPENAI_API_KEY", "gpt-4o-mini")
	}
	if cfg.Limits.MaxChars == 0 {
		cfg.Limits.MaxChars = 50000
	}
	if cfg.Limits.MinSummarizeChars == 0 {
		cfg.Limits.MinSummarizeChars = 10
	}
	if cfg.Limits.MinRewriteChars == 0 {
		cfg.Limits.MinRewriteChars = 5
	}
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = "frequency"
	}
	if cfg.Summarizer.Length == "" {
		cfg.Summarizer.Length = "medium"
	}
	if cfg.Rewriter.Style == "" {
		cfg.Rewriter.Style = "formal"
	}
	if cfg.Rewriter.ReadingLevel == "" {
		cfg.Rewriter.ReadingLevel = "intermediate"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.MaxRequestBytes == 0 {
		cfg.Server.MaxRequestBytes = 16 << 20
	}
	if cfg.Server.RequestTimeoutSecs == 0 {
		cfg.Server.RequestTimeoutSecs = 60
	}
	if cfg.Analytics.Path == "" {
		cfg.Analytics.Path = "writeassist.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

func applyProviderDefaults(p *ProviderConfig, baseURL, keyEnv, model string) {
	if p.BaseURL == "" {
		p.BaseURL = baseURL
	}
	if p.APIKeyEnv == "" {
		p.APIKeyEnv = keyEnv
	}
	if p.Model == "" {
		p.Model = model
	}
	if p.TimeoutSecs == 0 {
		p.TimeoutSecs = 30
	}
	if p.MaxRetries == 0 {
		p.MaxRetries = 2
	}
}
