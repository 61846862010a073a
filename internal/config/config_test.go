package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "writeassist.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Remote.Enabled {
		t.Error("remote should be disabled by default")
	}
	if cfg.Limits.MaxChars != 50000 || cfg.Server.Port != 5000 || cfg.Summarizer.Length != "medium" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
remote:
  enabled: true
  provider: OpenAI
  openai:
    model: gpt-test
limits:
  max_chars: 1000
rewriter:
  style: casual
server:
  port: 8080
  allowed_origins: ["http://localhost:3000"]
log:
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Remote.Provider != "openai" {
		t.Errorf("provider = %q, want normalized openai", cfg.Remote.Provider)
	}
	if cfg.Remote.OpenAI.Model != "gpt-test" || cfg.Remote.OpenAI.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("openai = %+v", cfg.Remote.OpenAI)
	}
	if cfg.Limits.MaxChars != 1000 || cfg.Limits.MinSummarizeChars != 10 {
		t.Errorf("limits = %+v", cfg.Limits)
	}
	if cfg.Rewriter.Style != "casual" || cfg.Rewriter.ReadingLevel != "intermediate" {
		t.Errorf("rewriter = %+v", cfg.Rewriter)
	}
	if cfg.Server.Port != 8080 || cfg.Server.Host != "127.0.0.1" || len(cfg.Server.AllowedOrigins) != 1 {
		t.Errorf("server = %+v", cfg.Server)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"provider", "remote:\n  enabled: true\n  provider: claude\n", "unknown remote provider"},
		{"summarizer", "summarizer:\n  type: lsa\n", "unknown summarizer"},
		{"length", "summarizer:\n  length: huge\n", "unknown summary length"},
		{"style", "rewriter:\n  style: pirate\n", "unknown rewrite style"},
		{"reading level", "rewriter:\n  reading_level: expert\n", "unknown reading level"},
		{"log format", "log:\n  format: xml\n", "unknown log format"},
		{"max chars", "limits:\n  max_chars: -1\n", "max_chars must be positive"},
		{"syntax", "remote: [", "parse"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeFile(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestDisabledRemoteIgnoresProvider(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Remote.Provider = "unknown"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate with remote disabled: %v", err)
	}
}

func TestProviderSettings(t *testing.T) {
	t.Parallel()

	cfg := Default()
	g := cfg.ProviderSettings()
	if g.Model != "gemini-1.5-flash" || g.APIKeyEnv != "GOOGLE_API_KEY" || g.TimeoutSecs != 30 || g.MaxRetries != 2 {
		t.Errorf("gemini settings = %+v", g)
	}

	cfg.Remote.Provider = "openai"
	o := cfg.ProviderSettings()
	if o.BaseURL != "https://api.openai.com/v1" || o.Model != "gpt-4o-mini" || o.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("openai settings = %+v", o)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Rewriter.Style = "concise"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Rewriter.Style != "concise" {
		t.Errorf("style = %q", got.Rewriter.Style)
	}
}
