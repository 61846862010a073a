package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"writeassist/internal/config"
	"writeassist/internal/logging"
	"writeassist/internal/remote"
	"writeassist/internal/remote/gemini"
	"writeassist/internal/remote/openai"
	"writeassist/internal/service"
	"writeassist/internal/summarizer"
)

// app carries what every subcommand needs once the root has loaded configuration.
type app struct {
	cfgPath string
	cfg     *config.AppConfig
	log     zerolog.Logger
	svc     *service.Assistant
}

func main() {
	_ = godotenv.Load()

	a := &app{}
	root := &cobra.Command{
		Use:           "writeassist",
		Short:         "Privacy-first writing assistant",
		Long:          "Analyze, correct, summarize and rewrite English text locally, with an optional remote model.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "Path to YAML config file (optional; uses ./writeassist.yaml or ~/.config/writeassist/config.yaml)")

	root.AddCommand(
		a.analyzeCmd(),
		a.summarizeCmd(),
		a.rewriteCmd(),
		a.simplifyCmd(),
		a.correctCmd(),
		a.improveCmd(),
		a.proofreadCmd(),
		a.translateCmd(),
		a.suggestCmd(),
		a.statsCmd(),
		a.serveCmd(),
		a.tuiCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) setup() error {
	var err error
	if a.cfgPath == "" {
		a.cfg, _, err = config.LoadDefault()
	} else {
		a.cfg, err = config.Load(a.cfgPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.log = logging.New(a.cfg.Log, os.Stderr)

	// Assemble components
	var sum *summarizer.FrequencySummarizer
	switch a.cfg.Summarizer.Type {
	case "frequency", "":
		sum = summarizer.NewFrequencySummarizer()
	default:
		return fmt.Errorf("unknown summarizer: %s", a.cfg.Summarizer.Type)
	}
	a.svc = service.New(a.cfg, buildBackend(a.cfg, a.log), sum, a.log)
	return nil
}

// buildBackend returns the configured remote backend, or an unavailable one when
// remote is disabled or the provider cannot be initialized.
func buildBackend(cfg *config.AppConfig, log zerolog.Logger) *remote.Backend {
	if !cfg.Remote.Enabled {
		return remote.Unavailable("remote backend disabled in config")
	}
	p := cfg.ProviderSettings()
	timeout := time.Duration(p.TimeoutSecs) * time.Second
	switch cfg.Remote.Provider {
	case "openai":
		client, err := openai.NewClient(openai.Config{
			BaseURL:    p.BaseURL,
			APIKeyEnv:  p.APIKeyEnv,
			Model:      p.Model,
			Timeout:    timeout,
			MaxRetries: p.MaxRetries,
		})
		if err != nil {
			log.Warn().Err(err).Str("provider", "openai").Msg("remote backend unavailable")
			return remote.Unavailable(err.Error())
		}
		return remote.NewBackend(client, timeout)
	default:
		client, err := gemini.NewClient(gemini.Config{
			BaseURL:   p.BaseURL,
			APIKeyEnv: p.APIKeyEnv,
			Model:     p.Model,
			Timeout:   timeout,
		})
		if err != nil {
			log.Warn().Err(err).Str("provider", "gemini").Msg("remote backend unavailable")
			return remote.Unavailable(err.Error())
		}
		return remote.NewBackend(client, timeout)
	}
}
