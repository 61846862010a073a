package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"writeassist/internal/analytics"
	"writeassist/internal/ingest"
	"writeassist/internal/server"
	"writeassist/internal/service"
	"writeassist/internal/tui"
)

// readInput joins the files named in args, or reads stdin when there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		doc, err := ingest.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return doc.Content, nil
	}
	docs, err := ingest.Load(args)
	if err != nil {
		return "", err
	}
	return ingest.Join(docs), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// textCommand builds a subcommand that reads input and prints the JSON result of run.
func textCommand(use, short string, run func(ctx context.Context, text string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [file ...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			res, err := run(cmd.Context(), text)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) analyzeCmd() *cobra.Command {
	return textCommand("analyze", "Run every local analyzer over the text", func(_ context.Context, t string) (any, error) {
		return a.svc.Analyze(t)
	})
}

func (a *app) summarizeCmd() *cobra.Command {
	var opts service.SummarizeOptions
	cmd := textCommand("summarize", "Summarize the text", func(ctx context.Context, t string) (any, error) {
		return a.svc.Summarize(ctx, t, opts)
	})
	cmd.Flags().StringVar(&opts.Length, "length", "", "Summary length: short, medium or long")
	cmd.Flags().StringVar(&opts.Type, "type", "", "Summary focus passed to the remote model")
	cmd.Flags().IntVar(&opts.MaxSentences, "max-sentences", 0, "Exact sentence count for the extractive summary (overrides --length)")
	return cmd
}

func (a *app) rewriteCmd() *cobra.Command {
	var opts service.RewriteOptions
	cmd := textCommand("rewrite", "Rewrite the text in another tone", func(ctx context.Context, t string) (any, error) {
		return a.svc.Rewrite(ctx, t, opts)
	})
	cmd.Flags().StringVar(&opts.Style, "tone", "", "Target tone: formal, casual, concise, friendly or neutral")
	cmd.Flags().StringVar(&opts.ReadingLevel, "reading-level", "", "Reading level: basic, intermediate or advanced")
	return cmd
}

func (a *app) simplifyCmd() *cobra.Command {
	return textCommand("simplify", "Replace complex vocabulary with simpler words", func(_ context.Context, t string) (any, error) {
		return a.svc.Simplify(t)
	})
}

func (a *app) correctCmd() *cobra.Command {
	return textCommand("correct", "Apply the grammar and punctuation rules", func(_ context.Context, t string) (any, error) {
		return a.svc.Grammar(t)
	})
}

func (a *app) improveCmd() *cobra.Command {
	var style string
	cmd := textCommand("improve", "Correct the text and then rewrite it", func(_ context.Context, t string) (any, error) {
		return a.svc.Improve(t, style)
	})
	cmd.Flags().StringVar(&style, "style", "", "Rewrite style applied after correction")
	return cmd
}

func (a *app) proofreadCmd() *cobra.Command {
	return textCommand("proofread", "Return a corrected version of the text", func(ctx context.Context, t string) (any, error) {
		return a.svc.Proofread(ctx, t)
	})
}

func (a *app) translateCmd() *cobra.Command {
	var target string
	cmd := textCommand("translate", "Translate the text (requires a remote backend)", func(ctx context.Context, t string) (any, error) {
		return a.svc.Translate(ctx, t, target)
	})
	cmd.Flags().StringVar(&target, "to", "es", "Target language code")
	return cmd
}

func (a *app) suggestCmd() *cobra.Command {
	return textCommand("suggest", "List style suggestions", func(_ context.Context, t string) (any, error) {
		return a.svc.Suggestions(t)
	})
}

func (a *app) openTracker() (*analytics.Tracker, error) {
	if !a.cfg.Analytics.Enabled {
		return nil, errors.New("analytics disabled in config")
	}
	return analytics.Open(a.cfg.Analytics.Path)
}

func (a *app) statsCmd() *cobra.Command {
	var user string
	var limit int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show usage statistics for a user, or the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := a.openTracker()
			if err != nil {
				return err
			}
			defer tr.Close()
			if user != "" {
				st, err := tr.UserStats(cmd.Context(), user)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), st)
			}
			board, err := tr.Leaderboard(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"leaderboard": board})
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "User id to report on")
	cmd.Flags().IntVar(&limit, "limit", 10, "Leaderboard size")
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var host string
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			scfg := a.cfg.Server
			if host != "" {
				scfg.Host = host
			}
			if port != 0 {
				scfg.Port = port
			}
			var tracker server.Tracker
			if a.cfg.Analytics.Enabled {
				tr, err := analytics.Open(a.cfg.Analytics.Path)
				if err != nil {
					return err
				}
				defer tr.Close()
				tracker = tr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(scfg, a.svc, tracker, a.log).Start(ctx)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "Override server.host")
	cmd.Flags().IntVar(&port, "port", 0, "Override server.port")
	return cmd
}

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file ...]",
		Short: "Interactive analyzer",
		RunE: func(cmd *cobra.Command, args []string) error {
			var initial string
			if len(args) > 0 {
				text, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				initial = text
			}
			if _, err := tea.NewProgram(tui.New(a.svc, initial), tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}
