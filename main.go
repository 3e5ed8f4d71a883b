package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/felixbrock/designkit/internal/app"
	"github.com/felixbrock/designkit/internal/brief"
	"github.com/felixbrock/designkit/internal/components"
	"github.com/felixbrock/designkit/internal/config"
	"github.com/felixbrock/designkit/internal/domain"
	"github.com/felixbrock/designkit/internal/persistence"
	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"
)

const (
	Version = "0.1.0"
	appName = "designkit"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "App design kit service",
		Long: `designkit collects design quiz submissions, compiles a build prompt and
a mood board for each one, and emails the user a link to the results.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (TOML)")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "compile <submission.json>",
		Short: "Print the build prompt and image queries of a submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compile(cmd, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func serve(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	submissionRepo, closeStore, err := submissionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	componentBuilder := app.ComponentBuilder{
		Index:   components.Index,
		Results: components.Results,
		Email:   components.ResultsEmail,
		Error:   components.Error,
		JSON:    components.JSON,
	}

	a := &app.App{
		SubmissionRepo:   submissionRepo,
		ImageRepo:        persistence.UnsplashRepo{AccessKey: cfg.Images.UnsplashAccessKey},
		MailRepo:         persistence.ResendRepo{ApiKey: cfg.Email.ResendApiKey},
		EventRepo:        persistence.PHRepo{ApiKey: cfg.Analytics.PostHogApiKey},
		ComponentBuilder: componentBuilder,
		Config: app.Config{
			Port:           cfg.App.Port,
			BaseUrl:        cfg.App.BaseUrl,
			ImagesPerQuery: cfg.Images.PerQuery,
			JobTimeout:     time.Duration(cfg.Jobs.TimeoutSeconds) * time.Second,
			SubmitRate:     cfg.RateLimit.SubmitPerSecond,
			SubmitBurst:    cfg.RateLimit.SubmitBurst,
			EmailFrom:      cfg.Email.From,
			StaticDir:      cfg.App.StaticDir,
			TrustedProxies: cfg.App.TrustedProxies,
		},
	}

	slog.Info("designkit ready", "version", Version, "store", cfg.Store.Driver, "port", cfg.App.Port)

	return a.Start(ctx)
}

func submissionStore(ctx context.Context, cfg *config.Config) (app.SubmissionRepo, func(), error) {
	switch cfg.Store.Driver {
	case "supabase":
		dbHeader := []string{
			fmt.Sprintf("apikey: %s", cfg.Store.DBApiKey),
			fmt.Sprintf("Authorization: Bearer %s", cfg.Store.DBApiKey)}
		dbUrlBase := fmt.Sprintf("%s/rest/v1", strings.TrimRight(cfg.Store.SupabaseUrl, "/"))

		repo := persistence.SubmissionRepo{BaseHeaders: dbHeader, BaseUrl: fmt.Sprintf("%s/%s", dbUrlBase, cfg.Store.Table)}
		return repo, func() {}, nil
	default:
		repo, err := persistence.OpenSQLite(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
			}
		}, nil
	}
}

func compile(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read submission: %w", err)
	}

	var submission domain.Submission
	if err := json.Unmarshal(data, &submission); err != nil {
		return fmt.Errorf("decode submission: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, brief.Compile(submission))
	fmt.Fprintln(out, "\n---\nImage queries:")
	for _, q := range brief.Queries(submission.Feelings, submission.DesignInspiration) {
		fmt.Fprintf(out, "- %s\n", q)
	}

	return nil
}
