package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"autobloggerx/internal/ai"
	"autobloggerx/internal/config"
	"autobloggerx/internal/database"
	"autobloggerx/internal/models"
	"autobloggerx/internal/pipeline"
	"autobloggerx/internal/populater"
	"autobloggerx/internal/storage"
	"autobloggerx/internal/store"
)

// app carries what every subcommand shares after configuration is loaded.
type app struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	var req models.SiteRequest

	cmd := &cobra.Command{
		Use:   "populater",
		Short: "Generate and store the content of a new blog",
		Long: `Populater asks the configured language model for the about page, contact
page, hero section, design theme and meta description of a Swedish blog,
then inserts the result as one row of the website_data table and prints
the new row's id.`,
		Example:       `  populater --website-name "TechBloggen" --topic "Teknik" --hostname techbloggen.se`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			setLogger(a.stderr, cfg.SlogLevel())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.populate(cmd.Context(), req)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&req.WebsiteName, "website-name", "", "display name of the blog")
	cmd.Flags().StringVar(&req.Topic, "topic", "", "subject the blog writes about")
	cmd.Flags().StringVar(&req.HostName, "hostname", "", "hostname the blog is served from")
	for _, name := range []string{"website-name", "topic", "hostname"} {
		_ = cmd.MarkFlagRequired(name)
	}

	cmd.AddCommand(newListCommand(a), newShowCommand(a), newMigrateCommand(a))
	return cmd
}

// populate runs one generation and prints the stored id.
func (a *app) populate(ctx context.Context, req models.SiteRequest) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	registry := ai.NewRegistry(a.cfg.AIProvider, map[string]ai.ProviderConfig{
		config.ProviderClaude: {
			APIKey:    a.cfg.ClaudeAPIKey,
			Model:     a.cfg.ClaudeModel,
			BaseURL:   a.cfg.ClaudeBaseURL,
			MaxTokens: a.cfg.MaxTokens,
			Timeout:   a.cfg.Timeout,
		},
		config.ProviderOpenAI: {
			APIKey:    a.cfg.OpenAIAPIKey,
			Model:     a.cfg.OpenAIModel,
			BaseURL:   a.cfg.OpenAIBaseURL,
			MaxTokens: a.cfg.MaxTokens,
			Timeout:   a.cfg.Timeout,
		},
	})

	websites, closeStore, err := openStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var opts []populater.Option
	archive, err := storage.New(a.cfg.S3Endpoint, a.cfg.S3Region, a.cfg.S3AccessKey, a.cfg.S3SecretKey, a.cfg.S3Bucket)
	if err != nil {
		return err
	}
	if archive != nil {
		opts = append(opts, populater.WithArchive(archive))
	}

	p := pipeline.New(pipeline.NewClient(registry), pipeline.WithObserver(func(step pipeline.Step, elapsed time.Duration) {
		slog.Info("step completed", "step", step.String(), "elapsed", elapsed.Round(time.Millisecond))
	}))

	archiveBucket := ""
	if archive != nil {
		archiveBucket = archive.Bucket()
	}
	slog.Debug("populater configured",
		"provider", registry.Name(),
		"available", registry.Available(),
		"store", a.cfg.StoreBackend,
		"archive_bucket", archiveBucket,
	)

	id, err := populater.New(p, store.NewWriter(websites, nil), opts...).Run(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, id)
	return nil
}

// openStore returns the website store for the configured backend and a
// function that releases it.
func openStore(ctx context.Context, cfg *config.Config) (store.WebsiteStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgresStore(db), func() { db.Close() }, nil
	default:
		return store.NewRESTStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.StoreTimeout), func() {}, nil
	}
}
