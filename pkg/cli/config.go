package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rex-ai/rex/pkg/adapter"
	"github.com/rex-ai/rex/pkg/archive"
	rexconfig "github.com/rex-ai/rex/pkg/config"
	"github.com/rex-ai/rex/pkg/repository"
	"github.com/rex-ai/rex/pkg/usecase/conversation"
	"github.com/rex-ai/rex/pkg/usecase/memory"
	"github.com/rex-ai/rex/pkg/utils/logging"
)

// config holds flag-provided values shared across commands
type config struct {
	configPath string
	logLevel   string

	// Embedding provider
	provider       string
	geminiProject  string
	geminiLocation string
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to YAML configuration file",
			Sources:     cli.EnvVars("REX_CONFIG"),
			Destination: &cfg.configPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("REX_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
		&cli.StringFlag{
			Name:        "embedding-provider",
			Usage:       "Embedding provider (local or gemini)",
			Sources:     cli.EnvVars("REX_EMBEDDING_PROVIDER"),
			Destination: &cfg.provider,
		},
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID for Gemini embeddings",
			Sources:     cli.EnvVars("GEMINI_PROJECT_ID"),
			Destination: &cfg.geminiProject,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for Gemini embeddings",
			Value:       "us-central1",
			Sources:     cli.EnvVars("GEMINI_LOCATION"),
			Destination: &cfg.geminiLocation,
		},
	}
}

// setup loads configuration, installs the logger and builds the use cases
func (cfg *config) setup(ctx context.Context) (*rexconfig.Config, *conversation.UseCase, *memory.UseCase, error) {
	logging.SetDefault(logging.New(cfg.logLevel, os.Stderr))

	rc, err := rexconfig.Load(cfg.configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	embedder, err := cfg.newEmbedder(ctx, rc)
	if err != nil {
		return nil, nil, nil, err
	}

	var opts []memory.Option
	if rc.Persistence.Enabled {
		arc, err := archive.NewPersistent(rc.Persistence.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, memory.WithArchive(arc))
	}

	mem := memory.New(repository.NewMemory(), embedder, rc, opts...)
	conv := conversation.New(mem, rc)

	return rc, conv, mem, nil
}

// geminiModel returns the configured embedding model, or empty when the
// configuration still names the local default, which Gemini cannot serve
func geminiModel(configured string) string {
	if configured == "" || configured == rexconfig.LocalModel {
		return ""
	}
	return configured
}

// newEmbedder creates the embedding client, always wrapped with a cache
func (cfg *config) newEmbedder(ctx context.Context, rc *rexconfig.Config) (adapter.EmbeddingClient, error) {
	provider := cfg.provider
	if provider == "" {
		provider = rc.Embedding.Provider
	}

	var inner adapter.EmbeddingClient
	switch provider {
	case "", "local":
		inner = adapter.NewLocalEmbedder(rc.Embedding.Dimension)

	case "gemini":
		if cfg.geminiProject == "" {
			return nil, goerr.New("gemini-project is required for the gemini embedding provider")
		}
		geminiOpts := []adapter.GeminiOption{adapter.WithDimensions(rc.Embedding.Dimension)}
		if model := geminiModel(rc.Embedding.Model); model != "" {
			geminiOpts = append(geminiOpts, adapter.WithEmbeddingModel(model))
		}
		client, err := adapter.NewGemini(ctx, cfg.geminiProject, cfg.geminiLocation, geminiOpts...)
		if err != nil {
			return nil, err
		}
		inner = client

	default:
		return nil, goerr.New("unknown embedding provider", goerr.V("provider", provider))
	}

	return adapter.NewCachedEmbedder(inner)
}
