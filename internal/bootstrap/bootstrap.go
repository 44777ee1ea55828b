package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spacesedan/civicpulse/config"
	"github.com/spacesedan/civicpulse/internal/logging"
	"github.com/spacesedan/civicpulse/internal/sentiment"
	"github.com/spacesedan/civicpulse/internal/session"
	"github.com/spacesedan/civicpulse/internal/topics"
)

// Init loads the env file and configuration and installs the logger.
func Init() (*config.Config, io.Closer, error) {
	config.LoadEnv(config.AppEnv())

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	closer := logging.InitLogger(logging.Options{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
	})
	return cfg, closer, nil
}

// NewAnalyzer builds the sentiment analyzer, loading an override lexicon
// when one is configured.
func NewAnalyzer(cfg *config.Config) (*sentiment.Analyzer, error) {
	opts := cfg.SentimentOptions()

	if cfg.Sentiment.LexiconFile != "" {
		lex, err := sentiment.LoadLexiconFile(cfg.Sentiment.LexiconFile)
		if err != nil {
			return nil, err
		}
		opts.Lexicon = lex
		slog.Info("[Bootstrap] Loaded lexicon",
			slog.String("file", cfg.Sentiment.LexiconFile),
			slog.Int("words", lex.Size()))
	}

	return sentiment.New(opts)
}

func NewClassifier(cfg *config.Config) (*topics.Classifier, error) {
	if cfg.Topics.File == "" {
		return topics.NewClassifier(topics.DefaultTable()), nil
	}

	table, err := topics.LoadTableFile(cfg.Topics.File)
	if err != nil {
		return nil, err
	}
	slog.Info("[Bootstrap] Loaded topic table",
		slog.String("file", cfg.Topics.File),
		slog.Int("topics", len(table.Topics)))
	return topics.NewClassifier(table), nil
}

// NewSessionStore returns a Valkey store when an address is configured and
// an in-process store otherwise. The closer releases the connection.
func NewSessionStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	if cfg.Valkey.Address == "" {
		slog.Info("[Bootstrap] Using in-memory session store")
		return session.NewMemoryStore(), func() {}, nil
	}

	store, err := session.NewValkeyStore(ctx, session.ValkeyConfig{
		Address:  cfg.Valkey.Address,
		Password: cfg.Valkey.Password,
		TLS:      cfg.Valkey.TLS,
		TTL:      cfg.Session.TTL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return store, store.Close, nil
}
