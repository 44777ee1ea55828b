package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spacesedan/civicpulse/internal/sentiment"
)

type Logging struct {
	Level slog.Level
	File  string
}

type Sentiment struct {
	VaderWeight    float64
	PolarityWeight float64
	Deadband       float64
	StripMarkdown  bool
	LexiconFile    string
}

type Topics struct {
	File string
}

type Valkey struct {
	Address  string
	Password string
	TLS      bool
}

type Session struct {
	TTL time.Duration
}

type Config struct {
	Env       string
	Logging   Logging
	Sentiment Sentiment
	Topics    Topics
	Valkey    Valkey
	Session   Session
}

// Load reads the configuration from the environment. Call LoadEnv first to
// pull in the env file.
func Load() (*Config, error) {
	var errs []string
	record := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	c := &Config{Env: AppEnv()}

	level, err := getEnvAsLevel("LOG_LEVEL", slog.LevelInfo)
	record(err)
	c.Logging = Logging{Level: level, File: os.Getenv("LOG_FILE")}

	c.Sentiment.VaderWeight, err = getEnvAsFloat("SENTIMENT_VADER_WEIGHT", sentiment.DefaultVaderWeight)
	record(err)
	c.Sentiment.PolarityWeight, err = getEnvAsFloat("SENTIMENT_POLARITY_WEIGHT", sentiment.DefaultPolarityWeight)
	record(err)
	c.Sentiment.Deadband, err = getEnvAsFloat("SENTIMENT_DEADBAND", sentiment.DefaultDeadband)
	record(err)
	c.Sentiment.StripMarkdown, err = getEnvAsBool("SENTIMENT_STRIP_MARKDOWN", false)
	record(err)
	c.Sentiment.LexiconFile = os.Getenv("LEXICON_FILE")

	c.Topics.File = os.Getenv("TOPICS_FILE")

	c.Valkey.Address = os.Getenv("VALKEY_INIT_ADDRESS")
	c.Valkey.Password = os.Getenv("VALKEY_PASSWORD")
	c.Valkey.TLS, err = getEnvAsBool("VALKEY_TLS", false)
	record(err)

	c.Session.TTL, err = getEnvAsDuration("SESSION_TTL", 24*time.Hour)
	record(err)

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if err := c.SentimentOptions().Validate(); err != nil {
		return err
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("SESSION_TTL must be >= 0, got %s", c.Session.TTL)
	}
	// Session expiry has second granularity; anything shorter would expire
	// the session immediately.
	if c.Session.TTL > 0 && c.Session.TTL < time.Second {
		return fmt.Errorf("SESSION_TTL must be 0 or at least 1s, got %s", c.Session.TTL)
	}
	return nil
}

// SentimentOptions converts the sentiment section to analyzer options. The
// lexicon file, if any, is loaded by the caller.
func (c *Config) SentimentOptions() sentiment.Options {
	return sentiment.Options{
		VaderWeight:    c.Sentiment.VaderWeight,
		PolarityWeight: c.Sentiment.PolarityWeight,
		Deadband:       c.Sentiment.Deadband,
		StripMarkdown:  c.Sentiment.StripMarkdown,
	}
}

func getEnvAsFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnvAsBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getEnvAsDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getEnvAsLevel(key string, def slog.Level) (slog.Level, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return level, nil
}
