package main

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/spacesedan/civicpulse/internal/bootstrap"
	"github.com/spacesedan/civicpulse/internal/models"
	"github.com/spacesedan/civicpulse/internal/sentiment"
)

const maxLineSize = 1 << 20

func main() {
	cfg, closer, err := bootstrap.Init()
	if err != nil {
		slog.Error("[Main] Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closer.Close()

	analyzer, err := bootstrap.NewAnalyzer(cfg)
	if err != nil {
		slog.Error("[Main] Failed to build sentiment analyzer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	classifier, err := bootstrap.NewClassifier(cfg)
	if err != nil {
		slog.Error("[Main] Failed to load topic table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	inputs := os.Args[1:]
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			slog.Error("[Main] Failed to read input", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	results := make([]models.SentimentResult, 0, len(inputs))

	for _, text := range inputs {
		topic, _ := classifier.Classify(text)
		analyzed := models.AnalyzedText{
			Text:      text,
			Topic:     topic,
			Keywords:  sentiment.ExtractKeywords(text, sentiment.DefaultKeywordCount),
			Sentiment: analyzer.Analyze(text),
		}
		results = append(results, analyzed.Sentiment)

		if err := enc.Encode(analyzed); err != nil {
			slog.Error("[Main] Failed to write result", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	summary := sentiment.Summarize(results)
	slog.Info("[Main] Analyzed feedback",
		slog.Int("total", summary.Total),
		slog.Int("positive", summary.Positive),
		slog.Int("neutral", summary.Neutral),
		slog.Int("negative", summary.Negative),
		slog.Float64("mean_score", summary.MeanScore))

	if err := enc.Encode(struct {
		Summary models.SentimentSummary `json:"summary"`
	}{summary}); err != nil {
		slog.Error("[Main] Failed to write summary", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
