package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/yangzhijiany/update-resume-skills/internal/config"
	"github.com/yangzhijiany/update-resume-skills/internal/fetcher"
	"github.com/yangzhijiany/update-resume-skills/internal/llm"
	"github.com/yangzhijiany/update-resume-skills/internal/pipeline"
	"github.com/yangzhijiany/update-resume-skills/internal/resume"
	"github.com/yangzhijiany/update-resume-skills/pkg/logger"
)

func main() {
	logger.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Warn("Error loading .env file", "error", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: update-skills <job-posting-url>")
		os.Exit(1)
	}
	url := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	baseline, err := config.Baseline(cfg.SkillsFile)
	if err != nil {
		slog.Error("Failed to load baseline skills", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	classifier, closeFn, err := newClassifier(ctx, cfg)
	if err != nil {
		slog.Error("Failed to create LLM client", "error", err)
		os.Exit(1)
	}
	defer closeFn()

	p := pipeline.New(fetcher.New(), classifier, resume.FileWriter{}, baseline, cfg)

	result, err := p.Run(ctx, url)
	if err != nil {
		slog.Error("Pipeline failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("=== Final Skills Written to Resume ===")
	fmt.Println(result.Summary())
}

func newClassifier(ctx context.Context, cfg *config.Config) (llm.Classifier, func(), error) {
	switch cfg.Provider {
	case "openai":
		return llm.NewOpenAI(cfg.OpenAIKey), func() {}, nil
	default:
		gemini, err := llm.NewGemini(ctx, cfg.GeminiKey)
		if err != nil {
			return nil, nil, err
		}
		return gemini, gemini.Close, nil
	}
}
