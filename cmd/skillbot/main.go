package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/yangzhijiany/update-resume-skills/internal/bot"
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
	slog.Info("Starting bot...")

	botToken := os.Getenv("DISCORD_BOT_TOKEN")
	if botToken == "" {
		slog.Error("Bot token not found in environment variables")
		os.Exit(1)
	}

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

	var classifier llm.Classifier
	switch cfg.Provider {
	case "openai":
		classifier = llm.NewOpenAI(cfg.OpenAIKey)
	default:
		gemini, err := llm.NewGemini(ctx, cfg.GeminiKey)
		if err != nil {
			slog.Error("Failed to create Gemini client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		classifier = gemini
	}

	p := pipeline.New(fetcher.New(), classifier, resume.FileWriter{}, baseline, cfg)

	b, err := bot.New(botToken, p)
	if err != nil {
		slog.Error("Error creating Discord session", "error", err)
		os.Exit(1)
	}
	if err := b.Start(); err != nil {
		slog.Error("Error opening Discord session", "error", err)
		os.Exit(1)
	}
	defer b.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	slog.Info("Shutting down")
}
