package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/yangzhijiany/update-resume-skills/internal/cleaner"
	"github.com/yangzhijiany/update-resume-skills/pkg/types"
)

const classifyTimeout = 30 * time.Second

// Gemini classifies skills with a Gemini model.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  "gemini-2.0-flash",
	}, nil
}

func (g *Gemini) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

func (g *Gemini) Classify(ctx context.Context, jobText string) (types.SkillSet, error) {
	logger := slog.With("component", "llm", "operation", "classify", "provider", "gemini")

	relevantContent := cleaner.HTML(jobText)
	logger.Debug("cleaned job text", "original_length", len(jobText), "cleaned_length", len(relevantContent))

	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	startTime := time.Now()
	content, err := g.generate(ctx, classifySystemPrompt, classifyPrompt(relevantContent))
	if err != nil {
		logger.Error("classification failed", "error", err, "duration_ms", time.Since(startTime).Milliseconds())
		return types.SkillSet{}, fmt.Errorf("skill classification failed: %w", err)
	}
	logger.Info("received LLM response",
		"duration_ms", time.Since(startTime).Milliseconds(),
		"response_length", len(content))

	skills, err := parseSkills(content)
	if err != nil {
		logger.Error("JSON parsing failed", "error", err)
		return types.SkillSet{}, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	logger.Info("classification completed",
		"programming", len(skills.Programming),
		"development", len(skills.Development),
		"ai", len(skills.AI))

	return skills, nil
}

func (g *Gemini) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)

	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	prompt := []genai.Part{genai.Text(userPrompt)}

	resp, err := model.GenerateContent(ctx, prompt...)
	if err != nil {
		return "", fmt.Errorf("Gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini API")
	}
	response, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format from Gemini API")
	}

	return string(response), nil
}
