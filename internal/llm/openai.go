package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/yangzhijiany/update-resume-skills/internal/cleaner"
	"github.com/yangzhijiany/update-resume-skills/pkg/types"
)

// OpenAI classifies skills with an OpenAI chat model.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

func (o *OpenAI) Classify(ctx context.Context, jobText string) (types.SkillSet, error) {
	logger := slog.With("component", "llm", "operation", "classify", "provider", "openai")

	relevantContent := cleaner.HTML(jobText)
	logger.Debug("cleaned job text", "original_length", len(jobText), "cleaned_length", len(relevantContent))

	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	startTime := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: classifyPrompt(relevantContent)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		logger.Error("classification failed", "error", err, "duration_ms", time.Since(startTime).Milliseconds())
		return types.SkillSet{}, fmt.Errorf("skill classification failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return types.SkillSet{}, fmt.Errorf("empty response from OpenAI API")
	}
	logger.Info("received LLM response",
		"duration_ms", time.Since(startTime).Milliseconds(),
		"response_length", len(resp.Choices[0].Message.Content))

	skills, err := parseSkills(resp.Choices[0].Message.Content)
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
