// Package pipeline runs the full update: fetch the job description, classify
// its skills, merge them with the resume baseline and rewrite the resume.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yangzhijiany/update-resume-skills/internal/config"
	"github.com/yangzhijiany/update-resume-skills/internal/llm"
	"github.com/yangzhijiany/update-resume-skills/internal/merge"
	"github.com/yangzhijiany/update-resume-skills/internal/resume"
	"github.com/yangzhijiany/update-resume-skills/pkg/types"
)

// Fetcher produces job description text for a URL.
type Fetcher interface {
	FetchDescription(ctx context.Context, url string) (string, error)
}

type Pipeline struct {
	fetcher    Fetcher
	classifier llm.Classifier
	writer     resume.Writer
	baseline   types.SkillSet
	cfg        *config.Config
}

// Result is what one run produced.
type Result struct {
	JobText    string
	Skills     types.SkillSet
	OutputPath string
}

func New(fetcher Fetcher, classifier llm.Classifier, writer resume.Writer, baseline types.SkillSet, cfg *config.Config) *Pipeline {
	return &Pipeline{
		fetcher:    fetcher,
		classifier: classifier,
		writer:     writer,
		baseline:   baseline,
		cfg:        cfg,
	}
}

// Run executes one update for url. Extraction and resume-write failures are
// fatal; a classification failure degrades to keeping the baseline skills.
func (p *Pipeline) Run(ctx context.Context, url string) (*Result, error) {
	logger := slog.With("component", "pipeline")

	logger.Info("fetching job description", "url", url)
	jobText, err := p.fetcher.FetchDescription(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("could not extract description: %w", err)
	}
	logger.Info("job description fetched", "length", len(jobText))

	extracted, err := p.classifier.Classify(ctx, jobText)
	if err != nil {
		logger.Warn("classification failed, keeping baseline skills", "error", err)
		extracted = types.Empty()
	}

	final := merge.Sets(p.baseline, extracted)
	logger.Info("skills merged",
		"programming", len(final.Programming),
		"development", len(final.Development),
		"ai", len(final.AI))

	if err := p.writer.Update(p.cfg.InputResume, p.cfg.OutputResume, final, p.cfg.Style); err != nil {
		return nil, err
	}

	return &Result{
		JobText:    jobText,
		Skills:     final,
		OutputPath: p.cfg.OutputResume,
	}, nil
}

// Summary formats the final skills as the three resume lines, for CLI output
// and bot replies.
func (r *Result) Summary() string {
	return strings.Join(resume.SkillLines(r.Skills), "\n")
}
