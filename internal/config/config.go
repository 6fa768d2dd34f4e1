// Package config loads environment configuration and the baseline skill set.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yangzhijiany/update-resume-skills/pkg/types"
)

// Style is the paragraph formatting applied to the rewritten skill lines.
// Passed explicitly into the resume writer; nothing reads it from globals.
type Style struct {
	FontName     string
	FontSizePt   float64
	SpaceAfterPt float64
	LineSpacing  float64
}

type Config struct {
	Provider     string // "gemini" or "openai"
	GeminiKey    string
	OpenAIKey    string
	InputResume  string
	OutputResume string
	SkillsFile   string
	Style        Style
}

// Load reads configuration from the environment. godotenv is expected to have
// populated it from .env already (done in main).
func Load() (*Config, error) {
	cfg := &Config{
		Provider:     strings.ToLower(envOr("LLM_PROVIDER", "gemini")),
		GeminiKey:    os.Getenv("GEMINI_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		InputResume:  os.Getenv("INPUT_RESUME"),
		OutputResume: os.Getenv("OUTPUT_RESUME"),
		SkillsFile:   os.Getenv("SKILLS_FILE"),
		Style: Style{
			FontName:     envOr("FONT_NAME", "Times New Roman"),
			FontSizePt:   envFloat("FONT_SIZE_PT", 10.5),
			SpaceAfterPt: envFloat("SPACE_AFTER_PT", 6),
			LineSpacing:  lineSpacing(envOr("LINE_SPACING_RULE", "SINGLE")),
		},
	}

	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_KEY not set")
		}
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want gemini or openai)", cfg.Provider)
	}

	if cfg.InputResume == "" || cfg.OutputResume == "" {
		return nil, fmt.Errorf("INPUT_RESUME and OUTPUT_RESUME must be set")
	}

	return cfg, nil
}

// Baseline returns the resume's current skills: from the YAML file when one is
// configured, the compiled-in default otherwise.
func Baseline(path string) (types.SkillSet, error) {
	if path == "" {
		return DefaultBaseline(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.SkillSet{}, fmt.Errorf("failed to read skills file: %w", err)
	}

	var skills types.SkillSet
	if err := yaml.Unmarshal(data, &skills); err != nil {
		return types.SkillSet{}, fmt.Errorf("failed to parse skills file %s: %w", path, err)
	}

	return skills, nil
}

// DefaultBaseline is the skill set currently on the resume.
func DefaultBaseline() types.SkillSet {
	return types.SkillSet{
		Programming: []string{"Java", "C/C++", "Python", "Vue.js", "React", "Docker", "Git"},
		Development: []string{"MySQL", "MongoDB", "Firebase", "Spring Boot", "Redis"},
		AI:          []string{"RAG", "R", "Pandas", "Regression analysis", "A/B Testing", "Tableau"},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func lineSpacing(rule string) float64 {
	switch strings.ToUpper(rule) {
	case "DOUBLE":
		return 2.0
	case "ONE_POINT_FIVE":
		return 1.5
	default:
		return 1.0
	}
}
