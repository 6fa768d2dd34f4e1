package llm

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/yangzhijiany/update-resume-skills/internal/cleaner"
	"github.com/yangzhijiany/update-resume-skills/pkg/types"
)

// Classifier turns job description text into a categorized skill set.
// Implementations call a live model; tests inject a fake.
type Classifier interface {
	Classify(ctx context.Context, jobText string) (types.SkillSet, error)
}

const classifySystemPrompt = "You are a resume skill optimizer. Extract and classify only skills explicitly mentioned in the job description."

func classifyPrompt(jobText string) string {
	return fmt.Sprintf(`From the following job description, extract skills and classify them.
Categories:
- programming: programming languages, frameworks, toolchains (e.g., Java, Python, React, Docker, Git)
- development: databases, backend services, cloud services, devops (e.g., MySQL, MongoDB, AWS, Redis, Spring Boot)
- ai: AI / Data Science / statistical modeling tools (e.g., R, Pandas, Regression analysis, Tableau, A/B Testing)

Rules:
1. Keep only concrete technical skills explicitly mentioned in the job description.
2. Remove vague or overly broad terms (e.g., "backend technologies", "cloud platform").
3. No more than 9 skills per category.
4. Output valid JSON only, with the keys "programming", "development" and "ai", each an array of strings. No explanations.

Job description:
%s`, jobText)
}

// parseSkills decodes a model reply into a SkillSet. Code fences are stripped
// first; the three category arrays are then read individually so extra keys
// or a missing category never fail the parse.
func parseSkills(response string) (types.SkillSet, error) {
	body := cleaner.LlmResponse(response)
	if !gjson.Valid(body) {
		return types.SkillSet{}, fmt.Errorf("model response is not valid JSON: %.100s", body)
	}

	return types.SkillSet{
		Programming: stringList(gjson.Get(body, "programming")),
		Development: stringList(gjson.Get(body, "development")),
		AI:          stringList(gjson.Get(body, "ai")),
	}, nil
}

func stringList(result gjson.Result) []string {
	items := result.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}
