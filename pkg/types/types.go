package types

// =============== Skill TYPES ===============

// SkillSet holds the three resume skill categories in display order.
// Each list is ordered and duplicate-free; the per-category capacity is
// enforced by the merge engine, not here.
type SkillSet struct {
	Programming []string `json:"programming" yaml:"programming"`
	Development []string `json:"development" yaml:"development"`
	AI          []string `json:"ai" yaml:"ai"`
}

// Empty returns a SkillSet with all three categories present but empty.
// The pipeline substitutes this when classification fails so the merge
// degrades to a baseline pass-through.
func Empty() SkillSet {
	return SkillSet{
		Programming: []string{},
		Development: []string{},
		AI:          []string{},
	}
}

// Resume line headings for each category.
const (
	LabelProgramming = "Programming & Frameworks"
	LabelDevelopment = "Software Development"
	LabelAI          = "AI & Data Science"
)
