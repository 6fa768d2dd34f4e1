package resume

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yangzhijiany/update-resume-skills/internal/config"
	errs "github.com/yangzhijiany/update-resume-skills/pkg/errors"
	"github.com/yangzhijiany/update-resume-skills/pkg/types"
)

var testStyle = config.Style{
	FontName:     "Times New Roman",
	FontSizePt:   10.5,
	SpaceAfterPt: 6,
	LineSpacing:  1.0,
}

var testSkills = types.SkillSet{
	Programming: []string{"Go", "Docker"},
	Development: []string{"PostgreSQL"},
	AI:          []string{"Pandas"},
}

func writeResume(t *testing.T, content string) (inPath, outPath string) {
	t.Helper()
	dir := t.TempDir()
	inPath = filepath.Join(dir, "resume.md")
	outPath = filepath.Join(dir, "resume_updated.md")
	require.NoError(t, os.WriteFile(inPath, []byte(content), 0644))
	return inPath, outPath
}

func TestUpdateReplacesSkillsBlock(t *testing.T) {
	in, out := writeResume(t, `# Jane Doe

## SKILLS
Old line one
Old line two

## EXPERIENCE
Acme Corp
`)

	require.NoError(t, FileWriter{}.Update(in, out, testSkills, testStyle))

	got, err := os.ReadFile(out)
	require.NoError(t, err)

	want := `# Jane Doe

## SKILLS
Programming & Frameworks: Go, Docker
Software Development: PostgreSQL
AI & Data Science: Pandas
## EXPERIENCE
Acme Corp
`
	assert.Equal(t, want, string(got))
}

func TestUpdateStopsAtNextHeadingWithoutBlankLine(t *testing.T) {
	in, out := writeResume(t, `SKILLS
stale content
EDUCATION
Some school
`)

	require.NoError(t, FileWriter{}.Update(in, out, testSkills, testStyle))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "EDUCATION\nSome school")
	assert.NotContains(t, string(got), "stale content")
}

func TestUpdateMissingHeading(t *testing.T) {
	in, out := writeResume(t, "# Jane Doe\n\n## EXPERIENCE\n")

	err := FileWriter{}.Update(in, out, testSkills, testStyle)
	require.Error(t, err)

	var de *errs.DocumentWriteError
	assert.ErrorAs(t, err, &de)
}

func TestUpdateMissingInputFile(t *testing.T) {
	err := FileWriter{}.Update(filepath.Join(t.TempDir(), "nope.md"), "out.md", testSkills, testStyle)
	assert.Error(t, err)
}

func TestUpdateExportsPDF(t *testing.T) {
	in, out := writeResume(t, "SKILLS\nold\n")

	require.NoError(t, FileWriter{}.Update(in, out, testSkills, testStyle))

	info, err := os.Stat(PDFPath(out))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestLooksLikeHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"## EXPERIENCE", true},
		{"EDUCATION", true},
		{"EDUCATION:", true},
		{"Built a service in Go", false},
		{"", false},
		{"A VERY LONG ALL CAPS LINE THAT GOES WELL PAST THE LIMIT", false},
		{"C++", true}, // short, no lowercase letters
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, looksLikeHeading(tt.line), "line %q", tt.line)
	}
}

func TestPDFPath(t *testing.T) {
	assert.Equal(t, "resume.pdf", PDFPath("resume.md"))
	assert.Equal(t, "out/cv.pdf", PDFPath("out/cv.docx"))
	assert.Equal(t, "resume.pdf", PDFPath("resume"))
}

func TestSkillLines(t *testing.T) {
	lines := SkillLines(testSkills)
	require.Len(t, lines, 3)
	assert.Equal(t, "Programming & Frameworks: Go, Docker", lines[0])
	assert.Equal(t, "Software Development: PostgreSQL", lines[1])
	assert.Equal(t, "AI & Data Science: Pandas", lines[2])
}
