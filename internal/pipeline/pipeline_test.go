package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yangzhijiany/update-resume-skills/internal/config"
	errs "github.com/yangzhijiany/update-resume-skills/pkg/errors"
	"github.com/yangzhijiany/update-resume-skills/pkg/types"
)

type fakeFetcher struct {
	text string
	err  error
}

func (f fakeFetcher) FetchDescription(ctx context.Context, url string) (string, error) {
	return f.text, f.err
}

type fakeClassifier struct {
	skills types.SkillSet
	err    error
}

func (f fakeClassifier) Classify(ctx context.Context, jobText string) (types.SkillSet, error) {
	return f.skills, f.err
}

type captureWriter struct {
	written *types.SkillSet
	err     error
}

func (w captureWriter) Update(inputPath, outputPath string, skills types.SkillSet, style config.Style) error {
	if w.written != nil {
		*w.written = skills
	}
	return w.err
}

func testConfig() *config.Config {
	return &config.Config{
		InputResume:  "resume.md",
		OutputResume: "resume_updated.md",
	}
}

func baseline() types.SkillSet {
	return types.SkillSet{
		Programming: []string{"Java", "Python"},
		Development: []string{"MySQL"},
		AI:          []string{"R"},
	}
}

func TestRunMergesExtractedSkills(t *testing.T) {
	var written types.SkillSet
	p := New(
		fakeFetcher{text: "We need Go and Kubernetes."},
		fakeClassifier{skills: types.SkillSet{
			Programming: []string{"Go", "Java"},
			Development: []string{"Kubernetes"},
			AI:          []string{},
		}},
		captureWriter{written: &written},
		baseline(),
		testConfig(),
	)

	result, err := p.Run(context.Background(), "https://example.com/job")
	require.NoError(t, err)

	assert.Equal(t, []string{"Java", "Python", "Go"}, written.Programming)
	assert.Equal(t, []string{"MySQL", "Kubernetes"}, written.Development)
	assert.Equal(t, []string{"R"}, written.AI)
	assert.Equal(t, written, result.Skills)
	assert.Equal(t, "resume_updated.md", result.OutputPath)
}

// A classifier failure degrades to writing the baseline unchanged.
func TestRunClassifierFailureKeepsBaseline(t *testing.T) {
	var written types.SkillSet
	p := New(
		fakeFetcher{text: "some description"},
		fakeClassifier{err: errors.New("model unavailable")},
		captureWriter{written: &written},
		baseline(),
		testConfig(),
	)

	_, err := p.Run(context.Background(), "https://example.com/job")
	require.NoError(t, err)
	assert.Equal(t, baseline(), written)
}

func TestRunExtractionFailureIsFatal(t *testing.T) {
	p := New(
		fakeFetcher{err: &errs.ExtractionError{URL: "https://example.com/job"}},
		fakeClassifier{},
		captureWriter{},
		baseline(),
		testConfig(),
	)

	_, err := p.Run(context.Background(), "https://example.com/job")
	require.Error(t, err)
	assert.True(t, errs.IsExtraction(err))
	assert.Contains(t, err.Error(), "could not extract description")
}

func TestRunWriterFailureIsFatal(t *testing.T) {
	p := New(
		fakeFetcher{text: "description"},
		fakeClassifier{skills: types.Empty()},
		captureWriter{err: &errs.DocumentWriteError{Path: "resume.md", Err: errors.New("disk full")}},
		baseline(),
		testConfig(),
	)

	_, err := p.Run(context.Background(), "https://example.com/job")
	require.Error(t, err)

	var de *errs.DocumentWriteError
	assert.ErrorAs(t, err, &de)
}

func TestResultSummary(t *testing.T) {
	r := &Result{Skills: types.SkillSet{
		Programming: []string{"Go"},
		Development: []string{"AWS"},
		AI:          []string{"Pandas"},
	}}

	assert.Equal(t,
		"Programming & Frameworks: Go\nSoftware Development: AWS\nAI & Data Science: Pandas",
		r.Summary())
}
