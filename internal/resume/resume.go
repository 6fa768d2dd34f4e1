// Package resume rewrites the SKILLS section of a text resume and exports a
// PDF copy of the result.
package resume

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/yangzhijiany/update-resume-skills/internal/config"
	errs "github.com/yangzhijiany/update-resume-skills/pkg/errors"
	"github.com/yangzhijiany/update-resume-skills/pkg/types"
)

// Writer updates the skills section of a resume document.
type Writer interface {
	Update(inputPath, outputPath string, skills types.SkillSet, style config.Style) error
}

// FileWriter edits Markdown or plain-text resumes on disk.
type FileWriter struct{}

// Update locates the SKILLS heading, removes the old block under it (up to a
// blank line, which is consumed, or the next heading, which is kept), inserts
// the three category lines, writes outputPath and exports a PDF next to it.
// A PDF failure is logged but does not fail the update.
func (FileWriter) Update(inputPath, outputPath string, skills types.SkillSet, style config.Style) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return &errs.DocumentWriteError{Path: inputPath, Err: err}
	}

	lines := strings.Split(string(data), "\n")
	idx := findSkillsHeading(lines)
	if idx < 0 {
		return &errs.DocumentWriteError{Path: inputPath,
			Err: fmt.Errorf("could not find SKILLS heading (must be exactly %q)", "SKILLS")}
	}

	updated := replaceSkillsBlock(lines, idx, SkillLines(skills))

	out := strings.Join(updated, "\n")
	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return &errs.DocumentWriteError{Path: outputPath, Err: err}
	}
	slog.Info("resume updated", "component", "resume", "path", outputPath)

	pdfPath := PDFPath(outputPath)
	if err := ExportPDF(out, pdfPath, style); err != nil {
		slog.Warn("PDF export failed", "component", "resume", "path", pdfPath, "error", err)
	} else {
		slog.Info("PDF exported", "component", "resume", "path", pdfPath)
	}

	return nil
}

// SkillLines renders the three category lines written under the heading.
func SkillLines(skills types.SkillSet) []string {
	return []string{
		fmt.Sprintf("%s: %s", types.LabelProgramming, strings.Join(skills.Programming, ", ")),
		fmt.Sprintf("%s: %s", types.LabelDevelopment, strings.Join(skills.Development, ", ")),
		fmt.Sprintf("%s: %s", types.LabelAI, strings.Join(skills.AI, ", ")),
	}
}

// findSkillsHeading returns the index of the line whose heading text is
// exactly "SKILLS", or -1.
func findSkillsHeading(lines []string) int {
	for i, line := range lines {
		if headingText(line) == "SKILLS" {
			return i
		}
	}
	return -1
}

// replaceSkillsBlock deletes the content block after the heading at idx and
// splices in the replacement lines.
func replaceSkillsBlock(lines []string, idx int, replacement []string) []string {
	end := idx + 1
	for end < len(lines) {
		txt := strings.TrimSpace(lines[end])
		if txt == "" {
			end++ // the terminating blank line is removed too
			break
		}
		if looksLikeHeading(lines[end]) {
			break
		}
		end++
	}

	updated := make([]string, 0, len(lines)+len(replacement))
	updated = append(updated, lines[:idx+1]...)
	updated = append(updated, replacement...)
	updated = append(updated, lines[end:]...)
	return updated
}

// headingText strips Markdown heading markers and surrounding space.
func headingText(line string) string {
	txt := strings.TrimSpace(line)
	txt = strings.TrimLeft(txt, "#")
	return strings.TrimSpace(txt)
}

// looksLikeHeading reports whether a line starts a new resume section:
// a Markdown heading, a short all-caps line, or a short all-caps label
// ending with a colon.
func looksLikeHeading(line string) bool {
	txt := strings.TrimSpace(line)
	if txt == "" {
		return false
	}
	if strings.HasPrefix(txt, "#") {
		return true
	}
	if isUpper(txt) && len(txt) <= 40 {
		return true
	}
	if strings.HasSuffix(txt, ":") && isUpper(txt[:len(txt)-1]) && len(txt) <= 41 {
		return true
	}
	return false
}

// isUpper mirrors Python's str.isupper: at least one cased rune and no
// lowercase ones.
func isUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// PDFPath is where the exported PDF lands for a given output document.
func PDFPath(outputPath string) string {
	if i := strings.LastIndex(outputPath, "."); i > 0 {
		return outputPath[:i] + ".pdf"
	}
	return outputPath + ".pdf"
}
