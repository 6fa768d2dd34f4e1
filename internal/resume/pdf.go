package resume

import (
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/yangzhijiany/update-resume-skills/internal/config"
)

const ptToMM = 0.3528

// ExportPDF renders the resume text to a simple single-column PDF. Headings
// get a bold, slightly larger face; "Label: rest" lines get a bold label.
// This is a plain layout, not a full Markdown renderer.
func ExportPDF(content string, outPath string, style config.Style) error {
	family := fontFamily(style.FontName)
	size := style.FontSizePt
	lineHeight := size * ptToMM * 1.4 * style.LineSpacing
	spaceAfter := style.SpaceAfterPt * ptToMM

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont(family, "", size)
	pdf.AddPage()

	for _, line := range strings.Split(content, "\n") {
		txt := strings.TrimSpace(line)
		if txt == "" {
			pdf.Ln(lineHeight)
			continue
		}

		if strings.HasPrefix(txt, "#") {
			heading := strings.TrimSpace(strings.TrimLeft(txt, "#"))
			if heading == "" {
				continue
			}
			pdf.SetFont(family, "B", size+2)
			pdf.CellFormat(0, lineHeight+2, heading, "", 1, "L", false, 0, "")
			pdf.SetFont(family, "", size)
			pdf.Ln(spaceAfter)
			continue
		}

		if label, rest, ok := splitLabel(txt); ok {
			pdf.SetFont(family, "B", size)
			pdf.CellFormat(pdf.GetStringWidth(label+": ")+1, lineHeight, label+":", "", 0, "L", false, 0, "")
			pdf.SetFont(family, "", size)
			pdf.MultiCell(0, lineHeight, strings.TrimSpace(rest), "", "L", false)
		} else {
			pdf.MultiCell(0, lineHeight, txt, "", "L", false)
		}
		pdf.Ln(spaceAfter)
	}

	return pdf.OutputFileAndClose(outPath)
}

// splitLabel detects "Label: rest" lines with a short label, the shape of the
// skill lines this package writes.
func splitLabel(line string) (label, rest string, ok bool) {
	i := strings.Index(line, ":")
	if i <= 0 || i > 40 {
		return "", "", false
	}
	return line[:i], line[i+1:], true
}

// fontFamily maps a configured font name onto one of gofpdf's core families.
func fontFamily(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "times"):
		return "Times"
	case strings.Contains(lower, "courier"):
		return "Courier"
	default:
		return "Helvetica"
	}
}
