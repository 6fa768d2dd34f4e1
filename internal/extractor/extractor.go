// Package extractor pulls job description text out of raw HTML using the
// per-platform container rules, with a whole-document fallback.
package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/yangzhijiany/update-resume-skills/internal/selector"
)

// Extract returns the job description text for html fetched from url.
//
// The first container rule whose element exists wins and its text is returned
// immediately, even when that text is empty. Only the whole-document fallback
// checks for non-empty output. An empty string is a valid "nothing found"
// result; the caller decides whether to escalate.
func Extract(html string, url string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, rule := range selector.Lookup(url) {
		sel := doc.Find(cssSelector(rule)).First()
		if sel.Length() > 0 {
			return normalize(sel.Text())
		}
	}

	return documentText(doc)
}

// cssSelector renders a ContainerRule as a goquery selector. Class rules use
// the `.class` form so token containment matches, mirroring how ATS pages mix
// extra classes onto the description container.
func cssSelector(rule selector.ContainerRule) string {
	switch {
	case rule.Attr == "":
		return rule.Tag
	case rule.Attr == "class":
		return rule.Tag + "." + rule.Value
	default:
		return fmt.Sprintf(`%s[%s=%q]`, rule.Tag, rule.Attr, rule.Value)
	}
}

// documentText extracts text from the whole page: body first, then the full
// document if the body is empty. Returns "" when nothing is found.
func documentText(doc *goquery.Document) string {
	if text := normalize(doc.Find("body").Text()); text != "" {
		return text
	}
	return normalize(doc.Selection.Text())
}

// normalize joins all text content with single spaces and trims the ends.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
