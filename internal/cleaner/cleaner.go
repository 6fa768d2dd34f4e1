// Package cleaner strips boilerplate from HTML before prompting the model and
// unwraps code fences from model responses.
package cleaner

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	tagRe        = regexp.MustCompile("<[^>]*>")
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// HTML reduces a page to its readable text blocks. Navigation, scripts and
// other chrome are dropped; paragraph-level elements are joined with blank
// lines. Plain text passes through with whitespace collapsed.
func HTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapse(tagRe.ReplaceAllString(html, " "))
	}
	doc.Find("script, style, nav, header, footer, iframe, noscript").Remove()
	doc.Find(".menu, .navigation, .social, .banner, .ads, .cookie, .popup").Remove()

	var blocks []string
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(i int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	if len(blocks) > 0 {
		return strings.Join(blocks, "\n\n")
	}

	if bodyText := strings.TrimSpace(doc.Find("body").Text()); bodyText != "" {
		return collapse(bodyText)
	}
	return collapse(doc.Text())
}

// LlmResponse strips a surrounding markdown code fence from a model reply so
// the remainder parses as JSON. Replies without fences pass through trimmed.
func LlmResponse(response string) string {
	if !strings.Contains(response, "```") {
		return strings.TrimSpace(response)
	}

	start := -1
	if strings.Contains(response, "```json") {
		start = strings.Index(response, "```json") + 7
	} else {
		start = strings.Index(response, "```") + 3
	}

	end := strings.LastIndex(response, "```")
	if start != -1 && end != -1 && end > start {
		return strings.TrimSpace(response[start:end])
	}

	return strings.TrimSpace(response)
}

func collapse(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
