package scraper

import (
	"regexp"
	"strings"
	"unicode"
)

// Structural selectors tried in order. Funda has renamed these markers more
// than once, so none of them is treated as authoritative.
var addressSelectors = []string{
	"h1",
	`[data-test-id="street-name-house-number"]`,
	".object-header__title",
	".fd-color-dark-1",
	`h1[class*="object"]`,
	".object-address",
}

// Dutch "street + number + postal code + city" shapes, strict first.
var addressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[A-Za-z\s]+\s+\d+[A-Za-z]?[,\s]+\d{4}\s*[A-Z]{2}[,\s]+[A-Za-z\s]+`),
	regexp.MustCompile(`[A-Za-z\s]+\s+\d+[A-Za-z]?[,\s]+[A-Za-z\s]+`),
}

func addressStrategies() []Strategy {
	return []Strategy{
		addressFromSelectors,
		addressFromTitle,
		addressFromText,
	}
}

// addressFromSelectors walks the known structural selectors and accepts the
// first element whose text looks like an address rather than a heading.
func addressFromSelectors(p *Page) (string, bool) {
	for _, selector := range addressSelectors {
		text := strings.TrimSpace(p.Doc.Find(selector).First().Text())
		if looksLikeAddress(text) {
			return text, true
		}
	}
	return "", false
}

// addressFromTitle takes the page title prefix before the first hyphen,
// e.g. "Wageningseberg 4, 3524 LR Utrecht - Funda".
func addressFromTitle(p *Page) (string, bool) {
	title := p.Doc.Find("title").First().Text()
	prefix, _, _ := strings.Cut(title, "-")
	prefix = strings.TrimSpace(prefix)
	if len(prefix) > 10 {
		return prefix, true
	}
	return "", false
}

// addressFromText scans the full page text for Dutch address shapes and
// accepts the first reasonably sized match.
func addressFromText(p *Page) (string, bool) {
	text := p.Text()
	for _, pattern := range addressPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if len(match) > 15 && len(match) < 100 {
				return strings.TrimSpace(match), true
			}
		}
	}
	return "", false
}

// looksLikeAddress filters out non-address headings: real addresses carry a
// house number and are longer than a bare section title.
func looksLikeAddress(text string) bool {
	if len(text) <= 10 {
		return false
	}
	for _, r := range text {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
