package scraper

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// pricePattern ties a currency-amount regex to the qualifier appended to the
// formatted price. Qualifier variants are tried from most to least specific;
// the bare amount is the last resort.
type pricePattern struct {
	re        *regexp.Regexp
	qualifier string
}

var pricePatterns = []pricePattern{
	{regexp.MustCompile(`(?i)€\s*(\d{2,3}(?:\.\d{3})+)\s*k\.k\.`), " k.k."},
	{regexp.MustCompile(`(?i)€\s*(\d{2,3}(?:\.\d{3})+)\s*kk`), " k.k."},
	{regexp.MustCompile(`(?i)€\s*(\d{2,3}(?:\.\d{3})+)\s*kosten koper`), " k.k."},
	{regexp.MustCompile(`(?i)€\s*(\d{2,3}(?:\.\d{3})+)\s*vk`), " vk"},
	{regexp.MustCompile(`€\s*(\d{2,3}(?:\.\d{3})+)`), ""},
}

// Monthly-cost wording near a match means it is rent, not an asking price.
var monthlyTerms = []string{"per maand", "maandlasten"}

const (
	priceContextBefore = 50
	priceContextAfter  = 100
)

func priceStrategies() []Strategy {
	return []Strategy{
		priceFromText,
		priceFromStructuredData,
	}
}

// priceFromText scans the page text with each qualifier pattern in order.
// Only the first match of a pattern is inspected: if its surrounding text
// mentions monthly costs the whole pattern is skipped, not retried on a
// later match. A monthly figure appearing before the sale price can thus
// mask it; kept as-is to match the long-observed behaviour on funda pages.
func priceFromText(p *Page) (string, bool) {
	text := p.Text()
	for _, pattern := range pricePatterns {
		loc := pattern.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		if isMonthlyContext(text, loc[0]) {
			continue
		}
		amount := text[loc[2]:loc[3]]
		return "€ " + amount + pattern.qualifier, true
	}
	return "", false
}

// isMonthlyContext checks the text window around a match start for
// monthly-rent wording.
func isMonthlyContext(text string, matchStart int) bool {
	start := matchStart - priceContextBefore
	if start < 0 {
		start = 0
	}
	end := matchStart + priceContextAfter
	if end > len(text) {
		end = len(text)
	}
	window := strings.ToLower(text[start:end])
	for _, term := range monthlyTerms {
		if strings.Contains(window, term) {
			return true
		}
	}
	return false
}

// priceFromStructuredData falls back to JSON-LD script blocks carrying an
// offers object with a numeric price.
func priceFromStructuredData(p *Page) (string, bool) {
	var result string
	p.Doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var payload struct {
			Offers struct {
				Price json.Number `json:"price"`
			} `json:"offers"`
		}
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return true
		}
		value, err := payload.Offers.Price.Float64()
		if err != nil || value <= 0 {
			return true
		}
		result = "€ " + formatThousands(int64(value))
		return false
	})
	return result, result != ""
}

// formatThousands renders 395000 as "395.000", the Dutch grouping funda uses.
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
