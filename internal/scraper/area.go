package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Keys in the kenmerken (characteristics) definition list that carry the
// living area.
var areaKeywords = []string{"woonoppervlakte", "oppervlakte", "gebruiksoppervlakte"}

var (
	areaValuePattern = regexp.MustCompile(`(\d+(?:[,.]\d+)?)\s*m[²2]?`)
	areaTokenPattern = regexp.MustCompile(`(\d+(?:[,.]\d+)?)\s*m[²2]`)
)

// Plausible dwelling size in m². Anything outside is a lot size, a room, or
// an unrelated number that happens to precede "m²".
const (
	minPlausibleArea = 10
	maxPlausibleArea = 1000
)

func areaStrategies() []Strategy {
	return []Strategy{
		areaFromDefinitionList,
		areaFromText,
	}
}

// areaFromDefinitionList scans dt/dd pairs for an area keyword and reads the
// number out of the adjacent value.
func areaFromDefinitionList(p *Page) (string, bool) {
	var result string
	p.Doc.Find("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		key := strings.ToLower(strings.TrimSpace(dt.Text()))
		if !containsAny(key, areaKeywords) {
			return true
		}
		dd := dt.NextAllFiltered("dd").First()
		if dd.Length() == 0 {
			return true
		}
		m := areaValuePattern.FindStringSubmatch(strings.TrimSpace(dd.Text()))
		if m == nil {
			return true
		}
		result = normalizeDecimal(m[1])
		return false
	})
	return result, result != ""
}

// areaFromText scans the whole page for "<number> m²" tokens and accepts the
// first one inside the plausible dwelling range.
func areaFromText(p *Page) (string, bool) {
	for _, m := range areaTokenPattern.FindAllStringSubmatch(p.Text(), -1) {
		normalized := normalizeDecimal(m[1])
		value, err := strconv.ParseFloat(normalized, 64)
		if err != nil {
			continue
		}
		if value >= minPlausibleArea && value <= maxPlausibleArea {
			return normalized, true
		}
	}
	return "", false
}

// normalizeDecimal converts a locale decimal comma to a dot.
func normalizeDecimal(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
