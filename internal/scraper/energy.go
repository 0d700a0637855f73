package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var energyKeywords = []string{"energielabel", "energie"}

var (
	energyLetterPattern  = regexp.MustCompile(`([A-G])`)
	energyKeywordPattern = regexp.MustCompile(`(?i)energielabel[:\s]*([A-Ga-g])`)
)

func energyLabelStrategies() []Strategy {
	return []Strategy{
		energyLabelFromDefinitionList,
		energyLabelFromText,
	}
}

// energyLabelFromDefinitionList scans dt/dd pairs for an energy keyword and
// takes the first A-G letter out of the adjacent value.
func energyLabelFromDefinitionList(p *Page) (string, bool) {
	var result string
	p.Doc.Find("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		key := strings.ToLower(strings.TrimSpace(dt.Text()))
		if !containsAny(key, energyKeywords) {
			return true
		}
		dd := dt.NextAllFiltered("dd").First()
		if dd.Length() == 0 {
			return true
		}
		m := energyLetterPattern.FindStringSubmatch(strings.TrimSpace(dd.Text()))
		if m == nil {
			return true
		}
		result = m[1]
		return false
	})
	return result, result != ""
}

// energyLabelFromText scans the page text for an "energielabel X" mention.
// The keyword match is case-insensitive; the result is always uppercased.
func energyLabelFromText(p *Page) (string, bool) {
	m := energyKeywordPattern.FindStringSubmatch(p.Text())
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}
