package scraper

import "github.com/PuerkitoBio/goquery"

// Page wraps a parsed listing document. The flattened text is computed once
// and shared by every text-scanning strategy.
type Page struct {
	Doc  *goquery.Document
	text *string
}

// NewPage wraps a goquery document.
func NewPage(doc *goquery.Document) *Page {
	return &Page{Doc: doc}
}

// Text returns the full flattened page text.
func (p *Page) Text() string {
	if p.text == nil {
		text := p.Doc.Text()
		p.text = &text
	}
	return *p.text
}

// Strategy is one independent, best-effort extraction attempt for a single
// field. It reports the extracted value and whether it matched; an attempt
// that matches nothing simply lets the next strategy in the cascade run.
type Strategy func(*Page) (string, bool)
