package scraper

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/zrxdaly/funda-scraper-web/helpers"
	"github.com/zrxdaly/funda-scraper-web/logger"
	apperrors "github.com/zrxdaly/funda-scraper-web/pkg/errors"
)

const debugSnippetLength = 2000

// Scraper fetches a single listing page and runs the field cascades over it.
type Scraper struct {
	extractor *Extractor
	log       *logger.Logger
	fetchFunc func(url string) (io.Reader, error)
}

// NewScraper creates a scraper with the default fetcher and cascades.
func NewScraper() *Scraper {
	return &Scraper{
		extractor: NewExtractor(),
		log:       logger.ForScraper(),
		fetchFunc: helpers.FetchPage,
	}
}

// ScrapeListing fetches one listing URL and extracts a record from it. A
// fetch or parse failure yields an error record for this URL only; the
// extraction step itself never fails. When debug is set, raw page details
// are captured alongside the record.
func (s *Scraper) ScrapeListing(url string, debug bool) (ListingRecord, *DebugInfo) {
	body, err := s.fetchFunc(url)
	if err != nil {
		s.log.Warn().Str("url", url).Err(err).Msg("Fetch failed")
		return ErrorRecord(url, err), nil
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		s.log.Warn().Str("url", url).Err(err).Msg("HTML parse failed")
		return ErrorRecord(url, apperrors.NewParsing(url, "failed to parse HTML", err)), nil
	}

	page := NewPage(doc)
	record := s.extractor.Extract(page, url)

	s.log.Debug().
		Str("url", url).
		Str("address", record.Address).
		Str("price", record.AskingPrice).
		Str("area_m2", record.AreaM2).
		Str("energy_label", record.EnergyLabel).
		Msg("Listing extracted")

	if !debug {
		return record, nil
	}
	return record, capturePage(page)
}

// capturePage collects the raw page details the debug panel shows: the
// title, the first h1 headings, and a text snippet.
func capturePage(p *Page) *DebugInfo {
	info := &DebugInfo{
		Title:       strings.TrimSpace(p.Doc.Find("title").First().Text()),
		TextSnippet: helpers.Truncate(p.Text(), debugSnippetLength),
	}
	p.Doc.Find("h1").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= 3 {
			return false
		}
		info.Headings = append(info.Headings, strings.TrimSpace(s.Text()))
		return true
	})
	return info
}
