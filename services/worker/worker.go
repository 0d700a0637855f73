package worker

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/zrxdaly/funda-scraper-web/internal/scraper"
	"github.com/zrxdaly/funda-scraper-web/logger"
)

// Request describes one scrape run.
type Request struct {
	URLs         []string
	WorkAddress1 string
	WorkAddress2 string
	Debug        bool
}

// Result is the batch produced by one run: one record per input URL, in
// input order.
type Result struct {
	Records []scraper.ListingRecord    `json:"records"`
	Debug   map[int]*scraper.DebugInfo `json:"debug,omitempty"`
	Summary Summary                    `json:"summary"`

	// Which commute columns the export should carry, based on the work
	// addresses present for this run.
	HasCommute1 bool `json:"has_commute_1"`
	HasCommute2 bool `json:"has_commute_2"`
}

// Summary carries the per-run counters shown after a scrape.
type Summary struct {
	Total     int     `json:"total"`
	Succeeded int     `json:"succeeded"`
	Failed    int     `json:"failed"`
	AvgPriceK float64 `json:"avg_price_k,omitempty"`
}

// Worker processes scrape requests sequentially: one URL is fully fetched
// and extracted before the next begins, with a fixed pause in between to
// avoid overwhelming the source server.
type Worker struct {
	scraper *scraper.Scraper
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewWorker creates a worker pacing requests at one per delay.
func NewWorker(s *scraper.Scraper, delay time.Duration) *Worker {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Worker{
		scraper: s,
		limiter: rate.NewLimiter(limit, 1),
		log:     logger.ForWorker(),
	}
}

// Run scrapes every URL of the request. Failures are isolated per URL and
// never abort the batch; the run proceeds to completion.
func (w *Worker) Run(ctx context.Context, req Request) Result {
	start := time.Now()
	result := Result{
		Records:     make([]scraper.ListingRecord, 0, len(req.URLs)),
		HasCommute1: req.WorkAddress1 != "",
		HasCommute2: req.WorkAddress2 != "",
	}

	for i, url := range req.URLs {
		// A cancelled context stops the pacing, not the batch.
		if err := w.limiter.Wait(ctx); err != nil {
			w.log.Warn().Err(err).Msg("Request pacing interrupted")
		}

		w.log.Info().
			Int("current", i+1).
			Int("total", len(req.URLs)).
			Str("url", url).
			Msg("Scraping listing")

		record, debug := w.scraper.ScrapeListing(url, req.Debug)

		if record.Address != "" && req.WorkAddress1 != "" {
			record.CommuteURL1 = scraper.CommuteURL(record.Address, req.WorkAddress1)
		}
		if record.Address != "" && req.WorkAddress2 != "" {
			record.CommuteURL2 = scraper.CommuteURL(record.Address, req.WorkAddress2)
		}

		if debug != nil {
			if result.Debug == nil {
				result.Debug = make(map[int]*scraper.DebugInfo)
			}
			result.Debug[i] = debug
		}
		result.Records = append(result.Records, record)
	}

	result.Summary = Summarize(result.Records)

	w.log.Info().
		Int("total", result.Summary.Total).
		Int("succeeded", result.Summary.Succeeded).
		Int("failed", result.Summary.Failed).
		Dur("elapsed", time.Since(start)).
		Msg("Scrape run finished")

	return result
}

var leadingNumber = regexp.MustCompile(`(\d+)`)

// Summarize computes the per-run counters. The average price reads the
// thousands part of each formatted asking price, so it is expressed in k€.
func Summarize(records []scraper.ListingRecord) Summary {
	s := Summary{Total: len(records)}

	var priceSum float64
	var priceCount int
	for _, r := range records {
		if r.Succeeded() {
			s.Succeeded++
		} else {
			s.Failed++
		}
		if m := leadingNumber.FindStringSubmatch(r.AskingPrice); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				priceSum += v
				priceCount++
			}
		}
	}
	if priceCount > 0 {
		s.AvgPriceK = priceSum / float64(priceCount)
	}
	return s
}
