package session

import (
	"strings"
	"sync"

	"github.com/zrxdaly/funda-scraper-web/config"
	"github.com/zrxdaly/funda-scraper-web/internal/scraper"
	apperrors "github.com/zrxdaly/funda-scraper-web/pkg/errors"
	"github.com/zrxdaly/funda-scraper-web/services/worker"
)

// Session holds the interactive state of the tool for its single user: the
// URL list being assembled, the work addresses, the debug toggle, and the
// latest scrape result. All access is mutex-guarded because web handlers
// may touch it concurrently; the scrape run itself stays single-worker.
type Session struct {
	mu sync.Mutex

	listingDomain  string
	urls           []string
	workAddress1   string
	workAddress2   string
	outputFilename string
	debug          bool
	result         *worker.Result
}

// New creates a session seeded from the configuration.
func New(cfg config.Config) *Session {
	return &Session{
		listingDomain:  cfg.ListingDomain,
		workAddress1:   cfg.WorkAddress1,
		workAddress2:   cfg.WorkAddress2,
		outputFilename: cfg.OutputFilename,
	}
}

// AddURL validates and appends a listing URL. Validation is deliberately
// loose: the URL only has to mention the listing domain.
func (s *Session) AddURL(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return apperrors.NewValidation(url, "URL must not be empty")
	}
	if !strings.Contains(url, s.listingDomain) {
		return apperrors.NewValidation(url, "not a "+s.listingDomain+" URL")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.urls = append(s.urls, url)
	return nil
}

// RemoveURL drops the URL at the given position.
func (s *Session) RemoveURL(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.urls) {
		return apperrors.NewValidation("", "URL index out of range")
	}
	s.urls = append(s.urls[:index], s.urls[index+1:]...)
	return nil
}

// ClearURLs empties the URL list.
func (s *Session) ClearURLs() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.urls = nil
}

// URLs returns a copy of the current URL list.
func (s *Session) URLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	urls := make([]string, len(s.urls))
	copy(urls, s.urls)
	return urls
}

// SetWorkAddresses stores the free-text work addresses.
func (s *Session) SetWorkAddresses(address1, address2 string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workAddress1 = strings.TrimSpace(address1)
	s.workAddress2 = strings.TrimSpace(address2)
}

// WorkAddresses returns the stored work addresses.
func (s *Session) WorkAddresses() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workAddress1, s.workAddress2
}

// SetOutputFilename stores the export filename.
func (s *Session) SetOutputFilename(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputFilename = name
}

// OutputFilename returns the export filename.
func (s *Session) OutputFilename() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outputFilename
}

// ToggleDebug flips the debug flag and returns the new value.
func (s *Session) ToggleDebug() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debug = !s.debug
	return s.debug
}

// Debug returns the debug flag.
func (s *Session) Debug() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debug
}

// Request snapshots the session state into a scrape request.
func (s *Session) Request() worker.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	urls := make([]string, len(s.urls))
	copy(urls, s.urls)
	return worker.Request{
		URLs:         urls,
		WorkAddress1: s.workAddress1,
		WorkAddress2: s.workAddress2,
		Debug:        s.debug,
	}
}

// SetResult stores the batch produced by a scrape run.
func (s *Session) SetResult(result worker.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &result
}

// Result returns the latest scrape result, if any. Records and debug
// captures are copied so callers can read them outside the lock while
// SetCommuteTime keeps mutating the stored batch.
func (s *Session) Result() (worker.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return worker.Result{}, false
	}

	result := *s.result
	result.Records = make([]scraper.ListingRecord, len(s.result.Records))
	copy(result.Records, s.result.Records)
	if s.result.Debug != nil {
		result.Debug = make(map[int]*scraper.DebugInfo, len(s.result.Debug))
		for i, d := range s.result.Debug {
			result.Debug[i] = d
		}
	}
	return result, true
}

// SetCommuteTime merges a manually checked commute duration into the stored
// record at the given row. Slot 1 and 2 match the two work addresses.
func (s *Session) SetCommuteTime(index, slot int, duration string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil {
		return apperrors.NewValidation("", "no scrape result to update")
	}
	if index < 0 || index >= len(s.result.Records) {
		return apperrors.NewValidation("", "record index out of range")
	}

	switch slot {
	case 1:
		s.result.Records[index].CommuteTime1 = strings.TrimSpace(duration)
	case 2:
		s.result.Records[index].CommuteTime2 = strings.TrimSpace(duration)
	default:
		return apperrors.NewValidation("", "commute slot must be 1 or 2")
	}
	return nil
}
