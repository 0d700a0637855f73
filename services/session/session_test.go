package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zrxdaly/funda-scraper-web/config"
	"github.com/zrxdaly/funda-scraper-web/internal/scraper"
	"github.com/zrxdaly/funda-scraper-web/services/worker"
)

func newTestSession() *Session {
	return New(config.LoadConfig())
}

func TestAddURLValidation(t *testing.T) {
	s := newTestSession()

	assert.NoError(t, s.AddURL("https://www.funda.nl/detail/koop/utrecht/huis-1"))
	assert.Error(t, s.AddURL("https://www.marktplaats.nl/woning"))
	assert.Error(t, s.AddURL("   "))

	assert.Equal(t, []string{"https://www.funda.nl/detail/koop/utrecht/huis-1"}, s.URLs())
}

func TestRemoveAndClearURLs(t *testing.T) {
	s := newTestSession()
	assert.NoError(t, s.AddURL("https://www.funda.nl/detail/koop/a"))
	assert.NoError(t, s.AddURL("https://www.funda.nl/detail/koop/b"))

	assert.Error(t, s.RemoveURL(5))
	assert.NoError(t, s.RemoveURL(0))
	assert.Equal(t, []string{"https://www.funda.nl/detail/koop/b"}, s.URLs())

	s.ClearURLs()
	assert.Empty(t, s.URLs())
}

func TestRequestSnapshot(t *testing.T) {
	s := newTestSession()
	assert.NoError(t, s.AddURL("https://www.funda.nl/detail/koop/a"))
	s.SetWorkAddresses("Amsterdam Centraal", " Rotterdam Centraal ")
	s.ToggleDebug()

	req := s.Request()
	assert.Equal(t, []string{"https://www.funda.nl/detail/koop/a"}, req.URLs)
	assert.Equal(t, "Amsterdam Centraal", req.WorkAddress1)
	assert.Equal(t, "Rotterdam Centraal", req.WorkAddress2)
	assert.True(t, req.Debug)

	// Mutating the snapshot must not touch the session
	req.URLs[0] = "changed"
	assert.Equal(t, "https://www.funda.nl/detail/koop/a", s.URLs()[0])
}

func TestToggleDebug(t *testing.T) {
	s := newTestSession()
	assert.False(t, s.Debug())
	assert.True(t, s.ToggleDebug())
	assert.False(t, s.ToggleDebug())
}

func TestSetOutputFilename(t *testing.T) {
	s := newTestSession()
	assert.Equal(t, "funda_properties.xlsx", s.OutputFilename())

	s.SetOutputFilename("mijn_huizen.xlsx")
	assert.Equal(t, "mijn_huizen.xlsx", s.OutputFilename())

	// Blank names are ignored
	s.SetOutputFilename("  ")
	assert.Equal(t, "mijn_huizen.xlsx", s.OutputFilename())
}

func TestSetCommuteTime(t *testing.T) {
	s := newTestSession()

	assert.Error(t, s.SetCommuteTime(0, 1, "45min"))

	s.SetResult(worker.Result{Records: []scraper.ListingRecord{
		{Link: "https://www.funda.nl/detail/koop/a", Status: scraper.StatusSuccess},
	}})

	assert.NoError(t, s.SetCommuteTime(0, 1, " 45min "))
	assert.NoError(t, s.SetCommuteTime(0, 2, "1h 10min"))
	assert.Error(t, s.SetCommuteTime(0, 3, "x"))
	assert.Error(t, s.SetCommuteTime(9, 1, "x"))

	result, ok := s.Result()
	assert.True(t, ok)
	assert.Equal(t, "45min", result.Records[0].CommuteTime1)
	assert.Equal(t, "1h 10min", result.Records[0].CommuteTime2)
}

func TestResultCopyIsolatedFromCommuteUpdates(t *testing.T) {
	s := newTestSession()
	s.SetResult(worker.Result{
		Records: []scraper.ListingRecord{
			{Link: "https://www.funda.nl/detail/koop/a", Status: scraper.StatusSuccess},
		},
		Debug: map[int]*scraper.DebugInfo{0: {Title: "a"}},
	})

	snapshot, ok := s.Result()
	assert.True(t, ok)
	assert.Empty(t, snapshot.Records[0].CommuteTime1)

	// Updates after the read must not reach the snapshot, only fresh reads
	assert.NoError(t, s.SetCommuteTime(0, 1, "45min"))
	assert.Empty(t, snapshot.Records[0].CommuteTime1)

	fresh, ok := s.Result()
	assert.True(t, ok)
	assert.Equal(t, "45min", fresh.Records[0].CommuteTime1)

	// Concurrent readers and commute writes may interleave freely
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = s.SetCommuteTime(0, 2, "1h")
		}
	}()
	for i := 0; i < 100; i++ {
		if r, ok := s.Result(); ok {
			_ = r.Records[0].CommuteTime2
		}
	}
	<-done
}
