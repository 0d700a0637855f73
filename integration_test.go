package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/zrxdaly/funda-scraper-web/internal/scraper"
	"github.com/zrxdaly/funda-scraper-web/services/export"
	"github.com/zrxdaly/funda-scraper-web/services/worker"
)

// testListingHTML mimics a funda detail page: heading address, qualified
// asking price with a monthly-cost trap elsewhere on the page, kenmerken
// definition list, and a JSON-LD block.
const testListingHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Wageningseberg 4, 3524 LR Utrecht - Funda</title>
    <script type="application/ld+json">{"@type":"Product","offers":{"price":395000,"priceCurrency":"EUR"}}</script>
</head>
<body>
    <h1>Wageningseberg 4, 3524 LR Utrecht</h1>
    <p>Maandlasten vanaf € 1.425 per maand bij de actuele hypotheekrente en een looptijd van dertig jaar.</p>
    <p>Deze tussenwoning staat te koop voor € 395.000 k.k. en is direct beschikbaar.</p>
    <dl>
        <dt>Woonoppervlakte</dt><dd>71 m²</dd>
        <dt>Perceel</dt><dd>5000 m²</dd>
        <dt>Energielabel</dt><dd>A</dd>
    </dl>
</body>
</html>
`

func TestScrapeExportPipeline(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/detail/koop/utrecht/huis-1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(testListingHTML))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	urls := []string{
		server.URL + "/detail/koop/utrecht/huis-1",
		server.URL + "/detail/koop/utrecht/gesloopt",
	}

	w := worker.NewWorker(scraper.NewScraper(), 0)
	result := w.Run(context.Background(), worker.Request{
		URLs:         urls,
		WorkAddress1: "Amsterdam Centraal Station, Amsterdam",
	})

	// One record per URL, in input order
	assert.Len(t, result.Records, 2)
	assert.Equal(t, urls[0], result.Records[0].Link)
	assert.Equal(t, urls[1], result.Records[1].Link)

	house := result.Records[0]
	assert.Equal(t, scraper.StatusSuccess, house.Status)
	assert.Equal(t, "Wageningseberg 4, 3524 LR Utrecht", house.Address)
	assert.Equal(t, "€ 395.000 k.k.", house.AskingPrice)
	assert.Equal(t, "71", house.AreaM2)
	assert.Equal(t, "A", house.EnergyLabel)
	assert.Contains(t, house.CommuteURL1, "Wageningseberg%204")
	assert.Contains(t, house.CommuteURL1, "Amsterdam%20Centraal%20Station")

	missing := result.Records[1]
	assert.True(t, missing.Failed())
	assert.Empty(t, missing.Address)
	assert.Empty(t, missing.AskingPrice)
	assert.Empty(t, missing.CommuteURL1)

	assert.Equal(t, 2, result.Summary.Total)
	assert.Equal(t, 1, result.Summary.Succeeded)
	assert.Equal(t, 1, result.Summary.Failed)

	// Merge a manually checked commute duration and export
	result.Records[0].CommuteTime1 = "38min"
	data, err := export.WriteXLSX(result.Records, result.HasCommute1, result.HasCommute2)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, []string{"address", "link", "asking_price", "area_m2", "energy_label", "status", "commute_time_1"}, rows[0])
	assert.Equal(t, "Wageningseberg 4, 3524 LR Utrecht", rows[1][0])
	assert.Equal(t, "€ 395.000 k.k.", rows[1][2])
	assert.Equal(t, "38min", rows[1][6])
	assert.Contains(t, rows[2][5], "Error:")

	// Commute URL helper fields never reach the spreadsheet
	for _, row := range rows {
		for _, cell := range row {
			assert.NotContains(t, cell, "google.com/maps")
		}
	}
}
