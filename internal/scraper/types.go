package scraper

import "strings"

// StatusSuccess marks a record whose fetch and extraction completed without
// failure, regardless of how many fields were actually found.
const StatusSuccess = "Success"

// ListingRecord represents one scraped listing row. Every content field is
// best-effort: an empty value means no extraction strategy matched.
type ListingRecord struct {
	Address     string `json:"address,omitempty"`
	Link        string `json:"link"`
	AskingPrice string `json:"asking_price,omitempty"`
	AreaM2      string `json:"area_m2,omitempty"`
	EnergyLabel string `json:"energy_label,omitempty"`
	Status      string `json:"status"`

	// Derived navigation links, set only when an address and the matching
	// work address are both available. Never exported to the spreadsheet.
	CommuteURL1 string `json:"commute_url_1,omitempty"`
	CommuteURL2 string `json:"commute_url_2,omitempty"`

	// Manually entered commute durations, merged in before export.
	CommuteTime1 string `json:"commute_time_1,omitempty"`
	CommuteTime2 string `json:"commute_time_2,omitempty"`
}

// ErrorRecord builds a record for a listing whose fetch failed. Content
// fields stay unset; only the source link and the error status are kept.
func ErrorRecord(url string, err error) ListingRecord {
	return ListingRecord{
		Link:   url,
		Status: "Error: " + err.Error(),
	}
}

// Succeeded reports whether the record was scraped without a fetch error.
func (r ListingRecord) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Failed reports whether the record carries an error status.
func (r ListingRecord) Failed() bool {
	return strings.HasPrefix(r.Status, "Error:")
}

// DebugInfo holds raw page details captured when debug mode is on.
type DebugInfo struct {
	Title       string   `json:"title"`
	Headings    []string `json:"headings"`
	TextSnippet string   `json:"text_snippet"`
}
