package scraper

import (
	"fmt"
	"net/url"
	"strings"
)

// Google Maps directions deep link; the trailing data blob preselects the
// travel mode in the opened view.
const commuteURLTemplate = "https://www.google.com/maps/dir/%s/%s/data=!3m1!4b1!4m2!4m1!3e3"

// CommuteURL builds a directions link between a home and a work address.
// Pure function, no network call: the user resolves the commute time by
// following the link.
func CommuteURL(homeAddress, workAddress string) string {
	home := strings.TrimSpace(strings.ReplaceAll(homeAddress, "\n", " "))
	work := strings.TrimSpace(strings.ReplaceAll(workAddress, "\n", " "))
	return fmt.Sprintf(commuteURLTemplate, url.PathEscape(home), url.PathEscape(work))
}
