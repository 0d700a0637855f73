package scraper

// Extractor applies an ordered cascade of strategies per field. Fields are
// independent of one another: a field no strategy can recover stays unset
// while the record itself remains successful.
type Extractor struct {
	address     []Strategy
	askingPrice []Strategy
	areaM2      []Strategy
	energyLabel []Strategy
}

// NewExtractor creates an extractor with the default cascades.
func NewExtractor() *Extractor {
	return &Extractor{
		address:     addressStrategies(),
		askingPrice: priceStrategies(),
		areaM2:      areaStrategies(),
		energyLabel: energyLabelStrategies(),
	}
}

// Extract runs every field cascade over the page. It never fails: the worst
// outcome is a record with all content fields unset.
func (e *Extractor) Extract(p *Page, sourceURL string) ListingRecord {
	return ListingRecord{
		Link:        sourceURL,
		Status:      StatusSuccess,
		Address:     firstMatch(p, e.address),
		AskingPrice: firstMatch(p, e.askingPrice),
		AreaM2:      firstMatch(p, e.areaM2),
		EnergyLabel: firstMatch(p, e.energyLabel),
	}
}

// firstMatch tries each strategy in order and returns the first value found.
func firstMatch(p *Page, strategies []Strategy) string {
	for _, strategy := range strategies {
		if value, ok := strategy(p); ok {
			return value
		}
	}
	return ""
}
