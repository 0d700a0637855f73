package export

import (
	"encoding/base64"
	"fmt"
	"html"

	"github.com/xuri/excelize/v2"

	"github.com/zrxdaly/funda-scraper-web/internal/scraper"
	"github.com/zrxdaly/funda-scraper-web/logger"
	apperrors "github.com/zrxdaly/funda-scraper-web/pkg/errors"
)

var log = logger.ForExport()

// SheetName is the single sheet every export carries.
const SheetName = "Properties"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Base column order, one row per scraped URL in input order.
var baseColumns = []string{"address", "link", "asking_price", "area_m2", "energy_label", "status"}

// WriteXLSX renders a batch into a spreadsheet. Manually entered commute
// durations are appended as plain columns when the matching work address was
// in use; the commute URL helper fields are never exported.
func WriteXLSX(records []scraper.ListingRecord, includeCommute1, includeCommute2 bool) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, apperrors.NewExport("failed to name sheet", err)
	}

	headers := append([]string{}, baseColumns...)
	if includeCommute1 {
		headers = append(headers, "commute_time_1")
	}
	if includeCommute2 {
		headers = append(headers, "commute_time_2")
	}

	if err := writeRow(f, 1, headers); err != nil {
		return nil, err
	}

	for i, record := range records {
		values := []string{
			record.Address,
			record.Link,
			record.AskingPrice,
			record.AreaM2,
			record.EnergyLabel,
			record.Status,
		}
		if includeCommute1 {
			values = append(values, record.CommuteTime1)
		}
		if includeCommute2 {
			values = append(values, record.CommuteTime2)
		}
		if err := writeRow(f, i+2, values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error().Err(err).Msg("Spreadsheet write failed")
		return nil, apperrors.NewExport("failed to write spreadsheet", err)
	}

	log.Debug().
		Int("records", len(records)).
		Int("columns", len(headers)).
		Msg("Spreadsheet written")
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return apperrors.NewExport("invalid cell coordinates", err)
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return apperrors.NewExport("failed to set cell value", err)
		}
	}
	return nil
}

// DownloadLink wraps spreadsheet bytes into a base64 data-URI anchor the
// results page can embed directly. The filename is user input and gets
// escaped so it cannot break out of the download attribute.
func DownloadLink(data []byte, filename string) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf(`<a href="data:%s;base64,%s" download="%s">Download Excel File</a>`,
		xlsxContentType, encoded, html.EscapeString(filename))
}

// ContentType returns the MIME type served with a direct xlsx download.
func ContentType() string {
	return xlsxContentType
}
