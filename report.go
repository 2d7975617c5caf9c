package indices

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const reportSheet = "Sheet1"

var reportHeader = []interface{}{"Título", "Resumen", "Descargas"}

// WriteReport saves items as a spreadsheet at path, one row per item
// after a header row. An existing file is overwritten.
func WriteReport(path string, items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(reportSheet)
	if err != nil {
		return errors.Wrap(err, "failed to create stream writer")
	}

	if err := sw.SetRow("A1", reportHeader); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	for i, item := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			item.Title,
			item.Summary,
			strings.Join(item.DownloadURLs, ", "),
		}
		if err := sw.SetRow(cell, row); err != nil {
			return errors.Wrapf(err, "failed to write row for %q", item.Title)
		}
	}

	if err := sw.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush rows")
	}

	return errors.Wrapf(f.SaveAs(path), "failed to save %s", path)
}
