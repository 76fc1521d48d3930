package report

import (
	"io"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/stream-ops/orders-cli/internal/model"
	"github.com/stream-ops/orders-cli/internal/pipeline"
)

// WriteNormalized renders the canonical table as a single sheet with
// Arabic display headers, fully populated — no presentation blanking.
func WriteNormalized(w io.Writer, t *model.Table, sheetName string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrap(err, "report: add sheet")
	}

	writeHeader(sheet)
	for i := range t.Rows {
		writeRecord(sheet, &t.Rows[i], false)
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "report: write workbook")
	}
	return nil
}

// XLSXSink renders zone groups as one workbook, one sheet per zone,
// each opened by a title row carrying the zone name, the group label,
// and the date. Continuation rows are blanked so line items sit under
// their order header.
type XLSXSink struct {
	W io.Writer
}

// Write implements Sink.
func (s *XLSXSink) Write(groups []Group, label string, now time.Time) error {
	f := xlsx.NewFile()

	for _, g := range groups {
		sheet, err := f.AddSheet(g.Zone)
		if err != nil {
			return eris.Wrapf(err, "report: add sheet %s", g.Zone)
		}

		title := sheet.AddRow()
		title.AddCell().SetString(Title(g.Zone, label, now))

		writeHeader(sheet)
		blanked := BlankContinuationRows(g.Rows)
		for i := range blanked {
			writeRecord(sheet, &blanked[i], true)
		}
	}

	if err := f.Write(s.W); err != nil {
		return eris.Wrap(err, "report: write grouped workbook")
	}
	return nil
}

// Duplicate-review sheet names, as the store's reviewers know them.
const (
	duplicatesSheet = "التليفونات المكررة"
	summarySheet    = "ملخص إحصائي"
)

// WriteDuplicates renders the duplicate-review workbook: the duplicated
// pairs on one sheet and the per-phone summary on a second.
func WriteDuplicates(w io.Writer, rows []pipeline.DuplicateRow, sums []pipeline.PhoneSummary) error {
	f := xlsx.NewFile()

	sheet, err := f.AddSheet(duplicatesSheet)
	if err != nil {
		return eris.Wrap(err, "report: add duplicates sheet")
	}
	header := sheet.AddRow()
	for _, h := range []string{"كود الاوردر", "رقم التليفون", "عدد الأكواد"} {
		header.AddCell().SetString(h)
	}
	for _, r := range rows {
		row := sheet.AddRow()
		row.AddCell().SetString(r.OrderCode)
		row.AddCell().SetString(r.Phone)
		row.AddCell().SetString(strconv.Itoa(r.CodeCount))
	}

	sum, err := f.AddSheet(summarySheet)
	if err != nil {
		return eris.Wrap(err, "report: add summary sheet")
	}
	sumHeader := sum.AddRow()
	for _, h := range []string{"رقم التليفون", "عدد الأكواد", "الأكواد"} {
		sumHeader.AddCell().SetString(h)
	}
	for _, s := range sums {
		row := sum.AddRow()
		row.AddCell().SetString(s.Phone)
		row.AddCell().SetString(strconv.Itoa(s.CodeCount))
		row.AddCell().SetString(s.Codes)
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "report: write duplicates workbook")
	}
	return nil
}

func writeHeader(sheet *xlsx.Sheet) {
	row := sheet.AddRow()
	for _, field := range model.ReportFields {
		row.AddCell().SetString(model.Labels[field])
	}
}

func writeRecord(sheet *xlsx.Sheet, r *model.Record, blanked bool) {
	row := sheet.AddRow()
	for _, field := range model.ReportFields {
		cell := row.AddCell()
		switch field {
		case model.FieldItemCount:
			if blanked && !r.FirstOfOrder {
				cell.SetString("")
				continue
			}
			cell.SetString(strconv.Itoa(r.ItemCount))
		default:
			cell.SetString(r.Get(field))
		}
	}
}
