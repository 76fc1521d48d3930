// Package ingest reads uploaded workbooks and merges their sheets into
// one raw record set.
package ingest

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// Sheet is one worksheet read as untyped text: the header row plus
// every data row, cell values exactly as formatted in the file. No type
// inference — phone numbers and codes keep their leading zeros.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Workbook is one uploaded file, all sheets in file order.
type Workbook struct {
	Name   string
	Sheets []Sheet
}

// ReadWorkbook parses workbook bytes. Sheets without a header row are
// skipped.
func ReadWorkbook(name string, data []byte) (*Workbook, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: open workbook %s", name)
	}
	return fromFile(name, f), nil
}

// ReadWorkbookFile parses a workbook from disk.
func ReadWorkbookFile(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read workbook file")
	}
	return ReadWorkbook(filepath.Base(path), data)
}

func fromFile(name string, f *xlsx.File) *Workbook {
	wb := &Workbook{Name: name}
	for _, sheet := range f.Sheets {
		if len(sheet.Rows) == 0 {
			continue
		}
		s := Sheet{
			Name:   sheet.Name,
			Header: rowToStrings(sheet.Rows[0]),
		}
		for _, row := range sheet.Rows[1:] {
			s.Rows = append(s.Rows, rowToStrings(row))
		}
		wb.Sheets = append(wb.Sheets, s)
	}
	return wb
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}
