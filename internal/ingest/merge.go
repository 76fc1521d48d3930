package ingest

import (
	"strings"

	"github.com/stream-ops/orders-cli/internal/model"
	"github.com/stream-ops/orders-cli/internal/schema"
)

// Merge concatenates every sheet of every workbook into one record set:
// file order, then sheet order within the file, then original row order
// within the sheet. Headers resolve through the rename table; the
// resulting table carries the column union across all sheets, with
// empty strings where a source row lacked a column. Rows whose cells
// are all blank are dropped before the merge.
func Merge(workbooks []*Workbook, rename schema.RenameTable) *model.Table {
	t := &model.Table{}
	seen := make(map[model.Field]bool)

	for _, wb := range workbooks {
		for _, sheet := range wb.Sheets {
			fields := schema.Normalize(sheet.Header, rename)

			for _, f := range fields {
				if f != "" && !seen[f] {
					seen[f] = true
					t.Columns = append(t.Columns, f)
				}
			}

			for _, row := range sheet.Rows {
				if emptyRow(row) {
					continue
				}
				var rec model.Record
				for i, cell := range row {
					if i >= len(fields) || fields[i] == "" {
						continue
					}
					rec.Set(fields[i], cell)
				}
				t.Rows = append(t.Rows, rec)
			}
		}
	}

	return t
}

func emptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
