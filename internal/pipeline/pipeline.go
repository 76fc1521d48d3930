// Package pipeline turns raw workbook uploads into the normalized,
// zone-classified order table and runs the duplicate-phone review.
package pipeline

import (
	"context"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/stream-ops/orders-cli/internal/ingest"
	"github.com/stream-ops/orders-cli/internal/model"
	"github.com/stream-ops/orders-cli/internal/schema"
	"github.com/stream-ops/orders-cli/internal/zones"
	"github.com/stream-ops/orders-cli/pkg/drive"
)

// Source is one uploaded workbook, as received.
type Source struct {
	Name string
	Data []byte
}

// Options carries the pieces that varied between the store's script
// variants, so one pipeline serves them all.
type Options struct {
	Rename   schema.RenameTable // header → canonical field table
	Zones    *zones.Gazetteer   // city → zone lookup
	Archiver *drive.Archiver    // best-effort raw-upload copy; nil disables
}

func (o *Options) defaults() {
	if o.Rename == nil {
		o.Rename = schema.DefaultRenameTable()
	}
	if o.Zones == nil {
		o.Zones = zones.Default()
	}
}

// Run executes the full normalization pass over the uploaded sources:
// read → merge → gap-fill → status remap → zone classification →
// item-count aggregation → final sort → first-row marking. The
// returned table is fully populated; presentation blanking is the
// report layer's concern. Everything is request-local — concurrent
// runs share only the read-only gazetteer and rename table.
func Run(ctx context.Context, opts Options, sources []Source) (*model.Table, error) {
	opts.defaults()
	log := zap.L().With(zap.String("component", "pipeline"))

	if len(sources) == 0 {
		return nil, eris.New("pipeline: no input files")
	}

	workbooks := make([]*ingest.Workbook, 0, len(sources))
	for _, src := range sources {
		opts.Archiver.Archive(ctx, src.Name, src.Data)

		wb, err := ingest.ReadWorkbook(src.Name, src.Data)
		if err != nil {
			return nil, err
		}
		workbooks = append(workbooks, wb)
	}

	table := ingest.Merge(workbooks, opts.Rename)
	log.Info("pipeline: merged uploads",
		zap.Int("files", len(sources)),
		zap.Int("rows", len(table.Rows)),
		zap.Int("columns", len(table.Columns)),
	)

	ForwardFill(table.Rows)
	BackfillCity(table.Rows)
	RemapStatus(table.Rows)

	for i := range table.Rows {
		table.Rows[i].Zone = opts.Zones.Classify(table.Rows[i].City)
	}

	AggregateItemCounts(table.Rows)
	sortForReport(table.Rows, opts.Zones)
	MarkFirstRows(table.Rows)

	return table, nil
}

// sortForReport establishes the final row order: declared zone order
// with the catch-all last, then order code, original position as the
// tiebreak (stable sort).
func sortForReport(rows []model.Record, gaz *zones.Gazetteer) {
	sort.SliceStable(rows, func(i, j int) bool {
		zi, zj := gaz.SortIndex(rows[i].Zone), gaz.SortIndex(rows[j].Zone)
		if zi != zj {
			return zi < zj
		}
		return rows[i].OrderCode < rows[j].OrderCode
	})
}

// RunDuplicates executes the duplicate-phone review over one uploaded
// workbook: the projection comes from the first sheet, columns located
// by header heuristics. A schema.ErrColumnsNotFound from this call
// carries the observed headers for the user-facing report.
func RunDuplicates(ctx context.Context, opts Options, src Source) ([]DuplicateRow, []PhoneSummary, error) {
	opts.defaults()

	opts.Archiver.Archive(ctx, src.Name, src.Data)

	wb, err := ingest.ReadWorkbook(src.Name, src.Data)
	if err != nil {
		return nil, nil, err
	}
	if len(wb.Sheets) == 0 {
		return nil, nil, eris.Errorf("pipeline: workbook %s has no sheets", src.Name)
	}

	pairs, err := ExtractPairs(wb.Sheets[0])
	if err != nil {
		return nil, nil, err
	}

	dups := FindDuplicates(pairs)
	zap.L().Info("pipeline: duplicate review complete",
		zap.Int("pairs", len(pairs)),
		zap.Int("duplicated_rows", len(dups)),
	)

	return dups, Summarize(dups), nil
}
