// Package report partitions the normalized table into zone groups and
// renders the downloadable workbooks.
package report

import (
	"fmt"
	"time"

	"github.com/stream-ops/orders-cli/internal/model"
	"github.com/stream-ops/orders-cli/internal/zones"
)

// Group is one zone's slice of the table, handed to the sink as a
// page-set with the zone name as its heading.
type Group struct {
	Zone string
	Rows []model.Record
}

// Sink consumes zone groups and produces a document. The paginated RTL
// renderer lives behind this boundary; the xlsx writer below is the
// built-in implementation.
type Sink interface {
	Write(groups []Group, label string, now time.Time) error
}

// GroupByZone partitions rows by zone. Groups are emitted in first-seen
// order, except the catch-all zone, which always comes last regardless
// of when it first appears. Rows keep the table's order within a group;
// zones with no rows are simply absent.
func GroupByZone(rows []model.Record) []Group {
	byZone := make(map[string]int)
	var groups []Group
	catchAll := -1

	for _, r := range rows {
		idx, ok := byZone[r.Zone]
		if !ok {
			idx = len(groups)
			byZone[r.Zone] = idx
			groups = append(groups, Group{Zone: r.Zone})
			if r.Zone == zones.OtherZone {
				catchAll = idx
			}
		}
		groups[idx].Rows = append(groups[idx].Rows, r)
	}

	if catchAll >= 0 && catchAll != len(groups)-1 {
		moved := groups[catchAll]
		groups = append(groups[:catchAll], groups[catchAll+1:]...)
		groups = append(groups, moved)
	}
	return groups
}

// BlankContinuationRows returns a presentation copy of the rows with
// order-level fields cleared on every non-first row of an order, so
// line items group visually under one order header. The canonical rows
// are never touched; callers render the returned copy.
func BlankContinuationRows(rows []model.Record) []model.Record {
	out := make([]model.Record, len(rows))
	copy(out, rows)
	for i := range out {
		if out[i].FirstOfOrder {
			continue
		}
		out[i].CustomerName = ""
		out[i].Address = ""
		out[i].City = ""
		out[i].Phone = ""
		out[i].OrderStatus = ""
		out[i].Notes = ""
		out[i].TotalWithShipping = ""
		out[i].ItemCount = 0
	}
	return out
}

// Cairo is the fixed reporting timezone (UTC+2); dispatch dates follow
// the store's local calendar regardless of where the service runs.
var Cairo = time.FixedZone("Africa/Cairo", 2*60*60)

// FileName builds the dated download name: "<label> - <YYYY-MM-DD>.xlsx".
func FileName(label string, now time.Time) string {
	return fmt.Sprintf("%s - %s.xlsx", label, now.In(Cairo).Format("2006-01-02"))
}

// Title builds a zone group's heading line: zone name, group label,
// date.
func Title(zone, label string, now time.Time) string {
	return fmt.Sprintf("%s - %s - %s", zone, label, now.In(Cairo).Format("2006-01-02"))
}
