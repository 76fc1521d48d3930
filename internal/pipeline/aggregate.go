package pipeline

import (
	"strconv"
	"strings"

	"github.com/stream-ops/orders-cli/internal/model"
)

// ParseQuantity converts a raw quantity cell to a number. Anything
// unparsable counts as zero — parse failures are recovered locally,
// never propagated.
func ParseQuantity(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Exports sometimes format counts as "2.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// AggregateItemCounts sums quantities per order code and broadcasts the
// total back to every line of the order, so any single rendered row
// answers "how many pieces is this order".
func AggregateItemCounts(rows []model.Record) {
	totals := make(map[string]int)
	for i := range rows {
		totals[rows[i].OrderCode] += ParseQuantity(rows[i].Quantity)
	}
	for i := range rows {
		rows[i].ItemCount = totals[rows[i].OrderCode]
	}
}

// MarkFirstRows flags the first occurrence of each order code. Must run
// after the final sort order is established: the rendered output blanks
// order-level columns on every non-first row so line items group
// visually under one order header.
func MarkFirstRows(rows []model.Record) {
	seen := make(map[string]bool)
	for i := range rows {
		code := rows[i].OrderCode
		rows[i].FirstOfOrder = !seen[code]
		seen[code] = true
	}
}
