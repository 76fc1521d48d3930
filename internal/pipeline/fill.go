package pipeline

import (
	"strings"

	"github.com/stream-ops/orders-cli/internal/model"
)

// fillFields are the order-level columns that exports leave blank on
// continuation rows of a merged cell.
var fillFields = []model.Field{
	model.FieldOrderCode,
	model.FieldCustomerName,
	model.FieldCity,
}

// Status tokens for the blanket remap: exports mark orders the store
// has already accepted as pending, and dispatch treats them as
// confirmed.
const (
	StatusPending   = "قيد الانتظار"
	StatusConfirmed = "تم التأكيد"
)

// ForwardFill replaces each blank value of the designated order-level
// columns with the nearest preceding non-blank value, undoing
// merged-cell artifacts. A blank with no preceding non-blank value
// stays blank. Idempotent on a fully-filled column.
func ForwardFill(rows []model.Record) {
	for _, f := range fillFields {
		last := ""
		for i := range rows {
			v := strings.TrimSpace(rows[i].Get(f))
			if v == "" {
				if last != "" {
					rows[i].Set(f, last)
				}
				continue
			}
			last = v
		}
	}
}

// BackfillCity fills the city of rows that carry an item name but no
// city from the nearest preceding non-blank city. Some exports emit
// item rows ahead of the row holding the order's merged city cell, so
// this runs as an independent pass after ForwardFill.
func BackfillCity(rows []model.Record) {
	last := ""
	for i := range rows {
		city := strings.TrimSpace(rows[i].City)
		if city != "" {
			last = city
			continue
		}
		if strings.TrimSpace(rows[i].ItemName) != "" && last != "" {
			rows[i].City = last
		}
	}
}

// RemapStatus rewrites the pending status token to the confirmed token
// across the whole table. A fixed value substitution, not a status
// machine: every other status value passes through untouched.
func RemapStatus(rows []model.Record) {
	for i := range rows {
		if strings.TrimSpace(rows[i].OrderStatus) == StatusPending {
			rows[i].OrderStatus = StatusConfirmed
		}
	}
}
