package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stream-ops/orders-cli/internal/model"
	"github.com/stream-ops/orders-cli/internal/zones"
)

func TestGroupByZone_CatchAllLast(t *testing.T) {
	rows := []model.Record{
		{OrderCode: "1", Zone: zones.OtherZone},
		{OrderCode: "2", Zone: "منطقة حولي"},
		{OrderCode: "3", Zone: zones.OtherZone},
		{OrderCode: "4", Zone: "منطقة خيطان"},
	}

	groups := GroupByZone(rows)

	require.Len(t, groups, 3)
	assert.Equal(t, "منطقة حولي", groups[0].Zone)
	assert.Equal(t, "منطقة خيطان", groups[1].Zone)
	assert.Equal(t, zones.OtherZone, groups[2].Zone)
	require.Len(t, groups[2].Rows, 2)
	assert.Equal(t, "1", groups[2].Rows[0].OrderCode)
	assert.Equal(t, "3", groups[2].Rows[1].OrderCode)
}

func TestGroupByZone_FirstSeenOrder(t *testing.T) {
	rows := []model.Record{
		{OrderCode: "1", Zone: "b"},
		{OrderCode: "2", Zone: "a"},
		{OrderCode: "3", Zone: "b"},
	}

	groups := GroupByZone(rows)

	require.Len(t, groups, 2)
	assert.Equal(t, "b", groups[0].Zone)
	assert.Equal(t, "a", groups[1].Zone)
	assert.Len(t, groups[0].Rows, 2)
}

func TestGroupByZone_Empty(t *testing.T) {
	assert.Empty(t, GroupByZone(nil))
}

func TestGroupByZone_OnlyCatchAll(t *testing.T) {
	rows := []model.Record{
		{OrderCode: "1", Zone: zones.OtherZone},
	}

	groups := GroupByZone(rows)

	require.Len(t, groups, 1)
	assert.Equal(t, zones.OtherZone, groups[0].Zone)
}

func TestBlankContinuationRows(t *testing.T) {
	rows := []model.Record{
		{OrderCode: "A1", CustomerName: "سارة", City: "حولي", Phone: "0100",
			OrderStatus: "تم التأكيد", Notes: "عاجل", TotalWithShipping: "25",
			ItemName: "قميص", ItemCount: 3, FirstOfOrder: true},
		{OrderCode: "A1", CustomerName: "سارة", City: "حولي", Phone: "0100",
			OrderStatus: "تم التأكيد", Notes: "عاجل", TotalWithShipping: "25",
			ItemName: "بنطلون", ItemCount: 3},
	}

	blanked := BlankContinuationRows(rows)

	// First row untouched.
	assert.Equal(t, rows[0], blanked[0])

	// Continuation row: order-level fields cleared, line-item fields kept.
	assert.Equal(t, "A1", blanked[1].OrderCode)
	assert.Equal(t, "", blanked[1].CustomerName)
	assert.Equal(t, "", blanked[1].City)
	assert.Equal(t, "", blanked[1].Phone)
	assert.Equal(t, "", blanked[1].OrderStatus)
	assert.Equal(t, "", blanked[1].Notes)
	assert.Equal(t, "", blanked[1].TotalWithShipping)
	assert.Equal(t, 0, blanked[1].ItemCount)
	assert.Equal(t, "بنطلون", blanked[1].ItemName)

	// Canonical rows stay fully populated.
	assert.Equal(t, "سارة", rows[1].CustomerName)
	assert.Equal(t, 3, rows[1].ItemCount)
}

func TestFileName_CairoDate(t *testing.T) {
	// 23:30 UTC on Jan 1 is already Jan 2 in Cairo.
	now := time.Date(2026, 1, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "الاوردرات المكررة - 2026-01-02.xlsx", FileName("الاوردرات المكررة", now))
}

func TestTitle(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	got := Title("منطقة حولي", "توزيع الاوردرات", now)

	assert.Equal(t, "منطقة حولي - توزيع الاوردرات - 2026-03-15", got)
}
