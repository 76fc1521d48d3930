package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stream-ops/orders-cli/internal/model"
)

func TestForwardFill_RepairsMergedCells(t *testing.T) {
	rows := []model.Record{
		{OrderCode: "A1", CustomerName: "سارة", City: "حولي", ItemName: "قميص"},
		{ItemName: "بنطلون"},
		{ItemName: "حذاء"},
		{OrderCode: "A2", CustomerName: "ليلى", City: "خيطان", ItemName: "فستان"},
	}

	ForwardFill(rows)

	assert.Equal(t, "A1", rows[1].OrderCode)
	assert.Equal(t, "سارة", rows[1].CustomerName)
	assert.Equal(t, "حولي", rows[1].City)
	assert.Equal(t, "A1", rows[2].OrderCode)
	assert.Equal(t, "A2", rows[3].OrderCode)
	assert.Equal(t, "خيطان", rows[3].City)
}

func TestForwardFill_LeadingBlankStaysBlank(t *testing.T) {
	rows := []model.Record{
		{ItemName: "قميص"},
		{OrderCode: "A1", ItemName: "بنطلون"},
	}

	ForwardFill(rows)

	assert.Equal(t, "", rows[0].OrderCode)
	assert.Equal(t, "A1", rows[1].OrderCode)
}

func TestForwardFill_Idempotent(t *testing.T) {
	rows := []model.Record{
		{OrderCode: "A1", CustomerName: "سارة", City: "حولي"},
		{},
		{OrderCode: "A2", CustomerName: "ليلى", City: "خيطان"},
	}

	ForwardFill(rows)
	once := make([]model.Record, len(rows))
	copy(once, rows)

	ForwardFill(rows)

	assert.Equal(t, once, rows)
}

func TestForwardFill_TreatsWhitespaceAsBlank(t *testing.T) {
	rows := []model.Record{
		{OrderCode: "A1"},
		{OrderCode: "   "},
	}

	ForwardFill(rows)

	assert.Equal(t, "A1", rows[1].OrderCode)
}

func TestBackfillCity_ItemRowBeforePropagation(t *testing.T) {
	rows := []model.Record{
		{OrderCode: "A1", City: "حولي", ItemName: "قميص"},
		{OrderCode: "A2", ItemName: "فستان"}, // item present, city blank
		{OrderCode: "A3"}, // no item: left alone
	}

	BackfillCity(rows)

	assert.Equal(t, "حولي", rows[1].City)
	assert.Equal(t, "", rows[2].City)
}

func TestBackfillCity_NoPrecedingCity(t *testing.T) {
	rows := []model.Record{
		{OrderCode: "A1", ItemName: "قميص"},
	}

	BackfillCity(rows)

	assert.Equal(t, "", rows[0].City)
}

func TestRemapStatus(t *testing.T) {
	rows := []model.Record{
		{OrderStatus: StatusPending},
		{OrderStatus: "ملغي"},
		{OrderStatus: ""},
		{OrderStatus: StatusConfirmed},
	}

	RemapStatus(rows)

	assert.Equal(t, StatusConfirmed, rows[0].OrderStatus)
	assert.Equal(t, "ملغي", rows[1].OrderStatus)
	assert.Equal(t, "", rows[2].OrderStatus)
	assert.Equal(t, StatusConfirmed, rows[3].OrderStatus)
}
