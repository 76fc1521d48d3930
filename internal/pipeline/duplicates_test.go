package pipeline

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stream-ops/orders-cli/internal/ingest"
	"github.com/stream-ops/orders-cli/internal/model"
	"github.com/stream-ops/orders-cli/internal/schema"
)

func TestFindDuplicates_CollapsesExactPairsFirst(t *testing.T) {
	pairs := []model.Pair{
		{OrderCode: "A", Phone: "100"},
		{OrderCode: "A", Phone: "100"}, // exact repeat, collapsed
		{OrderCode: "B", Phone: "100"},
		{OrderCode: "C", Phone: "200"},
	}

	dups := FindDuplicates(pairs)

	require.Len(t, dups, 2)
	assert.Equal(t, DuplicateRow{OrderCode: "A", Phone: "100", CodeCount: 2}, dups[0])
	assert.Equal(t, DuplicateRow{OrderCode: "B", Phone: "100", CodeCount: 2}, dups[1])
}

func TestFindDuplicates_SortedByPhone(t *testing.T) {
	pairs := []model.Pair{
		{OrderCode: "X", Phone: "900"},
		{OrderCode: "Y", Phone: "900"},
		{OrderCode: "P", Phone: "100"},
		{OrderCode: "Q", Phone: "100"},
	}

	dups := FindDuplicates(pairs)

	require.Len(t, dups, 4)
	assert.Equal(t, "100", dups[0].Phone)
	assert.Equal(t, "100", dups[1].Phone)
	assert.Equal(t, "900", dups[2].Phone)
	// First-seen order kept within a phone.
	assert.Equal(t, "P", dups[0].OrderCode)
	assert.Equal(t, "Q", dups[1].OrderCode)
}

func TestFindDuplicates_TrimsAndDropsBlank(t *testing.T) {
	pairs := []model.Pair{
		{OrderCode: " A ", Phone: " 100 "},
		{OrderCode: "A", Phone: "100"}, // same pair after trim
		{OrderCode: "", Phone: "100"},
		{OrderCode: "B", Phone: ""},
		{OrderCode: "B", Phone: "100"},
	}

	dups := FindDuplicates(pairs)

	require.Len(t, dups, 2)
	assert.Equal(t, "A", dups[0].OrderCode)
	assert.Equal(t, "B", dups[1].OrderCode)
}

func TestFindDuplicates_NoneIsValid(t *testing.T) {
	pairs := []model.Pair{
		{OrderCode: "A", Phone: "100"},
		{OrderCode: "A", Phone: "100"},
		{OrderCode: "B", Phone: "200"},
	}

	dups := FindDuplicates(pairs)

	assert.Empty(t, dups)
}

func TestSummarize(t *testing.T) {
	dups := []DuplicateRow{
		{OrderCode: "A", Phone: "100", CodeCount: 2},
		{OrderCode: "B", Phone: "100", CodeCount: 2},
		{OrderCode: "C", Phone: "300", CodeCount: 3},
		{OrderCode: "D", Phone: "300", CodeCount: 3},
		{OrderCode: "E", Phone: "300", CodeCount: 3},
	}

	sums := Summarize(dups)

	require.Len(t, sums, 2)
	// Sorted by count descending.
	assert.Equal(t, PhoneSummary{Phone: "300", CodeCount: 3, Codes: "C، D، E"}, sums[0])
	assert.Equal(t, PhoneSummary{Phone: "100", CodeCount: 2, Codes: "A، B"}, sums[1])
}

func TestSummarize_TieBreaksByPhone(t *testing.T) {
	dups := []DuplicateRow{
		{OrderCode: "X", Phone: "200", CodeCount: 2},
		{OrderCode: "Y", Phone: "200", CodeCount: 2},
		{OrderCode: "P", Phone: "100", CodeCount: 2},
		{OrderCode: "Q", Phone: "100", CodeCount: 2},
	}

	sums := Summarize(dups)

	require.Len(t, sums, 2)
	assert.Equal(t, "100", sums[0].Phone)
	assert.Equal(t, "200", sums[1].Phone)
}

func TestExtractPairs(t *testing.T) {
	sheet := ingest.Sheet{
		Name:   "Sheet1",
		Header: []string{"اسم العميل", "كود الاوردر", "رقم الموبايل"},
		Rows: [][]string{
			{"سارة", " A1 ", " 0100 "},
			{"ليلى", "", "0200"}, // missing code: dropped
			{"منى", "A2", ""},    // missing phone: dropped
			{"هدى", "A3", "0300"},
			{"قصيرة"}, // short row: both cells missing
		},
	}

	pairs, err := ExtractPairs(sheet)
	require.NoError(t, err)

	assert.Equal(t, []model.Pair{
		{OrderCode: "A1", Phone: "0100"},
		{OrderCode: "A3", Phone: "0300"},
	}, pairs)
}

func TestExtractPairs_ColumnsNotFound(t *testing.T) {
	sheet := ingest.Sheet{
		Name:   "Sheet1",
		Header: []string{"الاسم", "العنوان"},
	}

	_, err := ExtractPairs(sheet)
	require.Error(t, err)
	assert.True(t, eris.Is(err, schema.ErrColumnsNotFound))
}
