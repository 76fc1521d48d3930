package pipeline

import (
	"sort"
	"strings"

	"github.com/stream-ops/orders-cli/internal/ingest"
	"github.com/stream-ops/orders-cli/internal/model"
	"github.com/stream-ops/orders-cli/internal/schema"
)

// DuplicateRow is one surviving (code, phone) pair whose phone appears
// under two or more distinct order codes.
type DuplicateRow struct {
	OrderCode string
	Phone     string
	CodeCount int
}

// PhoneSummary aggregates one duplicated phone: how many codes share it
// and the joined list of those codes.
type PhoneSummary struct {
	Phone     string
	CodeCount int
	Codes     string
}

// ExtractPairs pulls the (order code, phone) projection from a sheet,
// locating the two columns by header heuristics. Rows missing either
// value are dropped; both values are trimmed.
func ExtractPairs(sheet ingest.Sheet) ([]model.Pair, error) {
	codeIdx, phoneIdx, err := schema.DetectPair(sheet.Header)
	if err != nil {
		return nil, err
	}

	var pairs []model.Pair
	for _, row := range sheet.Rows {
		p := model.Pair{
			OrderCode: cellAt(row, codeIdx),
			Phone:     cellAt(row, phoneIdx),
		}
		if p.OrderCode == "" || p.Phone == "" {
			continue
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// FindDuplicates collapses exact (code, phone) repeats, then reports
// every pair whose phone is shared by at least two distinct codes.
// Output is sorted by phone; within a phone, pairs keep first-seen
// order. An empty result is a valid outcome, not an error.
func FindDuplicates(pairs []model.Pair) []DuplicateRow {
	seen := make(map[model.Pair]bool)
	var unique []model.Pair
	for _, p := range pairs {
		p.OrderCode = strings.TrimSpace(p.OrderCode)
		p.Phone = strings.TrimSpace(p.Phone)
		if p.OrderCode == "" || p.Phone == "" || seen[p] {
			continue
		}
		seen[p] = true
		unique = append(unique, p)
	}

	counts := make(map[string]int)
	for _, p := range unique {
		counts[p.Phone]++
	}

	var out []DuplicateRow
	for _, p := range unique {
		if counts[p.Phone] < 2 {
			continue
		}
		out = append(out, DuplicateRow{
			OrderCode: p.OrderCode,
			Phone:     p.Phone,
			CodeCount: counts[p.Phone],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Phone < out[j].Phone
	})
	return out
}

// Summarize folds duplicate rows into one line per phone, codes joined
// with "، ", sorted by code count descending (ties by phone ascending
// for a deterministic order).
func Summarize(rows []DuplicateRow) []PhoneSummary {
	codes := make(map[string][]string)
	var order []string
	for _, r := range rows {
		if _, ok := codes[r.Phone]; !ok {
			order = append(order, r.Phone)
		}
		codes[r.Phone] = append(codes[r.Phone], r.OrderCode)
	}

	out := make([]PhoneSummary, 0, len(order))
	for _, phone := range order {
		out = append(out, PhoneSummary{
			Phone:     phone,
			CodeCount: len(codes[phone]),
			Codes:     strings.Join(codes[phone], "، "),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CodeCount != out[j].CodeCount {
			return out[i].CodeCount > out[j].CodeCount
		}
		return out[i].Phone < out[j].Phone
	})
	return out
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
