// Package schema maps the inconsistent column headers of uploaded
// sheets onto the canonical field set.
package schema

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/stream-ops/orders-cli/internal/model"
	"github.com/stream-ops/orders-cli/internal/zones"
)

// RenameTable maps exact (normalized) source headers to canonical
// fields. Used by the normalize pipeline, where the export formats are
// known and enumerable.
type RenameTable map[string]model.Field

// DefaultRenameTable covers the header spellings observed across the
// store's export variants. Canonical keys map to themselves so that
// normalizing an already-canonical header set is a no-op.
func DefaultRenameTable() RenameTable {
	t := RenameTable{
		"كود الاوردر":         model.FieldOrderCode,
		"كود الأوردر":         model.FieldOrderCode,
		"كود الطلب":           model.FieldOrderCode,
		"الكود":               model.FieldOrderCode,
		"رقم عشوائي":          model.FieldOrderCode,
		"اسم العميل":          model.FieldCustomerName,
		"اسم المستلم":         model.FieldCustomerName,
		"الاسم":               model.FieldCustomerName,
		"العنوان":             model.FieldAddress,
		"عنوان العميل":        model.FieldAddress,
		"المدينة":             model.FieldCity,
		"المنطقة":             model.FieldCity,
		"المحافظة":            model.FieldCity,
		"رقم الموبايل":        model.FieldPhone,
		"رقم التليفون":        model.FieldPhone,
		"رقم الهاتف":          model.FieldPhone,
		"الهاتف":              model.FieldPhone,
		"موبايل":              model.FieldPhone,
		"حالة الاوردر":        model.FieldOrderStatus,
		"حالة الأوردر":        model.FieldOrderStatus,
		"حالة الطلب":          model.FieldOrderStatus,
		"الحالة":              model.FieldOrderStatus,
		"ملاحظات":             model.FieldNotes,
		"ملحوظات":             model.FieldNotes,
		"ملاحظة":              model.FieldNotes,
		"اسم المنتج":          model.FieldItemName,
		"المنتج":              model.FieldItemName,
		"الصنف":               model.FieldItemName,
		"اللون":               model.FieldColor,
		"المقاس":              model.FieldSize,
		"الحجم":               model.FieldSize,
		"الكمية":              model.FieldQuantity,
		"العدد":               model.FieldQuantity,
		"الإجمالي شامل الشحن": model.FieldTotalWithShipping,
		"الاجمالي شامل الشحن": model.FieldTotalWithShipping,
		"الإجمالي":            model.FieldTotalWithShipping,
		"الاجمالي":            model.FieldTotalWithShipping,
	}
	for _, f := range model.SourceFields {
		t[string(f)] = f
	}
	return t
}

// Normalize resolves a sheet's headers to canonical fields using the
// rename table. Headers it does not recognize resolve to "", and the
// merger drops those cells.
func Normalize(headers []string, table RenameTable) []model.Field {
	fields := make([]model.Field, len(headers))
	for i, h := range headers {
		fields[i] = table[zones.Normalize(h)]
	}
	return fields
}

// ErrColumnsNotFound reports that neither an order-code-like nor a
// phone-like column could be identified among the sheet's headers.
var ErrColumnsNotFound = eris.New("schema: order-code and phone columns not found")

// DetectPair locates the order-code and phone columns by substring
// heuristics, for uploads whose headers are too free-form for the
// rename table. A header matches the code column when it contains
// "كود", or contains both "رقم" and "عشوائي"; it matches the phone
// column when it contains any of "موبايل", "تليفون", "هاتف". The
// precedence and the last-match-wins scan are load-bearing business
// rules; a header containing only "رقم" never matches the code column.
func DetectPair(headers []string) (codeIdx, phoneIdx int, err error) {
	codeIdx, phoneIdx = -1, -1
	for i, h := range headers {
		n := strings.ToLower(zones.Normalize(h))
		switch {
		case strings.Contains(n, "كود") || (strings.Contains(n, "رقم") && strings.Contains(n, "عشوائي")):
			codeIdx = i
		case strings.Contains(n, "موبايل") || strings.Contains(n, "تليفون") || strings.Contains(n, "هاتف"):
			phoneIdx = i
		}
	}
	if codeIdx < 0 || phoneIdx < 0 {
		return -1, -1, eris.Wrapf(ErrColumnsNotFound, "observed headers: %s", strings.Join(headers, "، "))
	}
	return codeIdx, phoneIdx, nil
}
