// Package model defines the canonical order-line record produced by the
// normalization pipeline and the table types shared across its stages.
package model

// Field identifies one canonical column of the normalized table.
type Field string

// Canonical field keys. Every source header variant is mapped onto one
// of these by the schema package.
const (
	FieldOrderCode         Field = "order_code"
	FieldCustomerName      Field = "customer_name"
	FieldAddress           Field = "address"
	FieldCity              Field = "city"
	FieldPhone             Field = "phone"
	FieldOrderStatus       Field = "order_status"
	FieldNotes             Field = "notes"
	FieldItemName          Field = "item_name"
	FieldColor             Field = "color"
	FieldSize              Field = "size"
	FieldQuantity          Field = "quantity"
	FieldTotalWithShipping Field = "total_with_shipping"

	// Derived fields, never present in uploads.
	FieldItemCount Field = "item_count"
	FieldZone      Field = "zone"
)

// SourceFields lists the canonical fields that may appear in an upload,
// in output order.
var SourceFields = []Field{
	FieldOrderCode,
	FieldCustomerName,
	FieldAddress,
	FieldCity,
	FieldPhone,
	FieldOrderStatus,
	FieldItemName,
	FieldColor,
	FieldSize,
	FieldQuantity,
	FieldTotalWithShipping,
	FieldNotes,
}

// ReportFields lists all fields of the rendered table, in column order.
var ReportFields = []Field{
	FieldOrderCode,
	FieldCustomerName,
	FieldAddress,
	FieldCity,
	FieldZone,
	FieldPhone,
	FieldOrderStatus,
	FieldItemName,
	FieldColor,
	FieldSize,
	FieldQuantity,
	FieldItemCount,
	FieldTotalWithShipping,
	FieldNotes,
}

// Labels holds the Arabic display header for each canonical field. The
// uploads and the rendered reports are Arabic; the canonical keys stay
// ASCII so they can double as config/map keys.
var Labels = map[Field]string{
	FieldOrderCode:         "كود الاوردر",
	FieldCustomerName:      "اسم العميل",
	FieldAddress:           "العنوان",
	FieldCity:              "المدينة",
	FieldPhone:             "رقم الموبايل",
	FieldOrderStatus:       "حالة الاوردر",
	FieldNotes:             "ملاحظات",
	FieldItemName:          "اسم المنتج",
	FieldColor:             "اللون",
	FieldSize:              "المقاس",
	FieldQuantity:          "الكمية",
	FieldTotalWithShipping: "الإجمالي شامل الشحن",
	FieldItemCount:         "عدد القطع",
	FieldZone:              "المنطقة",
}

// Record is one order-line of the normalized table. All cell values are
// kept as the strings they arrived as; quantities are parsed only when
// aggregated so that source formatting survives into the output.
type Record struct {
	OrderCode         string
	CustomerName      string
	Address           string
	City              string
	Phone             string
	OrderStatus       string
	Notes             string
	ItemName          string
	Color             string
	Size              string
	Quantity          string
	TotalWithShipping string

	// Derived during the pipeline.
	ItemCount    int
	Zone         string
	FirstOfOrder bool
}

// Get returns the value of a source field by key.
func (r *Record) Get(f Field) string {
	switch f {
	case FieldOrderCode:
		return r.OrderCode
	case FieldCustomerName:
		return r.CustomerName
	case FieldAddress:
		return r.Address
	case FieldCity:
		return r.City
	case FieldPhone:
		return r.Phone
	case FieldOrderStatus:
		return r.OrderStatus
	case FieldNotes:
		return r.Notes
	case FieldItemName:
		return r.ItemName
	case FieldColor:
		return r.Color
	case FieldSize:
		return r.Size
	case FieldQuantity:
		return r.Quantity
	case FieldTotalWithShipping:
		return r.TotalWithShipping
	case FieldZone:
		return r.Zone
	}
	return ""
}

// Set assigns the value of a source field by key. Unknown keys are
// ignored so sheets with stray columns merge cleanly.
func (r *Record) Set(f Field, v string) {
	switch f {
	case FieldOrderCode:
		r.OrderCode = v
	case FieldCustomerName:
		r.CustomerName = v
	case FieldAddress:
		r.Address = v
	case FieldCity:
		r.City = v
	case FieldPhone:
		r.Phone = v
	case FieldOrderStatus:
		r.OrderStatus = v
	case FieldNotes:
		r.Notes = v
	case FieldItemName:
		r.ItemName = v
	case FieldColor:
		r.Color = v
	case FieldSize:
		r.Size = v
	case FieldQuantity:
		r.Quantity = v
	case FieldTotalWithShipping:
		r.TotalWithShipping = v
	case FieldZone:
		r.Zone = v
	}
}

// Table is the merged, normalized record set for one pipeline run.
// Columns records which source fields were actually present across the
// merged uploads, in first-seen order.
type Table struct {
	Columns []Field
	Rows    []Record
}

// HasColumn reports whether the merged uploads carried the field.
func (t *Table) HasColumn(f Field) bool {
	for _, c := range t.Columns {
		if c == f {
			return true
		}
	}
	return false
}

// Pair is one (order code, phone) row of the duplicate-review flow.
type Pair struct {
	OrderCode string
	Phone     string
}
