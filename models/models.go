package models

// OrderStateLocked is the only state eligible for aggregation.
// Orders in any other state are skipped during filtering.
const OrderStateLocked = "locked"

// Order is a single sales order as returned by the orders API.
// Total and the line item fields are optional upstream; missing values
// follow the defaulting rules applied in the aggregation helpers
// (Total -> 0, LineItem.Price -> 0, LineItem.UnitQty -> 1).
type Order struct {
	ID          string     `json:"id" validate:"required"`
	CreatedTime string     `json:"createdTime"`
	State       string     `json:"state"`
	Total       *int64     `json:"total"`
	LineItems   []LineItem `json:"lineItems" validate:"dive"`
}

// LineItem is one line of an order.
type LineItem struct {
	Name    string  `json:"name"`
	UnitQty float64 `json:"unitQty" validate:"gte=0"`
	Price   *int64  `json:"price" validate:"omitempty,gte=0"`
}

// TotalCents returns the recorded order total, 0 when absent.
func (o Order) TotalCents() int64 {
	if o.Total == nil {
		return 0
	}
	return *o.Total
}

// LineTotalCents returns the sum of the line item prices, 0 when absent.
func (o Order) LineTotalCents() int64 {
	var sum int64
	for _, li := range o.LineItems {
		sum += li.PriceCents()
	}
	return sum
}

// CreatedDate returns the calendar-day portion of CreatedTime
// (its first ten characters).
func (o Order) CreatedDate() string {
	if len(o.CreatedTime) < 10 {
		return o.CreatedTime
	}
	return o.CreatedTime[:10]
}

// DisplayName returns the item name, or "Unknown Item" when absent.
func (li LineItem) DisplayName() string {
	if li.Name == "" {
		return "Unknown Item"
	}
	return li.Name
}

// Quantity returns the unit quantity, defaulting to 1 when zero or absent.
func (li LineItem) Quantity() float64 {
	if li.UnitQty == 0 {
		return 1
	}
	return li.UnitQty
}

// PriceCents returns the line price, 0 when absent.
func (li LineItem) PriceCents() int64 {
	if li.Price == nil {
		return 0
	}
	return *li.Price
}
