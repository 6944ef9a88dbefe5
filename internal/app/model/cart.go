package model

// LineKey identifies one distinguishable purchasable unit: a base catalog
// item plus the selected variant, if any. Keeping the two parts separate
// avoids collisions with item identifiers that themselves contain a hyphen.
type LineKey struct {
	ItemID  string `json:"item_id"`
	Variant string `json:"variant,omitempty"`
}

// String renders the key in the wire form the order-intake service expects.
func (k LineKey) String() string {
	if k.Variant == "" {
		return k.ItemID
	}
	return k.ItemID + "-" + k.Variant
}

// CartLine is one merged (item, variant) entry. UnitPrice is locked at the
// moment the line is first created and never altered by later merges.
type CartLine struct {
	Key       LineKey `json:"key"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
	Category  string  `json:"category,omitempty"`
}

// Cart is an ordered sequence of lines, unique by key. Totals are always
// derived by folding over the lines, never cached.
type Cart []CartLine

// IndexOf returns the position of the line with the given key, or -1.
func (c Cart) IndexOf(key LineKey) int {
	for i, line := range c {
		if line.Key == key {
			return i
		}
	}
	return -1
}

// TotalQuantity sums the quantities of all lines.
func (c Cart) TotalQuantity() int {
	total := 0
	for _, line := range c {
		total += line.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
