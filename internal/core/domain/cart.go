package domain

// Cart is the ordered collection of items the buyer has selected.
// It encodes as a JSON array.
type Cart []Item

// Len returns the number of items in the cart.
func (c Cart) Len() int {
	return len(c)
}

// At returns the item at index.
func (c Cart) At(index int) (Item, bool) {
	if index < 0 || index >= len(c) {
		return Item{}, false
	}
	return c[index], true
}

// Remove deletes the item at index in place, keeping the order of the rest.
// It reports false and leaves the cart unchanged when index is out of range.
func (c *Cart) Remove(index int) bool {
	items := *c
	if index < 0 || index >= len(items) {
		return false
	}
	*c = append(items[:index], items[index+1:]...)
	return true
}

// TotalPrice sums the line totals.
func (c Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c {
		total += item.TotalPrice
	}
	return roundCents(total)
}
