package entity

import "github.com/shopspring/decimal"

// CartLine is one product entry in the cart. Lines are unique per ProductID;
// the commerce API decides whether an add creates a line or increments one.
type CartLine struct {
	ProductID   string
	ProductName string
	Price       decimal.Decimal // Unit price snapshot taken at add time.
	ImageURL    string
	Quantity    int
}

// Coupon is a discount applied to the whole cart. At most one is active.
type Coupon struct {
	Code            string
	DiscountPercent decimal.Decimal
}

// CartTotals are the derived values of the cart aggregate. They are
// recomputed on every line or coupon change, never cached.
type CartTotals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Cart is the client-side cart aggregate: the authoritative line list as last
// reconciled against the commerce API, plus the applied coupon.
type Cart struct {
	Lines  []CartLine
	Coupon *Coupon
}

// Reconcile applies the authoritative line returned by the commerce API after
// an add: replace the matching line if present, append otherwise. It reports
// whether the product was already in the cart.
func (c *Cart) Reconcile(line CartLine) (existed bool) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i] = line

			return true
		}
	}
	c.Lines = append(c.Lines, line)

	return false
}

// RemoveLine drops the line for the given product reference, if present.
func (c *Cart) RemoveLine(productID string) {
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	c.Lines = kept
}

// Line returns the line for the given product reference, if present.
func (c *Cart) Line(productID string) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}

	return CartLine{}, false
}

// Replace swaps the whole line list, used when seeding from a profile snapshot.
func (c *Cart) Replace(lines []CartLine) {
	c.Lines = append([]CartLine(nil), lines...)
}

// Clear resets lines and coupon. Local only: checkout's own round trip is
// responsible for clearing the server side.
func (c *Cart) Clear() {
	c.Lines = nil
	c.Coupon = nil
}

// Totals derives subtotal, discount and total from the current lines and
// coupon: subtotal = Σ(price × qty), discount = subtotal × pct/100 when a
// coupon is set, total = subtotal − discount.
func (c *Cart) Totals() CartTotals {
	subtotal := decimal.Zero
	for _, line := range c.Lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	discount := decimal.Zero
	if c.Coupon != nil && c.Coupon.DiscountPercent.IsPositive() {
		discount = subtotal.Mul(c.Coupon.DiscountPercent).Div(decimal.NewFromInt(100))
	}

	return CartTotals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}
}
