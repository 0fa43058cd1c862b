package entity

import "github.com/shopspring/decimal"

// WishlistLine is one saved-for-later product. Uniqueness is by ProductID and
// enforced client-side only; the commerce API accepts duplicate adds.
type WishlistLine struct {
	ProductID   string
	ProductName string
	Price       decimal.Decimal
	ImageURL    string
}

// Wishlist is the client-side wishlist aggregate.
type Wishlist struct {
	Lines []WishlistLine
}

// Add appends the line unless a line with the same product reference is
// already present. It reports whether the product was already saved, which
// callers surface as an "already present" notice rather than an error.
func (w *Wishlist) Add(line WishlistLine) (existed bool) {
	for _, l := range w.Lines {
		if l.ProductID == line.ProductID {
			return true
		}
	}
	w.Lines = append(w.Lines, line)

	return false
}

// RemoveLine drops the line for the given product reference, if present.
func (w *Wishlist) RemoveLine(productID string) {
	kept := w.Lines[:0]
	for _, line := range w.Lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	w.Lines = kept
}

// Line returns the line for the given product reference, if present.
func (w *Wishlist) Line(productID string) (WishlistLine, bool) {
	for _, line := range w.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}

	return WishlistLine{}, false
}

// Replace swaps the whole line list, used when seeding from a profile snapshot.
func (w *Wishlist) Replace(lines []WishlistLine) {
	w.Lines = append([]WishlistLine(nil), lines...)
}

// Clear drops every saved line.
func (w *Wishlist) Clear() {
	w.Lines = nil
}
