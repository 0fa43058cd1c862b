package entity

import "github.com/shopspring/decimal"

// Product is the view projection returned by the commerce API for a given
// price view. The discounted price is resolved server-side per view and is
// never cached across view switches.
type Product struct {
	ID              string
	Name            string
	Description     string
	ImageURL        string
	OriginalPrice   decimal.Decimal // MRP before any tier discount.
	DiscountPrice   decimal.Decimal // Price resolved for the requested view.
	DiscountPercent decimal.Decimal
	Stock           int
}

// ProductQuery is the listing request shape accepted by the commerce API.
type ProductQuery struct {
	View   PriceView
	Skip   int
	Limit  int
	Search string
}

// ProductInput is the admin-side payload for creating or updating a product.
type ProductInput struct {
	Name            string
	Description     string
	OriginalPrice   decimal.Decimal
	RetailPrice     decimal.Decimal
	WholesalerPrice decimal.Decimal
	ImageURL        string
	Stock           int
}
