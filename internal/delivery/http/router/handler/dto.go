package handler

import (
	"encoding/base64"
	"time"

	"neocart/internal/domain/entity"
	"neocart/internal/usecase"

	"github.com/shopspring/decimal"
)

// Wire projections for the JSON API. Amounts serialize as decimal strings.

type productJSON struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"imageUrl"`
	OriginalPrice   decimal.Decimal `json:"originalPrice"`
	DiscountPrice   decimal.Decimal `json:"discountPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Stock           int             `json:"stock"`
}

func toProductJSON(p entity.Product) productJSON {
	return productJSON{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		ImageURL:        p.ImageURL,
		OriginalPrice:   p.OriginalPrice,
		DiscountPrice:   p.DiscountPrice,
		DiscountPercent: p.DiscountPercent,
		Stock:           p.Stock,
	}
}

type feedJSON struct {
	View     string        `json:"view"`
	Search   string        `json:"search,omitempty"`
	Products []productJSON `json:"products"`
	HasMore  bool          `json:"hasMore"`
}

func toFeedJSON(feed *entity.Feed) feedJSON {
	products := make([]productJSON, 0, len(feed.Products))
	for _, p := range feed.Products {
		products = append(products, toProductJSON(p))
	}

	return feedJSON{
		View:     feed.View.String(),
		Search:   feed.Search,
		Products: products,
		HasMore:  feed.HasMore,
	}
}

type cartLineJSON struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Quantity    int             `json:"quantity"`
}

type couponJSON struct {
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

type cartSummaryJSON struct {
	Lines    []cartLineJSON  `json:"lines"`
	Coupon   *couponJSON     `json:"coupon,omitempty"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

func toCartSummaryJSON(summary *usecase.CartSummary) cartSummaryJSON {
	lines := make([]cartLineJSON, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		lines = append(lines, cartLineJSON{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Price:       line.Price,
			ImageURL:    line.ImageURL,
			Quantity:    line.Quantity,
		})
	}

	out := cartSummaryJSON{
		Lines:    lines,
		Subtotal: summary.Totals.Subtotal,
		Discount: summary.Totals.Discount,
		Total:    summary.Totals.Total,
	}
	if summary.Coupon != nil {
		out.Coupon = &couponJSON{Code: summary.Coupon.Code, DiscountPercent: summary.Coupon.DiscountPercent}
	}

	return out
}

type wishlistLineJSON struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}

func toWishlistJSON(lines []entity.WishlistLine) []wishlistLineJSON {
	out := make([]wishlistLineJSON, 0, len(lines))
	for _, line := range lines {
		out = append(out, wishlistLineJSON{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Price:       line.Price,
			ImageURL:    line.ImageURL,
		})
	}

	return out
}

type profileJSON struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	City       string `json:"city,omitempty"`
	Pincode    string `json:"pincode,omitempty"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}

func toProfileJSON(p *entity.Profile) *profileJSON {
	if p == nil {
		return nil
	}

	return &profileJSON{
		ID:         p.ID,
		Email:      p.Email,
		Name:       p.Name,
		Role:       p.Role.String(),
		IsVerified: p.IsVerified,
		Address:    p.Address,
		Phone:      p.Phone,
		City:       p.City,
		Pincode:    p.Pincode,
		AvatarURL:  p.AvatarURL,
	}
}

type sessionJSON struct {
	Phase   string       `json:"phase"`
	Profile *profileJSON `json:"profile,omitempty"`
	IsAdmin bool         `json:"isAdmin"`
	View    string       `json:"view"`
}

func toSessionJSON(view *usecase.SessionView) sessionJSON {
	return sessionJSON{
		Phase:   string(view.Phase),
		Profile: toProfileJSON(view.Profile),
		IsAdmin: view.IsAdmin,
		View:    view.View.String(),
	}
}

type orderJSON struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	Pincode    string          `json:"pincode"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	Items      []cartLineJSON  `json:"items"`
}

func toOrderJSON(order *entity.Order) orderJSON {
	items := make([]cartLineJSON, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, cartLineJSON{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			ImageURL:    item.ImageURL,
			Quantity:    item.Quantity,
		})
	}

	return orderJSON{
		ID:         order.ID,
		Name:       order.Name,
		Address:    order.Address,
		City:       order.City,
		Pincode:    order.Pincode,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
		Items:      items,
	}
}

type confirmationJSON struct {
	Order  orderJSON `json:"order"`
	QRCode string    `json:"qrCode,omitempty"` // Base64 PNG.
}

func toConfirmationJSON(confirmation *usecase.OrderConfirmation) confirmationJSON {
	out := confirmationJSON{Order: toOrderJSON(confirmation.Order)}
	if len(confirmation.QRCode) > 0 {
		out.QRCode = base64.StdEncoding.EncodeToString(confirmation.QRCode)
	}

	return out
}

type reviewJSON struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func toReviewJSON(review entity.Review) reviewJSON {
	return reviewJSON{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func toReviewsJSON(reviews []entity.Review) []reviewJSON {
	out := make([]reviewJSON, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewJSON(review))
	}

	return out
}
