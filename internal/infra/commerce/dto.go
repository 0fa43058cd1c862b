package commerce

import (
	"time"

	"neocart/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Wire shapes of the commerce API. Field names follow the upstream contract.

type productDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountPrice   decimal.Decimal `json:"discount_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Stock           int             `json:"stock"`
}

func (d productDTO) toEntity() entity.Product {
	return entity.Product{
		ID:              d.ID,
		Name:            d.Name,
		Description:     d.Description,
		ImageURL:        d.ImageURL,
		OriginalPrice:   d.OriginalPrice,
		DiscountPrice:   d.DiscountPrice,
		DiscountPercent: d.DiscountPercent,
		Stock:           d.Stock,
	}
}

type cartLineDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Quantity    int             `json:"quantity"`
}

func (d cartLineDTO) toEntity() entity.CartLine {
	return entity.CartLine{
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
		Quantity:    d.Quantity,
	}
}

type wishlistLineDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
}

func (d wishlistLineDTO) toEntity() entity.WishlistLine {
	return entity.WishlistLine{
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
	}
}

type couponDTO struct {
	Code            string          `json:"code"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

type profileDTO struct {
	ID            string            `json:"id"`
	Email         string            `json:"email"`
	Name          string            `json:"name"`
	Role          string            `json:"role"`
	IsVerified    bool              `json:"is_verified"`
	Address       string            `json:"address"`
	Phone         string            `json:"phone"`
	City          string            `json:"city"`
	Pincode       string            `json:"pincode"`
	AvatarURL     string            `json:"dp_url"`
	CartItems     []cartLineDTO     `json:"cart_items"`
	WishlistItems []wishlistLineDTO `json:"wishlist_items"`
}

func (d profileDTO) toEntity() *entity.Profile {
	profile := &entity.Profile{
		ID:         d.ID,
		Email:      d.Email,
		Name:       d.Name,
		Role:       entity.Role(d.Role),
		IsVerified: d.IsVerified,
		Address:    d.Address,
		Phone:      d.Phone,
		City:       d.City,
		Pincode:    d.Pincode,
		AvatarURL:  d.AvatarURL,
	}
	for _, item := range d.CartItems {
		profile.CartLines = append(profile.CartLines, item.toEntity())
	}
	for _, item := range d.WishlistItems {
		profile.WishlistLines = append(profile.WishlistLines, item.toEntity())
	}

	return profile
}

type orderDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	Pincode    string          `json:"pincode"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	Items      []cartLineDTO   `json:"items"`
}

func (d orderDTO) toEntity() entity.Order {
	order := entity.Order{
		ID:         d.ID,
		Name:       d.Name,
		Address:    d.Address,
		City:       d.City,
		Pincode:    d.Pincode,
		TotalPrice: d.TotalPrice,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
	}
	for _, item := range d.Items {
		order.Items = append(order.Items, item.toEntity())
	}

	return order
}

type reviewDTO struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (d reviewDTO) toEntity() entity.Review {
	return entity.Review{
		ID:        d.ID,
		ProductID: d.ProductID,
		UserName:  d.UserName,
		Rating:    d.Rating,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
	}
}
