package usecase

import (
	"context"

	"neocart/internal/domain/entity"
	"neocart/internal/state"

	"github.com/shopspring/decimal"
)

// ProductInput is the admin payload for creating or updating a product.
type ProductInput struct {
	Name            string          `json:"name" validate:"required"`
	Description     string          `json:"description"`
	OriginalPrice   decimal.Decimal `json:"originalPrice" validate:"required"`
	RetailPrice     decimal.Decimal `json:"retailPrice" validate:"required"`
	WholesalerPrice decimal.Decimal `json:"wholesalerPrice" validate:"required"`
	ImageURL        string          `json:"imageUrl" validate:"omitempty,url"`
	Stock           int             `json:"stock" validate:"min=0"`
}

// CatalogSheet is a spreadsheet snapshot of the product catalog.
type CatalogSheet struct {
	Filename string
	Data     []byte
}

// AdminUsecase covers product and user management. Every operation checks
// the session against the configured admin identity before forwarding; the
// upstream enforces the same rule on its side.
type AdminUsecase interface {
	CreateProduct(ctx context.Context, session *state.Session, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, session *state.Session, productID string, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, session *state.Session, productID string) error

	// DeleteAllProducts wipes the catalog and returns how many products were
	// removed.
	DeleteAllProducts(ctx context.Context, session *state.Session) (int, error)

	ListUsers(ctx context.Context, session *state.Session) ([]entity.Profile, error)

	// VerifyUser marks a wholesaler account as verified, unlocking wholesale
	// pricing for it.
	VerifyUser(ctx context.Context, session *state.Session, userID string) error

	// ImportCatalog uploads a product spreadsheet and returns how many rows
	// were imported.
	ImportCatalog(ctx context.Context, session *state.Session, sheet *CatalogSheet) (int, error)

	// ExportCatalog downloads the full catalog as a spreadsheet.
	ExportCatalog(ctx context.Context, session *state.Session) (*CatalogSheet, error)
}
