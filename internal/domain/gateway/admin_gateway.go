package gateway

import (
	"context"

	"neocart/internal/domain/entity"
)

// AdminGateway covers the product and user management surface. The upstream
// enforces that the credential belongs to the admin account; the client only
// forwards.
type AdminGateway interface {
	CreateProduct(ctx context.Context, credential entity.Credential, input entity.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, credential entity.Credential, id string, input entity.ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, credential entity.Credential, id string) error

	// DeleteAllProducts wipes the catalog and returns the number of products
	// removed.
	DeleteAllProducts(ctx context.Context, credential entity.Credential) (int, error)

	ListUsers(ctx context.Context, credential entity.Credential) ([]entity.Profile, error)

	// VerifyUser marks a wholesaler account as verified, unlocking the
	// wholesale pricing tier for it.
	VerifyUser(ctx context.Context, credential entity.Credential, userID string) error

	// UploadCatalog sends a spreadsheet of products and returns how many rows
	// the upstream imported.
	UploadCatalog(ctx context.Context, credential entity.Credential, filename string, data []byte) (int, error)

	// DownloadCatalog fetches the full catalog as a spreadsheet.
	DownloadCatalog(ctx context.Context, credential entity.Credential) ([]byte, error)
}
