package impl

import (
	"context"
	"log/slog"
	"time"

	"neocart/config"
	"neocart/internal/domain/entity"
	domainerrors "neocart/internal/domain/errors"
	"neocart/internal/domain/gateway"
	"neocart/internal/state"
	"neocart/internal/usecase"

	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	admin      gateway.AdminGateway
	adminEmail string
	logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	cfg *config.Config,
	admin gateway.AdminGateway,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		admin:      admin,
		adminEmail: cfg.Identity.AdminEmail,
		logger:     logger,
	}
}

// requireAdmin gates every management operation on the configured admin
// identity. The upstream enforces the same rule independently.
func (srv *adminService) requireAdmin(session *state.Session) (entity.Credential, error) {
	credential, err := requireCredential(session)
	if err != nil {
		return "", err
	}
	if !entity.IsAdmin(session.Profile(), srv.adminEmail) {
		return "", errors.Wrap(domainerrors.ErrForbidden, "management requires the admin account")
	}

	return credential, nil
}

func (srv *adminService) mapError(err error, msg string) error {
	if errors.Is(err, gateway.ErrCredentialRejected) {
		return errors.Wrap(domainerrors.ErrInvalidCredential, err.Error())
	}
	if errors.Is(err, gateway.ErrProductNotFound) {
		return errors.Wrap(domainerrors.ErrNotFound, err.Error())
	}

	var rejection *gateway.RejectionError
	if errors.As(err, &rejection) {
		return domainerrors.ErrUpstreamRejected.WithDetails(rejection.Reason)
	}

	return errors.Wrap(err, msg)
}

func (srv *adminService) CreateProduct(ctx context.Context, session *state.Session, input *usecase.ProductInput) (*entity.Product, error) {
	credential, err := srv.requireAdmin(session)
	if err != nil {
		return nil, err
	}

	product, err := srv.admin.CreateProduct(ctx, credential, toProductInput(input))
	if err != nil {
		return nil, srv.mapError(err, "failed to create product")
	}

	srv.logger.Info("Product created", slog.String("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

func (srv *adminService) UpdateProduct(ctx context.Context, session *state.Session, productID string, input *usecase.ProductInput) (*entity.Product, error) {
	credential, err := srv.requireAdmin(session)
	if err != nil {
		return nil, err
	}

	product, err := srv.admin.UpdateProduct(ctx, credential, productID, toProductInput(input))
	if err != nil {
		return nil, srv.mapError(err, "failed to update product")
	}

	srv.logger.Info("Product updated", slog.String("productID", productID))

	return product, nil
}

func (srv *adminService) DeleteProduct(ctx context.Context, session *state.Session, productID string) error {
	credential, err := srv.requireAdmin(session)
	if err != nil {
		return err
	}

	if err := srv.admin.DeleteProduct(ctx, credential, productID); err != nil {
		return srv.mapError(err, "failed to delete product")
	}

	srv.logger.Info("Product deleted", slog.String("productID", productID))

	return nil
}

func (srv *adminService) DeleteAllProducts(ctx context.Context, session *state.Session) (int, error) {
	credential, err := srv.requireAdmin(session)
	if err != nil {
		return 0, err
	}

	deleted, err := srv.admin.DeleteAllProducts(ctx, credential)
	if err != nil {
		return 0, srv.mapError(err, "failed to delete catalog")
	}

	srv.logger.Warn("Catalog wiped", slog.Int("deleted", deleted))

	return deleted, nil
}

func (srv *adminService) ListUsers(ctx context.Context, session *state.Session) ([]entity.Profile, error) {
	credential, err := srv.requireAdmin(session)
	if err != nil {
		return nil, err
	}

	users, err := srv.admin.ListUsers(ctx, credential)
	if err != nil {
		return nil, srv.mapError(err, "failed to list users")
	}

	return users, nil
}

func (srv *adminService) VerifyUser(ctx context.Context, session *state.Session, userID string) error {
	credential, err := srv.requireAdmin(session)
	if err != nil {
		return err
	}

	if err := srv.admin.VerifyUser(ctx, credential, userID); err != nil {
		return srv.mapError(err, "failed to verify user")
	}

	srv.logger.Info("Wholesaler verified", slog.String("userID", userID))

	return nil
}

func (srv *adminService) ImportCatalog(ctx context.Context, session *state.Session, sheet *usecase.CatalogSheet) (int, error) {
	credential, err := srv.requireAdmin(session)
	if err != nil {
		return 0, err
	}
	if len(sheet.Data) == 0 {
		return 0, errors.Wrap(domainerrors.ErrValidationFailed, "spreadsheet is empty")
	}

	imported, err := srv.admin.UploadCatalog(ctx, credential, sheet.Filename, sheet.Data)
	if err != nil {
		return 0, srv.mapError(err, "failed to import catalog")
	}

	srv.logger.Info("Catalog imported", slog.String("filename", sheet.Filename), slog.Int("imported", imported))

	return imported, nil
}

func (srv *adminService) ExportCatalog(ctx context.Context, session *state.Session) (*usecase.CatalogSheet, error) {
	credential, err := srv.requireAdmin(session)
	if err != nil {
		return nil, err
	}

	data, err := srv.admin.DownloadCatalog(ctx, credential)
	if err != nil {
		return nil, srv.mapError(err, "failed to export catalog")
	}

	filename := "products-" + time.Now().Format("20060102") + ".xlsx"

	return &usecase.CatalogSheet{Filename: filename, Data: data}, nil
}

func toProductInput(input *usecase.ProductInput) entity.ProductInput {
	return entity.ProductInput{
		Name:            input.Name,
		Description:     input.Description,
		OriginalPrice:   input.OriginalPrice,
		RetailPrice:     input.RetailPrice,
		WholesalerPrice: input.WholesalerPrice,
		ImageURL:        input.ImageURL,
		Stock:           input.Stock,
	}
}
