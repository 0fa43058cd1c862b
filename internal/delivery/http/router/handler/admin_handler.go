package handler

import (
	"io"
	"log/slog"
	"net/http"

	"neocart/internal/delivery/http/middleware"
	"neocart/internal/delivery/http/response"
	"neocart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for admin management handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// CreateProduct adds a product to the catalog.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Name and prices are required")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), middleware.GetSession(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductJSON(*product), "Product created")
}

// UpdateProduct replaces a product's fields.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Name and prices are required")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), middleware.GetSession(c), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductJSON(*product), "Product updated")
}

// DeleteProduct removes a product from the catalog.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), middleware.GetSession(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted")
}

// DeleteAllProducts wipes the whole catalog.
func (h *AdminHandler) DeleteAllProducts(c echo.Context) error {
	deleted, err := h.uc.DeleteAllProducts(c.Request().Context(), middleware.GetSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"deleted": deleted}, "Catalog cleared")
}

// ListUsers returns every registered account.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	profiles, err := h.uc.ListUsers(c.Request().Context(), middleware.GetSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*profileJSON, 0, len(profiles))
	for i := range profiles {
		out = append(out, toProfileJSON(&profiles[i]))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// VerifyUser unlocks wholesale pricing for a wholesaler account.
func (h *AdminHandler) VerifyUser(c echo.Context) error {
	if err := h.uc.VerifyUser(c.Request().Context(), middleware.GetSession(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User verified"}, "User verified")
}

// ImportCatalog uploads a product spreadsheet.
func (h *AdminHandler) ImportCatalog(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A spreadsheet file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.WithStack(err)
	}

	imported, err := h.uc.ImportCatalog(c.Request().Context(), middleware.GetSession(c), &usecase.CatalogSheet{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"imported": imported}, "Catalog imported")
}

// ExportCatalog streams the catalog spreadsheet.
func (h *AdminHandler) ExportCatalog(c echo.Context) error {
	sheet, err := h.uc.ExportCatalog(c.Request().Context(), middleware.GetSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+sheet.Filename+`"`)

	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", sheet.Data)
}
