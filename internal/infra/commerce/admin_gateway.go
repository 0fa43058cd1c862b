package commerce

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"

	"neocart/internal/domain/entity"
	"neocart/internal/domain/gateway"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type adminGateway struct {
	client *Client
	logger *slog.Logger
}

// NewAdminGateway is the constructor for the admin gateway.
func NewAdminGateway(client *Client, logger *slog.Logger) gateway.AdminGateway {
	return &adminGateway{client: client, logger: logger}
}

type productPayload struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	RetailPrice     decimal.Decimal `json:"retail_price"`
	WholesalerPrice decimal.Decimal `json:"wholesaler_price"`
	ImageURL        string          `json:"image_url"`
	Stock           int             `json:"stock"`
}

func newProductPayload(input entity.ProductInput) productPayload {
	return productPayload{
		Name:            input.Name,
		Description:     input.Description,
		OriginalPrice:   input.OriginalPrice,
		RetailPrice:     input.RetailPrice,
		WholesalerPrice: input.WholesalerPrice,
		ImageURL:        input.ImageURL,
		Stock:           input.Stock,
	}
}

func (g *adminGateway) CreateProduct(ctx context.Context, credential entity.Credential, input entity.ProductInput) (*entity.Product, error) {
	var dto productDTO
	if err := g.client.do(ctx, http.MethodPost, "/api/admin/products", nil, credential, newProductPayload(input), &dto); err != nil {
		return nil, translate(err)
	}

	product := dto.toEntity()

	return &product, nil
}

func (g *adminGateway) UpdateProduct(ctx context.Context, credential entity.Credential, id string, input entity.ProductInput) (*entity.Product, error) {
	var dto productDTO
	if err := g.client.do(ctx, http.MethodPut, "/api/admin/products/"+url.PathEscape(id), nil, credential, newProductPayload(input), &dto); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, errors.Wrapf(gateway.ErrProductNotFound, "product %s", id)
		}

		return nil, translate(err)
	}

	product := dto.toEntity()

	return &product, nil
}

func (g *adminGateway) DeleteProduct(ctx context.Context, credential entity.Credential, id string) error {
	err := g.client.do(ctx, http.MethodDelete, "/api/admin/products/"+url.PathEscape(id), nil, credential, nil, nil)
	if isStatus(err, http.StatusNotFound) {
		return errors.Wrapf(gateway.ErrProductNotFound, "product %s", id)
	}

	return translate(err)
}

func (g *adminGateway) DeleteAllProducts(ctx context.Context, credential entity.Credential) (int, error) {
	var resp struct {
		Deleted int `json:"deleted"`
	}
	if err := g.client.do(ctx, http.MethodDelete, "/api/admin/products-all", nil, credential, nil, &resp); err != nil {
		return 0, translate(err)
	}

	return resp.Deleted, nil
}

func (g *adminGateway) ListUsers(ctx context.Context, credential entity.Credential) ([]entity.Profile, error) {
	var dtos []profileDTO
	if err := g.client.do(ctx, http.MethodGet, "/api/admin/users", nil, credential, nil, &dtos); err != nil {
		return nil, translate(err)
	}

	profiles := make([]entity.Profile, 0, len(dtos))
	for _, dto := range dtos {
		profiles = append(profiles, *dto.toEntity())
	}

	return profiles, nil
}

func (g *adminGateway) VerifyUser(ctx context.Context, credential entity.Credential, userID string) error {
	err := g.client.do(ctx, http.MethodPost, "/api/admin/verify/"+url.PathEscape(userID), nil, credential, nil, nil)

	return translate(err)
}

func (g *adminGateway) UploadCatalog(ctx context.Context, credential entity.Credential, filename string, data []byte) (int, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return 0, errors.Wrap(err, "failed to build multipart body")
	}
	if _, err := part.Write(data); err != nil {
		return 0, errors.Wrap(err, "failed to write multipart body")
	}
	if err := writer.Close(); err != nil {
		return 0, errors.Wrap(err, "failed to finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.client.baseURL+"/api/admin/upload-excel", &buf)
	if err != nil {
		return 0, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+credential.String())

	var resp struct {
		Imported int `json:"imported"`
	}
	if err := g.client.send(req, &resp); err != nil {
		return 0, translate(err)
	}

	return resp.Imported, nil
}

func (g *adminGateway) DownloadCatalog(ctx context.Context, credential entity.Credential) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.client.baseURL+"/api/admin/products/download-excel", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+credential.String())

	resp, err := g.client.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "commerce api request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, translate(&upstreamError{status: resp.StatusCode, detail: decodeDetail(data)})
	}

	return data, nil
}
