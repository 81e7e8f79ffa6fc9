package backend

import (
	"context"
	"net/http"

	"bookcatalog/internal/domain/entity"
	"bookcatalog/pkg/errors"
)

type productsEnvelope struct {
	Success  bool             `json:"success"`
	Products []entity.Product `json:"products"`
	Total    int              `json:"total"`
}

// List fetches the full product collection. A reply with success=false is a
// load failure, same as a transport or decode error.
func (c *Client) List(ctx context.Context) ([]entity.Product, error) {
	var envelope productsEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/api/products", nil, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, errors.BadResponse("product listing reported failure", nil)
	}
	return envelope.Products, nil
}
