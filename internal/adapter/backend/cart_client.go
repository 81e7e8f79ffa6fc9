package backend

import (
	"context"
	"net/http"

	"bookcatalog/internal/domain/entity"
	"bookcatalog/pkg/errors"
)

type cartEnvelope struct {
	Success bool        `json:"success"`
	Cart    entity.Cart `json:"cart"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (c *Client) Summary(ctx context.Context) (*entity.Cart, error) {
	var envelope cartEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/api/cart", nil, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, errors.BadResponse("cart summary reported failure", nil)
	}
	return &envelope.Cart, nil
}

func (c *Client) AddItem(ctx context.Context, productID string, quantity int) (*entity.Cart, error) {
	req := addItemRequest{ProductID: productID, Quantity: quantity}

	var envelope cartEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/api/cart", req, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, errors.BadResponse("add to cart reported failure", nil)
	}
	return &envelope.Cart, nil
}

func (c *Client) Clear(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/clear-cart", nil, nil)
}
