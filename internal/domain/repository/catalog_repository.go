package repository

import (
	"context"

	"bookcatalog/internal/domain/entity"
)

type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
}

type CartRepository interface {
	Summary(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, productID string, quantity int) (*entity.Cart, error)
	Clear(ctx context.Context) error
}

type PaymentRepository interface {
	Status(ctx context.Context, sessionID string) (string, error)
}
