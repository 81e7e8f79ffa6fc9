package usecase

import (
	"context"

	"bookcatalog/internal/domain/entity"
	"bookcatalog/internal/domain/repository"
	"bookcatalog/pkg/logger"
)

type CatalogUseCase struct {
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
}

func NewCatalogUseCase(
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		cartRepo:    cartRepo,
	}
}

// LoadProducts fetches the authoritative product collection. Any failure is
// fatal to the catalog view; classification happens in the client.
func (u *CatalogUseCase) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to load products: %v", err)
		return nil, err
	}
	logger.Info("Loaded %d products", len(products))
	return products, nil
}

// CartTotal fetches the current cart item count. Failures are non-fatal for
// the caller, which keeps its previous count.
func (u *CatalogUseCase) CartTotal(ctx context.Context) (int, error) {
	cart, err := u.cartRepo.Summary(ctx)
	if err != nil {
		logger.Warn("Failed to load cart total: %v", err)
		return 0, err
	}
	return cart.TotalItems, nil
}

// AddToCart adds one unit of the given product and returns the new cart item
// count reported by the backend.
func (u *CatalogUseCase) AddToCart(ctx context.Context, productID string) (int, error) {
	cart, err := u.cartRepo.AddItem(ctx, productID, 1)
	if err != nil {
		logger.Error("Failed to add product %s to cart: %v", productID, err)
		return 0, err
	}
	logger.Info("Added product %s to cart, total items: %d", productID, cart.TotalItems)
	return cart.TotalItems, nil
}
