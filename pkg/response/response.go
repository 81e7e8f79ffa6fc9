package response

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"bookcatalog/internal/domain/entity"
	apperrors "bookcatalog/pkg/errors"
)

// Helpers for the storefront API wire format. Every body carries an explicit
// success flag alongside the payload; clients key off that flag, not just the
// HTTP status.

type ProductsResponse struct {
	Success  bool             `json:"success"`
	Products []entity.Product `json:"products"`
	Total    int              `json:"total"`
}

type CartResponse struct {
	Success bool        `json:"success"`
	Cart    entity.Cart `json:"cart"`
}

type PaymentStatusResponse struct {
	PaymentStatus string `json:"paymentStatus"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorInfo `json:"error"`
}

func Products(c echo.Context, products []entity.Product) error {
	if products == nil {
		products = []entity.Product{}
	}
	return c.JSON(http.StatusOK, ProductsResponse{
		Success:  true,
		Products: products,
		Total:    len(products),
	})
}

func Cart(c echo.Context, cart entity.Cart) error {
	return c.JSON(http.StatusOK, CartResponse{
		Success: true,
		Cart:    cart,
	})
}

func PaymentStatus(c echo.Context, status string) error {
	return c.JSON(http.StatusOK, PaymentStatusResponse{PaymentStatus: status})
}

func Cleared(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error: ErrorInfo{
				Code:    "VALIDATION_ERROR",
				Message: validationErr.Error(),
			},
		})
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorResponse{
			Success: false,
			Error: ErrorInfo{
				Code:    appErr.Code,
				Message: appErr.Message,
			},
		})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Success: false,
		Error: ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Message: "An unexpected error occurred",
		},
	})
}
