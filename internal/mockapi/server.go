package mockapi

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bookcatalog/internal/domain/entity"
	"bookcatalog/pkg/errors"
	"bookcatalog/pkg/response"
)

// Server is a stand-in for the real storefront backend, used for local
// development and as the fixture behind the client tests. State is held in
// memory.
type Server struct {
	echo *echo.Echo

	mu       sync.Mutex
	products []entity.Product
	cart     map[string]int
	payments map[string]string
}

type requestValidator struct {
	validator *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func NewServer(products []entity.Product) *Server {
	s := &Server{
		products: products,
		cart:     make(map[string]int),
		payments: make(map[string]string),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Validator = &requestValidator{validator: validator.New()}

	e.GET("/api/products", s.listProducts)
	e.GET("/api/cart", s.cartSummary)
	e.POST("/api/cart", s.addToCart)
	e.GET("/api/check-payment-status/:sessionId", s.paymentStatus)
	e.POST("/api/clear-cart", s.clearCart)

	s.echo = e
	return s
}

// Echo exposes the underlying handler so tests can mount the server on
// httptest.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(port string) error {
	return s.echo.Start(":" + port)
}

// SetPaymentStatus seeds the status reported for a checkout session.
func (s *Server) SetPaymentStatus(sessionID, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[sessionID] = status
}

func (s *Server) listProducts(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return response.Products(c, s.products)
}

func (s *Server) cartSummary(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return response.Cart(c, entity.Cart{TotalItems: s.totalItems()})
}

type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

func (s *Server) addToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := s.findProduct(req.ProductID)
	if product == nil {
		return response.Error(c, errors.NotFound("Product", nil))
	}
	if product.Stock < s.cart[req.ProductID]+req.Quantity {
		return response.Error(c, errors.BadRequest("insufficient stock", nil))
	}

	s.cart[req.ProductID] += req.Quantity
	return response.Cart(c, entity.Cart{TotalItems: s.totalItems()})
}

func (s *Server) paymentStatus(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, ok := s.payments[c.Param("sessionId")]
	if !ok {
		status = "unpaid"
	}
	return response.PaymentStatus(c, status)
}

func (s *Server) clearCart(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = make(map[string]int)
	return response.Cleared(c)
}

func (s *Server) findProduct(id string) *entity.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}

func (s *Server) totalItems() int {
	total := 0
	for _, quantity := range s.cart {
		total += quantity
	}
	return total
}
