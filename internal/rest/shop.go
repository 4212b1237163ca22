package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"ballisticmarket/domain"
	"ballisticmarket/pkg/logger"
	"ballisticmarket/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const recentPurchaseLimit = 5

type ShopProductService interface {
	GetActiveProducts(ctx context.Context) ([]domain.Product, error)
	GetActiveProductByID(ctx context.Context, id uint) (domain.Product, error)
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, userID uint, customerNotes string) (domain.Order, error)
}

type RecentPurchaseLister interface {
	FindRecent(ctx context.Context, limit int) ([]domain.RecentPurchase, error)
}

type ShopHandler struct {
	productService  ShopProductService
	checkoutService CheckoutService
	recentPurchases RecentPurchaseLister
	validator       *validator.Validate
	timeout         time.Duration
}

func NewShopHandler(productService ShopProductService, checkoutService CheckoutService, recentPurchases RecentPurchaseLister) *ShopHandler {
	return &ShopHandler{
		productService:  productService,
		checkoutService: checkoutService,
		recentPurchases: recentPurchases,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type CreateOrderRequest struct {
	CustomerNotes string `json:"customer_notes"`
}

func (h *ShopHandler) GetProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetActiveProducts(ctx)
	if err != nil {
		logger.Error("Failed to list products", err)
		return c.JSON(httpStatus(err), errorBody(err))
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ShopHandler) GetProductByID(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetActiveProductByID(ctx, uint(productID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Error: "Product not found"})
		}
		logger.Error("Failed to load product", err, "product_id", productID)
		return c.JSON(httpStatus(err), errorBody(err))
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ShopHandler) GetRecentPurchases(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	purchases, err := h.recentPurchases.FindRecent(ctx, recentPurchaseLimit)
	if err != nil {
		logger.Error("Failed to list recent purchases", err)
		return c.JSON(httpStatus(err), errorBody(err))
	}
	if purchases == nil {
		purchases = []domain.RecentPurchase{}
	}

	return c.JSON(http.StatusOK, purchases)
}

func (h *ShopHandler) CreateOrder(c echo.Context) error {
	timer := time.Now()
	defer func() {
		metrics.CheckoutDuration.Observe(time.Since(timer).Seconds())
	}()

	userID, _ := c.Get("user_id").(uint)

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	order, err := h.checkoutService.PlaceOrder(ctx, userID, req.CustomerNotes)
	if err != nil {
		logger.Error("Failed to create order", err, "user_id", userID)
		return c.JSON(httpStatus(err), errorBody(err))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "Order created successfully",
		"orderId":     order.ID,
		"totalAmount": order.TotalAmount,
	})
}
