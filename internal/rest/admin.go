package rest

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ballisticmarket/domain"
	"ballisticmarket/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxImageSize = 5 * 1024 * 1024

type AdminProductService interface {
	GetActiveProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type AdminOrdersService interface {
	GetAllOrders(ctx context.Context) ([]domain.OrderDetail, error)
	UpdateStatus(ctx context.Context, orderID uint, status, adminNotes string) error
}

type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}

type AdminHandler struct {
	productService AdminProductService
	ordersService  AdminOrdersService
	adminChecker   AdminChecker
	uploadDir      string
	validator      *validator.Validate
	timeout        time.Duration
}

func NewAdminHandler(productService AdminProductService, ordersService AdminOrdersService, adminChecker AdminChecker, uploadDir string) *AdminHandler {
	return &AdminHandler{
		productService: productService,
		ordersService:  ordersService,
		adminChecker:   adminChecker,
		uploadDir:      uploadDir,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type UpdateOrderStatusRequest struct {
	Status     string `json:"status" validate:"required"`
	AdminNotes string `json:"admin_notes"`
}

func (h *AdminHandler) GetProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetActiveProducts(ctx)
	if err != nil {
		logger.Error("Failed to list products", err)
		return c.JSON(httpStatus(err), errorBody(err))
	}

	return c.JSON(http.StatusOK, products)
}

// CreateProduct reads a multipart form: name/description/price/category/
// stock_quantity fields plus an optional image file stored under the upload
// directory.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	name := c.FormValue("name")
	priceStr := c.FormValue("price")
	if name == "" || priceStr == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Name and price are required"})
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid price"})
	}

	stockQuantity, _ := strconv.Atoi(c.FormValue("stock_quantity"))

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = h.saveImage(file)
		if err != nil {
			logger.Error("Failed to store product image", err)
			return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.CreateProduct(ctx, &domain.Product{
		Name:          name,
		Description:   c.FormValue("description"),
		Price:         price,
		ImageURL:      imageURL,
		Category:      c.FormValue("category"),
		StockQuantity: stockQuantity,
	})
	if err != nil {
		logger.Error("Failed to create product", err)
		return c.JSON(httpStatus(err), errorBody(err))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Product created successfully",
		"productId": product.ID,
		"image_url": product.ImageURL,
	})
}

func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, uint(productID)); err != nil {
		logger.Error("Failed to delete product", err, "product_id", productID)
		return c.JSON(httpStatus(err), errorBody(err))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product deleted successfully",
	})
}

func (h *AdminHandler) GetOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.ordersService.GetAllOrders(ctx)
	if err != nil {
		logger.Error("Failed to list orders", err)
		return c.JSON(httpStatus(err), errorBody(err))
	}
	if orders == nil {
		orders = []domain.OrderDetail{}
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid order id"})
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.ordersService.UpdateStatus(ctx, uint(orderID), req.Status, req.AdminNotes); err != nil {
		logger.Error("Failed to update order status", err, "order_id", orderID)
		return c.JSON(httpStatus(err), errorBody(err))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Order status updated successfully",
	})
}

// CheckAdmin answers {"isAdmin": bool} and never fails the request, whatever
// the auth state.
func (h *AdminHandler) CheckAdmin(c echo.Context) error {
	userID, _ := c.Get("user_id").(uint)
	if userID == 0 {
		return c.JSON(http.StatusOK, map[string]interface{}{"isAdmin": false})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	isAdmin, err := h.adminChecker.IsAdmin(ctx, userID)
	if err != nil {
		logger.Error("Failed to check admin status", err, "user_id", userID)
		return c.JSON(http.StatusOK, map[string]interface{}{"isAdmin": false})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"isAdmin": isAdmin})
}

func (h *AdminHandler) saveImage(file *multipart.FileHeader) (string, error) {
	if file.Size > maxImageSize {
		return "", errors.New("image exceeds the 5MB limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpeg", ".jpg", ".png", ".gif":
	default:
		return "", errors.New("only images are allowed")
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.NewString() + ext

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(h.uploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + filename, nil
}
