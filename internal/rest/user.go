package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"ballisticmarket/domain"
	"ballisticmarket/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ProfileService interface {
	GetByID(ctx context.Context, id uint) (domain.User, error)
	UpdateProfile(ctx context.Context, steamID string, profile domain.User) error
}

type CartService interface {
	AddOrUpdate(ctx context.Context, userID, productID uint, quantity int) error
	Remove(ctx context.Context, userID, productID uint) error
	List(ctx context.Context, userID uint) ([]domain.CartRow, error)
}

type UserHandler struct {
	profileService ProfileService
	cartService    CartService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewUserHandler(profileService ProfileService, cartService CartService) *UserHandler {
	return &UserHandler{
		profileService: profileService,
		cartService:    cartService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type UpdateProfileRequest struct {
	RoleplayName string `json:"roleplay_name" validate:"required"`
	PhoneNumber  string `json:"phone_number" validate:"required"`
	BankNumber   string `json:"bank_number" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
}

type AddCartItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, _ := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.profileService.GetByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to load profile", err, "user_id", userID)
		return c.JSON(httpStatus(err), ResponseError{Error: "User not found"})
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	steamID, _ := c.Get("steam_id").(string)

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Roleplay name, phone number, and bank number are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err := h.profileService.UpdateProfile(ctx, steamID, domain.User{
		RoleplayName: req.RoleplayName,
		PhoneNumber:  req.PhoneNumber,
		BankNumber:   req.BankNumber,
		Email:        req.Email,
	})
	if err != nil {
		logger.Error("Failed to update profile", err, "steam_id", steamID)
		return c.JSON(httpStatus(err), errorBody(err))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
	})
}

func (h *UserHandler) GetCart(c echo.Context) error {
	userID, _ := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rows, err := h.cartService.List(ctx, userID)
	if err != nil {
		logger.Error("Failed to list cart", err, "user_id", userID)
		return c.JSON(httpStatus(err), errorBody(err))
	}

	return c.JSON(http.StatusOK, rows)
}

func (h *UserHandler) AddCartItem(c echo.Context) error {
	userID, _ := c.Get("user_id").(uint)

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Error: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "Valid product ID and quantity are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cartService.AddOrUpdate(ctx, userID, req.ProductID, req.Quantity); err != nil {
		logger.Error("Failed to add cart item", err, "user_id", userID, "product_id", req.ProductID)
		return c.JSON(httpStatus(err), errorBody(err))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Item added to cart",
	})
}

func (h *UserHandler) RemoveCartItem(c echo.Context) error {
	userID, _ := c.Get("user_id").(uint)

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cartService.Remove(ctx, userID, uint(productID)); err != nil {
		logger.Error("Failed to remove cart item", err, "user_id", userID)
		return c.JSON(httpStatus(err), errorBody(err))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Item removed from cart",
	})
}
