package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flicky/go-shop-api/internal/dto"
	"github.com/flicky/go-shop-api/internal/middleware"
	"github.com/flicky/go-shop-api/internal/payment"
	"github.com/flicky/go-shop-api/internal/service"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	log             *slog.Logger
}

func NewCheckoutHandler(checkoutService *service.CheckoutService, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, log: log}
}

func (h *CheckoutHandler) Begin(c *gin.Context) {
	resp, err := h.checkoutService.Begin(c.Request.Context(), middleware.GetShopperID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		case errors.Is(err, payment.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "order total must be greater than zero"})
			return
		}
		h.log.Error("begin checkout", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment provider unavailable"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CheckoutHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.checkoutService.Confirm(c.Request.Context(), middleware.GetShopperID(c), req.PaymentIntentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPendingCheckout):
			c.JSON(http.StatusConflict, gin.H{"error": "no pending checkout for this payment"})
		case errors.Is(err, service.ErrAmountMismatch):
			c.JSON(http.StatusConflict, gin.H{"error": "payment amount does not match order total"})
		case errors.Is(err, service.ErrPaymentFailed):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		default:
			h.log.Error("confirm checkout", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}
