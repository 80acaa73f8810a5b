package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flicky/go-shop-api/internal/middleware"
	"github.com/flicky/go-shop-api/internal/service"
)

type WishlistHandler struct {
	svc *service.WishlistService
}

func NewWishlistHandler(svc *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{svc: svc}
}

func (h *WishlistHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context(), middleware.GetShopperID(c)))
}

func (h *WishlistHandler) Toggle(c *gin.Context) {
	resp, err := h.svc.Toggle(c.Request.Context(), middleware.GetShopperID(c), c.Param("productId"))
	if err != nil {
		writeProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	resp, err := h.svc.MoveToCart(c.Request.Context(), middleware.GetShopperID(c), c.Param("productId"))
	if err != nil {
		writeProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func writeProductError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
