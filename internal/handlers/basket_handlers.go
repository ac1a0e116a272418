package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"epp-portal/internal/models"
)

//
// --- Basket Handlers (Session-Scoped) ---
//

// sessionKey returns the basket key the auth middleware stored for this
// request.
func sessionKey(c *gin.Context) string {
	key, _ := c.Get("sessionKey")
	session, _ := key.(string)
	return session
}

// GetBasket is the handler for GET /v1/epp/basket.
func (h *Handlers) GetBasket(c *gin.Context) {
	items := h.Basket.Items(sessionKey(c))

	var estimated int
	var discount float64
	for _, item := range items {
		estimated += item.EstimatedPrice
		discount += item.DiscountValue
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"totalItems": len(items),
		"estimated":  estimated,
		"discount":   discount,
		"final":      float64(estimated) - discount,
	})
}

// AddBasketItem is the handler for POST /v1/epp/basket/items.
// The candidate is shape-validated, cross-checked against the catalog and
// priced server-side; the stored item carries the id and price snapshot.
func (h *Handlers) AddBasketItem(c *gin.Context) {
	var candidate models.BasketItem
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	item, fieldErrors := h.Basket.Add(sessionKey(c), candidate)
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid basket item",
			"details": fieldErrors,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item added to basket", "item": item})
}

// DeleteBasketItem is the handler for DELETE /v1/epp/basket/items/:id.
func (h *Handlers) DeleteBasketItem(c *gin.Context) {
	if !h.Basket.Remove(sessionKey(c), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in basket"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Basket item removed"})
}
