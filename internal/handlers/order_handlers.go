package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"epp-portal/internal/models"
	"epp-portal/internal/order"
	"epp-portal/internal/validation"
)

// SubmitOrder is the handler for POST /v1/epp/order.
// The flow mirrors the portal's submission contract:
//  1. the auth middleware has already rejected unauthorized callers;
//  2. the order candidate is validated (shape + catalog cross-check);
//  3. an order id is minted and the summary assembled;
//  4. the summary goes to the notification transport exactly once.
//
// A transport failure is surfaced to the user as a retry-eligible error; the
// order itself was already valid, so the client may simply resubmit.
func (h *Handlers) SubmitOrder(c *gin.Context) {
	var candidate models.Order
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	fieldErrors := validation.ValidateOrder(&candidate)
	for i := range candidate.Basket {
		for _, fe := range validation.CheckAgainstCatalog(h.Catalog, &candidate.Basket[i]) {
			fieldErrors = append(fieldErrors, validation.FieldError{
				Field:   fmt.Sprintf("basket[%d].%s", i, fe.Field),
				Message: fe.Message,
			})
		}
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid order data",
			"details": fieldErrors,
		})
		return
	}

	orderID := order.NewOrderID()
	summary := order.Summarize(&candidate, orderID, time.Now())

	subject := "New Apple EPP Order " + orderID + " - " + candidate.Delivery.Contact.Email
	receiptID, err := h.Transport.Deliver(orderID, subject, summary.Text, summary.HTML)
	if err != nil {
		log.Printf("Order %s: notification delivery failed: %v", orderID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to process order. Please try again."})
		return
	}

	// The basket's job is done once the order is on its way.
	h.Basket.Clear(sessionKey(c))

	log.Printf("EPP order submitted: id=%s items=%d estimated=%d receipt=%s",
		orderID, summary.Totals.Items, summary.Totals.Estimated, receiptID)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Order submitted successfully! You will receive confirmation via email.",
		"orderId":   orderID,
		"receiptId": receiptID,
	})
}
