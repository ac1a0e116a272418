package order

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epp-portal/internal/models"
)

func sampleOrder() *models.Order {
	return &models.Order{
		Basket: []models.BasketItem{
			{
				ID:             "item-1",
				Category:       "iPhone",
				Model:          "iPhone 16e",
				Specs:          "iPhone 16e",
				Color:          "Black",
				Storage:        "256GB",
				Quantity:       1,
				EstimatedPrice: 699,
				DiscountValue:  118.83,
			},
			{
				ID:             "item-2",
				Category:       "Apple Watch",
				Model:          "Apple Watch SE",
				Specs:          "default",
				Color:          "Midnight",
				Size:           "40mm",
				Quantity:       1,
				EstimatedPrice: 219,
				DiscountValue:  37.23,
			},
		},
		Delivery: models.DeliveryInfo{
			Method:        models.MethodPickup,
			StoreLocation: "covent-garden",
			Contact: models.Contact{
				Email: "sam@example.com",
				Phone: "07700900123",
			},
		},
		CheckCompleted: true,
	}
}

func TestNewOrderIDShape(t *testing.T) {
	pattern := regexp.MustCompile(`^EPP-[0-9A-Z]+-[0-9A-Z]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := NewOrderID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	// The random suffix makes collisions within a run vanishingly unlikely.
	assert.Len(t, seen, 50)
}

func TestComputeTotals(t *testing.T) {
	o := sampleOrder()
	totals := computeTotals(o.Basket)

	assert.Equal(t, 2, totals.Items)
	assert.Equal(t, 918, totals.Estimated)
	assert.InDelta(t, 156.06, totals.Discount, 0.001)
	assert.InDelta(t, 761.94, totals.Final, 0.001)
}

func TestSummarizePickupText(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	summary := Summarize(sampleOrder(), "EPP-TEST-ABC123", now)

	text := summary.Text
	assert.Contains(t, text, "New Apple EPP Order from sam@example.com")
	assert.Contains(t, text, "Order ID: EPP-TEST-ABC123")
	assert.Contains(t, text, "1. iPhone - iPhone 16e")
	assert.Contains(t, text, "2. Apple Watch - Apple Watch SE")
	assert.Contains(t, text, "- Method: Pickup")
	assert.Contains(t, text, "- Pickup Store: Apple Covent Garden")
	assert.Contains(t, text, "- Total Items: 2")
	assert.Contains(t, text, "- Estimated Total: £918 (retail price)")
	assert.Contains(t, text, "- Employee Discount: £156.06 (17%)")
	assert.Contains(t, text, "- Final Total: £761.94")
	assert.Contains(t, text, "Order submitted at: 14/03/2026, 09:30:00")

	// No address lines for a pickup order.
	assert.NotContains(t, text, "- Address:")
}

func TestSummarizeDeliveryText(t *testing.T) {
	o := sampleOrder()
	o.Delivery.Method = models.MethodDelivery
	o.Delivery.StoreLocation = ""
	o.Delivery.Address = &models.Address{
		Title:     "Ms",
		FirstName: "Sam",
		Surname:   "Taylor",
		Line1:     "1 High Street",
		City:      "London",
		Postcode:  "SW1A 1AA",
	}
	o.AdditionalComments = "Leave with the concierge."

	summary := Summarize(o, "EPP-TEST-ABC123", time.Now())
	text := summary.Text

	assert.Contains(t, text, "- Name: Ms Sam Taylor")
	assert.Contains(t, text, "- Method: Delivery")
	// Unset delivery type falls back to standard.
	assert.Contains(t, text, "- Delivery Type: Standard")
	assert.Contains(t, text, "  1 High Street")
	assert.Contains(t, text, "  London SW1A 1AA")
	assert.Contains(t, text, "Additional Instructions:\nLeave with the concierge.")
}

func TestFormatItemOmitsEmptyFields(t *testing.T) {
	item := sampleOrder().Basket[0]
	line := formatItem(1, &item)

	assert.Contains(t, line, "- Color: Black")
	assert.Contains(t, line, "- Storage: 256GB")
	assert.Contains(t, line, "- Estimated Price: £699")
	assert.Contains(t, line, "- Final Price: £580.17")
	assert.NotContains(t, line, "Memory")
	assert.NotContains(t, line, "Band")
	assert.NotContains(t, line, "Magic Keyboard")
}

func TestFormatItemBandAndTradeIn(t *testing.T) {
	item := sampleOrder().Basket[1]
	item.Band = &models.Band{Material: "Textile", Style: "Sport Loop", Color: "Blue", Size: "M/L"}
	item.TradeIn = &models.TradeIn{HasTradeIn: true, Model: "Apple Watch Series 7", SerialNumber: "ABC123"}

	line := formatItem(2, &item)
	assert.Contains(t, line, "- Band: Textile - Sport Loop - Blue - M/L")
	assert.Contains(t, line, "- Trade-in: Apple Watch Series 7 (SN: ABC123)")
}

func TestSummarizeHTMLEscapes(t *testing.T) {
	o := sampleOrder()
	o.AdditionalComments = `<script>alert("x")</script>`

	summary := Summarize(o, "EPP-TEST-ABC123", time.Now())
	require.NotEmpty(t, summary.HTML)
	assert.NotContains(t, summary.HTML, "<script>")
	assert.True(t, strings.Contains(summary.HTML, "&lt;script&gt;"))
	assert.Contains(t, summary.HTML, "EPP-TEST-ABC123")
}
