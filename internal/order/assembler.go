package order

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"epp-portal/internal/models"
)

// NewOrderID mints an opaque order reference like "EPP-MDQ3J2K1-4F7A2B".
// The format is not a contract: nothing downstream is allowed to parse it.
func NewOrderID() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := make([]byte, 6)
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return strings.ToUpper(fmt.Sprintf("EPP-%s-%s", timestamp, suffix))
}

// Totals aggregates the basket-wide money figures for a summary.
type Totals struct {
	Items     int     `json:"items"`
	Estimated int     `json:"estimated"`
	Discount  float64 `json:"discount"`
	Final     float64 `json:"final"`
}

// Summary is the assembled, human-readable rendering of a validated order:
// a plain-text body, an HTML body and the computed totals. Assembly is pure
// formatting over already-validated, already-priced data.
type Summary struct {
	Text   string
	HTML   string
	Totals Totals
}

// Summarize renders a validated order for the notification transport. now is
// injected so tests stay deterministic.
func Summarize(o *models.Order, orderID string, now time.Time) Summary {
	totals := computeTotals(o.Basket)
	return Summary{
		Text:   formatText(o, orderID, totals, now),
		HTML:   formatHTML(o, orderID, totals, now),
		Totals: totals,
	}
}

func computeTotals(basket []models.BasketItem) Totals {
	t := Totals{Items: len(basket)}
	for _, item := range basket {
		t.Estimated += item.EstimatedPrice
		t.Discount += item.DiscountValue
	}
	t.Final = float64(t.Estimated) - t.Discount
	return t
}

func formatText(o *models.Order, orderID string, totals Totals, now time.Time) string {
	delivery := o.Delivery
	contact := delivery.Contact

	var name string
	if delivery.Address != nil {
		name = strings.TrimSpace(fmt.Sprintf("%s %s %s",
			delivery.Address.Title, delivery.Address.FirstName, delivery.Address.Surname))
	}

	lines := []string{
		fmt.Sprintf("New Apple EPP Order from %s", contact.Email),
		"=====================================",
		"",
		fmt.Sprintf("Order ID: %s", orderID),
		"",
		"Contact Information:",
		fmt.Sprintf("- Name: %s", name),
		fmt.Sprintf("- Email: %s", contact.Email),
		fmt.Sprintf("- Phone: %s", contact.Phone),
		"",
		"Order Items:",
	}

	for i, item := range o.Basket {
		lines = append(lines, formatItem(i+1, &item))
	}

	lines = append(lines, "Delivery Information:")
	lines = append(lines, fmt.Sprintf("- Method: %s", titleCase(delivery.Method)))

	if delivery.Method == models.MethodDelivery && delivery.Address != nil {
		addr := delivery.Address
		deliveryType := delivery.DeliveryType
		if deliveryType == "" {
			deliveryType = "standard"
		}
		lines = append(lines, fmt.Sprintf("- Delivery Type: %s", titleCase(deliveryType)))
		lines = append(lines, "- Address:")
		lines = append(lines, "  "+addr.Line1)
		if addr.Line2 != "" {
			lines = append(lines, "  "+addr.Line2)
		}
		lines = append(lines, fmt.Sprintf("  %s %s", addr.City, addr.Postcode))
	} else if delivery.Method == models.MethodPickup && delivery.StoreLocation != "" {
		lines = append(lines, fmt.Sprintf("- Pickup Store: %s", storeName(delivery.StoreLocation)))
	}

	if comments := strings.TrimSpace(o.AdditionalComments); comments != "" {
		lines = append(lines, "", "Additional Instructions:", comments)
	}

	lines = append(lines, "", "Order Summary:")
	lines = append(lines, fmt.Sprintf("- Total Items: %d", totals.Items))
	if totals.Estimated > 0 {
		lines = append(lines, fmt.Sprintf("- Estimated Total: £%d (retail price)", totals.Estimated))
		lines = append(lines, fmt.Sprintf("- Employee Discount: £%.2f (17%%)", totals.Discount))
		lines = append(lines, fmt.Sprintf("- Final Total: £%.2f", totals.Final))
	}

	lines = append(lines, "", "---")
	lines = append(lines, fmt.Sprintf("Order submitted at: %s", now.Format("02/01/2006, 15:04:05")))

	return strings.Join(lines, "\n")
}

// formatItem renders one basket line with only the fields that apply to the
// item's category, matching how the portal shows a configured product.
func formatItem(position int, item *models.BasketItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s - %s", position, item.Category, item.Model)
	fmt.Fprintf(&b, "\n   - Color: %s", item.Color)

	addIf := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "\n   - %s: %s", label, value)
		}
	}
	addIf("Storage", item.Storage)
	addIf("Configuration", item.Specs)
	addIf("Memory", item.Memory)
	addIf("Charger", item.Charger)
	addIf("Size", item.Size)
	addIf("Connectivity", item.Connectivity)

	if item.Band != nil {
		parts := []string{}
		for _, p := range []string{item.Band.Material, item.Band.Style, item.Band.Color, item.Band.Size} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		fmt.Fprintf(&b, "\n   - Band: %s", strings.Join(parts, " - "))
	}

	addIf("Apple Pencil", item.ApplePencil)
	if item.MagicKeyboard {
		b.WriteString("\n   - Magic Keyboard: Yes")
	}
	if item.NanoTexture {
		b.WriteString("\n   - Nano-texture Glass: Yes")
	}
	if item.AppleCare {
		b.WriteString("\n   - AppleCare+: Yes")
	}
	if item.TradeIn != nil && item.TradeIn.HasTradeIn {
		device := item.TradeIn.Model
		if device == "" {
			device = "Device"
		}
		fmt.Fprintf(&b, "\n   - Trade-in: %s", device)
		if item.TradeIn.SerialNumber != "" {
			fmt.Fprintf(&b, " (SN: %s)", item.TradeIn.SerialNumber)
		}
	}
	if item.EstimatedPrice > 0 {
		fmt.Fprintf(&b, "\n   - Estimated Price: £%d", item.EstimatedPrice)
	}
	if item.DiscountValue > 0 {
		fmt.Fprintf(&b, "\n   - Employee Discount: £%.2f", item.DiscountValue)
		fmt.Fprintf(&b, "\n   - Final Price: £%.2f", float64(item.EstimatedPrice)-item.DiscountValue)
	}

	b.WriteString("\n")
	return b.String()
}

func storeName(slug string) string {
	if name, ok := models.StoreLocations[slug]; ok {
		return name
	}
	return slug
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
