package order

import (
	"fmt"
	"html"
	"strings"
	"time"

	"epp-portal/internal/models"
)

// formatHTML is the styled counterpart of formatText, sent as the HTML part
// of the notification email.
func formatHTML(o *models.Order, orderID string, totals Totals, now time.Time) string {
	delivery := o.Delivery
	esc := html.EscapeString

	var b strings.Builder
	b.WriteString(`<div style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; max-width: 700px; margin: 0 auto; padding: 30px;">`)

	fmt.Fprintf(&b, `<h1 style="font-size: 24px;">New Apple EPP Order</h1>`)
	fmt.Fprintf(&b, `<p><strong>Order ID:</strong> %s<br><strong>Submitted:</strong> %s</p>`,
		esc(orderID), now.Format("02/01/2006, 15:04:05"))

	b.WriteString(`<h2 style="font-size: 18px;">Customer Information</h2><p>`)
	fmt.Fprintf(&b, `<strong>Email:</strong> %s<br><strong>Phone:</strong> %s`,
		esc(delivery.Contact.Email), esc(delivery.Contact.Phone))
	if delivery.Address != nil {
		fmt.Fprintf(&b, `<br><strong>Name:</strong> %s`,
			esc(strings.TrimSpace(fmt.Sprintf("%s %s %s", delivery.Address.Title, delivery.Address.FirstName, delivery.Address.Surname))))
	}
	b.WriteString(`</p>`)

	b.WriteString(`<h2 style="font-size: 18px;">Order Items</h2>`)
	for i, item := range o.Basket {
		fmt.Fprintf(&b, `<div style="border: 1px solid #e9ecef; border-radius: 8px; padding: 20px; margin-bottom: 15px;">`)
		fmt.Fprintf(&b, `<h3 style="margin-top: 0; color: #007bff;">%d. %s - %s</h3><ul>`, i+1, esc(item.Category), esc(item.Model))

		row := func(label, value string) {
			if value != "" {
				fmt.Fprintf(&b, `<li><strong>%s:</strong> %s</li>`, label, esc(value))
			}
		}
		row("Color", item.Color)
		row("Storage", item.Storage)
		row("Configuration", item.Specs)
		row("Memory", item.Memory)
		row("Charger", item.Charger)
		row("Size", item.Size)
		row("Connectivity", item.Connectivity)
		row("Apple Pencil", item.ApplePencil)
		if item.Band != nil {
			row("Band", strings.TrimSpace(fmt.Sprintf("%s %s %s %s",
				item.Band.Material, item.Band.Style, item.Band.Color, item.Band.Size)))
		}
		if item.MagicKeyboard {
			row("Magic Keyboard", "Yes")
		}
		if item.NanoTexture {
			row("Nano-texture Glass", "Yes")
		}
		if item.AppleCare {
			row("AppleCare+", "Yes")
		}
		if item.TradeIn != nil && item.TradeIn.HasTradeIn {
			detail := item.TradeIn.Model
			if detail == "" {
				detail = "Device"
			}
			if item.TradeIn.SerialNumber != "" {
				detail += " (SN: " + item.TradeIn.SerialNumber + ")"
			}
			row("Trade-in", detail)
		}
		if item.EstimatedPrice > 0 {
			row("Estimated Price", fmt.Sprintf("£%d", item.EstimatedPrice))
		}
		if item.DiscountValue > 0 {
			row("Employee Discount", fmt.Sprintf("-£%.2f", item.DiscountValue))
			row("Final Price", fmt.Sprintf("£%.2f", float64(item.EstimatedPrice)-item.DiscountValue))
		}
		b.WriteString(`</ul></div>`)
	}

	b.WriteString(`<h2 style="font-size: 18px;">Delivery Information</h2><p>`)
	fmt.Fprintf(&b, `<strong>Method:</strong> %s`, esc(titleCase(delivery.Method)))
	if delivery.Method == models.MethodDelivery && delivery.Address != nil {
		deliveryType := delivery.DeliveryType
		if deliveryType == "" {
			deliveryType = "standard"
		}
		fmt.Fprintf(&b, `<br><strong>Delivery Type:</strong> %s`, esc(titleCase(deliveryType)))
		fmt.Fprintf(&b, `<br><strong>Address:</strong><br>%s<br>`, esc(delivery.Address.Line1))
		if delivery.Address.Line2 != "" {
			fmt.Fprintf(&b, `%s<br>`, esc(delivery.Address.Line2))
		}
		fmt.Fprintf(&b, `%s %s`, esc(delivery.Address.City), esc(delivery.Address.Postcode))
	} else if delivery.Method == models.MethodPickup && delivery.StoreLocation != "" {
		fmt.Fprintf(&b, `<br><strong>Pickup Store:</strong> %s`, esc(storeName(delivery.StoreLocation)))
	}
	b.WriteString(`</p>`)

	if comments := strings.TrimSpace(o.AdditionalComments); comments != "" {
		fmt.Fprintf(&b, `<h2 style="font-size: 18px;">Additional Instructions</h2><p style="white-space: pre-line;">%s</p>`, esc(comments))
	}

	b.WriteString(`<h2 style="font-size: 18px;">Order Summary</h2><ul>`)
	fmt.Fprintf(&b, `<li><strong>Total Items:</strong> %d</li>`, totals.Items)
	if totals.Estimated > 0 {
		fmt.Fprintf(&b, `<li><strong>Estimated Total:</strong> £%d</li>`, totals.Estimated)
		fmt.Fprintf(&b, `<li><strong>Employee Discount (17%%):</strong> -£%.2f</li>`, totals.Discount)
		fmt.Fprintf(&b, `<li><strong>Final Total:</strong> £%.2f</li>`, totals.Final)
	}
	b.WriteString(`</ul>`)

	b.WriteString(`<p style="color: #6c757d; font-size: 14px;">This order will be processed manually. The customer will be contacted for final confirmation and payment.</p>`)
	b.WriteString(`</div>`)

	return b.String()
}
