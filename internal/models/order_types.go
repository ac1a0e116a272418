package models

// Delivery methods.
const (
	MethodDelivery = "delivery"
	MethodPickup   = "pickup"
)

// StoreLocations maps the fixed pickup store slugs to their display names.
// The slugs are the only values ValidateOrder accepts for storeLocation.
var StoreLocations = map[string]string{
	"regent-street":  "Apple Regent Street",
	"covent-garden":  "Apple Covent Garden",
	"oxford-street":  "Apple Oxford Street",
	"stratford-city": "Apple Stratford City",
	"bluewater":      "Apple Bluewater",
	"kingston":       "Apple Kingston",
}

// Address is the postal address for home delivery. Title and Line2 are
// optional; the postcode must be UK-shaped.
type Address struct {
	Title     string `json:"title,omitempty"`
	FirstName string `json:"firstName" validate:"required"`
	Surname   string `json:"surname" validate:"required"`
	Line1     string `json:"line1" validate:"required"`
	Line2     string `json:"line2,omitempty"`
	City      string `json:"city" validate:"required"`
	Postcode  string `json:"postcode" validate:"required,ukpostcode"`
}

// Contact is how we reach the buyer regardless of delivery method.
type Contact struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=10"`
}

// DeliveryInfo is discriminated by Method: "delivery" requires Address,
// "pickup" requires StoreLocation. The conditional rules live in the
// validate tags so a half-filled record can never pass.
type DeliveryInfo struct {
	Method        string   `json:"method" validate:"required,oneof=delivery pickup"`
	DeliveryType  string   `json:"deliveryType,omitempty" validate:"omitempty,oneof=standard express next-day"`
	StoreLocation string   `json:"storeLocation,omitempty" validate:"required_if=Method pickup,omitempty,storelocation"`
	Address       *Address `json:"address,omitempty" validate:"required_if=Method delivery"`
	Contact       Contact  `json:"contact"`
}

// Order is a complete submission candidate: a non-empty basket, delivery
// details and the explicit user acknowledgement gate.
type Order struct {
	Basket             []BasketItem `json:"basket" validate:"min=1,dive"`
	Delivery           DeliveryInfo `json:"delivery"`
	AdditionalComments string       `json:"additionalComments,omitempty"`
	CheckCompleted     bool         `json:"checkCompleted" validate:"eq=true"`
}
