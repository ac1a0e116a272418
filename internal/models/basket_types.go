package models

// Band is the configured watch band on a basket item.
type Band struct {
	Material string `json:"material" validate:"required"`
	Style    string `json:"style" validate:"required"`
	Color    string `json:"color" validate:"required"`
	Size     string `json:"size,omitempty"`
}

// TradeIn is the optional trade-in declaration on a basket item. The serial
// number and device model are free text and never affect the price.
type TradeIn struct {
	HasTradeIn   bool   `json:"hasTradeIn"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Model        string `json:"model,omitempty"`
}

// BasketItem is one fully-resolved configuration in the session basket.
// Only the option fields that apply to the item's category are set; the
// rest stay at their zero value. EstimatedPrice and DiscountValue are
// snapshots taken when the item was added and are never recomputed.
type BasketItem struct {
	ID       string `json:"id,omitempty"`
	Category string `json:"category" validate:"required"`
	Model    string `json:"model" validate:"required"`
	Color    string `json:"color" validate:"required"`

	Storage       string `json:"storage,omitempty"`
	Specs         string `json:"specs,omitempty"`
	Size          string `json:"size,omitempty"`
	Connectivity  string `json:"connectivity,omitempty"`
	Memory        string `json:"memory,omitempty"`
	Charger       string `json:"charger,omitempty"`
	ApplePencil   string `json:"applePencil,omitempty"`
	MagicKeyboard bool   `json:"magicKeyboard,omitempty"`
	NanoTexture   bool   `json:"nanoTexture,omitempty"`
	AppleCare     bool   `json:"appleCare"`
	Band          *Band  `json:"band,omitempty"`

	Quantity       int     `json:"quantity"`
	EstimatedPrice int     `json:"estimatedPrice,omitempty"`
	DiscountValue  float64 `json:"discountValue,omitempty"`

	TradeIn *TradeIn `json:"tradeIn,omitempty"`
}
