package catalog

import "math"

// EmployeeDiscountRate is the fixed EPP discount applied to the pre-AppleCare
// subtotal of every configured item.
const EmployeeDiscountRate = 0.17

// BandSelection names one watch band choice.
type BandSelection struct {
	Material string `json:"material"`
	Style    string `json:"style"`
	Color    string `json:"color"`
	Size     string `json:"size,omitempty"`
}

// Selections carries the option keys a caller has chosen. Callers pass the
// same shape for every category; keys that do not apply to the resolved
// category are simply ignored.
type Selections struct {
	Memory        string
	Storage       string
	Charger       string
	Connectivity  string
	Size          string
	ApplePencil   string
	MagicKeyboard bool
	NanoTexture   bool
	Band          *BandSelection
}

// Quote is the result of pricing a configuration. Total is the full retail
// price including AppleCare; Discount is the 17% employee discount computed
// on the pre-AppleCare subtotal, in pounds rounded to pennies. The final
// price a buyer pays is Total - Discount.
type Quote struct {
	Total          int     `json:"total"`
	Discount       float64 `json:"discount"`
	AppleCareAddOn int     `json:"appleCareAddOn"`
}

// Price computes the estimated total for a configuration. Selected keys that
// a family's map does not contain contribute zero rather than erroring:
// eligibility checking is the validator's job, the calculator trusts its
// caller. The only failure mode is an unknown category/model/spec key.
func (c *Catalog) Price(cat Category, modelKey, specName string, sel Selections, appleCare bool) (Quote, error) {
	_, spec, err := c.findSpec(cat, modelKey, specName)
	if err != nil {
		return Quote{}, err
	}

	total := spec.Price

	switch cat {
	case CategoryMacBook:
		opts := spec.Laptop
		if sel.Memory != "" && opts.Memory != nil {
			total += opts.Memory[sel.Memory]
		}
		if sel.Storage != "" && opts.Storage != nil {
			total += opts.Storage[sel.Storage]
		}
		if sel.Charger != "" && opts.Charger != nil {
			total += opts.Charger[sel.Charger]
		}
		if sel.NanoTexture && opts.NanoTexture != nil {
			total += *opts.NanoTexture
		}

	case CategoryIPhone:
		opts := spec.Phone
		if sel.Storage != "" && opts.Storage != nil {
			total += opts.Storage[sel.Storage]
		}

	case CategoryIPad:
		opts := spec.Tablet
		if sel.Storage != "" && opts.Storage != nil {
			total += opts.Storage[sel.Storage]
		}
		if sel.Connectivity != "" && opts.Connectivity != nil {
			total += opts.Connectivity[sel.Connectivity]
		}
		if sel.ApplePencil != "" {
			for _, pencil := range opts.Pencils {
				if pencil.Type == sel.ApplePencil {
					total += pencil.Price
					break
				}
			}
		}
		if sel.MagicKeyboard && opts.MagicKeyboard != nil {
			total += *opts.MagicKeyboard
		}
		if sel.NanoTexture && opts.NanoTexture != nil {
			total += *opts.NanoTexture
		}

	case CategoryWatch:
		opts := spec.Watch
		if sel.Size != "" && opts.Sizes != nil {
			total += opts.Sizes[sel.Size]
		}
		if sel.Connectivity != "" && opts.Connectivity != nil {
			total += opts.Connectivity[sel.Connectivity]
		}
		if sel.Band != nil {
			total += bandPrice(opts.Bands, sel.Band.Material, sel.Band.Style)
		}
	}

	var appleCareAddOn int
	if appleCare {
		if price, ok := c.AppleCarePrice(cat, modelKey, specName); ok {
			appleCareAddOn = price
			total += price
		}
	}

	// The employee discount applies to the product price only, never to the
	// service plan.
	discount := roundPennies(EmployeeDiscountRate * float64(total-appleCareAddOn))

	return Quote{Total: total, Discount: discount, AppleCareAddOn: appleCareAddOn}, nil
}

// bandPrice looks up a watch band surcharge by material and style. An
// unknown pair contributes zero, same as every other unknown key.
func bandPrice(groups []BandGroup, material, style string) int {
	for _, group := range groups {
		if group.Material != material {
			continue
		}
		for _, s := range group.Styles {
			if s.Name == style {
				return s.Price
			}
		}
	}
	return 0
}

func roundPennies(v float64) float64 {
	return math.Round(v*100) / 100
}
