package validation

import (
	"fmt"

	"epp-portal/internal/catalog"
	"epp-portal/internal/models"
)

// CheckAgainstCatalog verifies that every chosen value on a basket item is
// one the option resolver would actually have offered for its category,
// model and specification. The portal UI only ever submits resolver output,
// but nothing stops a direct API caller from inventing a combination, so
// items are re-checked here before they are priced.
func CheckAgainstCatalog(c *catalog.Catalog, item *models.BasketItem) []FieldError {
	cat, err := catalog.ParseCategory(item.Category)
	if err != nil {
		return []FieldError{{Field: "category", Message: fmt.Sprintf("Unknown category %q", item.Category)}}
	}

	if _, err := c.GetModel(cat, item.Model); err != nil {
		return []FieldError{{Field: "model", Message: fmt.Sprintf("Unknown model %q", item.Model)}}
	}

	// Every model in the catalog carries at least one specification; a
	// missing choice means the item was never run through the resolver.
	if item.Specs == "" {
		return []FieldError{{Field: "specs", Message: "Specification is required"}}
	}

	view, err := c.Options(cat, item.Model, item.Specs, item.Storage)
	if err != nil {
		return []FieldError{{Field: "specs", Message: fmt.Sprintf("Unknown specification %q", item.Specs)}}
	}

	var errs []FieldError
	add := func(field, format string, args ...interface{}) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if !contains(view.Colors, item.Color) {
		add("color", "Color %q is not offered for this configuration", item.Color)
	}

	checkFamily := func(field, value string, eligible []string) {
		if value == "" {
			return
		}
		if eligible == nil {
			add(field, "%s does not apply to this configuration", fieldLabel(field))
			return
		}
		if !contains(eligible, value) {
			add(field, "%s %q is not available for this configuration", fieldLabel(field), value)
		}
	}

	checkFamily("storage", item.Storage, view.Storage)
	checkFamily("memory", item.Memory, view.Memory)
	checkFamily("charger", item.Charger, view.Charger)
	checkFamily("connectivity", item.Connectivity, view.Connectivity)
	checkFamily("size", item.Size, view.Sizes)

	if item.NanoTexture && !view.NanoTextureAvailable {
		add("nanoTexture", "Nano-texture glass is not available for this configuration")
	}
	if item.MagicKeyboard && view.MagicKeyboardPrice == nil {
		add("magicKeyboard", "Magic Keyboard is not available for this configuration")
	}
	if item.ApplePencil != "" {
		found := false
		for _, pencil := range view.Pencils {
			if pencil.Type == item.ApplePencil {
				found = true
				break
			}
		}
		if !found {
			add("applePencil", "Apple Pencil %q is not offered for this configuration", item.ApplePencil)
		}
	}

	if item.Band != nil {
		checkBand(item.Band, view.Bands, add)
	}

	if item.AppleCare {
		if _, ok := c.AppleCarePrice(cat, item.Model, item.Specs); !ok {
			add("appleCare", "AppleCare+ is not offered for this model")
		}
	}

	return errs
}

func checkBand(band *models.Band, groups []catalog.BandGroup, add func(field, format string, args ...interface{})) {
	if groups == nil {
		add("band", "Bands do not apply to this configuration")
		return
	}
	for _, group := range groups {
		if group.Material != band.Material {
			continue
		}
		for _, style := range group.Styles {
			if style.Name != band.Style {
				continue
			}
			if !contains(style.Colors, band.Color) {
				add("band.color", "Band color %q is not offered for this style", band.Color)
			}
			if band.Size != "" && style.Sizes != nil && !contains(style.Sizes, band.Size) {
				add("band.size", "Band size %q is not offered for this style", band.Size)
			}
			return
		}
		add("band.style", "Band style %q is not offered in %s", band.Style, band.Material)
		return
	}
	add("band.material", "Band material %q is not offered for this configuration", band.Material)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
