package catalog

import "sort"

// SpecSummary is the slice of a specification a caller needs in order to
// pick one: the name and the baseline price.
type SpecSummary struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// OptionsView is the currently selectable value set for every option family
// relevant to a configuration. A nil family slice means "not applicable to
// this specification", which is different from an empty one ("applicable but
// nothing eligible").
type OptionsView struct {
	Colors         []string      `json:"colors"`
	Specs          []SpecSummary `json:"specs"`
	AppleCarePrice *int          `json:"appleCarePrice,omitempty"`

	Memory       []string `json:"memoryOptions,omitempty"`
	Storage      []string `json:"storageOptions,omitempty"`
	Charger      []string `json:"chargerOptions,omitempty"`
	Connectivity []string `json:"connectivityOptions,omitempty"`
	Sizes        []string `json:"sizeOptions,omitempty"`

	Pencils []Pencil    `json:"applePencilOptions,omitempty"`
	Bands   []BandGroup `json:"bandOptions,omitempty"`

	MagicKeyboardPrice   *int `json:"magicKeyboardPrice,omitempty"`
	NanoTextureAvailable bool `json:"nanoTextureAvailable"`
	NanoTexturePrice     *int `json:"nanoTexturePrice,omitempty"`
}

// Options resolves the selectable choice set for (category, model) and, when
// specName is non-empty, for the chosen specification after constraint
// gating. selectedStorage is the storage tier the caller has already picked,
// if any; it only affects nano-texture eligibility, which is gated on the
// chosen tier rather than on the storage family itself.
func (c *Catalog) Options(cat Category, modelKey, specName, selectedStorage string) (*OptionsView, error) {
	model, err := c.GetModel(cat, modelKey)
	if err != nil {
		return nil, err
	}

	view := &OptionsView{
		Colors: model.Colors,
		Specs:  make([]SpecSummary, 0, len(model.Specs)),
	}
	for i := range model.Specs {
		view.Specs = append(view.Specs, SpecSummary{Name: model.Specs[i].Name, Price: model.Specs[i].Price})
	}
	if price, ok := c.AppleCarePrice(cat, modelKey, specName); ok {
		view.AppleCarePrice = intPtr(price)
	}

	// Without a chosen specification only the category-invariant info is
	// known; every option family depends on the spec.
	if specName == "" {
		return view, nil
	}

	_, spec, err := c.findSpec(cat, modelKey, specName)
	if err != nil {
		return nil, err
	}

	switch cat {
	case CategoryMacBook:
		opts := spec.Laptop
		if opts.Memory != nil {
			view.Memory = eligibleMemory(opts.Memory, spec.Constraints.minMemoryGB)
		}
		if opts.Storage != nil {
			view.Storage = eligibleStorage(opts.Storage, spec.Constraints.minStorageGB)
		}
		if opts.Charger != nil {
			view.Charger = sortedByDelta(opts.Charger)
		}
		view.NanoTexturePrice = opts.NanoTexture
		view.NanoTextureAvailable = opts.NanoTexture != nil

	case CategoryIPhone:
		opts := spec.Phone
		if opts.Storage != nil {
			view.Storage = eligibleStorage(opts.Storage, spec.Constraints.minStorageGB)
		}

	case CategoryIPad:
		opts := spec.Tablet
		if opts.Storage != nil {
			view.Storage = eligibleStorage(opts.Storage, spec.Constraints.minStorageGB)
		}
		if opts.Connectivity != nil {
			view.Connectivity = sortedByDelta(opts.Connectivity)
		}
		view.Pencils = opts.Pencils
		view.MagicKeyboardPrice = opts.MagicKeyboard
		view.NanoTexturePrice = opts.NanoTexture
		view.NanoTextureAvailable = opts.NanoTexture != nil &&
			nanoTextureEligible(spec, selectedStorage)

	case CategoryWatch:
		opts := spec.Watch
		if opts.Sizes != nil {
			view.Sizes = sortedByDelta(opts.Sizes)
		}
		if opts.Connectivity != nil {
			view.Connectivity = sortedByDelta(opts.Connectivity)
		}
		// Bands pass through unfiltered; there is no constraint mechanism
		// for straps.
		view.Bands = opts.Bands
		// The case material decides the finish, so the spec's colors
		// override the model-level set when present.
		if opts.Colors != nil {
			view.Colors = opts.Colors
		}
	}

	return view, nil
}

// nanoTextureEligible applies the minStorageForNanotexture gate. With no
// storage chosen yet the add-on counts as available as long as some eligible
// tier could satisfy the constraint.
func nanoTextureEligible(spec *Specification, selectedStorage string) bool {
	minGB := spec.Constraints.minNanoTextureGB
	if minGB == 0 {
		return true
	}
	if selectedStorage != "" {
		return storageGBOrZero(selectedStorage) >= minGB
	}
	for tier := range spec.Tablet.Storage {
		if storageGBOrZero(tier) >= minGB {
			return true
		}
	}
	return false
}

// eligibleStorage returns the storage keys at or above the minimum tier,
// smallest first.
func eligibleStorage(options map[string]int, minGB int) []string {
	keys := make([]string, 0, len(options))
	for key := range options {
		if minGB == 0 || storageGBOrZero(key) >= minGB {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return storageGBOrZero(keys[i]) < storageGBOrZero(keys[j])
	})
	return keys
}

// eligibleMemory returns the memory keys at or above the minimum size,
// smallest first.
func eligibleMemory(options map[string]int, minGB int) []string {
	keys := make([]string, 0, len(options))
	for key := range options {
		if minGB == 0 || memoryGBOrZero(key) >= minGB {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return memoryGBOrZero(keys[i]) < memoryGBOrZero(keys[j])
	})
	return keys
}

// sortedByDelta orders ungated option keys by their price delta, cheapest
// first, with the name as a tiebreak so responses stay stable.
func sortedByDelta(options map[string]int) []string {
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if options[keys[i]] != options[keys[j]] {
			return options[keys[i]] < options[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
