package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a category, model or specification key does
// not exist in the catalog. It always indicates bad input data, not a
// condition the user can retry their way out of.
var ErrNotFound = errors.New("not found")

// Category identifies one of the four sellable product lines.
type Category string

const (
	CategoryMacBook Category = "MacBook"
	CategoryIPhone  Category = "iPhone"
	CategoryIPad    Category = "iPad"
	CategoryWatch   Category = "Apple Watch"
)

// Categories returns every product line in display order.
func Categories() []Category {
	return []Category{CategoryMacBook, CategoryIPhone, CategoryIPad, CategoryWatch}
}

// ParseCategory maps a request string onto a known Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryMacBook, CategoryIPhone, CategoryIPad, CategoryWatch:
		return Category(s), nil
	}
	return "", fmt.Errorf("category %q: %w", s, ErrNotFound)
}

// Constraints carries the minimum-requirement gating for one specification.
// The exported fields hold the raw size strings exactly as the catalog data
// declares them ("512GB", "1TB", ...); the GB magnitudes are parsed once at
// catalog build time, never per request.
type Constraints struct {
	MinStorage               string
	MinMemory                string
	MinStorageForNanoTexture string

	minStorageGB     int
	minMemoryGB      int
	minNanoTextureGB int
}

// Pencil is one Apple Pencil choice for a tablet specification.
type Pencil struct {
	Type  string `json:"pencilType"`
	Price int    `json:"price"`
}

// BandStyle is one watch band style within a material group.
type BandStyle struct {
	Name   string   `json:"styleName"`
	Price  int      `json:"price"`
	Colors []string `json:"bandColor"`
	Sizes  []string `json:"bandSizeOptions,omitempty"`
}

// BandGroup groups watch band styles by strap material.
type BandGroup struct {
	Material string      `json:"material"`
	Styles   []BandStyle `json:"style"`
}

// LaptopOptions holds the option families a MacBook specification can carry.
// Map values are price deltas in whole pounds on top of the base price.
type LaptopOptions struct {
	Memory      map[string]int
	Storage     map[string]int
	Charger     map[string]int
	NanoTexture *int
}

// PhoneOptions holds the single option family an iPhone specification carries.
type PhoneOptions struct {
	Storage map[string]int
}

// TabletOptions holds the option families an iPad specification can carry.
type TabletOptions struct {
	Storage       map[string]int
	Connectivity  map[string]int
	NanoTexture   *int
	Pencils       []Pencil
	MagicKeyboard *int
}

// WatchOptions holds the option families an Apple Watch specification
// carries. Colors lives here rather than on the model because the case
// material decides which finishes exist.
type WatchOptions struct {
	Colors       []string
	Sizes        map[string]int
	Connectivity map[string]int
	Bands        []BandGroup
}

// Specification is one concrete baseline configuration within a model.
// Exactly one of the per-category option sets is non-nil, matching the
// category the owning model belongs to.
type Specification struct {
	Name           string
	Price          int
	AppleCarePrice *int
	Constraints    Constraints

	Laptop *LaptopOptions
	Phone  *PhoneOptions
	Tablet *TabletOptions
	Watch  *WatchOptions
}

// Model is one sellable model line, e.g. `MacBook Pro 16"`.
type Model struct {
	DisplayName    string
	Colors         []string
	Specs          []Specification
	AppleCarePrice *int
}

// ModelEntry pairs a model with its lookup key, preserving catalog order.
type ModelEntry struct {
	Key   string
	Model *Model
}

type categoryConfig struct {
	order  []string
	models map[string]*Model
}

// Catalog is the process-wide immutable product catalog. It is built once at
// startup and only ever read after that.
type Catalog struct {
	categories map[Category]*categoryConfig
}

// Default is the catalog every caller shares. A malformed size string in the
// static data is a build bug, so construction panics rather than limping on.
var Default = mustBuild()

func mustBuild() *Catalog {
	c, err := build()
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid static data: %v", err))
	}
	return c
}

func build() (*Catalog, error) {
	c := &Catalog{categories: map[Category]*categoryConfig{
		CategoryMacBook: macbookConfigurations(),
		CategoryIPhone:  iphoneConfigurations(),
		CategoryIPad:    ipadConfigurations(),
		CategoryWatch:   watchConfigurations(),
	}}

	// Parse all constraint magnitudes up front and make sure every spec
	// carries the option set its category expects.
	for cat, cfg := range c.categories {
		for _, key := range cfg.order {
			model := cfg.models[key]
			for i := range model.Specs {
				spec := &model.Specs[i]
				if err := spec.Constraints.compile(); err != nil {
					return nil, fmt.Errorf("%s / %s / %s: %v", cat, key, spec.Name, err)
				}
				if err := spec.checkShape(cat); err != nil {
					return nil, fmt.Errorf("%s / %s / %s: %v", cat, key, spec.Name, err)
				}
			}
		}
	}
	return c, nil
}

func (s *Specification) checkShape(cat Category) error {
	var want bool
	switch cat {
	case CategoryMacBook:
		want = s.Laptop != nil
	case CategoryIPhone:
		want = s.Phone != nil
	case CategoryIPad:
		want = s.Tablet != nil
	case CategoryWatch:
		want = s.Watch != nil
	}
	if !want {
		return fmt.Errorf("missing %s option set", cat)
	}
	return nil
}

func (c *Constraints) compile() error {
	var err error
	if c.MinStorage != "" {
		if c.minStorageGB, err = parseStorageGB(c.MinStorage); err != nil {
			return err
		}
	}
	if c.MinMemory != "" {
		if c.minMemoryGB, err = parseMemoryGB(c.MinMemory); err != nil {
			return err
		}
	}
	if c.MinStorageForNanoTexture != "" {
		if c.minNanoTextureGB, err = parseStorageGB(c.MinStorageForNanoTexture); err != nil {
			return err
		}
	}
	return nil
}

// ListModels returns every model in the given category, in catalog order.
func (c *Catalog) ListModels(cat Category) ([]ModelEntry, error) {
	cfg, ok := c.categories[cat]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", cat, ErrNotFound)
	}
	entries := make([]ModelEntry, 0, len(cfg.order))
	for _, key := range cfg.order {
		entries = append(entries, ModelEntry{Key: key, Model: cfg.models[key]})
	}
	return entries, nil
}

// GetModel looks up a single model by category and key.
func (c *Catalog) GetModel(cat Category, modelKey string) (*Model, error) {
	cfg, ok := c.categories[cat]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", cat, ErrNotFound)
	}
	model, ok := cfg.models[modelKey]
	if !ok {
		return nil, fmt.Errorf("model %q: %w", modelKey, ErrNotFound)
	}
	return model, nil
}

// findSpec resolves a model and one of its specifications in a single call.
func (c *Catalog) findSpec(cat Category, modelKey, specName string) (*Model, *Specification, error) {
	model, err := c.GetModel(cat, modelKey)
	if err != nil {
		return nil, nil, err
	}
	for i := range model.Specs {
		if model.Specs[i].Name == specName {
			return model, &model.Specs[i], nil
		}
	}
	return nil, nil, fmt.Errorf("specification %q: %w", specName, ErrNotFound)
}

// AppleCarePrice resolves the extended-warranty price for a configuration.
// The chosen specification's own price wins over the model-level one; a
// missing price on both levels means AppleCare is not offered here.
func (c *Catalog) AppleCarePrice(cat Category, modelKey, specName string) (int, bool) {
	model, err := c.GetModel(cat, modelKey)
	if err != nil {
		return 0, false
	}
	if specName != "" {
		for i := range model.Specs {
			if model.Specs[i].Name == specName && model.Specs[i].AppleCarePrice != nil {
				return *model.Specs[i].AppleCarePrice, true
			}
		}
	}
	if model.AppleCarePrice != nil {
		return *model.AppleCarePrice, true
	}
	return 0, false
}

// intPtr is a literal helper for the static data tables.
func intPtr(v int) *int { return &v }
