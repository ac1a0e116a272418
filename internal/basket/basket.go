package basket

import (
	"sync"

	"github.com/google/uuid"

	"epp-portal/internal/catalog"
	"epp-portal/internal/models"
	"epp-portal/internal/validation"
)

// Store holds the per-session baskets for the process lifetime. Items are
// append/remove only: there is no in-basket editing, a changed mind means
// remove and re-add. Each session's basket disappears on submission or when
// the process goes away; nothing is persisted.
type Store struct {
	catalog *catalog.Catalog

	mu       sync.Mutex
	sessions map[string][]models.BasketItem
}

// New creates an empty basket store backed by the given catalog.
func New(c *catalog.Catalog) *Store {
	return &Store{
		catalog:  c,
		sessions: make(map[string][]models.BasketItem),
	}
}

// Add validates a candidate item, cross-checks it against the catalog,
// prices it and appends it to the session's basket. The returned item
// carries the generated id and the price/discount snapshot. A non-nil error
// list means the candidate was rejected and nothing was stored.
func (s *Store) Add(session string, candidate models.BasketItem) (models.BasketItem, []validation.FieldError) {
	if errs := validation.ValidateBasketItem(&candidate); errs != nil {
		return models.BasketItem{}, errs
	}
	if errs := validation.CheckAgainstCatalog(s.catalog, &candidate); errs != nil {
		return models.BasketItem{}, errs
	}

	// The cross-check above guarantees the catalog lookup succeeds.
	cat, _ := catalog.ParseCategory(candidate.Category)
	quote, err := s.catalog.Price(cat, candidate.Model, candidate.Specs, selections(&candidate), candidate.AppleCare)
	if err != nil {
		return models.BasketItem{}, []validation.FieldError{{Field: "specs", Message: err.Error()}}
	}

	candidate.ID = uuid.NewString()
	candidate.Quantity = 1
	candidate.EstimatedPrice = quote.Total
	candidate.DiscountValue = quote.Discount

	s.mu.Lock()
	s.sessions[session] = append(s.sessions[session], candidate)
	s.mu.Unlock()

	return candidate, nil
}

// Remove deletes one item from the session's basket by id. It reports
// whether anything was removed.
func (s *Store) Remove(session, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.sessions[session]
	for i := range items {
		if items[i].ID == itemID {
			s.sessions[session] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the session's basket in insertion order.
func (s *Store) Items(session string) []models.BasketItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.sessions[session]
	out := make([]models.BasketItem, len(items))
	copy(out, items)
	return out
}

// Clear drops the session's basket, e.g. after a successful submission.
func (s *Store) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, session)
}

// selections maps a basket item's chosen fields onto the calculator's
// uniform selection shape.
func selections(item *models.BasketItem) catalog.Selections {
	sel := catalog.Selections{
		Memory:        item.Memory,
		Storage:       item.Storage,
		Charger:       item.Charger,
		Connectivity:  item.Connectivity,
		Size:          item.Size,
		ApplePencil:   item.ApplePencil,
		MagicKeyboard: item.MagicKeyboard,
		NanoTexture:   item.NanoTexture,
	}
	if item.Band != nil {
		sel.Band = &catalog.BandSelection{
			Material: item.Band.Material,
			Style:    item.Band.Style,
			Color:    item.Band.Color,
			Size:     item.Band.Size,
		}
	}
	return sel
}
