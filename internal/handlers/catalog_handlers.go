package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"epp-portal/internal/catalog"
)

//
// --- Catalog Handlers (Public, read-only) ---
//

// GetCategories is the handler for GET /v1/catalog/categories.
func (h *Handlers) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
}

// ModelResponse is one model line in the GetModels listing.
type ModelResponse struct {
	Key            string                `json:"key"`
	DisplayName    string                `json:"displayName"`
	Colors         []string              `json:"colors"`
	Specs          []catalog.SpecSummary `json:"specs"`
	AppleCarePrice *int                  `json:"appleCarePrice,omitempty"`
}

// GetModels is the handler for GET /v1/catalog/:category/models.
// It returns every model line in the category, in catalog order.
func (h *Handlers) GetModels(c *gin.Context) {
	cat, err := catalog.ParseCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown product category"})
		return
	}

	entries, err := h.Catalog.ListModels(cat)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown product category"})
		return
	}

	models := make([]ModelResponse, 0, len(entries))
	for _, entry := range entries {
		resp := ModelResponse{
			Key:            entry.Key,
			DisplayName:    entry.Model.DisplayName,
			Colors:         entry.Model.Colors,
			AppleCarePrice: entry.Model.AppleCarePrice,
		}
		for _, spec := range entry.Model.Specs {
			resp.Specs = append(resp.Specs, catalog.SpecSummary{Name: spec.Name, Price: spec.Price})
		}
		models = append(models, resp)
	}

	c.JSON(http.StatusOK, gin.H{"models": models})
}

// GetOptions is the handler for GET /v1/catalog/:category/models/:model/options.
// Query params: spec (optional specification name), storage (optional chosen
// storage tier, which gates nano-texture availability).
func (h *Handlers) GetOptions(c *gin.Context) {
	cat, err := catalog.ParseCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown product category"})
		return
	}

	view, err := h.Catalog.Options(cat, c.Param("model"), c.Query("spec"), c.Query("storage"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve options"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// PriceQuoteInput defines the JSON for a price quote request. It is the
// same uniform selection shape for every category; fields that do not apply
// are ignored.
type PriceQuoteInput struct {
	Category      string                 `json:"category" binding:"required"`
	Model         string                 `json:"model" binding:"required"`
	Specs         string                 `json:"specs" binding:"required"`
	Memory        string                 `json:"memory"`
	Storage       string                 `json:"storage"`
	Charger       string                 `json:"charger"`
	Connectivity  string                 `json:"connectivity"`
	Size          string                 `json:"size"`
	ApplePencil   string                 `json:"applePencil"`
	MagicKeyboard bool                   `json:"magicKeyboard"`
	NanoTexture   bool                   `json:"nanoTexture"`
	AppleCare     bool                   `json:"appleCare"`
	Band          *catalog.BandSelection `json:"band"`
}

// QuotePrice is the handler for POST /v1/catalog/price.
// It returns the estimated retail total, the employee discount and the
// resulting final price for a configuration.
func (h *Handlers) QuotePrice(c *gin.Context) {
	var input PriceQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	cat, err := catalog.ParseCategory(input.Category)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown product category"})
		return
	}

	quote, err := h.Catalog.Price(cat, input.Model, input.Specs, catalog.Selections{
		Memory:        input.Memory,
		Storage:       input.Storage,
		Charger:       input.Charger,
		Connectivity:  input.Connectivity,
		Size:          input.Size,
		ApplePencil:   input.ApplePencil,
		MagicKeyboard: input.MagicKeyboard,
		NanoTexture:   input.NanoTexture,
		Band:          input.Band,
	}, input.AppleCare)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate price"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":      quote.Total,
		"discount":   quote.Discount,
		"finalPrice": float64(quote.Total) - quote.Discount,
	})
}
