package handlers

import (
	"epp-portal/internal/basket"
	"epp-portal/internal/catalog"
	"epp-portal/internal/email"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Catalog        *catalog.Catalog
	Basket         *basket.Store
	Transport      email.Transport
	PortalPassword string
}
