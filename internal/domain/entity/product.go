package entity

import "time"

// Disponibilidad de un producto.
const (
	AvailabilityAvailable = "available"
	AvailabilityLimited   = "limited"
)

// Product un módulo del catálogo, identificado por su potencia (wattage).
type Product struct {
	ID           string
	CategoryID   string
	Wattage      string
	Availability string // available, limited
	SortOrder    int
	CreatedAt    time.Time
}
