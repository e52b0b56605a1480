package entity

import "time"

// Category agrupa productos del catálogo. Borrarla elimina en cascada sus
// productos y los documentos de estos.
type Category struct {
	ID          string
	Name        string
	Description string
	SortOrder   int
	CreatedAt   time.Time
}
