package entity

import "time"

// HomeNotification anuncio de la página de inicio (ofertas, nuevos productos).
type HomeNotification struct {
	ID          string
	Title       string
	Description string
	Kind        string // product_available, announcement
	Active      bool
	SortOrder   int
	CreatedAt   time.Time
}
