package dto

import "time"

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// CreateProductRequest alta de producto dentro de una categoría.
type CreateProductRequest struct {
	CategoryID   string `json:"category_id" validate:"required,uuid"`
	Wattage      string `json:"wattage" validate:"required,max=50"`
	Availability string `json:"availability" validate:"omitempty,oneof=available limited"`
	SortOrder    int    `json:"sort_order"`
}

// CreateDocumentRequest alta de documento de producto.
type CreateDocumentRequest struct {
	ProductID    string `json:"product_id" validate:"required,uuid"`
	DocType      string `json:"doc_type" validate:"required,max=100"`
	DocName      string `json:"doc_name" validate:"omitempty,max=200"`
	DownloadLink string `json:"download_link" validate:"required,max=500"`
	SortOrder    int    `json:"sort_order"`
}

// CreateCompanyDocRequest alta de documento corporativo.
type CreateCompanyDocRequest struct {
	Location     string `json:"location" validate:"required,max=100"`
	DocType      string `json:"doc_type" validate:"required,max=100"`
	DocName      string `json:"doc_name" validate:"omitempty,max=200"`
	DownloadLink string `json:"download_link" validate:"required,max=500"`
}

// CreateNotificationRequest alta de notificación de portada.
type CreateNotificationRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Kind        string `json:"kind" validate:"omitempty,max=50"`
	Active      bool   `json:"active"`
	SortOrder   int    `json:"sort_order"`
}

// NotificationResponse notificación activa de la portada.
type NotificationResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Kind        string `json:"type"`
}

// AccessEventResponse evento de actividad para el panel de admin.
type AccessEventResponse struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Kind      string    `json:"kind"`
	Details   string    `json:"details"`
	Notified  bool      `json:"notified"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardResponse contadores del panel de administración.
type DashboardResponse struct {
	Accounts      int `json:"accounts"`
	Approved      int `json:"approved"`
	Categories    int `json:"categories"`
	Products      int `json:"products"`
	PendingEvents int `json:"pending_events"`
}
