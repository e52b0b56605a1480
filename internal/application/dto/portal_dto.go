package dto

// PortalDocument documento tal como lo ve el portal. Link apunta a la ruta de
// descarga real solo con sesión iniciada; si no, a la entrada de login.
type PortalDocument struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Name          string `json:"name"`
	Link          string `json:"link"`
	RequiresLogin bool   `json:"requires_login"`
}

// PortalProduct producto con sus documentos.
type PortalProduct struct {
	ID           string           `json:"id"`
	Wattage      string           `json:"wattage"`
	Availability string           `json:"availability"`
	Documents    []PortalDocument `json:"documents"`
}

// PortalCategory categoría con sus productos.
type PortalCategory struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Products    []PortalProduct `json:"products"`
}

// PortalDataResponse payload completo del portal.
type PortalDataResponse struct {
	CompanyDocs map[string][]PortalDocument `json:"companyDocs"`
	Categories  []PortalCategory            `json:"categories"`
	IsLoggedIn  bool                        `json:"isLoggedIn"`
}
