package entity

import "time"

// CompanyDocument documento corporativo plano, agrupado por ubicación
// (planta/oficina) en el portal.
type CompanyDocument struct {
	ID           string
	Location     string
	DocType      string
	DocName      string
	DownloadLink string
	CreatedAt    time.Time
}

// DisplayName nombre a mostrar: DocName si existe, si no DocType.
func (d *CompanyDocument) DisplayName() string {
	if d.DocName != "" {
		return d.DocName
	}
	return d.DocType
}
