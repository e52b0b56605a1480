package entity

import "time"

// Document documento descargable asociado a un producto (datasheet,
// certificado, etc). La descarga se protege por sesión, nunca por atributos
// del documento.
type Document struct {
	ID           string
	ProductID    string
	DocType      string
	DocName      string
	DownloadLink string
	SortOrder    int
	CreatedAt    time.Time
}

// DisplayName nombre a mostrar: DocName si existe, si no DocType.
func (d *Document) DisplayName() string {
	if d.DocName != "" {
		return d.DocName
	}
	return d.DocType
}
