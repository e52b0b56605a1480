// Package migrations contiene las migraciones SQL versionadas embebidas en el
// binario. Se aplican una sola vez al arrancar, fuera del núcleo de requests.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
