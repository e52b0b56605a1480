package recovery

import (
	"context"

	"github.com/gautamsolar/certportal/internal/domain/repository"
)

// TxRunner ejecuta el paso invalidar-y-emitir de RequestReset dentro de una
// transacción: borrar los códigos activos y crear el nuevo debe ser atómico
// para sostener el invariante de un solo código vigente por cuenta.
type TxRunner interface {
	Run(ctx context.Context, fn func(codes repository.RecoveryCodeRepository) error) error
}
