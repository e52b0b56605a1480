package recovery

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gautamsolar/certportal/internal/application/dto"
	"github.com/gautamsolar/certportal/internal/application/notify"
	"github.com/gautamsolar/certportal/internal/domain"
	"github.com/gautamsolar/certportal/internal/domain/entity"
	"github.com/gautamsolar/certportal/internal/domain/repository"
	"github.com/gautamsolar/certportal/pkg/logger"
)

// tokenBindingWindow ventana trasera dentro de la cual el token de VerifyCode
// sigue autorizando el cambio de contraseña.
const tokenBindingWindow = 15 * time.Minute

// UseCase flujo de recuperación de credenciales: emisión, verificación y
// reemplazo de contraseña.
type UseCase struct {
	accounts   repository.AccountRepository
	codes      repository.RecoveryCodeRepository
	events     repository.AccessEventRepository
	tx         TxRunner
	notifier   notify.Notifier
	adminEmail string
	log        *logger.Logger

	// now y genCode son inyectables para los tests de expiración y de valor.
	now     func() time.Time
	genCode func() (string, error)
}

// NewUseCase construye el flujo de recuperación.
func NewUseCase(
	accounts repository.AccountRepository,
	codes repository.RecoveryCodeRepository,
	events repository.AccessEventRepository,
	tx TxRunner,
	notifier notify.Notifier,
	adminEmail string,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		accounts:   accounts,
		codes:      codes,
		events:     events,
		tx:         tx,
		notifier:   notifier,
		adminEmail: adminEmail,
		log:        log,
		now:        time.Now,
		genCode:    generateCode,
	}
}

// generateCode produce un código de 6 dígitos uniforme sobre 000000–999999,
// conservando ceros a la izquierda.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generar código: %w", err)
	}
	return fmt.Sprintf("%06d", n), nil
}

// RequestReset invalida los códigos vigentes de la cuenta y emite uno nuevo
// con 10 minutos de vigencia. El borrado y la inserción van en la misma
// transacción; los correos y la auditoría son best-effort posteriores.
func (uc *UseCase) RequestReset(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrValidation
	}
	account, err := uc.accounts.GetByEmail(email)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrUserNotFound
	}

	code, err := uc.genCode()
	if err != nil {
		return err
	}
	issued := uc.now()
	rec := &entity.RecoveryCode{
		ID:        uuid.New().String(),
		AccountID: account.ID,
		Code:      code,
		CreatedAt: issued,
		ExpiresAt: issued.Add(entity.RecoveryCodeTTL),
	}
	err = uc.tx.Run(ctx, func(codes repository.RecoveryCodeRepository) error {
		if err := codes.DeleteActiveByAccount(account.ID); err != nil {
			return err
		}
		return codes.Create(rec)
	})
	if err != nil {
		return err
	}

	notify.BestEffort(uc.log, "reset: email con código", func() error {
		body := fmt.Sprintf("Your OTP for password reset is: %s\n\nThis OTP is valid for 10 minutes.", code)
		return uc.notifier.Send(account.Email, "Password Reset OTP - Gautam Solar", body, false)
	})
	notify.BestEffort(uc.log, "reset: evento de acceso", func() error {
		return uc.events.Create(&entity.AccessEvent{
			ID:        uuid.New().String(),
			AccountID: account.ID,
			Kind:      entity.EventPasswordReset,
			Details:   fmt.Sprintf("Password reset requested by %s", account.Email),
			CreatedAt: uc.now(),
		})
	})
	notify.BestEffort(uc.log, "reset: email al admin", func() error {
		return uc.notifier.Send(uc.adminEmail,
			"Password Reset Request - Gautam Solar Portal",
			resetAdminBody(account, issued), true)
	})
	return nil
}

// VerifyCode compara el código recibido contra el más reciente no consumido.
// Si coincide y no expiró lo marca consumido y devuelve el token que autoriza
// un único cambio de contraseña.
func (uc *UseCase) VerifyCode(ctx context.Context, in dto.VerifyCodeRequest) (*dto.VerifyCodeResponse, error) {
	account, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUserNotFound
	}
	active, err := uc.codes.GetActiveByAccount(account.ID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, domain.ErrNoActiveCode
	}
	if active.Expired(uc.now()) {
		return nil, domain.ErrCodeExpired
	}
	if active.Code != in.Code {
		return nil, domain.ErrCodeMismatch
	}
	active.Consumed = true
	active.ConsumedAt = uc.now()
	if err := uc.codes.MarkConsumed(active); err != nil {
		return nil, err
	}
	return &dto.VerifyCodeResponse{Token: active.ID}, nil
}

// ResetPassword reemplaza el hash de contraseña. El token debe identificar un
// código consumido de esa misma cuenta dentro de la ventana trasera.
func (uc *UseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	if in.NewPassword != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	if len(in.NewPassword) < 6 {
		return domain.ErrValidation
	}
	account, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrUserNotFound
	}
	consumed, err := uc.codes.GetConsumedByID(in.Token)
	if err != nil {
		return err
	}
	if consumed == nil || consumed.AccountID != account.ID {
		return domain.ErrUnauthorized
	}
	if uc.now().Sub(consumed.ConsumedAt) > tokenBindingWindow {
		return domain.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	account.PasswordHash = string(hash)
	account.UpdatedAt = uc.now()
	if err := uc.accounts.Update(account); err != nil {
		return err
	}

	notify.BestEffort(uc.log, "reset: email de confirmación", func() error {
		return uc.notifier.Send(account.Email,
			"Password Reset Successful - Gautam Solar",
			"Your password has been successfully reset. You can now login with your new password.",
			false)
	})
	return nil
}

func resetAdminBody(a *entity.Account, at time.Time) string {
	return fmt.Sprintf(`<h2>Password Reset Request</h2>
<p><strong>User Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Mobile:</strong> %s</p>
<p><strong>Company:</strong> %s</p>
<p><strong>Timestamp:</strong> %s</p>`,
		a.Name, a.Email, a.Phone, a.Company, at.UTC().Format("2006-01-02 15:04:05"))
}
