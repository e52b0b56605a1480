package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gautamsolar/certportal/internal/application/dto"
	"github.com/gautamsolar/certportal/internal/application/notify"
	"github.com/gautamsolar/certportal/internal/domain"
	"github.com/gautamsolar/certportal/internal/domain/entity"
	"github.com/gautamsolar/certportal/internal/domain/repository"
	"github.com/gautamsolar/certportal/pkg/logger"
	"github.com/gautamsolar/certportal/pkg/session"
)

// AdminConfig credenciales del panel y destinatario de notificaciones internas.
type AdminConfig struct {
	Email      string
	Password   string
	NotifyAddr string
}

// AuthUseCase ciclo de vida de cuentas: registro, login, aprobación y rechazo.
type AuthUseCase struct {
	accounts repository.AccountRepository
	events   repository.AccessEventRepository
	notifier notify.Notifier
	sessions session.Manager
	admin    AdminConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de cuentas.
func NewAuthUseCase(
	accounts repository.AccountRepository,
	events repository.AccessEventRepository,
	notifier notify.Notifier,
	sessions session.Manager,
	admin AdminConfig,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		accounts: accounts,
		events:   events,
		notifier: notifier,
		sessions: sessions,
		admin:    admin,
		log:      log,
	}
}

// Register crea una cuenta pendiente de aprobación. Devuelve ErrValidation si
// faltan campos o el password es corto, y ErrEmailAlreadyExists si el email ya
// está tomado (también cuando lo detecta el constraint único del store en una
// carrera entre dos registros).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AccountResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrValidation
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrValidation
	}
	existing, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	company := in.Company
	if company == "" {
		company = entity.CompanyNotSpecified
	}
	phone := in.Phone
	if phone == "" {
		phone = entity.PhoneNotProvided
	}
	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Company:      company,
		Email:        in.Email,
		Phone:        phone,
		PasswordHash: string(hash),
		Approved:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accounts.Create(account); err != nil {
		return nil, err
	}

	// Efectos secundarios tras el commit: auditoría y aviso al admin, cada
	// uno se descarta de forma independiente si falla.
	notify.BestEffort(uc.log, "registro: evento de acceso", func() error {
		return uc.events.Create(&entity.AccessEvent{
			ID:        uuid.New().String(),
			AccountID: account.ID,
			Kind:      entity.EventNewRegistration,
			Details:   fmt.Sprintf("New registration: %s from %s", account.Name, account.Company),
			CreatedAt: time.Now(),
		})
	})
	notify.BestEffort(uc.log, "registro: email al admin", func() error {
		return uc.notifier.Send(uc.admin.NotifyAddr,
			"New User Registration - Gautam Solar Portal",
			registrationAdminBody(account), true)
	})

	return toAccountResponse(account), nil
}

// Login verifica email/password/aprobación en ese orden y emite la sesión.
// El orden importa: password incorrecto gana sobre cuenta pendiente.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !account.Approved {
		return nil, domain.ErrPendingApproval
	}
	token, err := uc.sessions.IssueUser(account.ID, account.Name)
	if err != nil {
		return nil, err
	}

	notify.BestEffort(uc.log, "login: evento de acceso", func() error {
		return uc.events.Create(&entity.AccessEvent{
			ID:        uuid.New().String(),
			AccountID: account.ID,
			Kind:      entity.EventPortalAccess,
			Details:   fmt.Sprintf("Portal login by %s", account.Email),
			CreatedAt: time.Now(),
		})
	})

	return &dto.LoginResponse{Token: token, Account: *toAccountResponse(account)}, nil
}

// AdminLogin valida las credenciales configuradas del panel y emite una sesión
// con el marcador de admin.
func (uc *AuthUseCase) AdminLogin(in dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(in.Email), []byte(uc.admin.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(in.Password), []byte(uc.admin.Password)) == 1
	if uc.admin.Email == "" || !emailOK || !passOK {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := uc.sessions.IssueAdmin()
	if err != nil {
		return nil, err
	}
	return &dto.AdminLoginResponse{Token: token}, nil
}

// Approve activa una cuenta pendiente. Marca como notificado el evento de
// registro y envía el email de aprobación, ambos best-effort.
func (uc *AuthUseCase) Approve(accountID string) (*dto.AccountResponse, error) {
	account, err := uc.accounts.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	account.Approved = true
	account.UpdatedAt = time.Now()
	if err := uc.accounts.Update(account); err != nil {
		return nil, err
	}

	notify.BestEffort(uc.log, "aprobación: marcar evento notificado", func() error {
		return uc.events.MarkNotified(account.ID, entity.EventNewRegistration)
	})
	notify.BestEffort(uc.log, "aprobación: email al usuario", func() error {
		return uc.notifier.Send(account.Email,
			"Account Approved - Gautam Solar Portal",
			approvalBody(account), true)
	})

	return toAccountResponse(account), nil
}

// Reject elimina la cuenta de forma permanente (sin tombstone). El email de
// rechazo usa nombre y email capturados antes del borrado.
func (uc *AuthUseCase) Reject(accountID string) error {
	account, err := uc.accounts.GetByID(accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	name, email := account.Name, account.Email
	if err := uc.accounts.Delete(accountID); err != nil {
		return err
	}

	notify.BestEffort(uc.log, "rechazo: email al usuario", func() error {
		return uc.notifier.Send(email,
			"Registration Not Approved - Gautam Solar",
			rejectionBody(name), true)
	})
	return nil
}

// ListAccounts devuelve todas las cuentas (pendientes y activas) para el panel.
func (uc *AuthUseCase) ListAccounts() ([]*dto.AccountResponse, error) {
	accounts, err := uc.accounts.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return out, nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Company:   a.Company,
		Email:     a.Email,
		Phone:     a.Phone,
		Approved:  a.Approved,
		CreatedAt: a.CreatedAt,
	}
}
