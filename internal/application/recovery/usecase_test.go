package recovery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gautamsolar/certportal/internal/application/dto"
	"github.com/gautamsolar/certportal/internal/domain"
	"github.com/gautamsolar/certportal/internal/domain/entity"
	"github.com/gautamsolar/certportal/internal/domain/repository"
	"github.com/gautamsolar/certportal/pkg/logger"
)

// Tests de caja blanca: necesitan inyectar now y genCode, que son internos
// del caso de uso.

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAccountRepo struct {
	byID map[string]*entity.Account
}

func (r *fakeAccountRepo) Create(a *entity.Account) error {
	copia := *a
	r.byID[a.ID] = &copia
	return nil
}

func (r *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (r *fakeAccountRepo) GetByEmail(email string) (*entity.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			copia := *a
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Update(a *entity.Account) error {
	copia := *a
	r.byID[a.ID] = &copia
	return nil
}

func (r *fakeAccountRepo) List() ([]*entity.Account, error) { return nil, nil }
func (r *fakeAccountRepo) Delete(id string) error           { delete(r.byID, id); return nil }
func (r *fakeAccountRepo) Count() (int, error)              { return len(r.byID), nil }
func (r *fakeAccountRepo) CountApproved() (int, error)      { return 0, nil }

type fakeCodeRepo struct {
	codes []*entity.RecoveryCode
}

func (r *fakeCodeRepo) Create(c *entity.RecoveryCode) error {
	copia := *c
	r.codes = append(r.codes, &copia)
	return nil
}

func (r *fakeCodeRepo) GetActiveByAccount(accountID string) (*entity.RecoveryCode, error) {
	var latest *entity.RecoveryCode
	for _, c := range r.codes {
		if c.AccountID != accountID || c.Consumed {
			continue
		}
		if latest == nil || c.CreatedAt.After(latest.CreatedAt) {
			latest = c
		}
	}
	if latest == nil {
		return nil, nil
	}
	copia := *latest
	return &copia, nil
}

func (r *fakeCodeRepo) GetConsumedByID(id string) (*entity.RecoveryCode, error) {
	for _, c := range r.codes {
		if c.ID == id && c.Consumed {
			copia := *c
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeCodeRepo) DeleteActiveByAccount(accountID string) error {
	kept := r.codes[:0]
	for _, c := range r.codes {
		if c.AccountID == accountID && !c.Consumed {
			continue
		}
		kept = append(kept, c)
	}
	r.codes = kept
	return nil
}

func (r *fakeCodeRepo) MarkConsumed(code *entity.RecoveryCode) error {
	for _, c := range r.codes {
		if c.ID == code.ID {
			c.Consumed = true
			c.ConsumedAt = code.ConsumedAt
		}
	}
	return nil
}

type fakeEventRepo struct {
	events []*entity.AccessEvent
}

func (r *fakeEventRepo) Create(e *entity.AccessEvent) error {
	copia := *e
	r.events = append(r.events, &copia)
	return nil
}

func (r *fakeEventRepo) List(limit, offset int) ([]*entity.AccessEvent, error) { return r.events, nil }
func (r *fakeEventRepo) MarkNotified(accountID, kind string) error             { return nil }
func (r *fakeEventRepo) CountPending() (int, error)                            { return len(r.events), nil }

// fakeTx ejecuta el cuerpo directamente sobre el repo en memoria.
type fakeTx struct {
	codes *fakeCodeRepo
}

func (tx *fakeTx) Run(ctx context.Context, fn func(codes repository.RecoveryCodeRepository) error) error {
	return fn(tx.codes)
}

type fakeNotifier struct {
	sent []string // destinatarios, en orden
}

func (n *fakeNotifier) Send(to, subject, body string, html bool) error {
	n.sent = append(n.sent, to)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testAccountID = "00000000-0000-0000-0000-000000000001"
	testEmail     = "juan@example.com"
	testCode      = "042137"
)

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *UseCase
	accounts *fakeAccountRepo
	codes    *fakeCodeRepo
	notifier *fakeNotifier
	clock    *time.Time
}

func buildFixture(t *testing.T) *fixture {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("original1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	accounts := &fakeAccountRepo{byID: map[string]*entity.Account{
		testAccountID: {
			ID:           testAccountID,
			Name:         "Juan Pérez",
			Email:        testEmail,
			Company:      "Acme",
			Phone:        "555-0101",
			PasswordHash: string(hash),
			Approved:     true,
		},
	}}
	codes := &fakeCodeRepo{}
	notifier := &fakeNotifier{}
	clock := testBase

	uc := NewUseCase(accounts, codes, &fakeEventRepo{}, &fakeTx{codes: codes}, notifier,
		"admin@example.com", logger.NewNop())
	uc.now = func() time.Time { return clock }
	uc.genCode = func() (string, error) { return testCode, nil }

	return &fixture{uc: uc, accounts: accounts, codes: codes, notifier: notifier, clock: &clock}
}

func (f *fixture) request(t *testing.T) *entity.RecoveryCode {
	t.Helper()
	require.NoError(t, f.uc.RequestReset(context.Background(), testEmail))
	active, err := f.codes.GetActiveByAccount(testAccountID)
	require.NoError(t, err)
	require.NotNil(t, active, "debe quedar un código activo tras la solicitud")
	return active
}

// ──────────────────────────────────────────────────────────────────────────────
// generateCode
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateCode_SeisDigitos(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6, "el código siempre tiene 6 dígitos, con ceros a la izquierda")
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RequestReset
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestReset_EmiteCodigoConVigencia(t *testing.T) {
	f := buildFixture(t)

	active := f.request(t)

	assert.Equal(t, testCode, active.Code)
	assert.Equal(t, testBase, active.CreatedAt)
	assert.Equal(t, testBase.Add(entity.RecoveryCodeTTL), active.ExpiresAt,
		"la vigencia es de 10 minutos desde la emisión")

	// Correo con el código al usuario y aviso al admin.
	require.Len(t, f.notifier.sent, 2)
	assert.Equal(t, testEmail, f.notifier.sent[0])
	assert.Equal(t, "admin@example.com", f.notifier.sent[1])
}

func TestRequestReset_EmailInexistente(t *testing.T) {
	f := buildFixture(t)
	err := f.uc.RequestReset(context.Background(), "nadie@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, f.codes.codes, "no debe emitirse ningún código")
}

// Solicitar de nuevo invalida el código anterior: nunca hay dos activos.
func TestRequestReset_SegundaSolicitudInvalidaLaPrimera(t *testing.T) {
	f := buildFixture(t)
	first := f.request(t)

	*f.clock = testBase.Add(2 * time.Minute)
	f.uc.genCode = func() (string, error) { return "777777", nil }
	second := f.request(t)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "777777", second.Code)

	activos := 0
	for _, c := range f.codes.codes {
		if !c.Consumed {
			activos++
		}
	}
	assert.Equal(t, 1, activos, "a lo sumo un código activo por cuenta")

	// El código viejo ya no sirve.
	_, err := f.uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Email: testEmail, Code: testCode})
	assert.ErrorIs(t, err, domain.ErrCodeMismatch)
}

// ──────────────────────────────────────────────────────────────────────────────
// VerifyCode
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyCode_ConsumeYDevuelveToken(t *testing.T) {
	f := buildFixture(t)
	active := f.request(t)

	out, err := f.uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Email: testEmail, Code: testCode})
	require.NoError(t, err)
	assert.Equal(t, active.ID, out.Token, "el token identifica al código consumido")

	// Consumido: una segunda verificación ya no encuentra código activo.
	_, err = f.uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Email: testEmail, Code: testCode})
	assert.ErrorIs(t, err, domain.ErrNoActiveCode)
}

func TestVerifyCode_CodigoIncorrectoNoConsume(t *testing.T) {
	f := buildFixture(t)
	f.request(t)

	_, err := f.uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Email: testEmail, Code: "999999"})
	assert.ErrorIs(t, err, domain.ErrCodeMismatch)

	// El código sigue activo y el valor correcto todavía funciona.
	_, err = f.uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Email: testEmail, Code: testCode})
	assert.NoError(t, err)
}

func TestVerifyCode_SinSolicitudPrevia(t *testing.T) {
	f := buildFixture(t)
	_, err := f.uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Email: testEmail, Code: testCode})
	assert.ErrorIs(t, err, domain.ErrNoActiveCode)
}

// El borde de expiración es cerrado: en el instante exacto de ExpiresAt el
// código ya no vale; un segundo antes, sí.
func TestVerifyCode_BordeDeExpiracion(t *testing.T) {
	f := buildFixture(t)
	f.request(t)

	*f.clock = testBase.Add(entity.RecoveryCodeTTL - time.Second)
	_, err := f.uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Email: testEmail, Code: testCode})
	assert.NoError(t, err, "un segundo antes de expirar el código sigue siendo válido")

	f2 := buildFixture(t)
	f2.request(t)
	*f2.clock = testBase.Add(entity.RecoveryCodeTTL)
	_, err = f2.uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Email: testEmail, Code: testCode})
	assert.ErrorIs(t, err, domain.ErrCodeExpired, "en el instante exacto de expiración ya no vale")
}

// ──────────────────────────────────────────────────────────────────────────────
// ResetPassword
// ──────────────────────────────────────────────────────────────────────────────

func verifiedToken(t *testing.T, f *fixture) string {
	t.Helper()
	f.request(t)
	out, err := f.uc.VerifyCode(context.Background(), dto.VerifyCodeRequest{Email: testEmail, Code: testCode})
	require.NoError(t, err)
	return out.Token
}

func TestResetPassword_ReemplazaElHash(t *testing.T) {
	f := buildFixture(t)
	token := verifiedToken(t, f)

	err := f.uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email:           testEmail,
		Token:           token,
		NewPassword:     "nuevo-pass",
		ConfirmPassword: "nuevo-pass",
	})
	require.NoError(t, err)

	account, err := f.accounts.GetByEmail(testEmail)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("nuevo-pass")),
		"el hash nuevo debe validar contra la contraseña nueva")
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("original1")),
		"la contraseña vieja deja de servir")
}

func TestResetPassword_ContrasenasNoCoinciden(t *testing.T) {
	f := buildFixture(t)
	token := verifiedToken(t, f)

	err := f.uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email:           testEmail,
		Token:           token,
		NewPassword:     "nuevo-pass",
		ConfirmPassword: "otra-cosa",
	})
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
}

func TestResetPassword_PasswordCorto(t *testing.T) {
	f := buildFixture(t)
	token := verifiedToken(t, f)

	err := f.uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email:           testEmail,
		Token:           token,
		NewPassword:     "abc",
		ConfirmPassword: "abc",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Un token inventado, o el token de un código que nunca se verificó, no
// autoriza el cambio.
func TestResetPassword_TokenInvalido(t *testing.T) {
	f := buildFixture(t)
	f.request(t) // hay código activo pero sin verificar

	err := f.uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email:           testEmail,
		Token:           "token-inventado",
		NewPassword:     "nuevo-pass",
		ConfirmPassword: "nuevo-pass",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// El token deja de autorizar pasada la ventana desde la verificación.
func TestResetPassword_VentanaVencida(t *testing.T) {
	f := buildFixture(t)
	token := verifiedToken(t, f)

	*f.clock = testBase.Add(tokenBindingWindow + time.Minute)
	err := f.uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email:           testEmail,
		Token:           token,
		NewPassword:     "nuevo-pass",
		ConfirmPassword: "nuevo-pass",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// El token de una cuenta no sirve para otra.
func TestResetPassword_TokenDeOtraCuenta(t *testing.T) {
	f := buildFixture(t)
	token := verifiedToken(t, f)

	otro := &entity.Account{
		ID:           "00000000-0000-0000-0000-000000000099",
		Name:         "Otra Persona",
		Email:        "otra@example.com",
		PasswordHash: "hash",
		Approved:     true,
	}
	require.NoError(t, f.accounts.Create(otro))

	err := f.uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email:           "otra@example.com",
		Token:           token,
		NewPassword:     "nuevo-pass",
		ConfirmPassword: "nuevo-pass",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
