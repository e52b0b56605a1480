// Package session implementa la sesión del portal como token firmado (JWT
// HS256). El Manager se inyecta en los handlers: crear/leer sesión es una
// interfaz explícita, no estado global del proceso.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session estado autenticado extraído de un token válido. Las sesiones de
// usuario llevan AccountID y Name; las de admin solo el marcador Admin.
type Session struct {
	AccountID string
	Name      string
	Admin     bool
}

// Manager emite y valida sesiones. Interfaz explícita para poder sustituirla
// en tests.
type Manager interface {
	IssueUser(accountID, name string) (string, error)
	IssueAdmin() (string, error)
	Parse(token string) (*Session, error)
}

// Config parámetros de firma de los tokens de sesión.
type Config struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

type claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Admin     bool   `json:"admin,omitempty"`
}

// JWTManager implementación de Manager sobre golang-jwt.
type JWTManager struct {
	cfg Config
}

var _ Manager = (*JWTManager)(nil)

// NewJWTManager construye el manager de sesiones firmadas.
func NewJWTManager(cfg Config) *JWTManager {
	return &JWTManager{cfg: cfg}
}

// IssueUser emite una sesión de usuario ligada a la cuenta y su nombre.
func (m *JWTManager) IssueUser(accountID, name string) (string, error) {
	return m.sign(claims{AccountID: accountID, Name: name})
}

// IssueAdmin emite una sesión con el marcador de administrador.
func (m *JWTManager) IssueAdmin() (string, error) {
	return m.sign(claims{Admin: true})
}

func (m *JWTManager) sign(c claims) (string, error) {
	if m.cfg.Secret == "" {
		return "", fmt.Errorf("session: secret vacío")
	}
	now := time.Now()
	c.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    m.cfg.Issuer,
		Subject:   c.AccountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(m.cfg.ExpMinutes) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(m.cfg.Secret))
}

// Parse valida el token y devuelve la sesión.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func (m *JWTManager) Parse(tokenString string) (*Session, error) {
	if m.cfg.Secret == "" {
		return nil, fmt.Errorf("session: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return &Session{AccountID: c.AccountID, Name: c.Name, Admin: c.Admin}, nil
}
