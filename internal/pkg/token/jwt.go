package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "gocatalog"

// TokenService define o contrato para manipulação de JWTs.
type TokenService interface {
	GenerateToken(subject string, role string) (string, error)
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// CustomClaims carrega o papel do portador; o sujeito vai em RegisteredClaims.Subject.
type CustomClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service implementa a interface TokenService com HS256.
type Service struct {
	secretKey []byte
	expiry    time.Duration
}

// NewService cria uma nova instância do serviço Token.
func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
	}
}

// GenerateToken cria um novo JWT assinado para subject com o papel role.
func (s *Service) GenerateToken(subject string, role string) (string, error) {
	return s.GenerateTokenWithExpiry(subject, role, s.expiry)
}

// GenerateTokenWithExpiry é GenerateToken com validade explícita, usado pela CLI.
func (s *Service) GenerateTokenWithExpiry(subject string, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken valida o token string e retorna as claims se for válido.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token não é válido")
	}

	return claims, nil
}
