package jwt

import (
	"errors"
	"time"

	"medicare-plus/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ClientToken identifies a browser's storage context. It carries no user
// identity and grants nothing beyond access to that context.
const ClientToken = "client"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	ClientID  string `json:"client_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.ClientConfig
}

func NewJWTService(cfg config.ClientConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateClientToken issues a token for a new storage context and returns
// the token together with the generated client id
func (s *JWTService) GenerateClientToken() (string, string, error) {
	clientID := uuid.New().String()
	now := time.Now()
	claims := Claims{
		ClientID:  clientID,
		TokenType: ClientToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.TokenSecret))
	if err != nil {
		return "", "", err
	}

	return signedToken, clientID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.TokenSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != ClientToken || claims.ClientID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *JWTService) GetTokenExpiry() time.Duration {
	return s.config.TokenExpiry
}
