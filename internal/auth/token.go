package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller recovered from a verified token. UserID travels
// as the JWT subject and therefore stays a string; callers that need the
// integer go through ParseUserID.
type Identity struct {
	UserID string
	Role   Role
}

// ParseUserID converts the token subject into the users primary key.
func (id Identity) ParseUserID() (int, error) {
	n, err := strconv.Atoi(id.UserID)
	if err != nil {
		return 0, ErrInvalidIdentity
	}
	return n, nil
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens. The secret is
// process-wide and read-only after construction.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// CreateToken signs a token carrying the user id and role.
func (s *TokenService) CreateToken(userID int, role Role) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken checks signature and expiry and returns the embedded identity.
func (s *TokenService) VerifyToken(tokenStr string) (Identity, error) {
	if len(s.secret) == 0 {
		return Identity{}, ErrNoSecret
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: claims.Subject, Role: Role(claims.Role)}, nil
}
