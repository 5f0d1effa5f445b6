package services

import (
	"fmt"
	"time"

	"job-board-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the signed identity payload carried by access tokens.
type Claims struct {
	Email  string            `json:"email"`
	Phone  string            `json:"phone"`
	Status models.UserStatus `json:"status"`
	Role   models.Role       `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken produces a signed HS256 access token for the user with the
// configured expiration.
func IssueToken(user *models.User, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:  user.Email,
		Phone:  user.MobilePhone,
		Status: user.Status,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ParseToken verifies the signature and expiry of an access token and
// returns the identity it carries.
func ParseToken(tokenString, secret string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: invalid subject", ErrInvalidToken)
	}

	return Identity{
		ID:     userID,
		Email:  claims.Email,
		Phone:  claims.Phone,
		Status: claims.Status,
		Role:   claims.Role,
	}, nil
}
