package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// TokenTTL is how long issued auth tokens stay valid
const TokenTTL = 24 * time.Hour

var ErrTokenInvalid = errors.New("authorization token invalid")

// Identity is the decoded content of an auth token
type Identity struct {
	UserID uint
	Email  string
}

// MakeToken signs a new HS256 token embedding the user's id and email
func MakeToken(userID uint, email string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(TokenTTL).Unix(),
	})

	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}

// ParseToken verifies the signature and expiry of a token and returns
// the identity embedded in it
func ParseToken(tokenStr string) (*Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(viper.GetString("jwt.secret")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrTokenInvalid
	}

	email, _ := claims["email"].(string)

	return &Identity{
		UserID: uint(userID),
		Email:  email,
	}, nil
}
