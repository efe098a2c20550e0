package utils

import (
	"FrameVault/config"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims are the session token claims. The subject carries the username;
// validity is purely signature plus expiry, there is no revocation list.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken creates a signed token for the given username, expiring
// after ttl. Algorithm and secret come from the process-wide config.
func GenerateToken(username string, ttl time.Duration) (string, error) {
	method := jwt.GetSigningMethod(config.AppConfig.Algorithm)
	if method == nil {
		return "", fmt.Errorf("unknown signing algorithm %q", config.AppConfig.Algorithm)
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(config.AppConfig.SecretKey))
}

// VerifyToken parses and validates a token, rejecting bad signatures,
// unexpected algorithms, expired tokens, and tokens without a subject.
func VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != config.AppConfig.Algorithm {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return []byte(config.AppConfig.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token missing subject")
	}
	return claims, nil
}
