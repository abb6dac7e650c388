// Package token issues and verifies the signed session tokens returned on
// login. Tokens are compact HS256 JWTs carrying the teacher id and display
// name; the server keeps no record of them after issuance.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired marks a well-formed, correctly signed token past its expiry.
	ErrExpired = errors.New("token expired")
	// ErrInvalid marks every other verification failure.
	ErrInvalid = errors.New("token invalid")
)

// Claims binds the identity assertion of one session.
type Claims struct {
	jwt.RegisteredClaims
	Nombre string `json:"nombre"`
}

// TeacherID returns the subject claim as a numeric id.
func (c *Claims) TeacherID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Issue signs a session token for the given teacher, valid for ttl from now.
func Issue(id int64, nombre string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Nombre: nombre,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Expiry of an otherwise valid token reports ErrExpired; any other failure
// (bad signature, malformed token, wrong algorithm) reports ErrInvalid.
func Verify(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !parsed.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
