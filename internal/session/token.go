package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// tokens signs and verifies the durable session record. The record has no
// expiry: a session survives restarts until an explicit logout. Signing
// only exists so a tampered store degrades to logged-out.
type tokens struct {
	secret []byte
}

func newTokens(secret string) *tokens {
	return &tokens{secret: []byte(secret)}
}

func (t *tokens) sign(username string) (string, error) {
	claims := jwt.MapClaims{"sub": username}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// subject validates a token and returns its subject claim.
func (t *tokens) subject(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrSignatureInvalid
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenMalformed
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	return sub, nil
}
