// Package identity models the client's session identity. Real
// authentication is stubbed: login always succeeds and yields a locally
// signed session token carrying the placeholder user id, which callers
// thread explicitly into the resolver and submitter.
package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sigerhq/fieldreport/internal/common"
)

// Identity is the resolved session subject.
type Identity struct {
	UserID   string
	Username string
}

type claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// IssueToken signs a session token for the given identity. The token is
// local only (never sent to the server today) but keeps the plumbing ready
// for when the API grows real authentication.
func IssueToken(id Identity, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Username: id.Username,
	})

	signed, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// ParseToken validates the token and recovers the identity.
func ParseToken(tokenString string, secretKey []byte) (Identity, error) {
	parsed := &claims{}

	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return Identity{}, common.ErrInvalidToken
	}

	return Identity{UserID: parsed.Subject, Username: parsed.Username}, nil
}
