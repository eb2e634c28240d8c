// Package auth issues the bearer tokens the API accepts. Production tokens come
// from the identity provider; this is used for development and tests.
package auth

import (
	"time"

	"github.com/pascaldekloe/jwt"
)

type TokenOptions struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// IssueToken signs an HS256 token whose subject is ownerID.
func IssueToken(ownerID string, opts TokenOptions, now time.Time) (token string, expiry time.Time, err error) {
	var claims jwt.Claims
	claims.Subject = ownerID

	expiry = now.Add(opts.TTL)
	claims.Issued = jwt.NewNumericTime(now)
	claims.NotBefore = jwt.NewNumericTime(now)
	claims.Expires = jwt.NewNumericTime(expiry)

	if opts.Issuer != "" {
		claims.Issuer = opts.Issuer
	}
	if opts.Audience != "" {
		claims.Audiences = []string{opts.Audience}
	}

	jwtBytes, err := claims.HMACSign(jwt.HS256, []byte(opts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return string(jwtBytes), expiry, nil
}
