package token

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Principal is an authenticated identity plus the roles granted to it by the
// identity store.
type Principal struct {
	Username string
	Roles    []string
}

// ClaimSet is the claim material carried by an access token: the identity
// name, a per-issuance token ID and the granted roles in identity-store
// order.
type ClaimSet struct {
	Username string
	TokenID  string
	Roles    []string
}

// NewClaimSet builds the claim set for a principal. The TokenID is a fresh
// random UUID on every call; it is a traceability field only and is never
// checked against stored state.
func NewClaimSet(principal Principal) ClaimSet {
	return ClaimSet{
		Username: principal.Username,
		TokenID:  uuid.New().String(),
		Roles:    principal.Roles,
	}
}

// AccessClaims is the JWT wire form of a ClaimSet.
type AccessClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}
