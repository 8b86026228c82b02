package google

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

// Claims are the identity attributes extracted from a verified Google ID
// token. Email is always present; the rest default to empty strings.
type Claims struct {
	Email      string
	GivenName  string
	FamilyName string
	Picture    string
}

var ErrNoEmailClaim = errors.New("google token has no email claim")

// Verifier validates Google ID tokens against a single expected audience
// (the OAuth client id of the front-end).
type Verifier struct {
	audience string
}

func NewVerifier(clientID string) *Verifier {
	return &Verifier{audience: clientID}
}

// Verify checks the token's signature, expiry and audience with Google's
// public keys and returns the attested claims.
func (v *Verifier) Verify(ctx context.Context, credential string) (*Claims, error) {
	payload, err := idtoken.Validate(ctx, credential, v.audience)
	if err != nil {
		return nil, err
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, ErrNoEmailClaim
	}
	given, _ := payload.Claims["given_name"].(string)
	family, _ := payload.Claims["family_name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	return &Claims{
		Email:      email,
		GivenName:  given,
		FamilyName: family,
		Picture:    picture,
	}, nil
}
