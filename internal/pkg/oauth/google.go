package oauth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/edubase/studenthub/internal/pkg/logger"
)

// GoogleClaims carries the identity fields extracted from a verified
// Google ID token.
type GoogleClaims struct {
	Sub           string
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
	Picture       string
}

// GoogleVerifier validates Google ID tokens against the configured
// OAuth client ID.
type GoogleVerifier struct {
	clientID string
}

// NewGoogleVerifier creates a Google ID token verifier
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// Verify checks the token signature and audience and returns the claims.
// Any failure, including a missing client ID, is reported as ErrTokenVerification.
func (v *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*GoogleClaims, error) {
	if v.clientID == "" {
		logger.Error().Msg("Google client ID is not configured")
		return nil, ErrTokenVerification
	}

	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		logger.Warn().Err(err).Msg("Google ID token verification failed")
		return nil, fmt.Errorf("%w: %v", ErrTokenVerification, err)
	}

	claims := &GoogleClaims{
		Sub:           payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
		GivenName:     stringClaim(payload.Claims, "given_name"),
		FamilyName:    stringClaim(payload.Claims, "family_name"),
		Picture:       stringClaim(payload.Claims, "picture"),
	}
	if claims.Sub == "" {
		return nil, ErrTokenVerification
	}

	return claims, nil
}

func stringClaim(claims map[string]interface{}, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// boolClaim tolerates providers that encode booleans as the string
// "true" instead of a JSON bool.
func boolClaim(claims map[string]interface{}, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
