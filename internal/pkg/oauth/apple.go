package oauth

import (
	"context"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/edubase/studenthub/internal/pkg/logger"
)

const (
	appleIssuer  = "https://appleid.apple.com"
	appleJWKSURL = "https://appleid.apple.com/auth/keys"
)

// AppleClaims carries the identity fields extracted from a verified
// Apple identity token. Apple does not put the user's name in the
// token; it arrives separately on first sign-in.
type AppleClaims struct {
	Sub           string
	Email         string
	EmailVerified bool
}

// AppleVerifier validates Sign in with Apple identity tokens using
// Apple's published JWKS.
type AppleVerifier struct {
	clientID string
	keyfunc  jwt.Keyfunc
}

// NewAppleVerifier creates an Apple identity token verifier. The JWKS is
// fetched lazily and refreshed in the background by keyfunc.
func NewAppleVerifier(ctx context.Context, clientID string) (*AppleVerifier, error) {
	k, err := keyfunc.NewDefaultCtx(ctx, []string{appleJWKSURL})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Apple JWKS: %w", err)
	}

	return &AppleVerifier{
		clientID: clientID,
		keyfunc:  k.Keyfunc,
	}, nil
}

// Verify checks the token signature, issuer and audience and returns the claims.
func (v *AppleVerifier) Verify(ctx context.Context, rawToken string) (*AppleClaims, error) {
	if v.clientID == "" {
		logger.Error().Msg("Apple client ID is not configured")
		return nil, ErrTokenVerification
	}

	token, err := jwt.Parse(rawToken, v.keyfunc,
		jwt.WithIssuer(appleIssuer),
		jwt.WithAudience(v.clientID),
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		logger.Warn().Err(err).Msg("Apple identity token verification failed")
		return nil, fmt.Errorf("%w: %v", ErrTokenVerification, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenVerification
	}

	claims := &AppleClaims{
		Sub:           stringClaim(mapClaims, "sub"),
		Email:         stringClaim(mapClaims, "email"),
		EmailVerified: boolClaim(mapClaims, "email_verified"),
	}
	if claims.Sub == "" {
		return nil, ErrTokenVerification
	}

	return claims, nil
}
