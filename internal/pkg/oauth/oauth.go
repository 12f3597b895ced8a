package oauth

import "errors"

// ErrTokenVerification is returned when a provider token fails any
// verification step (signature, audience, issuer or expiry).
var ErrTokenVerification = errors.New("token verification failed")
