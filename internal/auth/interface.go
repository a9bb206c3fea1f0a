package auth

// TokenVerifier validates a bearer token and resolves it to a user ID.
// This abstraction keeps the middleware agnostic to how tokens are minted
// and lets tests substitute a fake.
type TokenVerifier interface {
	// VerifyToken returns the user ID the token was issued for.
	// Returns domain.ErrTokenExpired for a token past its expiry and
	// domain.ErrTokenInvalid for anything malformed or forged.
	VerifyToken(token string) (string, error)
}
