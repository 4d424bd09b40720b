package auth

import (
	"charity_system/internal/domain" // Principal and error sentinels
	"errors"                         // Error construction
	"fmt"                            // Error wrapping
	"time"                           // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Claim names in the token payload
const (
	ClaimSubject   = "sub"
	ClaimRole      = "role"
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
)

// Claims is the verified payload of a token
type Claims struct {
	Subject   string        // Username
	Role      domain.Role   // Role claim
	IssuedAt  time.Time     // iat
	ExpiresAt time.Time     // exp
	Raw       jwt.MapClaims // Every claim, including extra claims
}

// Principal returns the identity carried by the claims
func (c *Claims) Principal() domain.Principal {
	return domain.Principal{Username: c.Subject, Role: c.Role}
}

// TokenService issues and validates HS256 tokens. It holds no mutable state,
// so one instance is safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service; now defaults to time.Now when nil
func NewTokenService(secret string, ttl time.Duration, now func() time.Time) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token secret is empty")
	}
	if ttl < time.Second {
		return nil, errors.New("token ttl must be at least one second")
	}
	if now == nil {
		now = time.Now
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: now}, nil
}

// TTL returns the configured token lifetime
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for p. Extra claims are merged first, so they can never
// override sub, role, iat or exp.
func (s *TokenService) Issue(p domain.Principal, extra map[string]any) (string, time.Time, error) {
	now := s.now().Truncate(time.Second)
	expiresAt := now.Add(s.ttl)
	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	claims[ClaimSubject] = p.Username
	claims[ClaimRole] = string(p.Role)
	claims[ClaimIssuedAt] = jwt.NewNumericDate(now)
	claims[ClaimExpiresAt] = jwt.NewNumericDate(expiresAt)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	signed, err := token.SignedString(s.secret)                // Sign the token with the secret
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate verifies signature and expiry and returns the embedded principal.
// Every failure wraps domain.ErrInvalidToken.
func (s *TokenService) Validate(tokenStr string) (domain.Principal, error) {
	claims, err := s.Parse(tokenStr)
	if err != nil {
		return domain.Principal{}, err
	}
	return claims.Principal(), nil
}

// Parse verifies the token and returns its claims. A token is rejected when
// the signature does not match, the algorithm is not HS256, the payload is
// malformed, sub/exp/iat are missing, or now >= exp.
func (s *TokenService) Parse(tokenStr string) (*Claims, error) {
	mapClaims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, mapClaims, func(token *jwt.Token) (any, error) {
		return s.secret, nil // Return the secret key for validation
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claimsFromMap(mapClaims)
}

func claimsFromMap(m jwt.MapClaims) (*Claims, error) {
	sub, err := m.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}
	iat, err := m.GetIssuedAt()
	if err != nil || iat == nil {
		return nil, fmt.Errorf("%w: missing issued-at", domain.ErrInvalidToken)
	}
	exp, err := m.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing expiry", domain.ErrInvalidToken)
	}
	role, _ := m[ClaimRole].(string)
	return &Claims{
		Subject:   sub,
		Role:      domain.Role(role),
		IssuedAt:  iat.Time,
		ExpiresAt: exp.Time,
		Raw:       m,
	}, nil
}

// ExtractClaim verifies the token and applies selector to its claims.
// Nothing is extracted from a token that fails verification.
func ExtractClaim[T any](s *TokenService, tokenStr string, selector func(*Claims) T) (T, error) {
	claims, err := s.Parse(tokenStr)
	if err != nil {
		var zero T
		return zero, err
	}
	return selector(claims), nil
}
