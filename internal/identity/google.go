package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campushub/forum-server/internal/config"
	"github.com/campushub/forum-server/internal/logger"
	"github.com/campushub/forum-server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Issuer values Google uses in ID tokens. Both forms are valid per the
// OpenID Connect discovery document.
var googleIssuers = []string{"https://accounts.google.com", "accounts.google.com"}

// idTokenClaims is the subset of Google ID-token claims the forum consumes.
type idTokenClaims struct {
	jwt.RegisteredClaims

	GivenName    string `json:"given_name"`
	Email        string `json:"email"`
	Picture      string `json:"picture"`
	HostedDomain string `json:"hd"`
}

// googleVerifier validates Google-issued ID tokens against the provider's
// published signing keys.
type googleVerifier struct {
	clientID      string
	allowedDomain string
	keys          *keyCache
	parser        *jwt.Parser
	logger        *logger.Logger
}

// NewGoogleVerifier constructs a [Verifier] for Google ID tokens. Tokens
// must be RS256-signed with a current Google key, carry cfg.GoogleClientID
// as audience, a Google issuer, and the configured hosted domain.
func NewGoogleVerifier(cfg config.Auth, timeout time.Duration, logger *logger.Logger) Verifier {
	logger.Debug().Str("allowed_domain", cfg.AllowedDomain).Msg("creating google identity verifier")

	return &googleVerifier{
		clientID:      cfg.GoogleClientID,
		allowedDomain: cfg.AllowedDomain,
		keys:          newKeyCache("", timeout),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{"RS256"}),
			jwt.WithAudience(cfg.GoogleClientID),
			jwt.WithExpirationRequired(),
		),
		logger: logger,
	}
}

// Verify checks the raw ID token and returns its profile claims.
//
// Any signature, audience, expiry, or issuer problem is normalised to
// [ErrInvalidToken]; a valid token from a foreign hosted domain returns
// [ErrWrongDomain]; signing-key retrieval failures surface as [ErrKeyFetch]
// so callers can distinguish an upstream outage from a bad token.
func (v *googleVerifier) Verify(ctx context.Context, rawToken string) (models.Claims, error) {
	log := logger.FromContext(ctx)

	claims := &idTokenClaims{}
	_, err := v.parser.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("%w: token has no key id", ErrInvalidToken)
		}

		return v.keys.Get(ctx, kid)
	})
	if err != nil {
		log.Err(err).Msg("id token failed validation")

		// key retrieval failures are not the client's fault
		if errors.Is(err, ErrKeyFetch) {
			return models.Claims{}, ErrKeyFetch
		}

		return models.Claims{}, ErrInvalidToken
	}

	if !v.issuerTrusted(claims.Issuer) {
		log.Error().Str("issuer", claims.Issuer).Msg("id token carries untrusted issuer")
		return models.Claims{}, ErrInvalidToken
	}

	if claims.HostedDomain != v.allowedDomain {
		log.Error().Str("hd", claims.HostedDomain).Msg("id token from wrong hosted domain")
		return models.Claims{}, ErrWrongDomain
	}

	return models.Claims{
		Subject:      claims.Subject,
		GivenName:    claims.GivenName,
		Email:        claims.Email,
		Picture:      claims.Picture,
		HostedDomain: claims.HostedDomain,
	}, nil
}

func (v *googleVerifier) issuerTrusted(issuer string) bool {
	for _, trusted := range googleIssuers {
		if issuer == trusted {
			return true
		}
	}

	return false
}
