package identity

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// GoogleCertsURL is the JWKS endpoint publishing Google's ID-token signing
// keys.
const GoogleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"

const defaultKeyTTL = time.Hour

var maxAgePattern = regexp.MustCompile(`max-age=(\d+)`)

// jwk is one entry of the provider's JWKS document. Only RSA keys are used
// for ID-token signatures.
type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksDocument struct {
	Keys []jwk `json:"keys"`
}

// keyCache fetches and caches the provider's signing keys, keyed by key id.
// Keys are refreshed when the cache expires (per the endpoint's
// Cache-Control max-age) or when a token references an unknown key id,
// which happens during provider key rotation.
type keyCache struct {
	client *resty.Client
	url    string

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	expiresAt time.Time
}

func newKeyCache(url string, timeout time.Duration) *keyCache {
	if url == "" {
		url = GoogleCertsURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().SetTimeout(timeout)

	return &keyCache{
		client: cli,
		url:    url,
		keys:   make(map[string]*rsa.PublicKey),
	}
}

// Get returns the public key with the given id. A stale cache or an unknown
// key id triggers one refetch before giving up.
func (c *keyCache) Get(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	c.mu.RLock()
	key, found := c.keys[kid]
	fresh := time.Now().Before(c.expiresAt)
	c.mu.RUnlock()

	if found && fresh {
		return key, nil
	}

	if err := c.refresh(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	key, found = c.keys[kid]
	if !found {
		return nil, fmt.Errorf("%w: unknown key id %q", ErrInvalidToken, kid)
	}

	return key, nil
}

func (c *keyCache) refresh(ctx context.Context) error {
	resp, err := c.client.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyFetch, err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("%w: unexpected status %d", ErrKeyFetch, resp.StatusCode())
	}

	var doc jwksDocument
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrKeyFetch, err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" {
			continue
		}

		pub, err := k.publicKey()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrKeyFetch, err)
		}
		keys[k.Kid] = pub
	}

	c.mu.Lock()
	c.keys = keys
	c.expiresAt = time.Now().Add(cacheTTL(resp.Header().Get("Cache-Control")))
	c.mu.Unlock()

	return nil
}

// publicKey assembles an rsa.PublicKey from the JWK's base64url-encoded
// modulus and exponent.
func (k jwk) publicKey() (*rsa.PublicKey, error) {
	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("bad modulus in key %q: %w", k.Kid, err)
	}

	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("bad exponent in key %q: %w", k.Kid, err)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(new(big.Int).SetBytes(e).Int64()),
	}, nil
}

// cacheTTL extracts max-age from a Cache-Control header, falling back to
// [defaultKeyTTL].
func cacheTTL(cacheControl string) time.Duration {
	match := maxAgePattern.FindStringSubmatch(cacheControl)
	if match == nil {
		return defaultKeyTTL
	}

	seconds, err := strconv.Atoi(match[1])
	if err != nil || seconds <= 0 {
		return defaultKeyTTL
	}

	return time.Duration(seconds) * time.Second
}
