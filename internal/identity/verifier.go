// Package identity implements the trust boundary between the forum server
// and the external identity provider. It validates Google ID tokens offline
// against the provider's published signing keys and enforces the
// hosted-domain restriction before any claims reach the provisioning flow.
package identity

import (
	"context"

	"github.com/campushub/forum-server/models"
)

// Verifier validates a raw third-party identity token and returns the
// verified profile claims, or rejects the token.
//
// The hosted-domain check is part of this contract: a token whose "hd"
// claim differs from the configured allowed domain fails verification no
// matter how valid the underlying signature is. This is the only defense
// against accepting identities from outside the intended organization, so
// implementations must enforce it unconditionally.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (models.Claims, error)
}
