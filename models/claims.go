package models

// Claims is the verified profile record returned by the identity verifier
// after a Google ID token passes signature, issuer, audience, and
// hosted-domain checks.
type Claims struct {
	// Subject is the provider-issued stable subject id ("sub" claim).
	Subject string

	// GivenName is the user's given name; the display name candidate is
	// derived from it during provisioning.
	GivenName string

	Email   string
	Picture string

	// HostedDomain is the organizational domain claim ("hd"). The verifier
	// rejects tokens whose domain differs from the configured allowed
	// domain, so a non-empty value here is always the allowed one.
	HostedDomain string
}
