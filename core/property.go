package core

import "context"

const (
	PropertyVaultSecret    = "vault.secret"
	PropertyVaultVerifier  = "vault.verifier"
	PropertyProviderStatus = "provider_status"
)

// PropertyStore keeps opaque JSON blobs by logical key. Get leaves value
// untouched when the key is missing.
type PropertyStore interface {
	Get(ctx context.Context, key string, value any) error
	Set(ctx context.Context, key string, value any) error
}
