package policy

import "context"

type ServerPolicyRepository interface {
	// Get retrieves the single server policy row
	Get(ctx context.Context) (ServerPolicy, error)
}
