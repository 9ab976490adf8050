// Package credential isolates secret handling behind a pluggable policy so a
// real hashing/verification scheme can replace the demo heuristic without
// touching the auth gate's state machine.
package credential

import (
	"context"

	"github.com/skinsync/skinsync/internal/common"
)

// Policy hooks the auth gate's two credential touchpoints.
type Policy interface {
	// OnSignUp runs after the email uniqueness check passes and before the
	// profile is persisted.
	OnSignUp(ctx context.Context, email string, secret string) error

	// Verify runs at login before the user lookup. A failure surfaces as
	// common.ErrInvalidCredential to the caller.
	Verify(ctx context.Context, email string, secret string) error
}

// MinSecretLength is the demo heuristic's threshold.
const MinSecretLength = 5

// LengthPolicy is the shipped default: no stored state, no hashing, just a
// minimum-length check. Real authentication is out of scope for the app.
type LengthPolicy struct {
	Min int
}

// NewLengthPolicy returns the default policy with the standard threshold.
func NewLengthPolicy() *LengthPolicy {
	return &LengthPolicy{Min: MinSecretLength}
}

func (p *LengthPolicy) OnSignUp(ctx context.Context, email string, secret string) error {
	return nil
}

func (p *LengthPolicy) Verify(ctx context.Context, email string, secret string) error {
	if len(secret) < p.Min {
		return common.ErrInvalidCredential
	}
	return nil
}
