package credential

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/skinsync/skinsync/internal/common"
	"github.com/skinsync/skinsync/internal/storage"
)

const hashesKey = "credentials"

// BcryptPolicy is the substitutable real scheme: it hashes the secret at
// signup and verifies against the stored hash at login. Hashes live in the
// durable store under the policy's own key, so installing it changes nothing
// in the auth gate or the entity collections. Not wired by default.
type BcryptPolicy struct {
	kv   storage.KV
	cost int
}

func NewBcryptPolicy(kv storage.KV) *BcryptPolicy {
	return &BcryptPolicy{kv: kv, cost: bcrypt.DefaultCost}
}

func (p *BcryptPolicy) OnSignUp(ctx context.Context, email string, secret string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), p.cost)
	if err != nil {
		return fmt.Errorf("failed to hash credential: %w", err)
	}

	hashes, err := p.load(ctx)
	if err != nil {
		return err
	}
	hashes[email] = string(hash)
	return p.save(ctx, hashes)
}

func (p *BcryptPolicy) Verify(ctx context.Context, email string, secret string) error {
	hashes, err := p.load(ctx)
	if err != nil {
		return err
	}

	hash, ok := hashes[email]
	if !ok {
		// No hash on record: the account predates this policy or does not
		// exist. Either way the credential cannot be verified.
		return common.ErrInvalidCredential
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) != nil {
		return common.ErrInvalidCredential
	}
	return nil
}

func (p *BcryptPolicy) load(ctx context.Context) (map[string]string, error) {
	data, err := p.kv.Get(ctx, hashesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}
	hashes := make(map[string]string)
	if data == nil {
		return hashes, nil
	}
	if err := json.Unmarshal(data, &hashes); err != nil {
		return make(map[string]string), nil
	}
	return hashes, nil
}

func (p *BcryptPolicy) save(ctx context.Context, hashes map[string]string) error {
	data, err := json.Marshal(hashes)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	if err := p.kv.Set(ctx, hashesKey, data); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}
