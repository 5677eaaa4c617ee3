package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/hotel-pos/internal/application/auth"
)

var _ auth.TokenRevoker = (*TokenRevoker)(nil)

// TokenRevoker lista de tokens revocados en memoria (un solo proceso, se pierde al reiniciar).
type TokenRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewTokenRevoker construye el almacén vacío.
func NewTokenRevoker() *TokenRevoker {
	return &TokenRevoker{revoked: make(map[string]time.Time), now: time.Now}
}

func (r *TokenRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[tokenID] = r.now().Add(ttl)
	return nil
}

func (r *TokenRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !r.now().Before(exp) {
		delete(r.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
