// Package token holds the revocation deny-list for logged-out session tokens.
// Logout alone only clears the client cookie; a captured token would stay
// valid until natural expiry. The deny-list closes that window for this
// process: entries are keyed by the token's jti and evicted after the token
// lifetime, so the list never outgrows the set of tokens that could still
// verify.
package token

import (
	"context"
	"time"

	"github.com/allegro/bigcache/v3"
)

// Denylist records revoked token ids until their natural expiry.
type Denylist struct {
	cache *bigcache.BigCache
}

// NewDenylist creates a deny-list whose entries live as long as a token can.
func NewDenylist(tokenTTL time.Duration) (*Denylist, error) {
	cache, err := bigcache.New(context.Background(), bigcache.DefaultConfig(tokenTTL))
	if err != nil {
		return nil, err
	}
	return &Denylist{cache: cache}, nil
}

// Revoke marks a token id as no longer acceptable.
func (d *Denylist) Revoke(jti string) error {
	return d.cache.Set(jti, []byte{1})
}

// Revoked reports whether a token id has been revoked.
func (d *Denylist) Revoked(jti string) bool {
	_, err := d.cache.Get(jti)
	return err == nil
}
