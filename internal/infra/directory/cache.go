package directory

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

const DefaultCacheKey = "ligue-leads:directory"

// CachedSource keeps the last directory snapshot in Redis for a short TTL so
// bursts of tool calls don't refetch the sheet each time. Redis failures fall
// through to the wrapped source.
type CachedSource struct {
	Next   entity.DirectorySource
	Client *redis.Client
	TTL    time.Duration
	Key    string
}

func NewCachedSource(next entity.DirectorySource, client *redis.Client, ttl time.Duration) *CachedSource {
	return &CachedSource{Next: next, Client: client, TTL: ttl, Key: DefaultCacheKey}
}

// cachedEntry carries the credential, which DirectoryEntry hides from JSON.
// Snapshots hold API keys in plaintext: point REDIS_ADDR only at a private,
// authenticated instance.
type cachedEntry struct {
	ClientName    string          `json:"client_name"`
	Platform      entity.Platform `json:"platform"`
	Identifier    string          `json:"identifier"`
	Credential    string          `json:"credential"`
	WorkspaceName string          `json:"workspace_name,omitempty"`
	PersonName    string          `json:"person_name,omitempty"`
}

func (c *CachedSource) Load(ctx context.Context) ([]entity.DirectoryEntry, error) {
	if c.Client == nil || c.TTL <= 0 {
		return c.Next.Load(ctx)
	}

	raw, err := c.Client.Get(ctx, c.Key).Bytes()
	switch {
	case err == nil:
		if entries, derr := decodeEntries(raw); derr == nil {
			return entries, nil
		}
		log.Printf("⚠️ Directory cache: discarding unreadable snapshot")
	case !errors.Is(err, redis.Nil):
		log.Printf("⚠️ Directory cache: redis get failed: %v", err)
	}

	entries, err := c.Next.Load(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := encodeEntries(entries); err == nil {
		if err := c.Client.Set(ctx, c.Key, raw, c.TTL).Err(); err != nil {
			log.Printf("⚠️ Directory cache: redis set failed: %v", err)
		}
	}
	return entries, nil
}

func encodeEntries(entries []entity.DirectoryEntry) ([]byte, error) {
	out := make([]cachedEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, cachedEntry(e))
	}
	return json.Marshal(out)
}

func decodeEntries(raw []byte) ([]entity.DirectoryEntry, error) {
	var in []cachedEntry
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}
	out := make([]entity.DirectoryEntry, 0, len(in))
	for _, e := range in {
		out = append(out, entity.DirectoryEntry(e))
	}
	return out, nil
}
