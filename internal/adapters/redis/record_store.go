package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/redis/go-redis/v9"
)

// userRecord is the persisted identity record, byte-compatible with the
// `user` record the SPA keeps in browser local storage. No versioning
// field; absence or corruption always means logged-out.
type userRecord struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// RecordStore persists per-client identity records in Redis under
// `user:<client-id>`. Unreadable records are reported as absent, never as
// errors: the client must degrade to logged-out rather than crash.
type RecordStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRecordStore creates a record store with the given record TTL.
// A zero TTL keeps records until explicitly cleared.
func NewRecordStore(client redis.UniversalClient, ttl time.Duration) *RecordStore {
	return &RecordStore{client: client, prefix: "user:", ttl: ttl}
}

func (s *RecordStore) Load(ctx context.Context, clientID string) (domainauth.Identity, bool, error) {
	if clientID == "" {
		return domainauth.Identity{}, false, nil
	}

	data, err := s.client.Get(ctx, s.prefix+clientID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Identity{}, false, nil
		}
		return domainauth.Identity{}, false, fmt.Errorf("redis get: %w", err)
	}

	var rec userRecord
	if unmarshalErr := json.Unmarshal([]byte(data), &rec); unmarshalErr != nil {
		// Corrupt record: treat as absent and drop it so the next load is clean.
		_ = s.client.Del(ctx, s.prefix+clientID).Err()
		return domainauth.Identity{}, false, nil
	}

	role, ok := domainauth.ParseRole(rec.Role)
	if !ok {
		return domainauth.Identity{}, false, nil
	}

	return domainauth.Identity{
		Name:  rec.Name,
		Email: rec.Email,
		Role:  role,
		Token: rec.Token,
	}, true, nil
}

func (s *RecordStore) Save(ctx context.Context, clientID string, identity domainauth.Identity) error {
	if clientID == "" {
		return errors.New("client ID cannot be empty")
	}

	data, err := json.Marshal(userRecord{
		Name:  identity.Name,
		Email: identity.Email,
		Role:  string(identity.Role),
		Token: identity.Token,
	})
	if err != nil {
		return fmt.Errorf("marshal user record: %w", err)
	}

	return s.client.Set(ctx, s.prefix+clientID, data, s.ttl).Err()
}

func (s *RecordStore) Clear(ctx context.Context, clientID string) error {
	if clientID == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+clientID).Err()
}
