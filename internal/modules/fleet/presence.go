// README: Driver presence set backed by Redis.
package fleet

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

const onlineDriversKey = "fleet:online_drivers"

// PresenceStore tracks which drivers are currently online so dashboards can
// read the whole set without scanning trucks.
type PresenceStore struct {
	redis *redis.Client
}

func NewPresenceStore(redis *redis.Client) *PresenceStore {
	return &PresenceStore{redis: redis}
}

func (s *PresenceStore) SetOnline(ctx context.Context, id types.ID, online bool) error {
	if online {
		return s.redis.SAdd(ctx, onlineDriversKey, string(id)).Err()
	}
	return s.redis.SRem(ctx, onlineDriversKey, string(id)).Err()
}

func (s *PresenceStore) Online(ctx context.Context) ([]types.ID, error) {
	members, err := s.redis.SMembers(ctx, onlineDriversKey).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]types.ID, len(members))
	for i, m := range members {
		ids[i] = types.ID(m)
	}
	return ids, nil
}

func (s *PresenceStore) IsOnline(ctx context.Context, id types.ID) (bool, error) {
	return s.redis.SIsMember(ctx, onlineDriversKey, string(id)).Result()
}
