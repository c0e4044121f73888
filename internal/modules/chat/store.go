// README: Chat history store backed by Redis lists, one per booking.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

const (
	historyKeyPrefix = "chat:booking:%s"
	// Conversations outlive the job for dispute handling, then expire.
	historyTTL = 30 * 24 * time.Hour
)

type Store struct {
	redis *redis.Client
	// limit caps how many messages a history read returns; 0 means all.
	limit int
}

func NewStore(redis *redis.Client, limit int) *Store {
	return &Store{redis: redis, limit: limit}
}

// Append pushes the message onto the booking's list. Append order is the
// display order; timestamps are carried for rendering, not re-sorting.
func (s *Store) Append(ctx context.Context, m *Message) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	key := historyKey(m.BookingID)
	pipe := s.redis.Pipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, historyTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// History returns the most recent messages for a booking, oldest first.
func (s *Store) History(ctx context.Context, bookingID types.ID) ([]Message, error) {
	start := int64(0)
	if s.limit > 0 {
		start = int64(-s.limit)
	}
	raw, err := s.redis.LRange(ctx, historyKey(bookingID), start, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Message, 0, len(raw))
	for _, r := range raw {
		var m Message
		if err := json.Unmarshal([]byte(r), &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func historyKey(bookingID types.ID) string {
	return fmt.Sprintf(historyKeyPrefix, string(bookingID))
}
