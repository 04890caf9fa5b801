// File: moveboard/services/schedule/session.go
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const boardKeyPrefix = "board:"

// DefaultBoardTTL keeps a board snapshot alive for a working session. Boards
// are ephemeral; an expired snapshot is simply an empty board next time.
const DefaultBoardTTL = 12 * time.Hour

// BoardStore keeps DayBoard snapshots in Redis, one per owner and day.
type BoardStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewBoardStore returns a store writing snapshots with the given TTL
// (DefaultBoardTTL when zero).
func NewBoardStore(client *redis.Client, ttl time.Duration) *BoardStore {
	if ttl <= 0 {
		ttl = DefaultBoardTTL
	}
	return &BoardStore{Client: client, TTL: ttl}
}

func boardKey(ownerID, date string) string {
	return fmt.Sprintf("%s%s:%s", boardKeyPrefix, ownerID, date)
}

// Load fetches the board for the owner and day, returning a fresh empty
// board when no snapshot exists.
func (s *BoardStore) Load(ctx context.Context, ownerID, date string) (*DayBoard, error) {
	data, err := s.Client.Get(ctx, boardKey(ownerID, date)).Result()
	if err == redis.Nil {
		return NewDayBoard(ownerID, date), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load board snapshot: %w", err)
	}
	var board DayBoard
	if err := json.Unmarshal([]byte(data), &board); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board snapshot: %w", err)
	}
	return &board, nil
}

// Save writes the board snapshot back with the store's TTL.
func (s *BoardStore) Save(ctx context.Context, board *DayBoard) error {
	data, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("failed to marshal board snapshot: %w", err)
	}
	key := boardKey(board.OwnerID, board.Date)
	if err := s.Client.Set(ctx, key, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save board snapshot: %w", err)
	}
	return nil
}

// Delete discards the snapshot for the owner and day.
func (s *BoardStore) Delete(ctx context.Context, ownerID, date string) error {
	return s.Client.Del(ctx, boardKey(ownerID, date)).Err()
}
