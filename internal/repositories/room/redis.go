package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/parlorgames/bingohall/internal/models"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix = "room:"
	allRoomsKey   = "rooms"
)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis. Rooms
// are stored as JSON blobs keyed by ID, with an index set of all room IDs.
type redisRepository struct {
	client *redis.Client
}

// roomRecord is the stored form of a room. The announced-bingo flags ride
// alongside the snapshot, keyed by participant ID, because the model keeps
// them off the client wire.
type roomRecord struct {
	Room            *models.Room    `json:"room"`
	AnnouncedBingos map[string]bool `json:"announcedBingos,omitempty"`
}

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveRoom persists a room snapshot to Redis
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}
	if input.Room.ID == "" {
		return errors.New("room ID cannot be empty")
	}

	record := &roomRecord{Room: input.Room}
	for id, p := range input.Room.Participants {
		if p.BingoAnnounced {
			if record.AnnouncedBingos == nil {
				record.AnnouncedBingos = make(map[string]bool)
			}
			record.AnnouncedBingos[id] = true
		}
	}

	roomJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	pipe := r.client.Pipeline()

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.Room.ID)
	pipe.Set(ctx, roomKey, roomJSON, 0)
	pipe.SAdd(ctx, allRoomsKey, input.Room.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by ID from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomID)
	roomJSON, err := r.client.Get(ctx, roomKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var record roomRecord
	if err := json.Unmarshal([]byte(roomJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}
	if record.Room == nil {
		return nil, fmt.Errorf("room %s record has no room payload", input.RoomID)
	}

	for id, p := range record.Room.Participants {
		p.BingoAnnounced = record.AnnouncedBingos[id]
	}

	return record.Room, nil
}
