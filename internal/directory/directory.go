package directory

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"meetbook/internal/models"
)

// ErrNotFound reports that no user carries the requested role and id.
var ErrNotFound = errors.New("user not found")

// Identity is the display-facing view of a directory account.
type Identity struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// UserSource is the database read path behind the directory.
type UserSource interface {
	FindUserByRole(role, id string) (*models.User, error)
}

// Directory resolves (role, id) pairs to display identities. Consumers,
// providers and admins live in one users table, so every caller shares a
// single lookup path. Resolved identities are cached in Redis for a short
// TTL; the cache is an optimization only and a nil client disables it.
type Directory struct {
	users UserSource
	redis *redis.Client
	ttl   time.Duration
}

func New(users UserSource, rdb *redis.Client) *Directory {
	return &Directory{users: users, redis: rdb, ttl: 5 * time.Minute}
}

func (d *Directory) Lookup(ctx context.Context, role string, id uuid.UUID) (*Identity, error) {
	key := "identity:" + role + ":" + id.String()

	if d.redis != nil {
		if raw, err := d.redis.Get(ctx, key).Result(); err == nil {
			var ident Identity
			if json.Unmarshal([]byte(raw), &ident) == nil {
				return &ident, nil
			}
		}
	}

	user, err := d.users.FindUserByRole(role, id.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ident := &Identity{ID: user.ID, Name: user.Name, Role: user.Role}
	if d.redis != nil {
		if raw, err := json.Marshal(ident); err == nil {
			d.redis.Set(ctx, key, raw, d.ttl)
		}
	}
	return ident, nil
}
