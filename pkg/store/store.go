package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/matzehuels/scenetree/pkg/errors"
)

// Store is a key/value store with optional expiration.
type Store interface {
	// Get returns the value for key. A missing or expired key is a miss,
	// reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Name identifies the backend in logs and hooks.
	Name() string

	Close() error
}

// Backend names accepted by [Open].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Config selects and configures a backend.
type Config struct {
	Backend string

	// Dir is the FileStore directory.
	Dir string

	// Addr is host:port for Redis or a mongodb:// URI for Mongo.
	Addr     string
	Password string
	DB       int

	Database   string
	Collection string
}

// Open creates the configured backend. Network backends are pinged with
// retries before Open returns.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendNone:
		return NewNullStore(), nil
	case BackendFile:
		if cfg.Dir == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "file store needs a directory")
		}
		return NewFileStore(cfg.Dir)
	case BackendRedis:
		return NewRedisStore(ctx, cfg)
	case BackendMongo:
		return NewMongoStore(ctx, cfg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", cfg.Backend)
	}
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
