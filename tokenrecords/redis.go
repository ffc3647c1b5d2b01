package tokenrecords

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const recordKeyPrefix = "tokenrecord:"

// rotateScript performs the compare-and-swap of the refresh token field
// server-side, so two refreshes racing on the same token cannot both succeed.
const rotateScript = `
local current = redis.call("HGET", KEYS[1], "refresh_token")
if not current or current == "" or current ~= ARGV[1] then
  return 0
end
redis.call("HSET", KEYS[1], "refresh_token", ARGV[2])
return 1
`

var rotateLua = redis.NewScript(rotateScript)

var _ Repo = (*RedisRepo)(nil)

// RedisRepo stores each token record as a hash keyed by username.
type RedisRepo struct {
	client redis.UniversalClient
}

func NewRedisRepo(client redis.UniversalClient) *RedisRepo {
	return &RedisRepo{client: client}
}

func recordKey(username string) string {
	return recordKeyPrefix + username
}

func (r *RedisRepo) FindByUsername(ctx context.Context, username string) (*TokenRecord, error) {
	fields, err := r.client.HGetAll(ctx, recordKey(username)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "[RedisRepo.FindByUsername] HGetAll")
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}

	expiresAt, err := time.Parse(time.RFC3339Nano, fields["expires_at"])
	if err != nil {
		return nil, errors.Wrap(err, "[RedisRepo.FindByUsername] invalid expires_at")
	}

	return &TokenRecord{
		Username:     username,
		RefreshToken: fields["refresh_token"],
		ExpiresAt:    expiresAt,
	}, nil
}

func (r *RedisRepo) Upsert(ctx context.Context, record *TokenRecord) error {
	err := r.client.HSet(ctx, recordKey(record.Username),
		"refresh_token", record.RefreshToken,
		"expires_at", record.ExpiresAt.Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return errors.Wrap(err, "[RedisRepo.Upsert] HSet")
	}
	return nil
}

func (r *RedisRepo) Rotate(ctx context.Context, username, current, next string) error {
	swapped, err := rotateLua.Run(ctx, r.client, []string{recordKey(username)}, current, next).Int64()
	if err != nil {
		return errors.Wrap(err, "[RedisRepo.Rotate] script run")
	}
	if swapped == 0 {
		return ErrTokenMismatch
	}
	return nil
}
