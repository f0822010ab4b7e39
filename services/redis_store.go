package services

import (
	"context"

	apperrors "qrattendance/errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the header row and the name column as Redis lists and the
// attendance cells in a hash keyed by A1 reference.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "attendance"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) headersKey() string { return s.prefix + ":headers" }
func (s *RedisStore) namesKey() string   { return s.prefix + ":names" }
func (s *RedisStore) cellsKey() string   { return s.prefix + ":cells" }

// Init seeds A1 with the name label on an empty keyspace.
func (s *RedisStore) Init(ctx context.Context) error {
	for _, key := range []string{s.headersKey(), s.namesKey()} {
		n, err := s.rdb.LLen(ctx, key).Result()
		if err != nil {
			return apperrors.StoreError("seed "+key, err)
		}
		if n == 0 {
			if err := s.rdb.RPush(ctx, key, NameHeader).Err(); err != nil {
				return apperrors.StoreError("seed "+key, err)
			}
		}
	}
	return nil
}

func (s *RedisStore) Headers(ctx context.Context) ([]string, error) {
	headers, err := s.rdb.LRange(ctx, s.headersKey(), 0, -1).Result()
	if err != nil {
		return nil, apperrors.StoreError("read header row", err)
	}
	return headers, nil
}

func (s *RedisStore) NameColumn(ctx context.Context) ([]string, error) {
	names, err := s.rdb.LRange(ctx, s.namesKey(), 0, -1).Result()
	if err != nil {
		return nil, apperrors.StoreError("read name column", err)
	}
	return names, nil
}

func (s *RedisStore) AppendName(ctx context.Context, name string) error {
	if err := s.rdb.RPush(ctx, s.namesKey(), name).Err(); err != nil {
		return apperrors.StoreError("append name", err)
	}
	return nil
}

func (s *RedisStore) EnsureDateColumn(ctx context.Context, date string) (int, error) {
	headers, err := s.Headers(ctx)
	if err != nil {
		return 0, err
	}
	if idx := indexOf(headers, date); idx > 0 {
		return idx, nil
	}
	n, err := s.rdb.RPush(ctx, s.headersKey(), date).Result()
	if err != nil {
		return 0, apperrors.StoreError("insert date column", err)
	}
	return int(n), nil
}

func (s *RedisStore) ReadCell(ctx context.Context, row, col int) (string, error) {
	value, err := s.rdb.HGet(ctx, s.cellsKey(), CellRef(row, col)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", apperrors.StoreError("read cell", err)
	}
	return value, nil
}

func (s *RedisStore) WriteCell(ctx context.Context, row, col int, value string) error {
	if err := s.rdb.HSet(ctx, s.cellsKey(), CellRef(row, col), value).Err(); err != nil {
		return apperrors.StoreError("write cell", err)
	}
	return nil
}
