package seen

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
)

// RedisOptions параметры подключения к Redis
type RedisOptions struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// NewRedisClient создает клиент и проверяет соединение
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrExecQuery, opts.Addr, err)
	}
	return client, nil
}

// RedisRepository хранит счетчики в ключах <prefix>:seenApproved:<user> и <prefix>:seenRejected:<user>
type RedisRepository struct {
	client redis.Cmdable
	prefix string
}

func NewRedisRepository(client redis.Cmdable, prefix string) *RedisRepository {
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) approvedKey(username string) string {
	return r.key("seenApproved", username)
}

func (r *RedisRepository) rejectedKey(username string) string {
	return r.key("seenRejected", username)
}

func (r *RedisRepository) key(kind, username string) string {
	if r.prefix == "" {
		return kind + ":" + username
	}
	return r.prefix + ":" + kind + ":" + username
}

// Get возвращает нули для отсутствующих ключей
func (r *RedisRepository) Get(ctx context.Context, username string) (domain.SeenCounts, error) {
	values, err := r.client.MGet(ctx, r.approvedKey(username), r.rejectedKey(username)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return domain.SeenCounts{}, fmt.Errorf("%w: Get - mget: %v", ErrExecQuery, err)
	}

	var counts domain.SeenCounts
	if len(values) == 2 {
		if counts.Approved, err = parseCount(values[0]); err != nil {
			return domain.SeenCounts{}, fmt.Errorf("%w: Get - approved: %v", ErrScanRow, err)
		}
		if counts.Rejected, err = parseCount(values[1]); err != nil {
			return domain.SeenCounts{}, fmt.Errorf("%w: Get - rejected: %v", ErrScanRow, err)
		}
	}
	return counts, nil
}

// Set записывает оба счетчика одной транзакцией MULTI/EXEC
func (r *RedisRepository) Set(ctx context.Context, username string, counts domain.SeenCounts) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.approvedKey(username), counts.Approved, 0)
		pipe.Set(ctx, r.rejectedKey(username), counts.Rejected, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Set - pipeline: %v", ErrExecQuery, err)
	}
	return nil
}

func parseCount(v interface{}) (int, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case string:
		return strconv.Atoi(val)
	default:
		return 0, fmt.Errorf("unexpected value type %T", v)
	}
}
