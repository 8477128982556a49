package scanlock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ===============================
// Lock distribuído (Redis)
// ===============================

// libera somente se o token ainda for nosso (lock pode ter expirado e sido
// adquirido por outra instância)
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLock torna o estado "varredura em andamento" visível a todas as
// instâncias. O TTL evita lock órfão se o processo morrer no meio da
// varredura.
type RedisLock struct {
	rdb   *redis.Client
	key   string
	ttl   time.Duration
	token string
}

func NewRedisLock(rdb *redis.Client, key string, ttl time.Duration) *RedisLock {
	if key == "" {
		key = "reminder:scan"
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisLock{rdb: rdb, key: key, ttl: ttl}
}

func (l *RedisLock) TryLock(ctx context.Context) (bool, error) {
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return false, err
	}
	if ok {
		l.token = token
	}
	return ok, nil
}

func (l *RedisLock) Unlock(ctx context.Context) error {
	if l.token == "" {
		return nil
	}
	_, err := releaseScript.Run(ctx, l.rdb, []string{l.key}, l.token).Result()
	l.token = ""
	return err
}
