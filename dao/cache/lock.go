package cache

import (
	"Board/pkg/log"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	LikeToggleLockKey = "lock:post:like:%s:%d" // 用户 + 帖子

	lockTTL      = 5 * time.Second
	lockInterval = 20 * time.Millisecond
)

// 只删除自己持有的锁
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ToggleLock 同一用户对同一帖子的点赞切换串行执行
// redis 未配置时不加锁，数据库唯一键兜底
type ToggleLock struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewToggleLock(client *redis.Client) *ToggleLock {
	return &ToggleLock{redis: client, ttl: lockTTL}
}

// Acquire 获取锁，等待时间不超过锁的过期时间
// redis 异常时放行，返回的 release 总是可以安全调用
func (l *ToggleLock) Acquire(ctx context.Context, userID string, postID uint64) (release func(), err error) {
	noop := func() {}
	if l == nil || l.redis == nil {
		return noop, nil
	}

	key := fmt.Sprintf(LikeToggleLockKey, userID, postID)
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	for {
		ok, err := l.redis.SetNX(waitCtx, key, token, l.ttl).Result()
		switch {
		case err != nil && ctx.Err() != nil:
			return noop, ctx.Err()
		case err != nil && errors.Is(err, context.DeadlineExceeded):
			// 锁持有者超时未释放，不再等待
			log.L.Warn("toggle lock wait timeout", zap.String("key", key))
			return noop, nil
		case err != nil:
			log.L.Warn("toggle lock unavailable", zap.String("key", key), zap.Error(err))
			return noop, nil
		case ok:
			return func() {
				if err := unlockScript.Run(context.Background(), l.redis, []string{key}, token).Err(); err != nil {
					log.L.Warn("toggle lock release failed", zap.String("key", key), zap.Error(err))
				}
			}, nil
		}

		select {
		case <-ctx.Done():
			return noop, ctx.Err()
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return noop, ctx.Err()
			}
			log.L.Warn("toggle lock wait timeout", zap.String("key", key))
			return noop, nil
		case <-time.After(lockInterval):
		}
	}
}
