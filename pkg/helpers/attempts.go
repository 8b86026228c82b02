package helpers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// atomic INCR + set PEXPIRE on first hit
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func keyCodeAttempts(email string) string { return "code:attempts:" + email }

// AttemptLimiter bounds failed code verifications per email within the code
// TTL window, closing the unlimited-guessing hole of unthrottled one-time
// codes. Redis keeps the counters so all instances share them.
type AttemptLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
}

func NewAttemptLimiter(rdb *redis.Client, max int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{rdb: rdb, max: max, window: window}
}

// Bump records a verification attempt for the email and reports whether the
// cap is exceeded. Redis errors fail open: a throttling outage must not lock
// everyone out.
func (l *AttemptLimiter) Bump(ctx context.Context, email string) (bool, error) {
	if l.rdb == nil || l.max <= 0 {
		return true, nil
	}
	count, err := incrExpireScript.Run(ctx, l.rdb, []string{keyCodeAttempts(email)}, l.window.Milliseconds()).Int()
	if err != nil {
		return true, err
	}
	return count <= l.max, nil
}

// Reset clears the counter after a successful login.
func (l *AttemptLimiter) Reset(ctx context.Context, email string) {
	if l.rdb == nil {
		return
	}
	_ = l.rdb.Del(ctx, keyCodeAttempts(email)).Err()
}
