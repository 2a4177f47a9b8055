package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

const currentDayKey = "current_date"

// advanceScript compares and sets the day atomically so two concurrent
// advances cannot move the clock backward. Returns -1 when the requested day
// is in the past.
var advanceScript = goredis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]))
if cur and cur > tonumber(ARGV[1]) then
    return -1
end
redis.call('SET', KEYS[1], ARGV[1])
return tonumber(ARGV[1])
`)

// Clock implements port.Clock on a single Redis key. The simulated day
// starts at 0 and only moves forward.
type Clock struct {
	rdb *goredis.Client
}

// NewClock returns a clock bound to the given client.
func NewClock(rdb *goredis.Client) *Clock {
	return &Clock{rdb: rdb}
}

// CurrentDay returns the simulated day, 0 when the clock was never advanced.
func (c *Clock) CurrentDay(ctx context.Context) (int, error) {
	day, err := c.rdb.Get(ctx, currentDayKey).Int()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read current day: %w", err)
	}
	return day, nil
}

// Advance sets the current day, failing with port.ErrDateInPast when the
// requested day precedes the stored one.
func (c *Clock) Advance(ctx context.Context, day int) (int, error) {
	res, err := advanceScript.Run(ctx, c.rdb, []string{currentDayKey}, day).Int()
	if err != nil {
		return 0, fmt.Errorf("advance day: %w", err)
	}
	if res < 0 {
		return 0, port.ErrDateInPast
	}
	return res, nil
}

var _ port.Clock = (*Clock)(nil)
