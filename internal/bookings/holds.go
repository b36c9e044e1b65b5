package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrHoldUnavailable is returned when a checkout hold would exceed the
// free seats of a date.
var ErrHoldUnavailable = errors.New("not enough free seats to hold")

// SeatHolds gives checkout sessions a short-lived claim on seats of a
// date so two shoppers do not both walk a full wizard for the last seat.
// Holds are advisory: the reservation transaction at booking time is what
// actually enforces capacity.
type SeatHolds struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSeatHolds(redisClient *redis.Client, ttl time.Duration) *SeatHolds {
	return &SeatHolds{redis: redisClient, ttl: ttl}
}

// Expired holds are purged by score before the capacity check, so a
// crashed checkout never blocks seats past the TTL.
const luaHoldSeats = `
-- KEYS[1] = expiry zset for the date
-- KEYS[2] = seats hash for the date
-- ARGV[1] = hold_id
-- ARGV[2] = seats requested
-- ARGV[3] = free seats (capacity minus booked, read from the database)
-- ARGV[4] = now (unix seconds)
-- ARGV[5] = ttl_seconds

local now = tonumber(ARGV[4])
local ttl = tonumber(ARGV[5])

-- Purge expired holds
local expired = redis.call("ZRANGEBYSCORE", KEYS[1], "-inf", now)
for i = 1, #expired do
    redis.call("HDEL", KEYS[2], expired[i])
end
if #expired > 0 then
    redis.call("ZREMRANGEBYSCORE", KEYS[1], "-inf", now)
end

-- Sum live holds
local held = 0
local counts = redis.call("HVALS", KEYS[2])
for i = 1, #counts do
    held = held + tonumber(counts[i])
end

local seats = tonumber(ARGV[2])
if held + seats > tonumber(ARGV[3]) then
    return {0, held}
end

redis.call("ZADD", KEYS[1], now + ttl, ARGV[1])
redis.call("HSET", KEYS[2], ARGV[1], seats)
redis.call("EXPIRE", KEYS[1], ttl)
redis.call("EXPIRE", KEYS[2], ttl)

return {1, held + seats}
`

const luaReleaseHold = `
-- KEYS[1] = expiry zset for the date
-- KEYS[2] = seats hash for the date
-- ARGV[1] = hold_id

local seats = redis.call("HGET", KEYS[2], ARGV[1])
if not seats then
    return {0, 0}
end

redis.call("HDEL", KEYS[2], ARGV[1])
redis.call("ZREM", KEYS[1], ARGV[1])

return {1, tonumber(seats)}
`

func holdKeys(dateID string) []string {
	return []string{
		"mtour:holds:exp:" + dateID,
		"mtour:holds:seats:" + dateID,
	}
}

// HoldSeats claims seats on a date for one checkout session. freeSeats is
// the date's capacity minus booked seats as read from the database; the
// script additionally subtracts live holds.
func (h *SeatHolds) HoldSeats(ctx context.Context, dateID, holdID string, seats, freeSeats int) error {
	if h.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	args := []interface{}{
		holdID,
		seats,
		freeSeats,
		time.Now().Unix(),
		int(h.ttl.Seconds()),
	}

	result, err := h.eval(ctx, luaHoldSeats, holdKeys(dateID), args...)
	if err != nil {
		return fmt.Errorf("failed to execute seat hold: %w", err)
	}

	success, _, err := parseHoldResult(result)
	if err != nil {
		return err
	}
	if !success {
		return ErrHoldUnavailable
	}
	return nil
}

// ReleaseHold drops a checkout hold and returns how many seats it covered.
// Releasing an expired or unknown hold is not an error.
func (h *SeatHolds) ReleaseHold(ctx context.Context, dateID, holdID string) (int, error) {
	if h.redis == nil {
		return 0, fmt.Errorf("redis client not available")
	}

	result, err := h.eval(ctx, luaReleaseHold, holdKeys(dateID), holdID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute hold release: %w", err)
	}

	_, seats, err := parseHoldResult(result)
	if err != nil {
		return 0, err
	}
	return seats, nil
}

// HeldSeats reports the live hold total for a date, for availability
// display during checkout.
func (h *SeatHolds) HeldSeats(ctx context.Context, dateID string) (int, error) {
	if h.redis == nil {
		return 0, fmt.Errorf("redis client not available")
	}

	counts, err := h.redis.HVals(ctx, holdKeys(dateID)[1]).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read holds: %w", err)
	}

	total := 0
	for _, c := range counts {
		var n int
		if _, err := fmt.Sscanf(c, "%d", &n); err == nil {
			total += n
		}
	}
	return total, nil
}

// PreloadScripts loads the Lua scripts into Redis so EvalSha hits.
func (h *SeatHolds) PreloadScripts(ctx context.Context) error {
	if h.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	if _, err := h.redis.ScriptLoad(ctx, luaHoldSeats).Result(); err != nil {
		return fmt.Errorf("failed to load hold script: %w", err)
	}
	if _, err := h.redis.ScriptLoad(ctx, luaReleaseHold).Result(); err != nil {
		return fmt.Errorf("failed to load release script: %w", err)
	}
	return nil
}

func (h *SeatHolds) eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	result, err := h.redis.EvalSha(ctx, script, keys, args...).Result()
	if err != nil {
		// Script not cached yet, fall back to a full Eval
		result, err = h.redis.Eval(ctx, script, keys, args...).Result()
	}
	return result, err
}

func parseHoldResult(result interface{}) (bool, int, error) {
	resultArray, ok := result.([]interface{})
	if !ok || len(resultArray) != 2 {
		return false, 0, fmt.Errorf("unexpected result format from Lua script")
	}

	success, ok := resultArray[0].(int64)
	if !ok {
		return false, 0, fmt.Errorf("invalid success flag in Lua script result")
	}

	count, ok := resultArray[1].(int64)
	if !ok {
		return false, 0, fmt.Errorf("invalid seat count in Lua script result")
	}

	return success == 1, int(count), nil
}
