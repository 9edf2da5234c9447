package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"hospital-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis key prefix for a doctor's schedule windows
const RedisScheduleKeyPrefix = "doctor:schedules:"

// Timeout for individual Redis operations
const redisCacheTimeout = 2 * time.Second

// ScheduleCache is a read-through cache of a doctor's schedule windows.
//
// Entries are stored per generation. Get reports the doctor's current
// generation, a filler passes it back to Set, and Invalidate moves the doctor
// to a new generation. A fill that read the database before a write committed
// therefore lands under a generation no later Get asks for.
type ScheduleCache interface {
	Get(ctx context.Context, doctorID uuid.UUID) (windows []entity.DoctorSchedule, generation int64, found bool, err error)
	Set(ctx context.Context, doctorID uuid.UUID, generation int64, windows []entity.DoctorSchedule) error
	Invalidate(ctx context.Context, doctorID uuid.UUID) error
}

type redisScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewRedisScheduleCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) ScheduleCache {
	return &redisScheduleCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func generationKey(doctorID uuid.UUID) string {
	return RedisScheduleKeyPrefix + doctorID.String() + ":gen"
}

func scheduleKey(doctorID uuid.UUID, generation int64) string {
	return RedisScheduleKeyPrefix + doctorID.String() + ":" + strconv.FormatInt(generation, 10)
}

func (c *redisScheduleCache) Get(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorSchedule, int64, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	generation, err := c.client.Get(ctx, generationKey(doctorID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, fmt.Errorf("get schedule generation for doctor %s: %w", doctorID, err)
	}

	raw, err := c.client.Get(ctx, scheduleKey(doctorID, generation)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, generation, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("get schedules for doctor %s: %w", doctorID, err)
	}

	var windows []entity.DoctorSchedule
	if err := json.Unmarshal(raw, &windows); err != nil {
		return nil, 0, false, fmt.Errorf("decode schedules for doctor %s: %w", doctorID, err)
	}

	return windows, generation, true, nil
}

func (c *redisScheduleCache) Set(ctx context.Context, doctorID uuid.UUID, generation int64, windows []entity.DoctorSchedule) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if windows == nil {
		windows = []entity.DoctorSchedule{}
	}

	raw, err := json.Marshal(windows)
	if err != nil {
		return fmt.Errorf("encode schedules for doctor %s: %w", doctorID, err)
	}

	if err := c.client.Set(ctx, scheduleKey(doctorID, generation), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set schedules for doctor %s: %w", doctorID, err)
	}

	c.log.Debugf("Cached %d schedule windows for doctor %s, generation=%d, TTL=%v", len(windows), doctorID, generation, c.ttl)
	return nil
}

// Invalidate bumps the generation and drops the entry it replaced.
func (c *redisScheduleCache) Invalidate(ctx context.Context, doctorID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	generation, err := c.client.Incr(ctx, generationKey(doctorID)).Result()
	if err != nil {
		return fmt.Errorf("bump schedule generation for doctor %s: %w", doctorID, err)
	}

	if err := c.client.Del(ctx, scheduleKey(doctorID, generation-1)).Err(); err != nil {
		return fmt.Errorf("delete schedules for doctor %s: %w", doctorID, err)
	}
	return nil
}

// NoopScheduleCache always misses. Used when Redis is not configured.
type NoopScheduleCache struct{}

func (NoopScheduleCache) Get(context.Context, uuid.UUID) ([]entity.DoctorSchedule, int64, bool, error) {
	return nil, 0, false, nil
}

func (NoopScheduleCache) Set(context.Context, uuid.UUID, int64, []entity.DoctorSchedule) error {
	return nil
}

func (NoopScheduleCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}
