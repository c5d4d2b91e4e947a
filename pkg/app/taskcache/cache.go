package taskcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	"github.com/NeuralTrust/TaskAPI/pkg/infra/prometheus"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	KeyPrefix = "tasks:"
	scanCount = 100
)

// Filters are the named scalar values that select a listing. Nil values
// (including nil pointers) are treated as absent.
type Filters map[string]interface{}

// ListFilters returns the filters of a normalized listing query.
func ListFilters(q task.ListQuery) Filters {
	return Filters{
		"done":  q.Done,
		"page":  q.Page,
		"limit": q.Limit,
	}
}

//go:generate mockery --name=Cache --dir=. --output=./mocks --filename=cache_mock.go --case=underscore --with-expecter
type Cache interface {
	Get(ctx context.Context, ownerID string, filters Filters) (*task.Page, bool)
	Set(ctx context.Context, ownerID string, page *task.Page, filters Filters)
	Invalidate(ctx context.Context, ownerID string)
}

type cache struct {
	redis  *redis.Client
	logger *logrus.Logger
	ttl    time.Duration
}

func NewCache(redisClient *redis.Client, logger *logrus.Logger, ttl time.Duration) Cache {
	return &cache{
		redis:  redisClient,
		logger: logger,
		ttl:    ttl,
	}
}

// BaseKey is the owner prefix shared by every cached listing of ownerID.
func BaseKey(ownerID string) string {
	return KeyPrefix + ownerID
}

// Key appends ":name=value" for each present filter in sorted name order, so
// the result does not depend on how the filters were supplied.
func Key(ownerID string, filters Filters) string {
	names := make([]string, 0, len(filters))
	for name, value := range filters {
		if _, ok := scalar(value); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(BaseKey(ownerID))
	for _, name := range names {
		value, _ := scalar(filters[name])
		b.WriteString(":")
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(value)
	}
	return b.String()
}

func scalar(value interface{}) (string, bool) {
	if value == nil {
		return "", false
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	return fmt.Sprint(rv.Interface()), true
}

func (c *cache) Get(ctx context.Context, ownerID string, filters Filters) (*task.Page, bool) {
	key := Key(ownerID, filters)
	raw, err := c.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		prometheus.CacheOperations.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Error("failed to read task listing from cache")
		prometheus.CacheOperations.WithLabelValues("error").Inc()
		return nil, false
	}

	page := new(task.Page)
	if err := json.Unmarshal([]byte(raw), page); err != nil {
		c.logger.WithError(err).WithField("key", key).Error("failed to decode cached task listing")
		prometheus.CacheOperations.WithLabelValues("error").Inc()
		return nil, false
	}
	prometheus.CacheOperations.WithLabelValues("hit").Inc()
	return page, true
}

func (c *cache) Set(ctx context.Context, ownerID string, page *task.Page, filters Filters) {
	key := Key(ownerID, filters)
	data, err := json.Marshal(page)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Error("failed to encode task listing")
		prometheus.CacheOperations.WithLabelValues("error").Inc()
		return
	}
	if err := c.redis.Set(ctx, key, string(data), c.ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Error("failed to write task listing to cache")
		prometheus.CacheOperations.WithLabelValues("error").Inc()
		return
	}
	prometheus.CacheOperations.WithLabelValues("set").Inc()
}

// Invalidate removes the owner's base key and every filter-qualified
// variant. Keys of other owners that merely share the prefix (u1 vs u10)
// are left alone.
func (c *cache) Invalidate(ctx context.Context, ownerID string) {
	base := BaseKey(ownerID)
	keys, err := c.ownerKeys(ctx, base)
	if err != nil {
		c.logger.WithError(err).WithField("owner", ownerID).Error("failed to scan cached task listings")
		prometheus.CacheOperations.WithLabelValues("error").Inc()
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		c.logger.WithError(err).WithField("owner", ownerID).Error("failed to delete cached task listings")
		prometheus.CacheOperations.WithLabelValues("error").Inc()
		return
	}
	c.logger.WithFields(logrus.Fields{
		"owner": ownerID,
		"keys":  len(keys),
	}).Debug("invalidated cached task listings")
	prometheus.CacheOperations.WithLabelValues("invalidate").Inc()
}

func (c *cache) ownerKeys(ctx context.Context, base string) ([]string, error) {
	pattern := escapeGlob(base) + "*"
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := c.redis.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range batch {
			if key == base || strings.HasPrefix(key, base+":") {
				keys = append(keys, key)
			}
		}
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
