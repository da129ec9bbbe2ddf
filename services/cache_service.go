package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"merchshop_server/config"
	"merchshop_server/database"
	"merchshop_server/structs"
	"merchshop_server/structs/tables"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

// CacheService provides Redis caching with retry logic. Every caller treats
// cache failures as soft: a miss or an error falls through to the database.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// withRetry executes a Redis operation with exponential backoff retry logic
func (cs *CacheService) withRetry(operation func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if attempt == maxRetries {
			break
		}

		// Only retry on network/connection errors, not on logical errors like key not found
		if !isRetryableRedisError(err) {
			return err
		}

		maxBackoff := 2000 // max 2000ms = 2s
		base := 100        // 100ms base

		backoff := base * (1 << attempt) // exponential
		backoff = min(backoff, maxBackoff)

		// add jitter ±50%
		jitterBytes := make([]byte, 4)
		_, err = rand.Read(jitterBytes)
		if err != nil {
			time.Sleep(time.Duration(backoff) * time.Millisecond)
			continue
		}
		jitter := int(uint32(jitterBytes[0])<<24 | uint32(jitterBytes[1])<<16 | uint32(jitterBytes[2])<<8 | uint32(jitterBytes[3]))
		jitter = jitter % (backoff/2 + 1)
		backoffWithJitter := backoff/2 + jitter

		time.Sleep(time.Duration(backoffWithJitter) * time.Millisecond)
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

// isRetryableRedisError determines if an error is worth retrying
func isRetryableRedisError(err error) bool {
	if err == nil {
		return false
	}

	if err == redis.Nil {
		return false
	}

	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}

// Set sets a key with TTL and automatic retry logic
func (cs *CacheService) Set(key string, value any, ttl time.Duration) error {
	return cs.withRetry(func() error {
		return cs.client.Set(redisCtx, key, value, ttl).Err()
	}, 3)
}

// Get retrieves a key with automatic retry logic. Returns "" on cache miss.
func (cs *CacheService) Get(key string) (string, error) {
	var result string

	err := cs.withRetry(func() error {
		val, err := cs.client.Get(redisCtx, key).Result()
		if err == redis.Nil {
			result = ""
			return nil // Don't retry on key not found
		}
		if err != nil {
			return err
		}
		result = val
		return nil
	}, 3)

	if err != nil {
		return "", err
	}

	return result, nil
}

// Delete removes a key with automatic retry logic
func (cs *CacheService) Delete(key string) error {
	return cs.withRetry(func() error {
		return cs.client.Del(redisCtx, key).Err()
	}, 3)
}

// IncrementRateLimit atomically increments a rate limit counter
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, ttl time.Duration) (int, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)

	var result int64
	err := cs.withRetry(func() error {
		val, err := cs.client.Incr(redisCtx, key).Result()
		if err != nil {
			return err
		}
		result = val

		// Set expiration only on first increment
		if val == 1 {
			return cs.client.Expire(redisCtx, key, ttl).Err()
		}

		return nil
	}, 3)

	return int(result), err
}

// Ping tests the Redis connection
func (cs *CacheService) Ping() error {
	return cs.withRetry(func() error {
		return cs.client.Ping(redisCtx).Err()
	}, 3)
}

// GetConnectionStats returns Redis connection pool statistics
func (cs *CacheService) GetConnectionStats() map[string]any {
	stats := cs.client.PoolStats()

	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}

// GetUserFromCache retrieves a user object from cache using userID
func (cs *CacheService) GetUserFromCache(userID int64) (*tables.User, error) {
	key := fmt.Sprintf("user:%d", userID)
	return getJSON[tables.User](cs, key)
}

// SetUserInCache stores a user object in cache with TTL
func (cs *CacheService) SetUserInCache(user *tables.User) error {
	if user == nil {
		return nil
	}
	key := fmt.Sprintf("user:%d", user.ID)
	return setJSON(cs, key, user, cs.config.Cache.TTL)
}

// InvalidateUserCache removes a user from cache
func (cs *CacheService) InvalidateUserCache(userID int64) error {
	return cs.Delete(fmt.Sprintf("user:%d", userID))
}

// GetProductList retrieves a cached product list page by its filter key
func (cs *CacheService) GetProductList(filterKey string) (*database.PaginationResult[tables.Product], error) {
	return getJSON[database.PaginationResult[tables.Product]](cs, "products:list:"+filterKey)
}

// SetProductList caches a product list page under its filter key
func (cs *CacheService) SetProductList(filterKey string, page *database.PaginationResult[tables.Product]) error {
	if page == nil {
		return nil
	}
	return setJSON(cs, "products:list:"+filterKey, page, cs.config.Cache.TTL)
}

// GetProductByID retrieves a cached product detail
func (cs *CacheService) GetProductByID(id int64) (*tables.Product, error) {
	return getJSON[tables.Product](cs, fmt.Sprintf("product:id:%d", id))
}

// SetProductByID caches a product detail
func (cs *CacheService) SetProductByID(product *tables.Product) error {
	if product == nil {
		return nil
	}
	return setJSON(cs, fmt.Sprintf("product:id:%d", product.ID), product, cs.config.Cache.TTL)
}

// InvalidateProductCaches removes all product-related caches. Called when
// stock changes after an order so the storefront does not serve stale counts.
func (cs *CacheService) InvalidateProductCaches() error {
	patterns := []string{
		"product:*",
		"products:*",
	}

	for _, pattern := range patterns {
		if err := cs.DeletePattern(pattern); err != nil {
			cs.logger.Warn("Failed to delete cache pattern", gecho.Field("pattern", pattern), gecho.Field("error", err))
			return err
		}
	}

	return nil
}

// DeletePattern removes all keys matching a pattern using SCAN
func (cs *CacheService) DeletePattern(pattern string) error {
	return cs.withRetry(func() error {
		var cursor uint64

		for {
			keys, nextCursor, err := cs.client.Scan(redisCtx, cursor, pattern, 100).Result()
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if len(keys) > 0 {
				if err := cs.client.Del(redisCtx, keys...).Err(); err != nil {
					return fmt.Errorf("delete failed: %w", err)
				}
			}

			cursor = nextCursor
			if cursor == 0 {
				break
			}
		}

		return nil
	}, 3)
}

func (cs *CacheService) ClearAll() error {
	return cs.withRetry(func() error {
		return cs.client.FlushDB(redisCtx).Err()
	}, 3)
}

// ProductListCacheKey derives a stable cache key from list filters
func ProductListCacheKey(opts *structs.ProductListOptions) string {
	minP, maxP := int64(-1), int64(-1)
	if opts.MinPriceCents != nil {
		minP = *opts.MinPriceCents
	}
	if opts.MaxPriceCents != nil {
		maxP = *opts.MaxPriceCents
	}
	return fmt.Sprintf("cat:%s:q:%s:min:%d:max:%d:avail:%s:page:%d:size:%d",
		opts.Category, opts.SearchTerm, minP, maxP,
		strconv.FormatBool(opts.AvailableOnly), opts.Page, opts.PageSize)
}

func setJSON[T any](cs *CacheService, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.Set(key, data, ttl)
}

func getJSON[T any](cs *CacheService, key string) (*T, error) {
	val, err := cs.Get(key)
	if err != nil {
		return nil, err
	}

	if val == "" {
		return nil, nil // not found in cache
	}

	var result T
	err = json.Unmarshal([]byte(val), &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
