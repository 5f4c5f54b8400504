package session

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/FelixBrandt/Foliogram/internal/pkg/cache"
	"github.com/FelixBrandt/Foliogram/internal/pkg/env"
)

var sessionStore *session.Store

// NewSessionStore initializes the shared session store. Sessions live in
// Redis (database 1, the cache uses 0) when the cache server answers;
// otherwise they stay in process memory so the app still boots with nothing
// configured.
func NewSessionStore() *session.Store {
	config := session.Config{
		CookieHTTPOnly: true,
		// CookieSecure:   true, // Enable in production with HTTPS
		Expiration: time.Hour * 1,
		KeyLookup:  "cookie:session_id",
	}

	if storage := redisStorage(); storage != nil {
		config.Storage = storage
	} else {
		log.Warn("cache unreachable, keeping sessions in memory")
	}

	sessionStore = session.New(config)
	return sessionStore
}

// redisStorage builds session storage on the cache server's Redis, or nil
// when no connection can be made.
func redisStorage() fiber.Storage {
	cacheClient := cache.GetClient()
	if cacheClient == nil {
		return nil
	}
	if err := cacheClient.Ping(context.Background()).Err(); err != nil {
		return nil
	}

	host := "localhost"
	port := 6379
	if h, p, err := net.SplitHostPort(cacheClient.Options().Addr); err == nil {
		host = h
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}
	password := cacheClient.Options().Password
	if password == "" {
		password = env.GetEnv("CACHE_PASSWORD", "")
	}

	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
		Reset:    false,
	})
}

// ID returns the stable identifier of the caller's session. The viewer
// manager keys its per-visitor modal state on it.
func ID(c *fiber.Ctx) (string, error) {
	if sessionStore == nil {
		return "", fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return "", fmt.Errorf("failed to get session: %v", err)
	}

	if sess.Fresh() {
		if err := sess.Save(); err != nil {
			return "", fmt.Errorf("failed to save session: %v", err)
		}
	}

	return sess.ID(), nil
}

// SetSessionValue stores a key-value pair in the user's individual session
func SetSessionValue(c *fiber.Ctx, key string, value string) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %v", err)
	}

	sess.Set(key, value)
	return sess.Save()
}

// GetSessionValue retrieves a value by key from the user's individual session
func GetSessionValue(c *fiber.Ctx, key string) string {
	if sessionStore == nil {
		return ""
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return ""
	}

	value := sess.Get(key)
	if value == nil {
		return ""
	}

	if strValue, ok := value.(string); ok {
		return strValue
	}

	return ""
}
